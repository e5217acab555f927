package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/farmstead/farmstead-api/internal/domain"
	"github.com/farmstead/farmstead-api/internal/repository"
)

var (
	ErrLivestockTypeNotFound = repository.ErrLivestockTypeNotFound
	ErrAnimalNotFound        = repository.ErrAnimalNotFound
	ErrInsufficientStock     = repository.ErrInsufficientStock
	ErrInvalidAmount         = errors.New("amount must not be negative")
)

type LivestockRepository interface {
	GetAllTypes(ctx context.Context) ([]domain.LivestockType, error)
	GetTypeByName(ctx context.Context, name string) (domain.LivestockType, error)
	GetAllSales(ctx context.Context) ([]domain.LivestockSale, error)
	GetCostHistory(ctx context.Context) ([]domain.CostEntry, error)
	UpsertType(ctx context.Context, t domain.LivestockType) (domain.LivestockType, error)
	UpdateTypeCosts(ctx context.Context, name string, purchaseCost, costOfLiving *decimal.Decimal) (domain.LivestockType, error)
	DeleteType(ctx context.Context, name string) error
	AddCost(ctx context.Context, typeName string, amount decimal.Decimal, month, notes string) (domain.CostEntry, error)
	ResetCost(ctx context.Context, typeName string) error
	Sell(ctx context.Context, typeName string, quantity int, salePrice decimal.Decimal, notes string) (domain.LivestockSale, error)
	RecordLoss(ctx context.Context, typeName string, quantity int) error
	ResetAllSales(ctx context.Context) error
	GetAllAnimals(ctx context.Context) ([]domain.Animal, error)
	RegisterAnimal(ctx context.Context, a domain.Animal) (domain.Animal, error)
	UpdateAnimal(ctx context.Context, id uint, feedCost *decimal.Decimal, production *string) (domain.Animal, error)
	DeleteAnimal(ctx context.Context, id uint) error
}

type LivestockService struct {
	repo LivestockRepository
}

func NewLivestockService(repo LivestockRepository) *LivestockService {
	return &LivestockService{
		repo: repo,
	}
}

// GetOverview returns all balance rows together with the full sale history,
// the shape the livestock dashboard renders.
func (s *LivestockService) GetOverview(ctx context.Context) ([]domain.LivestockType, []domain.LivestockSale, error) {
	types, err := s.repo.GetAllTypes(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("s.repo.GetAllTypes -> %w", err)
	}

	sales, err := s.repo.GetAllSales(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("s.repo.GetAllSales -> %w", err)
	}

	return types, sales, nil
}

func (s *LivestockService) UpsertType(ctx context.Context, t domain.LivestockType) (domain.LivestockType, error) {
	created, err := s.repo.UpsertType(ctx, t)
	if err != nil {
		return domain.LivestockType{}, fmt.Errorf("s.repo.UpsertType -> %w", err)
	}

	return created, nil
}

func (s *LivestockService) UpdateTypeCosts(ctx context.Context, name string, purchaseCost, costOfLiving *decimal.Decimal) (domain.LivestockType, error) {
	updated, err := s.repo.UpdateTypeCosts(ctx, name, purchaseCost, costOfLiving)
	if err != nil {
		if errors.Is(err, ErrLivestockTypeNotFound) {
			return domain.LivestockType{}, ErrLivestockTypeNotFound
		}
		return domain.LivestockType{}, fmt.Errorf("s.repo.UpdateTypeCosts -> %w", err)
	}

	return updated, nil
}

func (s *LivestockService) DeleteType(ctx context.Context, name string) error {
	return s.repo.DeleteType(ctx, name)
}

func (s *LivestockService) AddCost(ctx context.Context, typeName string, amount decimal.Decimal, month, notes string) (domain.CostEntry, error) {
	if amount.IsNegative() {
		return domain.CostEntry{}, ErrInvalidAmount
	}

	entry, err := s.repo.AddCost(ctx, typeName, amount, month, notes)
	if err != nil {
		if errors.Is(err, ErrLivestockTypeNotFound) {
			return domain.CostEntry{}, ErrLivestockTypeNotFound
		}
		return domain.CostEntry{}, fmt.Errorf("s.repo.AddCost -> %w", err)
	}

	return entry, nil
}

// ResetCost zeroes the running cost-of-living counter. History entries stay
// queryable but no longer feed the balance; this loses information and the
// caller is expected to confirm with the user first.
func (s *LivestockService) ResetCost(ctx context.Context, typeName string) error {
	return s.repo.ResetCost(ctx, typeName)
}

func (s *LivestockService) Sell(ctx context.Context, typeName string, quantity int, salePrice decimal.Decimal, notes string) (domain.LivestockSale, error) {
	sale, err := s.repo.Sell(ctx, typeName, quantity, salePrice, notes)
	if err != nil {
		if errors.Is(err, ErrLivestockTypeNotFound) || errors.Is(err, ErrInsufficientStock) {
			return domain.LivestockSale{}, err
		}
		return domain.LivestockSale{}, fmt.Errorf("s.repo.Sell -> %w", err)
	}

	return sale, nil
}

func (s *LivestockService) RecordLoss(ctx context.Context, typeName string, quantity int) error {
	err := s.repo.RecordLoss(ctx, typeName, quantity)
	if err != nil {
		if errors.Is(err, ErrLivestockTypeNotFound) || errors.Is(err, ErrInsufficientStock) {
			return err
		}
		return fmt.Errorf("s.repo.RecordLoss -> %w", err)
	}

	return nil
}

// ResetAllSales wipes the sale history and restores sold quantities to the
// balance rows. Irreversible.
func (s *LivestockService) ResetAllSales(ctx context.Context) error {
	if err := s.repo.ResetAllSales(ctx); err != nil {
		return fmt.Errorf("s.repo.ResetAllSales -> %w", err)
	}

	return nil
}

func (s *LivestockService) GetAnimals(ctx context.Context) ([]domain.Animal, []domain.LivestockType, error) {
	animals, err := s.repo.GetAllAnimals(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("s.repo.GetAllAnimals -> %w", err)
	}

	summary, err := s.repo.GetAllTypes(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("s.repo.GetAllTypes -> %w", err)
	}

	return animals, summary, nil
}

func (s *LivestockService) RegisterAnimal(ctx context.Context, a domain.Animal) (domain.Animal, error) {
	created, err := s.repo.RegisterAnimal(ctx, a)
	if err != nil {
		return domain.Animal{}, fmt.Errorf("s.repo.RegisterAnimal -> %w", err)
	}

	return created, nil
}

func (s *LivestockService) UpdateAnimal(ctx context.Context, id uint, feedCost *decimal.Decimal, production *string) (domain.Animal, error) {
	updated, err := s.repo.UpdateAnimal(ctx, id, feedCost, production)
	if err != nil {
		if errors.Is(err, ErrAnimalNotFound) {
			return domain.Animal{}, ErrAnimalNotFound
		}
		return domain.Animal{}, fmt.Errorf("s.repo.UpdateAnimal -> %w", err)
	}

	return updated, nil
}

func (s *LivestockService) DeleteAnimal(ctx context.Context, id uint) error {
	return s.repo.DeleteAnimal(ctx, id)
}
