package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/farmstead/farmstead-api/internal/domain"
	"github.com/farmstead/farmstead-api/internal/repository"
)

var ErrCropNotFound = repository.ErrCropNotFound

type CropRepository interface {
	GetAll(ctx context.Context) ([]domain.Crop, error)
	GetByID(ctx context.Context, id uint) (domain.Crop, error)
	Create(ctx context.Context, c domain.Crop) (domain.Crop, error)
	Update(ctx context.Context, id uint, addQuantity *int, growthStage *string) (domain.Crop, error)
	Delete(ctx context.Context, id uint) error
	GetAllSales(ctx context.Context) ([]domain.CropSale, error)
	GetAllCosts(ctx context.Context) ([]domain.CropCost, error)
	AddCost(ctx context.Context, cropID uint, costType string, amount decimal.Decimal, month, notes string) (domain.CropCost, error)
	Sell(ctx context.Context, cropID uint, quantity int, salePrice decimal.Decimal, notes string) (domain.CropSale, error)
	ResetAllSales(ctx context.Context) error
}

type CropService struct {
	repo CropRepository
}

func NewCropService(repo CropRepository) *CropService {
	return &CropService{
		repo: repo,
	}
}

func (s *CropService) GetOverview(ctx context.Context) ([]domain.Crop, []domain.CropSale, error) {
	crops, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("s.repo.GetAll -> %w", err)
	}

	sales, err := s.repo.GetAllSales(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("s.repo.GetAllSales -> %w", err)
	}

	return crops, sales, nil
}

func (s *CropService) Create(ctx context.Context, c domain.Crop) (domain.Crop, error) {
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return domain.Crop{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CropService) Update(ctx context.Context, id uint, addQuantity *int, growthStage *string) (domain.Crop, error) {
	updated, err := s.repo.Update(ctx, id, addQuantity, growthStage)
	if err != nil {
		if errors.Is(err, ErrCropNotFound) {
			return domain.Crop{}, ErrCropNotFound
		}
		return domain.Crop{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *CropService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *CropService) AddCost(ctx context.Context, cropID uint, costType string, amount decimal.Decimal, month, notes string) (domain.CropCost, error) {
	if amount.IsNegative() {
		return domain.CropCost{}, ErrInvalidAmount
	}

	cost, err := s.repo.AddCost(ctx, cropID, costType, amount, month, notes)
	if err != nil {
		if errors.Is(err, ErrCropNotFound) {
			return domain.CropCost{}, ErrCropNotFound
		}
		return domain.CropCost{}, fmt.Errorf("s.repo.AddCost -> %w", err)
	}

	return cost, nil
}

func (s *CropService) Sell(ctx context.Context, cropID uint, quantity int, salePrice decimal.Decimal, notes string) (domain.CropSale, error) {
	sale, err := s.repo.Sell(ctx, cropID, quantity, salePrice, notes)
	if err != nil {
		if errors.Is(err, ErrCropNotFound) || errors.Is(err, ErrInsufficientStock) {
			return domain.CropSale{}, err
		}
		return domain.CropSale{}, fmt.Errorf("s.repo.Sell -> %w", err)
	}

	return sale, nil
}

// ResetAllSales wipes the crop sale history and restores sold quantities.
// Irreversible.
func (s *CropService) ResetAllSales(ctx context.Context) error {
	if err := s.repo.ResetAllSales(ctx); err != nil {
		return fmt.Errorf("s.repo.ResetAllSales -> %w", err)
	}

	return nil
}
