package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/farmstead/farmstead-api/internal/domain"
	"github.com/farmstead/farmstead-api/internal/repository"
)

var (
	ErrEquipmentNotFound     = repository.ErrEquipmentNotFound
	ErrEquipmentNotRented    = repository.ErrEquipmentNotRented
	ErrEquipmentNotPurchased = repository.ErrEquipmentNotPurchased
)

type EquipmentRepository interface {
	GetAll(ctx context.Context) ([]domain.Equipment, error)
	GetAllTransactions(ctx context.Context) ([]domain.EquipmentTransaction, error)
	Create(ctx context.Context, e domain.Equipment, acquisitionAmount *decimal.Decimal) (domain.Equipment, error)
	AddRentalCost(ctx context.Context, equipmentID uint, amount decimal.Decimal, date time.Time, notes string) (domain.EquipmentTransaction, error)
	AddMaintenanceCost(ctx context.Context, equipmentID uint, amount decimal.Decimal) (domain.Equipment, error)
	Delete(ctx context.Context, id uint) error
}

type EquipmentService struct {
	repo EquipmentRepository
}

func NewEquipmentService(repo EquipmentRepository) *EquipmentService {
	return &EquipmentService{
		repo: repo,
	}
}

func (s *EquipmentService) GetOverview(ctx context.Context) ([]domain.Equipment, []domain.EquipmentTransaction, error) {
	equipments, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("s.repo.GetAll -> %w", err)
	}

	transactions, err := s.repo.GetAllTransactions(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("s.repo.GetAllTransactions -> %w", err)
	}

	return equipments, transactions, nil
}

func (s *EquipmentService) Create(ctx context.Context, e domain.Equipment, acquisitionAmount *decimal.Decimal) (domain.Equipment, error) {
	created, err := s.repo.Create(ctx, e, acquisitionAmount)
	if err != nil {
		return domain.Equipment{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EquipmentService) AddRentalCost(ctx context.Context, equipmentID uint, amount decimal.Decimal, date time.Time, notes string) (domain.EquipmentTransaction, error) {
	if amount.IsNegative() {
		return domain.EquipmentTransaction{}, ErrInvalidAmount
	}

	t, err := s.repo.AddRentalCost(ctx, equipmentID, amount, date, notes)
	if err != nil {
		if errors.Is(err, ErrEquipmentNotFound) || errors.Is(err, ErrEquipmentNotRented) {
			return domain.EquipmentTransaction{}, err
		}
		return domain.EquipmentTransaction{}, fmt.Errorf("s.repo.AddRentalCost -> %w", err)
	}

	return t, nil
}

func (s *EquipmentService) AddMaintenanceCost(ctx context.Context, equipmentID uint, amount decimal.Decimal) (domain.Equipment, error) {
	if amount.IsNegative() {
		return domain.Equipment{}, ErrInvalidAmount
	}

	e, err := s.repo.AddMaintenanceCost(ctx, equipmentID, amount)
	if err != nil {
		if errors.Is(err, ErrEquipmentNotFound) || errors.Is(err, ErrEquipmentNotPurchased) {
			return domain.Equipment{}, err
		}
		return domain.Equipment{}, fmt.Errorf("s.repo.AddMaintenanceCost -> %w", err)
	}

	return e, nil
}

func (s *EquipmentService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
