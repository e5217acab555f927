package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/farmstead/farmstead-api/internal/domain"
	"github.com/farmstead/farmstead-api/internal/repository/dao"
)

var (
	ErrEquipmentNotFound     = dao.ErrEquipmentNotFound
	ErrEquipmentNotRented    = dao.ErrEquipmentNotRented
	ErrEquipmentNotPurchased = dao.ErrEquipmentNotPurchased
)

type EquipmentDAO interface {
	GetAll(ctx context.Context) ([]dao.Equipment, error)
	GetAllTransactions(ctx context.Context) ([]dao.EquipmentTransaction, error)
	Create(ctx context.Context, e dao.Equipment, acquisitionAmount *decimal.Decimal) (dao.Equipment, error)
	AddRentalCost(ctx context.Context, equipmentID uint, amount decimal.Decimal, date time.Time, notes string) (dao.EquipmentTransaction, error)
	AddMaintenanceCost(ctx context.Context, equipmentID uint, amount decimal.Decimal) (dao.Equipment, error)
	Delete(ctx context.Context, id uint) error
}

type EquipmentRepository struct {
	dao EquipmentDAO
}

func NewEquipmentRepository(dao EquipmentDAO) *EquipmentRepository {
	return &EquipmentRepository{
		dao: dao,
	}
}

func (r *EquipmentRepository) daoToDomain(e dao.Equipment) domain.Equipment {
	return domain.Equipment{
		ID:                   e.ID,
		Name:                 e.Name,
		AcquisitionType:      e.AcquisitionType,
		AcquisitionDate:      e.AcquisitionDate,
		MaintenanceCost:      e.MaintenanceCost,
		Notes:                e.Notes,
		TotalTransactionCost: e.TotalTransactionCost,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func (r *EquipmentRepository) transactionDaoToDomain(t dao.EquipmentTransaction) domain.EquipmentTransaction {
	return domain.EquipmentTransaction{
		ID:              t.ID,
		EquipmentID:     t.EquipmentID,
		TransactionType: t.TransactionType,
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate,
		Notes:           t.Notes,
	}
}

func (r *EquipmentRepository) GetAll(ctx context.Context) ([]domain.Equipment, error) {
	daoEquipments, err := r.dao.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	equipments := make([]domain.Equipment, len(daoEquipments))
	for i, e := range daoEquipments {
		equipments[i] = r.daoToDomain(e)
	}
	return equipments, nil
}

func (r *EquipmentRepository) GetAllTransactions(ctx context.Context) ([]domain.EquipmentTransaction, error) {
	daoTransactions, err := r.dao.GetAllTransactions(ctx)
	if err != nil {
		return nil, err
	}

	transactions := make([]domain.EquipmentTransaction, len(daoTransactions))
	for i, t := range daoTransactions {
		transactions[i] = r.transactionDaoToDomain(t)
	}
	return transactions, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, e domain.Equipment, acquisitionAmount *decimal.Decimal) (domain.Equipment, error) {
	created, err := r.dao.Create(ctx, dao.Equipment{
		Name:            e.Name,
		AcquisitionType: e.AcquisitionType,
		AcquisitionDate: e.AcquisitionDate,
		Notes:           e.Notes,
	}, acquisitionAmount)
	if err != nil {
		return domain.Equipment{}, err
	}
	return r.daoToDomain(created), nil
}

func (r *EquipmentRepository) AddRentalCost(ctx context.Context, equipmentID uint, amount decimal.Decimal, date time.Time, notes string) (domain.EquipmentTransaction, error) {
	t, err := r.dao.AddRentalCost(ctx, equipmentID, amount, date, notes)
	if err != nil {
		return domain.EquipmentTransaction{}, err
	}
	return r.transactionDaoToDomain(t), nil
}

func (r *EquipmentRepository) AddMaintenanceCost(ctx context.Context, equipmentID uint, amount decimal.Decimal) (domain.Equipment, error) {
	e, err := r.dao.AddMaintenanceCost(ctx, equipmentID, amount)
	if err != nil {
		return domain.Equipment{}, err
	}
	return r.daoToDomain(e), nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}
