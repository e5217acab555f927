package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/farmstead/farmstead-api/internal/domain"
	"github.com/farmstead/farmstead-api/internal/repository/dao"
)

var (
	ErrLivestockTypeNotFound = dao.ErrLivestockTypeNotFound
	ErrAnimalNotFound        = dao.ErrAnimalNotFound
	ErrInsufficientStock     = dao.ErrInsufficientStock
)

type LivestockDAO interface {
	GetAllTypes(ctx context.Context) ([]dao.LivestockType, error)
	GetTypeByName(ctx context.Context, name string) (dao.LivestockType, error)
	GetAllSales(ctx context.Context) ([]dao.LivestockSale, error)
	GetCostHistory(ctx context.Context) ([]dao.CostEntry, error)
	UpsertType(ctx context.Context, t dao.LivestockType) (dao.LivestockType, error)
	UpdateTypeCosts(ctx context.Context, name string, purchaseCost, costOfLiving *decimal.Decimal) (dao.LivestockType, error)
	DeleteType(ctx context.Context, name string) error
	AddCost(ctx context.Context, typeName string, amount decimal.Decimal, month, notes string) (dao.CostEntry, error)
	ResetCost(ctx context.Context, typeName string) error
	Sell(ctx context.Context, typeName string, quantity int, salePrice decimal.Decimal, notes string) (dao.LivestockSale, error)
	RecordLoss(ctx context.Context, typeName string, quantity int) error
	ResetAllSales(ctx context.Context) error
	GetAllAnimals(ctx context.Context) ([]dao.Animal, error)
	RegisterAnimal(ctx context.Context, typeName string, a dao.Animal) (dao.Animal, error)
	UpdateAnimal(ctx context.Context, id uint, feedCost *decimal.Decimal, production *string) (dao.Animal, error)
	DeleteAnimal(ctx context.Context, id uint) error
}

type LivestockRepository struct {
	dao LivestockDAO
}

func NewLivestockRepository(dao LivestockDAO) *LivestockRepository {
	return &LivestockRepository{
		dao: dao,
	}
}

func (r *LivestockRepository) typeDaoToDomain(t dao.LivestockType) domain.LivestockType {
	return domain.LivestockType{
		ID:                t.ID,
		Name:              t.Name,
		Quantity:          t.Quantity,
		InitialQuantity:   t.InitialQuantity,
		TotalPurchaseCost: t.TotalPurchaseCost,
		TotalCostOfLiving: t.TotalCostOfLiving,
		TotalSales:        t.TotalSales,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func (r *LivestockRepository) saleDaoToDomain(s dao.LivestockSale) domain.LivestockSale {
	return domain.LivestockSale{
		ID:          s.ID,
		TypeName:    s.Type.Name,
		Quantity:    s.Quantity,
		SalePrice:   s.SalePrice,
		CostPerUnit: s.CostPerUnit,
		Notes:       s.Notes,
		SoldAt:      s.SoldAt,
	}
}

func (r *LivestockRepository) costDaoToDomain(e dao.CostEntry) domain.CostEntry {
	return domain.CostEntry{
		ID:         e.ID,
		TypeName:   e.Type.Name,
		Amount:     e.Amount,
		Month:      e.Month,
		Notes:      e.Notes,
		RecordedAt: e.RecordedAt,
	}
}

func (r *LivestockRepository) animalDaoToDomain(a dao.Animal) domain.Animal {
	return domain.Animal{
		ID:            a.ID,
		TypeName:      a.Type.Name,
		PurchasePrice: a.PurchasePrice,
		FeedCost:      a.FeedCost,
		Production:    a.Production,
		ParentID:      a.ParentID,
		CreatedAt:     a.CreatedAt,
	}
}

func (r *LivestockRepository) GetAllTypes(ctx context.Context) ([]domain.LivestockType, error) {
	daoTypes, err := r.dao.GetAllTypes(ctx)
	if err != nil {
		return nil, err
	}

	types := make([]domain.LivestockType, len(daoTypes))
	for i, t := range daoTypes {
		types[i] = r.typeDaoToDomain(t)
	}
	return types, nil
}

func (r *LivestockRepository) GetTypeByName(ctx context.Context, name string) (domain.LivestockType, error) {
	t, err := r.dao.GetTypeByName(ctx, name)
	if err != nil {
		return domain.LivestockType{}, err
	}
	return r.typeDaoToDomain(t), nil
}

func (r *LivestockRepository) GetAllSales(ctx context.Context) ([]domain.LivestockSale, error) {
	daoSales, err := r.dao.GetAllSales(ctx)
	if err != nil {
		return nil, err
	}

	sales := make([]domain.LivestockSale, len(daoSales))
	for i, s := range daoSales {
		sales[i] = r.saleDaoToDomain(s)
	}
	return sales, nil
}

func (r *LivestockRepository) GetCostHistory(ctx context.Context) ([]domain.CostEntry, error) {
	daoEntries, err := r.dao.GetCostHistory(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.CostEntry, len(daoEntries))
	for i, e := range daoEntries {
		entries[i] = r.costDaoToDomain(e)
	}
	return entries, nil
}

func (r *LivestockRepository) UpsertType(ctx context.Context, t domain.LivestockType) (domain.LivestockType, error) {
	created, err := r.dao.UpsertType(ctx, dao.LivestockType{
		Name:              t.Name,
		Quantity:          t.Quantity,
		TotalPurchaseCost: t.TotalPurchaseCost,
		TotalCostOfLiving: t.TotalCostOfLiving,
	})
	if err != nil {
		return domain.LivestockType{}, err
	}
	return r.typeDaoToDomain(created), nil
}

func (r *LivestockRepository) UpdateTypeCosts(ctx context.Context, name string, purchaseCost, costOfLiving *decimal.Decimal) (domain.LivestockType, error) {
	updated, err := r.dao.UpdateTypeCosts(ctx, name, purchaseCost, costOfLiving)
	if err != nil {
		return domain.LivestockType{}, err
	}
	return r.typeDaoToDomain(updated), nil
}

func (r *LivestockRepository) DeleteType(ctx context.Context, name string) error {
	return r.dao.DeleteType(ctx, name)
}

func (r *LivestockRepository) AddCost(ctx context.Context, typeName string, amount decimal.Decimal, month, notes string) (domain.CostEntry, error) {
	entry, err := r.dao.AddCost(ctx, typeName, amount, month, notes)
	if err != nil {
		return domain.CostEntry{}, err
	}
	return r.costDaoToDomain(entry), nil
}

func (r *LivestockRepository) ResetCost(ctx context.Context, typeName string) error {
	return r.dao.ResetCost(ctx, typeName)
}

func (r *LivestockRepository) Sell(ctx context.Context, typeName string, quantity int, salePrice decimal.Decimal, notes string) (domain.LivestockSale, error) {
	sale, err := r.dao.Sell(ctx, typeName, quantity, salePrice, notes)
	if err != nil {
		return domain.LivestockSale{}, err
	}
	return r.saleDaoToDomain(sale), nil
}

func (r *LivestockRepository) RecordLoss(ctx context.Context, typeName string, quantity int) error {
	return r.dao.RecordLoss(ctx, typeName, quantity)
}

func (r *LivestockRepository) ResetAllSales(ctx context.Context) error {
	return r.dao.ResetAllSales(ctx)
}

func (r *LivestockRepository) GetAllAnimals(ctx context.Context) ([]domain.Animal, error) {
	daoAnimals, err := r.dao.GetAllAnimals(ctx)
	if err != nil {
		return nil, err
	}

	animals := make([]domain.Animal, len(daoAnimals))
	for i, a := range daoAnimals {
		animals[i] = r.animalDaoToDomain(a)
	}
	return animals, nil
}

func (r *LivestockRepository) RegisterAnimal(ctx context.Context, a domain.Animal) (domain.Animal, error) {
	created, err := r.dao.RegisterAnimal(ctx, a.TypeName, dao.Animal{
		PurchasePrice: a.PurchasePrice,
		FeedCost:      a.FeedCost,
		Production:    a.Production,
		ParentID:      a.ParentID,
	})
	if err != nil {
		return domain.Animal{}, err
	}
	return r.animalDaoToDomain(created), nil
}

func (r *LivestockRepository) UpdateAnimal(ctx context.Context, id uint, feedCost *decimal.Decimal, production *string) (domain.Animal, error) {
	updated, err := r.dao.UpdateAnimal(ctx, id, feedCost, production)
	if err != nil {
		return domain.Animal{}, err
	}
	return r.animalDaoToDomain(updated), nil
}

func (r *LivestockRepository) DeleteAnimal(ctx context.Context, id uint) error {
	return r.dao.DeleteAnimal(ctx, id)
}
