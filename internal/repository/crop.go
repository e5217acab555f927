package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/farmstead/farmstead-api/internal/domain"
	"github.com/farmstead/farmstead-api/internal/repository/dao"
)

var ErrCropNotFound = dao.ErrCropNotFound

type CropDAO interface {
	GetAll(ctx context.Context) ([]dao.Crop, error)
	GetByID(ctx context.Context, id uint) (dao.Crop, error)
	Create(ctx context.Context, c dao.Crop) (dao.Crop, error)
	Update(ctx context.Context, id uint, addQuantity *int, growthStage *string) (dao.Crop, error)
	Delete(ctx context.Context, id uint) error
	GetAllSales(ctx context.Context) ([]dao.CropSale, error)
	GetAllCosts(ctx context.Context) ([]dao.CropCost, error)
	AddCost(ctx context.Context, cropID uint, costType string, amount decimal.Decimal, month, notes string) (dao.CropCost, error)
	Sell(ctx context.Context, cropID uint, quantity int, salePrice decimal.Decimal, notes string) (dao.CropSale, error)
	ResetAllSales(ctx context.Context) error
}

type CropRepository struct {
	dao CropDAO
}

func NewCropRepository(dao CropDAO) *CropRepository {
	return &CropRepository{
		dao: dao,
	}
}

func (r *CropRepository) daoToDomain(c dao.Crop) domain.Crop {
	return domain.Crop{
		ID:              c.ID,
		Name:            c.Name,
		Quantity:        c.Quantity,
		InitialQuantity: c.InitialQuantity,
		GrowthStage:     c.GrowthStage,
		TotalCostOfCare: c.TotalCostOfCare,
		TotalSales:      c.TotalSales,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (r *CropRepository) saleDaoToDomain(s dao.CropSale) domain.CropSale {
	return domain.CropSale{
		ID:          s.ID,
		CropID:      s.CropID,
		Quantity:    s.Quantity,
		SalePrice:   s.SalePrice,
		CostPerUnit: s.CostPerUnit,
		Notes:       s.Notes,
		SoldAt:      s.SoldAt,
	}
}

func (r *CropRepository) costDaoToDomain(c dao.CropCost) domain.CropCost {
	return domain.CropCost{
		ID:         c.ID,
		CropID:     c.CropID,
		CostType:   c.CostType,
		Amount:     c.Amount,
		Month:      c.Month,
		Notes:      c.Notes,
		RecordedAt: c.RecordedAt,
	}
}

func (r *CropRepository) GetAll(ctx context.Context) ([]domain.Crop, error) {
	daoCrops, err := r.dao.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	crops := make([]domain.Crop, len(daoCrops))
	for i, c := range daoCrops {
		crops[i] = r.daoToDomain(c)
	}
	return crops, nil
}

func (r *CropRepository) GetByID(ctx context.Context, id uint) (domain.Crop, error) {
	c, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Crop{}, err
	}
	return r.daoToDomain(c), nil
}

func (r *CropRepository) Create(ctx context.Context, c domain.Crop) (domain.Crop, error) {
	created, err := r.dao.Create(ctx, dao.Crop{
		Name:            c.Name,
		Quantity:        c.Quantity,
		GrowthStage:     c.GrowthStage,
		TotalCostOfCare: c.TotalCostOfCare,
	})
	if err != nil {
		return domain.Crop{}, err
	}
	return r.daoToDomain(created), nil
}

func (r *CropRepository) Update(ctx context.Context, id uint, addQuantity *int, growthStage *string) (domain.Crop, error) {
	updated, err := r.dao.Update(ctx, id, addQuantity, growthStage)
	if err != nil {
		return domain.Crop{}, err
	}
	return r.daoToDomain(updated), nil
}

func (r *CropRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func (r *CropRepository) GetAllSales(ctx context.Context) ([]domain.CropSale, error) {
	daoSales, err := r.dao.GetAllSales(ctx)
	if err != nil {
		return nil, err
	}

	sales := make([]domain.CropSale, len(daoSales))
	for i, s := range daoSales {
		sales[i] = r.saleDaoToDomain(s)
	}
	return sales, nil
}

func (r *CropRepository) GetAllCosts(ctx context.Context) ([]domain.CropCost, error) {
	daoCosts, err := r.dao.GetAllCosts(ctx)
	if err != nil {
		return nil, err
	}

	costs := make([]domain.CropCost, len(daoCosts))
	for i, c := range daoCosts {
		costs[i] = r.costDaoToDomain(c)
	}
	return costs, nil
}

func (r *CropRepository) AddCost(ctx context.Context, cropID uint, costType string, amount decimal.Decimal, month, notes string) (domain.CropCost, error) {
	cost, err := r.dao.AddCost(ctx, cropID, costType, amount, month, notes)
	if err != nil {
		return domain.CropCost{}, err
	}
	return r.costDaoToDomain(cost), nil
}

func (r *CropRepository) Sell(ctx context.Context, cropID uint, quantity int, salePrice decimal.Decimal, notes string) (domain.CropSale, error) {
	sale, err := r.dao.Sell(ctx, cropID, quantity, salePrice, notes)
	if err != nil {
		return domain.CropSale{}, err
	}
	return r.saleDaoToDomain(sale), nil
}

func (r *CropRepository) ResetAllSales(ctx context.Context) error {
	return r.dao.ResetAllSales(ctx)
}
