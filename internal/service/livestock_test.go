package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmstead/farmstead-api/internal/domain"
)

type fakeLivestockRepo struct {
	LivestockRepository

	getAllTypesFn   func(ctx context.Context) ([]domain.LivestockType, error)
	getAllSalesFn   func(ctx context.Context) ([]domain.LivestockSale, error)
	addCostFn       func(ctx context.Context, typeName string, amount decimal.Decimal, month, notes string) (domain.CostEntry, error)
	sellFn          func(ctx context.Context, typeName string, quantity int, salePrice decimal.Decimal, notes string) (domain.LivestockSale, error)
	recordLossFn    func(ctx context.Context, typeName string, quantity int) error
	resetAllSalesFn func(ctx context.Context) error
}

func (f *fakeLivestockRepo) GetAllTypes(ctx context.Context) ([]domain.LivestockType, error) {
	return f.getAllTypesFn(ctx)
}

func (f *fakeLivestockRepo) GetAllSales(ctx context.Context) ([]domain.LivestockSale, error) {
	return f.getAllSalesFn(ctx)
}

func (f *fakeLivestockRepo) AddCost(ctx context.Context, typeName string, amount decimal.Decimal, month, notes string) (domain.CostEntry, error) {
	return f.addCostFn(ctx, typeName, amount, month, notes)
}

func (f *fakeLivestockRepo) Sell(ctx context.Context, typeName string, quantity int, salePrice decimal.Decimal, notes string) (domain.LivestockSale, error) {
	return f.sellFn(ctx, typeName, quantity, salePrice, notes)
}

func (f *fakeLivestockRepo) RecordLoss(ctx context.Context, typeName string, quantity int) error {
	return f.recordLossFn(ctx, typeName, quantity)
}

func (f *fakeLivestockRepo) ResetAllSales(ctx context.Context) error {
	return f.resetAllSalesFn(ctx)
}

func TestLivestockService_GetOverview(t *testing.T) {
	repo := &fakeLivestockRepo{
		getAllTypesFn: func(ctx context.Context) ([]domain.LivestockType, error) {
			return []domain.LivestockType{{Name: "Sheep", Quantity: 10}}, nil
		},
		getAllSalesFn: func(ctx context.Context) ([]domain.LivestockSale, error) {
			return []domain.LivestockSale{{TypeName: "Sheep", Quantity: 4}}, nil
		},
	}
	svc := NewLivestockService(repo)

	types, sales, err := svc.GetOverview(context.Background())

	require.NoError(t, err)
	require.Len(t, types, 1)
	require.Len(t, sales, 1)
	assert.Equal(t, "Sheep", types[0].Name)
}

func TestLivestockService_AddCost(t *testing.T) {
	t.Run("rejects negative amounts before touching the repository", func(t *testing.T) {
		called := false
		repo := &fakeLivestockRepo{
			addCostFn: func(ctx context.Context, typeName string, amount decimal.Decimal, month, notes string) (domain.CostEntry, error) {
				called = true
				return domain.CostEntry{}, nil
			},
		}
		svc := NewLivestockService(repo)

		_, err := svc.AddCost(context.Background(), "Sheep", decimal.NewFromInt(-5), "2025-03", "")

		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.False(t, called)
	})

	t.Run("passes not found through unwrapped", func(t *testing.T) {
		repo := &fakeLivestockRepo{
			addCostFn: func(ctx context.Context, typeName string, amount decimal.Decimal, month, notes string) (domain.CostEntry, error) {
				return domain.CostEntry{}, ErrLivestockTypeNotFound
			},
		}
		svc := NewLivestockService(repo)

		_, err := svc.AddCost(context.Background(), "Goats", decimal.NewFromInt(5), "2025-03", "")

		assert.ErrorIs(t, err, ErrLivestockTypeNotFound)
	})

	t.Run("returns the created entry", func(t *testing.T) {
		repo := &fakeLivestockRepo{
			addCostFn: func(ctx context.Context, typeName string, amount decimal.Decimal, month, notes string) (domain.CostEntry, error) {
				return domain.CostEntry{TypeName: typeName, Amount: amount, Month: month}, nil
			},
		}
		svc := NewLivestockService(repo)

		entry, err := svc.AddCost(context.Background(), "Sheep", decimal.NewFromInt(100), "2025-03", "feed")

		require.NoError(t, err)
		assert.Equal(t, "Sheep", entry.TypeName)
		assert.Equal(t, "2025-03", entry.Month)
	})
}

func TestLivestockService_Sell(t *testing.T) {
	t.Run("passes insufficient stock through for the handler to map", func(t *testing.T) {
		repo := &fakeLivestockRepo{
			sellFn: func(ctx context.Context, typeName string, quantity int, salePrice decimal.Decimal, notes string) (domain.LivestockSale, error) {
				return domain.LivestockSale{}, ErrInsufficientStock
			},
		}
		svc := NewLivestockService(repo)

		_, err := svc.Sell(context.Background(), "Sheep", 20, decimal.NewFromInt(500), "")

		assert.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("wraps storage failures", func(t *testing.T) {
		boom := errors.New("connection refused")
		repo := &fakeLivestockRepo{
			sellFn: func(ctx context.Context, typeName string, quantity int, salePrice decimal.Decimal, notes string) (domain.LivestockSale, error) {
				return domain.LivestockSale{}, boom
			},
		}
		svc := NewLivestockService(repo)

		_, err := svc.Sell(context.Background(), "Sheep", 4, decimal.NewFromInt(500), "")

		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("returns the frozen sale record", func(t *testing.T) {
		repo := &fakeLivestockRepo{
			sellFn: func(ctx context.Context, typeName string, quantity int, salePrice decimal.Decimal, notes string) (domain.LivestockSale, error) {
				return domain.LivestockSale{
					TypeName:    typeName,
					Quantity:    quantity,
					SalePrice:   salePrice,
					CostPerUnit: decimal.NewFromInt(10),
				}, nil
			},
		}
		svc := NewLivestockService(repo)

		sale, err := svc.Sell(context.Background(), "Sheep", 4, decimal.NewFromInt(500), "")

		require.NoError(t, err)
		assert.Equal(t, 4, sale.Quantity)
		assert.True(t, sale.CostPerUnit.Equal(decimal.NewFromInt(10)))
	})
}

func TestLivestockService_RecordLoss(t *testing.T) {
	repo := &fakeLivestockRepo{
		recordLossFn: func(ctx context.Context, typeName string, quantity int) error {
			return ErrInsufficientStock
		},
	}
	svc := NewLivestockService(repo)

	err := svc.RecordLoss(context.Background(), "Sheep", 50)

	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestLivestockService_ResetAllSales(t *testing.T) {
	boom := errors.New("deadlock detected")
	repo := &fakeLivestockRepo{
		resetAllSalesFn: func(ctx context.Context) error {
			return boom
		},
	}
	svc := NewLivestockService(repo)

	err := svc.ResetAllSales(context.Background())

	assert.ErrorIs(t, err, boom)
}
