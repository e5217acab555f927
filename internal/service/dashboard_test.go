package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmstead/farmstead-api/internal/domain"
)

type fakeDashboardData struct {
	types        []domain.LivestockType
	sales        []domain.LivestockSale
	costs        []domain.CostEntry
	crops        []domain.Crop
	cropSales    []domain.CropSale
	cropCosts    []domain.CropCost
	equipments   []domain.Equipment
	transactions []domain.EquipmentTransaction
	payments     []domain.SalaryPayment
}

func (f *fakeDashboardData) GetAllTypes(ctx context.Context) ([]domain.LivestockType, error) {
	return f.types, nil
}

func (f *fakeDashboardData) GetAllSales(ctx context.Context) ([]domain.LivestockSale, error) {
	return f.sales, nil
}

func (f *fakeDashboardData) GetCostHistory(ctx context.Context) ([]domain.CostEntry, error) {
	return f.costs, nil
}

type fakeCropData struct{ *fakeDashboardData }

func (f fakeCropData) GetAll(ctx context.Context) ([]domain.Crop, error) {
	return f.crops, nil
}

func (f fakeCropData) GetAllSales(ctx context.Context) ([]domain.CropSale, error) {
	return f.cropSales, nil
}

func (f fakeCropData) GetAllCosts(ctx context.Context) ([]domain.CropCost, error) {
	return f.cropCosts, nil
}

type fakeEquipmentData struct{ *fakeDashboardData }

func (f fakeEquipmentData) GetAll(ctx context.Context) ([]domain.Equipment, error) {
	return f.equipments, nil
}

func (f fakeEquipmentData) GetAllTransactions(ctx context.Context) ([]domain.EquipmentTransaction, error) {
	return f.transactions, nil
}

type fakePayrollData struct{ *fakeDashboardData }

func (f fakePayrollData) GetAllPayments(ctx context.Context) ([]domain.SalaryPayment, error) {
	return f.payments, nil
}

func newDashboardService(data *fakeDashboardData) *DashboardService {
	return NewDashboardService(data, fakeCropData{data}, fakeEquipmentData{data}, fakePayrollData{data})
}

func TestDashboardService_ComputeDashboard(t *testing.T) {
	march := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("buckets earnings and costs into months", func(t *testing.T) {
		data := &fakeDashboardData{
			types: []domain.LivestockType{
				{Name: "Sheep", Quantity: 6, TotalCostOfLiving: decimal.NewFromInt(100)},
			},
			sales: []domain.LivestockSale{
				{TypeName: "Sheep", Quantity: 4, SalePrice: decimal.NewFromInt(500), SoldAt: march},
			},
			costs: []domain.CostEntry{
				{TypeName: "Sheep", Amount: decimal.NewFromInt(100), Month: "2025-03"},
			},
		}
		svc := newDashboardService(data)

		dashboard, err := svc.ComputeDashboard(context.Background())

		require.NoError(t, err)
		assert.True(t, dashboard.Summary.TotalEarnings.Equal(decimal.NewFromInt(500)))
		assert.True(t, dashboard.Summary.TotalCosts.Equal(decimal.NewFromInt(100)))
		assert.True(t, dashboard.Summary.TotalProfit.Equal(decimal.NewFromInt(400)))
		assert.Equal(t, 6, dashboard.Summary.TotalAnimals)

		earnings, ok := dashboard.EarningsOverTime["2025-03"]
		require.True(t, ok)
		assert.True(t, earnings.Animals.Equal(decimal.NewFromInt(500)))

		profit, ok := dashboard.ProfitOverTime["2025-03"]
		require.True(t, ok)
		assert.True(t, profit.Equal(decimal.NewFromInt(400)))
	})

	t.Run("uses the stored month label for cost entries", func(t *testing.T) {
		data := &fakeDashboardData{
			costs: []domain.CostEntry{
				// Recorded in March, labeled for January.
				{TypeName: "Sheep", Amount: decimal.NewFromInt(50), Month: "2025-01", RecordedAt: march},
			},
		}
		svc := newDashboardService(data)

		dashboard, err := svc.ComputeDashboard(context.Background())

		require.NoError(t, err)
		profit, ok := dashboard.ProfitOverTime["2025-01"]
		require.True(t, ok)
		assert.True(t, profit.Equal(decimal.NewFromInt(-50)))
		_, leaked := dashboard.ProfitOverTime["2025-03"]
		assert.False(t, leaked)
	})

	t.Run("splits the cost distribution by category", func(t *testing.T) {
		data := &fakeDashboardData{
			types:      []domain.LivestockType{{TotalCostOfLiving: decimal.NewFromInt(100)}},
			crops:      []domain.Crop{{Quantity: 20, TotalCostOfCare: decimal.NewFromInt(30)}},
			equipments: []domain.Equipment{{MaintenanceCost: decimal.NewFromInt(40)}},
			transactions: []domain.EquipmentTransaction{
				{Amount: decimal.NewFromInt(60), TransactionDate: march},
			},
			payments: []domain.SalaryPayment{
				{Amount: decimal.NewFromInt(200), PaymentDate: march},
			},
		}
		svc := newDashboardService(data)

		dashboard, err := svc.ComputeDashboard(context.Background())

		require.NoError(t, err)
		assert.True(t, dashboard.CostDistribution.Animals.Equal(decimal.NewFromInt(100)))
		assert.True(t, dashboard.CostDistribution.Crops.Equal(decimal.NewFromInt(30)))
		assert.True(t, dashboard.CostDistribution.Equipment.Equal(decimal.NewFromInt(100)))
		assert.True(t, dashboard.CostDistribution.Labor.Equal(decimal.NewFromInt(200)))
		assert.True(t, dashboard.Summary.TotalCosts.Equal(decimal.NewFromInt(430)))
		assert.Equal(t, 20, dashboard.Summary.TotalCrops)
	})

	t.Run("is idempotent for unchanged data", func(t *testing.T) {
		data := &fakeDashboardData{
			sales: []domain.LivestockSale{
				{SalePrice: decimal.NewFromInt(500), SoldAt: march},
			},
			cropSales: []domain.CropSale{
				{SalePrice: decimal.NewFromInt(120), SoldAt: march},
			},
		}
		svc := newDashboardService(data)

		first, err := svc.ComputeDashboard(context.Background())
		require.NoError(t, err)
		second, err := svc.ComputeDashboard(context.Background())
		require.NoError(t, err)

		assert.True(t, first.Summary.TotalEarnings.Equal(second.Summary.TotalEarnings))
		assert.True(t, first.EarningsOverTime["2025-03"].Crops.Equal(second.EarningsOverTime["2025-03"].Crops))
	})
}
