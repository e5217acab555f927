package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/farmstead/farmstead-api/internal/domain"
)

const monthLayout = "2006-01"

type DashboardLivestockReader interface {
	GetAllTypes(ctx context.Context) ([]domain.LivestockType, error)
	GetAllSales(ctx context.Context) ([]domain.LivestockSale, error)
	GetCostHistory(ctx context.Context) ([]domain.CostEntry, error)
}

type DashboardCropReader interface {
	GetAll(ctx context.Context) ([]domain.Crop, error)
	GetAllSales(ctx context.Context) ([]domain.CropSale, error)
	GetAllCosts(ctx context.Context) ([]domain.CropCost, error)
}

type DashboardEquipmentReader interface {
	GetAll(ctx context.Context) ([]domain.Equipment, error)
	GetAllTransactions(ctx context.Context) ([]domain.EquipmentTransaction, error)
}

type DashboardPayrollReader interface {
	GetAllPayments(ctx context.Context) ([]domain.SalaryPayment, error)
}

// DashboardService recomputes the financial dashboard from the ledger on
// every call. Nothing is cached, so the result always reflects the rows
// currently in the database.
type DashboardService struct {
	livestock DashboardLivestockReader
	crops     DashboardCropReader
	equipment DashboardEquipmentReader
	payroll   DashboardPayrollReader
}

func NewDashboardService(
	livestock DashboardLivestockReader,
	crops DashboardCropReader,
	equipment DashboardEquipmentReader,
	payroll DashboardPayrollReader,
) *DashboardService {
	return &DashboardService{
		livestock: livestock,
		crops:     crops,
		equipment: equipment,
		payroll:   payroll,
	}
}

func (s *DashboardService) ComputeDashboard(ctx context.Context) (domain.Dashboard, error) {
	types, err := s.livestock.GetAllTypes(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("s.livestock.GetAllTypes -> %w", err)
	}
	livestockSales, err := s.livestock.GetAllSales(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("s.livestock.GetAllSales -> %w", err)
	}
	costEntries, err := s.livestock.GetCostHistory(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("s.livestock.GetCostHistory -> %w", err)
	}
	crops, err := s.crops.GetAll(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("s.crops.GetAll -> %w", err)
	}
	cropSales, err := s.crops.GetAllSales(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("s.crops.GetAllSales -> %w", err)
	}
	cropCosts, err := s.crops.GetAllCosts(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("s.crops.GetAllCosts -> %w", err)
	}
	equipments, err := s.equipment.GetAll(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("s.equipment.GetAll -> %w", err)
	}
	transactions, err := s.equipment.GetAllTransactions(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("s.equipment.GetAllTransactions -> %w", err)
	}
	payments, err := s.payroll.GetAllPayments(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("s.payroll.GetAllPayments -> %w", err)
	}

	dashboard := domain.Dashboard{
		EarningsOverTime: map[string]domain.MonthlyEarnings{},
		ProfitOverTime:   map[string]decimal.Decimal{},
	}
	costsByMonth := map[string]decimal.Decimal{}

	for _, t := range types {
		dashboard.Summary.TotalAnimals += t.Quantity
		dashboard.CostDistribution.Animals = dashboard.CostDistribution.Animals.Add(t.TotalCostOfLiving)
	}
	for _, c := range crops {
		dashboard.Summary.TotalCrops += c.Quantity
		dashboard.CostDistribution.Crops = dashboard.CostDistribution.Crops.Add(c.TotalCostOfCare)
	}
	for _, e := range equipments {
		dashboard.CostDistribution.Equipment = dashboard.CostDistribution.Equipment.Add(e.MaintenanceCost)
	}
	for _, t := range transactions {
		dashboard.CostDistribution.Equipment = dashboard.CostDistribution.Equipment.Add(t.Amount)
		month := t.TransactionDate.Format(monthLayout)
		costsByMonth[month] = costsByMonth[month].Add(t.Amount)
	}
	for _, p := range payments {
		dashboard.CostDistribution.Labor = dashboard.CostDistribution.Labor.Add(p.Amount)
		month := p.PaymentDate.Format(monthLayout)
		costsByMonth[month] = costsByMonth[month].Add(p.Amount)
	}

	// Cost entries carry their own period label, which wins over the
	// recording timestamp so back-dated costs land in the right bucket.
	for _, e := range costEntries {
		costsByMonth[e.Month] = costsByMonth[e.Month].Add(e.Amount)
	}
	for _, c := range cropCosts {
		costsByMonth[c.Month] = costsByMonth[c.Month].Add(c.Amount)
	}

	for _, sale := range livestockSales {
		dashboard.Summary.TotalEarnings = dashboard.Summary.TotalEarnings.Add(sale.SalePrice)
		month := sale.SoldAt.Format(monthLayout)
		earnings := dashboard.EarningsOverTime[month]
		earnings.Animals = earnings.Animals.Add(sale.SalePrice)
		dashboard.EarningsOverTime[month] = earnings
	}
	for _, sale := range cropSales {
		dashboard.Summary.TotalEarnings = dashboard.Summary.TotalEarnings.Add(sale.SalePrice)
		month := sale.SoldAt.Format(monthLayout)
		earnings := dashboard.EarningsOverTime[month]
		earnings.Crops = earnings.Crops.Add(sale.SalePrice)
		dashboard.EarningsOverTime[month] = earnings
	}

	dashboard.Summary.TotalCosts = dashboard.CostDistribution.Animals.
		Add(dashboard.CostDistribution.Crops).
		Add(dashboard.CostDistribution.Equipment).
		Add(dashboard.CostDistribution.Labor)
	dashboard.Summary.TotalProfit = dashboard.Summary.TotalEarnings.Sub(dashboard.Summary.TotalCosts)

	// Profit is computed over the union of months seen on either side, a
	// month with only costs shows up as a negative profit.
	for month, earnings := range dashboard.EarningsOverTime {
		dashboard.ProfitOverTime[month] = earnings.Animals.Add(earnings.Crops).Sub(costsByMonth[month])
	}
	for month, cost := range costsByMonth {
		if _, ok := dashboard.ProfitOverTime[month]; !ok {
			dashboard.ProfitOverTime[month] = cost.Neg()
		}
	}

	return dashboard, nil
}
