package domain

import "github.com/shopspring/decimal"

// Dashboard is the full read-side aggregation: overall totals, cost
// distribution by category, and month-bucketed (YYYY-MM) earning/profit
// series. It is recomputed from the ledger on every request.
type Dashboard struct {
	Summary          DashboardSummary           `json:"summary"`
	CostDistribution CostDistribution           `json:"costDistribution"`
	EarningsOverTime map[string]MonthlyEarnings `json:"earningsOverTime"`
	ProfitOverTime   map[string]decimal.Decimal `json:"profitOverTime"`
}

type DashboardSummary struct {
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
	TotalCosts    decimal.Decimal `json:"totalCosts"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
	TotalAnimals  int             `json:"totalAnimals"`
	TotalCrops    int             `json:"totalCrops"`
}

type CostDistribution struct {
	Animals   decimal.Decimal `json:"Animals"`
	Crops     decimal.Decimal `json:"Crops"`
	Equipment decimal.Decimal `json:"Equipment"`
	Labor     decimal.Decimal `json:"Labor"`
}

type MonthlyEarnings struct {
	Animals decimal.Decimal `json:"animals"`
	Crops   decimal.Decimal `json:"crops"`
}
