package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Crop is the balance row for one crop plot. As with livestock,
// InitialQuantity is the cumulative quantity ever planted and is the
// denominator for cost-per-unit allocation.
type Crop struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	Quantity        int             `json:"quantity"`
	InitialQuantity int             `json:"initial_quantity"`
	GrowthStage     string          `json:"growth_stage,omitempty"`
	TotalCostOfCare decimal.Decimal `json:"total_cost_of_care"`
	TotalSales      decimal.Decimal `json:"total_sales"` // derived from sale records
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (c *Crop) CostPerUnit() decimal.Decimal {
	if c.InitialQuantity == 0 {
		return decimal.Zero
	}
	return c.TotalCostOfCare.Div(decimal.NewFromInt(int64(c.InitialQuantity)))
}

// CropSale is an append-only sale record with the cost per unit frozen
// at sale time.
type CropSale struct {
	ID          uint            `json:"id"`
	CropID      uint            `json:"crop_id"`
	Quantity    int             `json:"quantity"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	Notes       string          `json:"notes,omitempty"`
	SoldAt      time.Time       `json:"sold_at"`
}

// CropCost is an append-only cost-of-care entry.
type CropCost struct {
	ID         uint            `json:"id"`
	CropID     uint            `json:"crop_id"`
	CostType   string          `json:"cost_type"`
	Amount     decimal.Decimal `json:"amount"`
	Month      string          `json:"month"`
	Notes      string          `json:"notes,omitempty"`
	RecordedAt time.Time       `json:"recorded_at"`
}
