package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LivestockType is the balance row for one category of animals.
// Quantity is the current head count; InitialQuantity is the cumulative
// count ever acquired and serves as the cost-allocation denominator, so
// cost per unit stays stable as stock depletes.
type LivestockType struct {
	ID                uint            `json:"id"`
	Name              string          `json:"name"`
	Quantity          int             `json:"quantity"`
	InitialQuantity   int             `json:"initial_quantity"`
	TotalPurchaseCost decimal.Decimal `json:"total_purchase_cost"`
	TotalCostOfLiving decimal.Decimal `json:"total_cost_of_living"`
	TotalSales        decimal.Decimal `json:"total_sales"` // derived from sale records
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TotalCost is the accumulated cost base used for per-unit allocation.
func (t *LivestockType) TotalCost() decimal.Decimal {
	return t.TotalPurchaseCost.Add(t.TotalCostOfLiving)
}

// CostPerUnit spreads the accumulated cost over the cumulative acquisitions.
// A zero baseline yields zero rather than an error.
func (t *LivestockType) CostPerUnit() decimal.Decimal {
	if t.InitialQuantity == 0 {
		return decimal.Zero
	}
	return t.TotalCost().Div(decimal.NewFromInt(int64(t.InitialQuantity)))
}

// LivestockSale is an append-only sale record. CostPerUnit is frozen at
// the moment of the sale and never recomputed.
type LivestockSale struct {
	ID          uint            `json:"id"`
	TypeName    string          `json:"type"`
	Quantity    int             `json:"quantity"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	Notes       string          `json:"notes,omitempty"`
	SoldAt      time.Time       `json:"sold_at"`
}

// CostEntry is an append-only cost-of-living injection. Month is the
// caller-chosen YYYY-MM period label, which may legitimately differ from
// the month of RecordedAt when a cost is back-dated.
type CostEntry struct {
	ID         uint            `json:"id"`
	TypeName   string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Month      string          `json:"month"`
	Notes      string          `json:"notes,omitempty"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// Animal is an individual animal record. Registering one bumps the
// balance row of its type in the same transaction.
type Animal struct {
	ID            uint            `json:"id"`
	TypeName      string          `json:"type"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	FeedCost      decimal.Decimal `json:"feed_cost"`
	Production    string          `json:"production,omitempty"`
	ParentID      *uint           `json:"parent_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
