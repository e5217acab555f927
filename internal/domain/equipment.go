package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AcquisitionPurchased = "Purchased"
	AcquisitionRented    = "Rented"
)

type Equipment struct {
	ID                   uint            `json:"id"`
	Name                 string          `json:"name"`
	AcquisitionType      string          `json:"acquisition_type"` // "Purchased" or "Rented"
	AcquisitionDate      time.Time       `json:"acquisition_date"`
	MaintenanceCost      decimal.Decimal `json:"maintenance_cost"`
	Notes                string          `json:"notes,omitempty"`
	TotalTransactionCost decimal.Decimal `json:"total_transaction_cost"` // derived
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

type EquipmentTransaction struct {
	ID              uint            `json:"id"`
	EquipmentID     uint            `json:"equipment_id"`
	TransactionType string          `json:"transaction_type"` // "Purchased", "Rented" or "Rental"
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transaction_date"`
	Notes           string          `json:"notes,omitempty"`
}
