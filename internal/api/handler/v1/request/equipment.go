package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

type CreateEquipmentRequest struct {
	Name            string           `json:"name" binding:"required"`
	AcquisitionType string           `json:"acquisition_type" binding:"required"`
	AcquisitionDate string           `json:"acquisition_date" binding:"required" format:"YYYY-MM-DD"`
	Amount          *decimal.Decimal `json:"amount"`
	Notes           string           `json:"notes"`
}

func (req *CreateEquipmentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.AcquisitionType, validation.Required, validation.In("Purchased", "Rented")),
		validation.Field(&req.AcquisitionDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&req.Amount, validation.By(nonNegativeAmount)),
		validation.Field(&req.Notes, validation.Length(0, 200)),
	)
}

type AddRentalCostRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date" binding:"required" format:"YYYY-MM-DD"`
	Notes  string          `json:"notes"`
}

func (req *AddRentalCostRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Amount, validation.By(positiveAmount)),
		validation.Field(&req.Date, validation.Required, validation.Date(DateLayout)),
		validation.Field(&req.Notes, validation.Length(0, 200)),
	)
}

type AddMaintenanceCostRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (req *AddMaintenanceCostRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Amount, validation.By(positiveAmount)),
	)
}
