package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

type CreateCropRequest struct {
	Name        string `json:"name" binding:"required"`
	Quantity    int    `json:"quantity"`
	GrowthStage string `json:"growth_stage"`
}

func (req *CreateCropRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Quantity, validation.Min(0)),
		validation.Field(&req.GrowthStage, validation.Length(0, 50)),
	)
}

type UpdateCropRequest struct {
	AddQuantity *int    `json:"add_quantity"`
	GrowthStage *string `json:"growth_stage"`
}

func (req *UpdateCropRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.AddQuantity, validation.Min(0)),
	)
}

type AddCropCostRequest struct {
	CostType string          `json:"cost_type" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Month    string          `json:"month" binding:"required" format:"YYYY-MM"`
	Notes    string          `json:"notes"`
}

func (req *AddCropCostRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CostType, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Amount, validation.By(nonNegativeAmount)),
		validation.Field(&req.Month, validation.Required, validation.By(validMonth)),
		validation.Field(&req.Notes, validation.Length(0, 200)),
	)
}

type SellCropRequest struct {
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	SalePrice decimal.Decimal `json:"sale_price"`
	Notes     string          `json:"notes"`
}

func (req *SellCropRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
		// A zero price is a valid sale, e.g. produce given away.
		validation.Field(&req.SalePrice, validation.By(nonNegativeAmount)),
		validation.Field(&req.Notes, validation.Length(0, 200)),
	)
}
