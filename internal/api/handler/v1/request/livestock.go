package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

type UpsertLivestockTypeRequest struct {
	Name              string          `json:"name" binding:"required"`
	Quantity          int             `json:"quantity"`
	TotalPurchaseCost decimal.Decimal `json:"total_purchase_cost"`
	TotalCostOfLiving decimal.Decimal `json:"total_cost_of_living"`
}

func (req *UpsertLivestockTypeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Quantity, validation.Min(0)),
		validation.Field(&req.TotalPurchaseCost, validation.By(nonNegativeAmount)),
		validation.Field(&req.TotalCostOfLiving, validation.By(nonNegativeAmount)),
	)
}

type UpdateLivestockCostsRequest struct {
	TotalPurchaseCost *decimal.Decimal `json:"total_purchase_cost"`
	TotalCostOfLiving *decimal.Decimal `json:"total_cost_of_living"`
}

func (req *UpdateLivestockCostsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TotalPurchaseCost, validation.By(nonNegativeAmount)),
		validation.Field(&req.TotalCostOfLiving, validation.By(nonNegativeAmount)),
	)
}

type AddLivestockCostRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Month  string          `json:"month" binding:"required" format:"YYYY-MM"`
	Notes  string          `json:"notes"`
}

func (req *AddLivestockCostRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Amount, validation.By(nonNegativeAmount)),
		validation.Field(&req.Month, validation.Required, validation.By(validMonth)),
		validation.Field(&req.Notes, validation.Length(0, 200)),
	)
}

type SellLivestockRequest struct {
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	SalePrice decimal.Decimal `json:"sale_price"`
	Notes     string          `json:"notes"`
}

func (req *SellLivestockRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
		// A zero price is a valid sale, e.g. animals given away.
		validation.Field(&req.SalePrice, validation.By(nonNegativeAmount)),
		validation.Field(&req.Notes, validation.Length(0, 200)),
	)
}

type RecordLossRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
	// Accepted for parity with the sale payload; a loss keeps no record
	// the notes could attach to.
	Notes string `json:"notes"`
}

func (req *RecordLossRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&req.Notes, validation.Length(0, 200)),
	)
}

type RegisterAnimalRequest struct {
	Type          string          `json:"type" binding:"required"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	FeedCost      decimal.Decimal `json:"feed_cost"`
	Production    string          `json:"production"`
	ParentID      *uint           `json:"parent_id"`
}

func (req *RegisterAnimalRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Type, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.PurchasePrice, validation.By(nonNegativeAmount)),
		validation.Field(&req.FeedCost, validation.By(nonNegativeAmount)),
		validation.Field(&req.Production, validation.Length(0, 100)),
	)
}

type UpdateAnimalRequest struct {
	FeedCost   *decimal.Decimal `json:"feed_cost"`
	Production *string          `json:"production"`
}

func (req *UpdateAnimalRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FeedCost, validation.By(nonNegativeAmount)),
	)
}
