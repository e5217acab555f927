package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

type CreateWorkerRequest struct {
	Name        string          `json:"name" binding:"required"`
	Role        string          `json:"role" binding:"required"`
	PaymentType string          `json:"payment_type" binding:"required"`
	Wage        decimal.Decimal `json:"wage"`
	HoursWorked int             `json:"hours_worked"`
}

func (req *CreateWorkerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Role, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.PaymentType, validation.Required, validation.In("Monthly", "Daily", "Per Task")),
		validation.Field(&req.Wage, validation.By(nonNegativeAmount)),
		validation.Field(&req.HoursWorked, validation.Min(0)),
	)
}

type UpdateWorkerRequest struct {
	Name        string          `json:"name" binding:"required"`
	Role        string          `json:"role" binding:"required"`
	PaymentType string          `json:"payment_type" binding:"required"`
	Wage        decimal.Decimal `json:"wage"`
	HoursWorked int             `json:"hours_worked"`
	IsActive    bool            `json:"is_active"`
}

func (req *UpdateWorkerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Role, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.PaymentType, validation.Required, validation.In("Monthly", "Daily", "Per Task")),
		validation.Field(&req.Wage, validation.By(nonNegativeAmount)),
		validation.Field(&req.HoursWorked, validation.Min(0)),
	)
}

type RecordPaymentRequest struct {
	WorkerID        uint            `json:"worker_id" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     string          `json:"payment_date" binding:"required" format:"YYYY-MM-DD"`
	PaymentType     string          `json:"payment_type" binding:"required"`
	TaskDescription string          `json:"task_description"`
	Notes           string          `json:"notes"`
}

func (req *RecordPaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.WorkerID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Amount, validation.By(positiveAmount)),
		validation.Field(&req.PaymentDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&req.PaymentType, validation.Required, validation.In("Monthly", "Daily", "Per Task")),
		validation.Field(&req.Notes, validation.Length(0, 200)),
	)
}

type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (req *CreateRoleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Description, validation.Length(0, 200)),
	)
}

type CreateAreaRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (req *CreateAreaRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Description, validation.Length(0, 200)),
	)
}
