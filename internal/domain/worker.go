package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	PaymentMonthly PaymentType = "Monthly"
	PaymentDaily   PaymentType = "Daily"
	PaymentPerTask PaymentType = "Per Task"
)

type Worker struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	PaymentType PaymentType     `json:"payment_type"`
	Wage        decimal.Decimal `json:"wage"`
	HoursWorked int             `json:"hours_worked"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SalaryPayment is an append-only payroll record. PaymentType must match
// the worker's configured payment type; Per Task payments carry the task
// description they pay for.
type SalaryPayment struct {
	ID              uint            `json:"id"`
	WorkerID        uint            `json:"worker_id"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     time.Time       `json:"payment_date"`
	PaymentType     PaymentType     `json:"payment_type"`
	TaskDescription string          `json:"task_description,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

type Role struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ResponsibilityArea struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
