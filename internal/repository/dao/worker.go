package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrWorkerNotFound = errors.New("worker not found")
	ErrRoleExists     = errors.New("role already exists")
	ErrAreaExists     = errors.New("responsibility area already exists")
)

type Worker struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Role        string
	PaymentType string          `gorm:"not null"` // "Monthly", "Daily" or "Per Task"
	Wage        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	HoursWorked int             `gorm:"not null;default:0"`
	IsActive    bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type SalaryPayment struct {
	ID              uint   `gorm:"primaryKey"`
	WorkerID        uint   `gorm:"index;not null"`
	Worker          Worker `gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
	Amount          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentDate     time.Time       `gorm:"not null"`
	PaymentType     string          `gorm:"not null"`
	TaskDescription string
	Notes           string
}

type Role struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description string
	CreatedAt   time.Time
}

type ResponsibilityArea struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description string
	CreatedAt   time.Time
}

type WorkerDAO struct {
	db *gorm.DB
}

func NewWorkerDAO(db *gorm.DB) *WorkerDAO {
	return &WorkerDAO{
		db: db,
	}
}

func (d *WorkerDAO) GetAll(ctx context.Context) ([]Worker, error) {
	var workers []Worker
	if err := d.db.WithContext(ctx).Order("name").Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

func (d *WorkerDAO) GetByID(ctx context.Context, id uint) (Worker, error) {
	var w Worker
	result := d.db.WithContext(ctx).First(&w, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Worker{}, ErrWorkerNotFound
		}
		return Worker{}, result.Error
	}
	return w, nil
}

func (d *WorkerDAO) Create(ctx context.Context, w Worker) (Worker, error) {
	if err := d.db.WithContext(ctx).Create(&w).Error; err != nil {
		return Worker{}, err
	}
	return w, nil
}

// Update overwrites the worker record. A missing worker is an error, never
// an insert.
func (d *WorkerDAO) Update(ctx context.Context, w Worker) (Worker, error) {
	var existing Worker
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&existing, w.ID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrWorkerNotFound
			}
			return result.Error
		}

		existing.Name = w.Name
		existing.Role = w.Role
		existing.PaymentType = w.PaymentType
		existing.Wage = w.Wage
		existing.HoursWorked = w.HoursWorked
		existing.IsActive = w.IsActive

		return tx.Save(&existing).Error
	})
	if err != nil {
		return Worker{}, err
	}

	return existing, nil
}

func (d *WorkerDAO) CreatePayment(ctx context.Context, p SalaryPayment) (SalaryPayment, error) {
	if err := d.db.WithContext(ctx).Create(&p).Error; err != nil {
		return SalaryPayment{}, err
	}
	return p, nil
}

func (d *WorkerDAO) GetAllPayments(ctx context.Context) ([]SalaryPayment, error) {
	var payments []SalaryPayment
	err := d.db.WithContext(ctx).Preload("Worker").Order("payment_date DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (d *WorkerDAO) GetAllRoles(ctx context.Context) ([]Role, error) {
	var roles []Role
	if err := d.db.WithContext(ctx).Order("name").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (d *WorkerDAO) CreateRole(ctx context.Context, r Role) (Role, error) {
	result := d.db.WithContext(ctx).Create(&r)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Role{}, ErrRoleExists
		}
		return Role{}, result.Error
	}
	return r, nil
}

func (d *WorkerDAO) GetAllAreas(ctx context.Context) ([]ResponsibilityArea, error) {
	var areas []ResponsibilityArea
	if err := d.db.WithContext(ctx).Order("name").Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

func (d *WorkerDAO) CreateArea(ctx context.Context, a ResponsibilityArea) (ResponsibilityArea, error) {
	result := d.db.WithContext(ctx).Create(&a)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return ResponsibilityArea{}, ErrAreaExists
		}
		return ResponsibilityArea{}, result.Error
	}
	return a, nil
}
