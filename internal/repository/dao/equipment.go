package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEquipmentNotFound     = errors.New("equipment not found")
	ErrEquipmentNotRented    = errors.New("equipment is not rented")
	ErrEquipmentNotPurchased = errors.New("equipment is not purchased")
)

type Equipment struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"not null"`
	AcquisitionType string `gorm:"not null"` // "Purchased" or "Rented"
	AcquisitionDate time.Time
	MaintenanceCost decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Derived from transaction records on read.
	TotalTransactionCost decimal.Decimal `gorm:"-"`
}

type EquipmentTransaction struct {
	ID              uint      `gorm:"primaryKey"`
	EquipmentID     uint      `gorm:"index;not null"`
	Equipment       Equipment `gorm:"foreignKey:EquipmentID;constraint:OnDelete:CASCADE"`
	TransactionType string    `gorm:"not null"` // "Purchased", "Rented" or "Rental"
	Amount          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TransactionDate time.Time       `gorm:"not null"`
	Notes           string
}

type EquipmentDAO struct {
	db *gorm.DB
}

func NewEquipmentDAO(db *gorm.DB) *EquipmentDAO {
	return &EquipmentDAO{
		db: db,
	}
}

func (d *EquipmentDAO) GetAll(ctx context.Context) ([]Equipment, error) {
	var equipments []Equipment
	if err := d.db.WithContext(ctx).Order("id").Find(&equipments).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		EquipmentID uint
		Total       decimal.Decimal
	}
	err := d.db.WithContext(ctx).Model(&EquipmentTransaction{}).
		Select("equipment_id, COALESCE(SUM(amount), 0) AS total").
		Group("equipment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[uint]decimal.Decimal, len(rows))
	for _, r := range rows {
		totals[r.EquipmentID] = r.Total
	}
	for i := range equipments {
		equipments[i].TotalTransactionCost = totals[equipments[i].ID]
	}

	return equipments, nil
}

func (d *EquipmentDAO) GetAllTransactions(ctx context.Context) ([]EquipmentTransaction, error) {
	var transactions []EquipmentTransaction
	err := d.db.WithContext(ctx).Order("transaction_date DESC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// Create inserts the equipment and, when an acquisition amount is given, its
// initial transaction record in the same transaction.
func (d *EquipmentDAO) Create(ctx context.Context, e Equipment, acquisitionAmount *decimal.Decimal) (Equipment, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&e).Error; err != nil {
			return err
		}

		if acquisitionAmount != nil {
			t := EquipmentTransaction{
				EquipmentID:     e.ID,
				TransactionType: e.AcquisitionType,
				Amount:          *acquisitionAmount,
				TransactionDate: e.AcquisitionDate,
				Notes:           e.Notes,
			}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Equipment{}, err
	}

	return e, nil
}

// AddRentalCost appends a rental transaction. Only rented equipment
// accumulates rental costs.
func (d *EquipmentDAO) AddRentalCost(ctx context.Context, equipmentID uint, amount decimal.Decimal, date time.Time, notes string) (EquipmentTransaction, error) {
	var t EquipmentTransaction
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e Equipment
		result := tx.First(&e, equipmentID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrEquipmentNotFound
			}
			return result.Error
		}

		if e.AcquisitionType != "Rented" {
			return ErrEquipmentNotRented
		}

		t = EquipmentTransaction{
			EquipmentID:     e.ID,
			TransactionType: "Rental",
			Amount:          amount,
			TransactionDate: date,
			Notes:           notes,
		}
		return tx.Create(&t).Error
	})
	if err != nil {
		return EquipmentTransaction{}, err
	}

	return t, nil
}

// AddMaintenanceCost bumps the maintenance counter of purchased equipment.
func (d *EquipmentDAO) AddMaintenanceCost(ctx context.Context, equipmentID uint, amount decimal.Decimal) (Equipment, error) {
	var e Equipment
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&e, equipmentID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrEquipmentNotFound
			}
			return result.Error
		}

		if e.AcquisitionType != "Purchased" {
			return ErrEquipmentNotPurchased
		}

		e.MaintenanceCost = e.MaintenanceCost.Add(amount)
		return tx.Save(&e).Error
	})
	if err != nil {
		return Equipment{}, err
	}

	return e, nil
}

func (d *EquipmentDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Equipment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEquipmentNotFound
	}
	return nil
}
