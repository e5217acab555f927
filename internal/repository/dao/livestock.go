package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrLivestockTypeNotFound = errors.New("livestock type not found")
	ErrAnimalNotFound        = errors.New("animal not found")
	ErrInsufficientStock     = errors.New("insufficient stock")
)

type LivestockType struct {
	ID                uint            `gorm:"primaryKey"`
	Name              string          `gorm:"uniqueIndex;not null"`
	Quantity          int             `gorm:"not null;default:0"`
	InitialQuantity   int             `gorm:"not null;default:0"`
	TotalPurchaseCost decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalCostOfLiving decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Derived from sale records on read, never stored.
	TotalSales decimal.Decimal `gorm:"-"`
}

// TotalCost is the accumulated cost base for per-unit allocation.
func (t *LivestockType) TotalCost() decimal.Decimal {
	return t.TotalPurchaseCost.Add(t.TotalCostOfLiving)
}

// CostPerUnit divides the accumulated cost by the cumulative quantity ever
// acquired, so past sales keep their recorded value as stock depletes.
// A zero baseline yields zero; a sale is never rejected for it.
func (t *LivestockType) CostPerUnit() decimal.Decimal {
	if t.InitialQuantity == 0 {
		return decimal.Zero
	}
	return t.TotalCost().Div(decimal.NewFromInt(int64(t.InitialQuantity)))
}

type LivestockSale struct {
	ID          uint          `gorm:"primaryKey"`
	TypeID      uint          `gorm:"index;not null"`
	Type        LivestockType `gorm:"foreignKey:TypeID;constraint:OnDelete:CASCADE"`
	Quantity    int           `gorm:"not null"`
	SalePrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CostPerUnit decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	Notes       string
	SoldAt      time.Time `gorm:"not null"`
}

type CostEntry struct {
	ID         uint          `gorm:"primaryKey"`
	TypeID     uint          `gorm:"index;not null"`
	Type       LivestockType `gorm:"foreignKey:TypeID;constraint:OnDelete:CASCADE"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Month      string          `gorm:"size:7;not null"` // YYYY-MM, chosen by the caller
	Notes      string
	RecordedAt time.Time `gorm:"not null"`
}

type Animal struct {
	ID            uint          `gorm:"primaryKey"`
	TypeID        uint          `gorm:"index;not null"`
	Type          LivestockType `gorm:"foreignKey:TypeID;constraint:OnDelete:CASCADE"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	FeedCost      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Production    string
	ParentID      *uint `gorm:"index"`
	CreatedAt     time.Time
}

type LivestockDAO struct {
	db *gorm.DB
}

func NewLivestockDAO(db *gorm.DB) *LivestockDAO {
	return &LivestockDAO{
		db: db,
	}
}

// GetAllTypes returns all balance rows ordered by name, with TotalSales
// filled in from the sale records.
func (d *LivestockDAO) GetAllTypes(ctx context.Context) ([]LivestockType, error) {
	var types []LivestockType
	if err := d.db.WithContext(ctx).Order("name").Find(&types).Error; err != nil {
		return nil, err
	}

	totals, err := d.salesTotalsByType(d.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	for i := range types {
		types[i].TotalSales = totals[types[i].ID]
	}

	return types, nil
}

func (d *LivestockDAO) GetTypeByName(ctx context.Context, name string) (LivestockType, error) {
	var t LivestockType
	result := d.db.WithContext(ctx).Where("name = ?", name).First(&t)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return LivestockType{}, ErrLivestockTypeNotFound
		}
		return LivestockType{}, result.Error
	}

	totals, err := d.salesTotalsByType(d.db.WithContext(ctx).Where("type_id = ?", t.ID))
	if err != nil {
		return LivestockType{}, err
	}
	t.TotalSales = totals[t.ID]

	return t, nil
}

func (d *LivestockDAO) salesTotalsByType(tx *gorm.DB) (map[uint]decimal.Decimal, error) {
	var rows []struct {
		TypeID uint
		Total  decimal.Decimal
	}
	err := tx.Model(&LivestockSale{}).
		Select("type_id, COALESCE(SUM(sale_price), 0) AS total").
		Group("type_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[uint]decimal.Decimal, len(rows))
	for _, r := range rows {
		totals[r.TypeID] = r.Total
	}

	return totals, nil
}

func (d *LivestockDAO) GetAllSales(ctx context.Context) ([]LivestockSale, error) {
	var sales []LivestockSale
	err := d.db.WithContext(ctx).Preload("Type").Order("sold_at DESC").Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (d *LivestockDAO) GetCostHistory(ctx context.Context) ([]CostEntry, error) {
	var entries []CostEntry
	err := d.db.WithContext(ctx).Preload("Type").Order("recorded_at DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// UpsertType creates the balance row, or merges additively into an existing
// one: quantities extend both the current count and the cumulative baseline,
// cost amounts extend the running counters.
func (d *LivestockDAO) UpsertType(ctx context.Context, t LivestockType) (LivestockType, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing LivestockType
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", t.Name).
			First(&existing)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				t.InitialQuantity = t.Quantity
				return tx.Create(&t).Error
			}
			return result.Error
		}

		existing.Quantity += t.Quantity
		existing.InitialQuantity += t.Quantity
		existing.TotalPurchaseCost = existing.TotalPurchaseCost.Add(t.TotalPurchaseCost)
		existing.TotalCostOfLiving = existing.TotalCostOfLiving.Add(t.TotalCostOfLiving)
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		t = existing
		return nil
	})
	if err != nil {
		return LivestockType{}, err
	}

	return t, nil
}

// UpdateTypeCosts overwrites the cost counters that are provided; nil fields
// are left untouched.
func (d *LivestockDAO) UpdateTypeCosts(ctx context.Context, name string, purchaseCost, costOfLiving *decimal.Decimal) (LivestockType, error) {
	var updated LivestockType
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", name).
			First(&updated)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrLivestockTypeNotFound
			}
			return result.Error
		}

		if purchaseCost != nil {
			updated.TotalPurchaseCost = *purchaseCost
		}
		if costOfLiving != nil {
			updated.TotalCostOfLiving = *costOfLiving
		}

		return tx.Save(&updated).Error
	})
	if err != nil {
		return LivestockType{}, err
	}

	return updated, nil
}

// DeleteType removes the balance row; sales, cost entries and animals of the
// type go with it via FK cascade.
func (d *LivestockDAO) DeleteType(ctx context.Context, name string) error {
	result := d.db.WithContext(ctx).Where("name = ?", name).Delete(&LivestockType{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLivestockTypeNotFound
	}
	return nil
}

// AddCost appends a cost-of-living entry and bumps the running counter on the
// balance row in the same transaction.
func (d *LivestockDAO) AddCost(ctx context.Context, typeName string, amount decimal.Decimal, month, notes string) (CostEntry, error) {
	var entry CostEntry
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t LivestockType
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", typeName).
			First(&t)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrLivestockTypeNotFound
			}
			return result.Error
		}

		entry = CostEntry{
			TypeID:     t.ID,
			Amount:     amount,
			Month:      month,
			Notes:      notes,
			RecordedAt: time.Now().UTC(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		t.TotalCostOfLiving = t.TotalCostOfLiving.Add(amount)
		if err := tx.Save(&t).Error; err != nil {
			return err
		}

		entry.Type = t
		return nil
	})
	if err != nil {
		return CostEntry{}, err
	}

	return entry, nil
}

// ResetCost zeroes the cost-of-living counter. History entries are kept but
// no longer reflected in the balance; callers are expected to warn the user.
func (d *LivestockDAO) ResetCost(ctx context.Context, typeName string) error {
	result := d.db.WithContext(ctx).
		Model(&LivestockType{}).
		Where("name = ?", typeName).
		Update("total_cost_of_living", decimal.Zero)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLivestockTypeNotFound
	}
	return nil
}

// Sell executes the inventory-depletion transaction: a locking read of the
// balance row, the insufficient-stock check, the sale record with the cost
// per unit frozen at its current value, and the stock decrement. Everything
// commits or nothing does.
func (d *LivestockDAO) Sell(ctx context.Context, typeName string, quantity int, salePrice decimal.Decimal, notes string) (LivestockSale, error) {
	var sale LivestockSale
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t LivestockType
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", typeName).
			First(&t)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrLivestockTypeNotFound
			}
			return result.Error
		}

		if quantity > t.Quantity {
			return fmt.Errorf("%w: available %d, requested %d", ErrInsufficientStock, t.Quantity, quantity)
		}

		sale = LivestockSale{
			TypeID:      t.ID,
			Quantity:    quantity,
			SalePrice:   salePrice,
			CostPerUnit: t.CostPerUnit(),
			Notes:       notes,
			SoldAt:      time.Now().UTC(),
		}
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		t.Quantity -= quantity
		if err := tx.Save(&t).Error; err != nil {
			return err
		}

		sale.Type = t
		return nil
	})
	if err != nil {
		return LivestockSale{}, err
	}

	return sale, nil
}

// RecordLoss decrements stock without leaving a sale record. Same
// availability check as Sell.
func (d *LivestockDAO) RecordLoss(ctx context.Context, typeName string, quantity int) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t LivestockType
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", typeName).
			First(&t)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrLivestockTypeNotFound
			}
			return result.Error
		}

		if quantity > t.Quantity {
			return fmt.Errorf("%w: available %d, requested %d", ErrInsufficientStock, t.Quantity, quantity)
		}

		t.Quantity -= quantity
		return tx.Save(&t).Error
	})
}

// ResetAllSales deletes every sale record and restores the summed quantities
// to their balance rows, all in one transaction. Sale history is discarded
// for good; derived sales totals drop to zero on their own.
func (d *LivestockDAO) ResetAllSales(ctx context.Context) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sold []struct {
			TypeID uint
			Total  int
		}
		err := tx.Model(&LivestockSale{}).
			Select("type_id, COALESCE(SUM(quantity), 0) AS total").
			Group("type_id").
			Scan(&sold).Error
		if err != nil {
			return err
		}

		if err := tx.Where("1 = 1").Delete(&LivestockSale{}).Error; err != nil {
			return err
		}

		for _, s := range sold {
			err := tx.Model(&LivestockType{}).
				Where("id = ?", s.TypeID).
				Update("quantity", gorm.Expr("quantity + ?", s.Total)).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (d *LivestockDAO) GetAllAnimals(ctx context.Context) ([]Animal, error) {
	var animals []Animal
	err := d.db.WithContext(ctx).Preload("Type").Order("created_at DESC").Find(&animals).Error
	if err != nil {
		return nil, err
	}
	return animals, nil
}

// RegisterAnimal inserts an individual animal record and bumps the balance
// row of its type (creating it if needed) in the same transaction. The
// original system did this with a database trigger.
func (d *LivestockDAO) RegisterAnimal(ctx context.Context, typeName string, a Animal) (Animal, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t LivestockType
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", typeName).
			First(&t)
		if result.Error != nil {
			if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return result.Error
			}
			t = LivestockType{Name: typeName}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
		}

		t.Quantity++
		t.InitialQuantity++
		t.TotalPurchaseCost = t.TotalPurchaseCost.Add(a.PurchasePrice)
		if err := tx.Save(&t).Error; err != nil {
			return err
		}

		a.TypeID = t.ID
		if err := tx.Create(&a).Error; err != nil {
			return err
		}

		a.Type = t
		return nil
	})
	if err != nil {
		return Animal{}, err
	}

	return a, nil
}

// UpdateAnimal touches only fields that do not feed the balance counters.
func (d *LivestockDAO) UpdateAnimal(ctx context.Context, id uint, feedCost *decimal.Decimal, production *string) (Animal, error) {
	var a Animal
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&a, id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrAnimalNotFound
			}
			return result.Error
		}

		if feedCost != nil {
			a.FeedCost = *feedCost
		}
		if production != nil {
			a.Production = *production
		}

		return tx.Save(&a).Error
	})
	if err != nil {
		return Animal{}, err
	}

	return a, nil
}

// DeleteAnimal removes the registry record only; the type's balance is left
// untouched (use RecordLoss for deaths).
func (d *LivestockDAO) DeleteAnimal(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Animal{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAnimalNotFound
	}
	return nil
}
