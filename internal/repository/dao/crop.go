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

var ErrCropNotFound = errors.New("crop not found")

type Crop struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"not null"`
	Quantity        int    `gorm:"not null;default:0"`
	InitialQuantity int    `gorm:"not null;default:0"`
	GrowthStage     string
	TotalCostOfCare decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Derived from sale records on read, never stored.
	TotalSales decimal.Decimal `gorm:"-"`
}

// CostPerUnit divides the accumulated cost of care by the cumulative
// quantity ever planted, matching the livestock allocation policy.
func (c *Crop) CostPerUnit() decimal.Decimal {
	if c.InitialQuantity == 0 {
		return decimal.Zero
	}
	return c.TotalCostOfCare.Div(decimal.NewFromInt(int64(c.InitialQuantity)))
}

type CropSale struct {
	ID          uint `gorm:"primaryKey"`
	CropID      uint `gorm:"index;not null"`
	Crop        Crop `gorm:"foreignKey:CropID;constraint:OnDelete:CASCADE"`
	Quantity    int  `gorm:"not null"`
	SalePrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CostPerUnit decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	Notes       string
	SoldAt      time.Time `gorm:"not null"`
}

type CropCost struct {
	ID         uint   `gorm:"primaryKey"`
	CropID     uint   `gorm:"index;not null"`
	Crop       Crop   `gorm:"foreignKey:CropID;constraint:OnDelete:CASCADE"`
	CostType   string `gorm:"not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Month      string          `gorm:"size:7;not null"`
	Notes      string
	RecordedAt time.Time `gorm:"not null"`
}

type CropDAO struct {
	db *gorm.DB
}

func NewCropDAO(db *gorm.DB) *CropDAO {
	return &CropDAO{
		db: db,
	}
}

func (d *CropDAO) GetAll(ctx context.Context) ([]Crop, error) {
	var crops []Crop
	if err := d.db.WithContext(ctx).Order("name").Find(&crops).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		CropID uint
		Total  decimal.Decimal
	}
	err := d.db.WithContext(ctx).Model(&CropSale{}).
		Select("crop_id, COALESCE(SUM(sale_price), 0) AS total").
		Group("crop_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[uint]decimal.Decimal, len(rows))
	for _, r := range rows {
		totals[r.CropID] = r.Total
	}
	for i := range crops {
		crops[i].TotalSales = totals[crops[i].ID]
	}

	return crops, nil
}

func (d *CropDAO) GetByID(ctx context.Context, id uint) (Crop, error) {
	var c Crop
	result := d.db.WithContext(ctx).First(&c, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Crop{}, ErrCropNotFound
		}
		return Crop{}, result.Error
	}
	return c, nil
}

func (d *CropDAO) Create(ctx context.Context, c Crop) (Crop, error) {
	c.InitialQuantity = c.Quantity
	if err := d.db.WithContext(ctx).Create(&c).Error; err != nil {
		return Crop{}, err
	}
	return c, nil
}

// Update overwrites the provided fields; nil pointers leave the current
// value in place. Added quantity extends the cumulative baseline too.
func (d *CropDAO) Update(ctx context.Context, id uint, addQuantity *int, growthStage *string) (Crop, error) {
	var c Crop
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&c, id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrCropNotFound
			}
			return result.Error
		}

		if addQuantity != nil {
			c.Quantity += *addQuantity
			c.InitialQuantity += *addQuantity
		}
		if growthStage != nil {
			c.GrowthStage = *growthStage
		}

		return tx.Save(&c).Error
	})
	if err != nil {
		return Crop{}, err
	}

	return c, nil
}

func (d *CropDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Crop{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCropNotFound
	}
	return nil
}

func (d *CropDAO) GetAllSales(ctx context.Context) ([]CropSale, error) {
	var sales []CropSale
	err := d.db.WithContext(ctx).Preload("Crop").Order("sold_at DESC").Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (d *CropDAO) GetAllCosts(ctx context.Context) ([]CropCost, error) {
	var costs []CropCost
	err := d.db.WithContext(ctx).Preload("Crop").Order("recorded_at DESC").Find(&costs).Error
	if err != nil {
		return nil, err
	}
	return costs, nil
}

// AddCost appends a cost-of-care entry and bumps the running counter in the
// same transaction.
func (d *CropDAO) AddCost(ctx context.Context, cropID uint, costType string, amount decimal.Decimal, month, notes string) (CropCost, error) {
	var cost CropCost
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c Crop
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&c, cropID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrCropNotFound
			}
			return result.Error
		}

		cost = CropCost{
			CropID:     c.ID,
			CostType:   costType,
			Amount:     amount,
			Month:      month,
			Notes:      notes,
			RecordedAt: time.Now().UTC(),
		}
		if err := tx.Create(&cost).Error; err != nil {
			return err
		}

		c.TotalCostOfCare = c.TotalCostOfCare.Add(amount)
		if err := tx.Save(&c).Error; err != nil {
			return err
		}

		cost.Crop = c
		return nil
	})
	if err != nil {
		return CropCost{}, err
	}

	return cost, nil
}

// Sell mirrors LivestockDAO.Sell: locking read, availability check, sale
// record with frozen cost per unit, stock decrement, one transaction.
func (d *CropDAO) Sell(ctx context.Context, cropID uint, quantity int, salePrice decimal.Decimal, notes string) (CropSale, error) {
	var sale CropSale
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c Crop
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&c, cropID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrCropNotFound
			}
			return result.Error
		}

		if quantity > c.Quantity {
			return fmt.Errorf("%w: available %d, requested %d", ErrInsufficientStock, c.Quantity, quantity)
		}

		sale = CropSale{
			CropID:      c.ID,
			Quantity:    quantity,
			SalePrice:   salePrice,
			CostPerUnit: c.CostPerUnit(),
			Notes:       notes,
			SoldAt:      time.Now().UTC(),
		}
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		c.Quantity -= quantity
		if err := tx.Save(&c).Error; err != nil {
			return err
		}

		sale.Crop = c
		return nil
	})
	if err != nil {
		return CropSale{}, err
	}

	return sale, nil
}

// ResetAllSales deletes every crop sale and restores the summed quantities
// to their crops in one transaction.
func (d *CropDAO) ResetAllSales(ctx context.Context) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sold []struct {
			CropID uint
			Total  int
		}
		err := tx.Model(&CropSale{}).
			Select("crop_id, COALESCE(SUM(quantity), 0) AS total").
			Group("crop_id").
			Scan(&sold).Error
		if err != nil {
			return err
		}

		if err := tx.Where("1 = 1").Delete(&CropSale{}).Error; err != nil {
			return err
		}

		for _, s := range sold {
			err := tx.Model(&Crop{}).
				Where("id = ?", s.CropID).
				Update("quantity", gorm.Expr("quantity + ?", s.Total)).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
