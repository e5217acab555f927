package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&LivestockType{},
		&LivestockSale{},
		&CostEntry{},
		&Animal{},
		&Crop{},
		&CropSale{},
		&CropCost{},
		&Equipment{},
		&EquipmentTransaction{},
		&Worker{},
		&SalaryPayment{},
		&Role{},
		&ResponsibilityArea{},
		&Task{},
	)
}
