package response

import (
	"github.com/farmstead/farmstead-api/internal/domain"
)

type EquipmentOverview struct {
	Equipments   []domain.Equipment            `json:"equipments"`
	Transactions []domain.EquipmentTransaction `json:"transactions"`
}
