package response

import (
	"github.com/farmstead/farmstead-api/internal/domain"
)

type CropOverview struct {
	Crops []domain.Crop     `json:"crops"`
	Sales []domain.CropSale `json:"sales"`
}
