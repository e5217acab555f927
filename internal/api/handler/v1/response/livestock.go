package response

import (
	"github.com/farmstead/farmstead-api/internal/domain"
)

type LivestockOverview struct {
	Types []domain.LivestockType `json:"types"`
	Sales []domain.LivestockSale `json:"sales"`
}

type AnimalsOverview struct {
	Animals []domain.Animal        `json:"animals"`
	Summary []domain.LivestockType `json:"summary"`
}
