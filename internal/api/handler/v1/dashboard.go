package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmstead/farmstead-api/internal/api/handler/v1/response"
	"github.com/farmstead/farmstead-api/internal/domain"
)

type DashboardService interface {
	ComputeDashboard(ctx context.Context) (domain.Dashboard, error)
}

type DashboardHandler struct {
	svc DashboardService
}

func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{
		svc: svc,
	}
}

// HandleGetDashboard godoc
// @Summary      Get the financial dashboard
// @Description  Recomputes earnings, costs, profit, cost distribution and month-bucketed series from the ledger
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.Dashboard
// @Failure      500  {object}  response.Err
// @Router       /dashboard [get]
func (h *DashboardHandler) HandleGetDashboard(ctx *gin.Context) {
	dashboard, err := h.svc.ComputeDashboard(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetDashboard -> h.svc.ComputeDashboard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, dashboard)
}
