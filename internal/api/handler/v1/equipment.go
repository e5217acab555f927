package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/farmstead/farmstead-api/internal/api/handler/v1/request"
	"github.com/farmstead/farmstead-api/internal/api/handler/v1/response"
	"github.com/farmstead/farmstead-api/internal/domain"
	"github.com/farmstead/farmstead-api/internal/service"
)

type EquipmentService interface {
	GetOverview(ctx context.Context) ([]domain.Equipment, []domain.EquipmentTransaction, error)
	Create(ctx context.Context, e domain.Equipment, acquisitionAmount *decimal.Decimal) (domain.Equipment, error)
	AddRentalCost(ctx context.Context, equipmentID uint, amount decimal.Decimal, date time.Time, notes string) (domain.EquipmentTransaction, error)
	AddMaintenanceCost(ctx context.Context, equipmentID uint, amount decimal.Decimal) (domain.Equipment, error)
	Delete(ctx context.Context, id uint) error
}

type EquipmentHandler struct {
	svc EquipmentService
}

func NewEquipmentHandler(svc EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{
		svc: svc,
	}
}

// HandleGetEquipments godoc
// @Summary      Get equipment overview
// @Description  Retrieves all equipment with derived transaction totals, plus the full transaction history
// @Tags         equipments
// @Produce      json
// @Success      200  {object}  response.EquipmentOverview
// @Failure      500  {object}  response.Err
// @Router       /equipments [get]
func (h *EquipmentHandler) HandleGetEquipments(ctx *gin.Context) {
	equipments, transactions, err := h.svc.GetOverview(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetEquipments -> h.svc.GetOverview -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.EquipmentOverview{
		Equipments:   equipments,
		Transactions: transactions,
	})
}

// HandleCreateEquipment godoc
// @Summary      Register equipment
// @Description  Creates an equipment record and, when an amount is given, the initial acquisition transaction in the same transaction
// @Tags         equipments
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateEquipmentRequest  true  "Equipment details"
// @Success      201    {object}  domain.Equipment
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /equipments [post]
func (h *EquipmentHandler) HandleCreateEquipment(ctx *gin.Context) {
	var req request.CreateEquipmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	acquiredAt, err := time.Parse(request.DateLayout, req.AcquisitionDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid acquisition date: %w", err)))
		return
	}

	equipment, err := h.svc.Create(ctx.Request.Context(), domain.Equipment{
		Name:            req.Name,
		AcquisitionType: req.AcquisitionType,
		AcquisitionDate: acquiredAt,
		Notes:           req.Notes,
	}, req.Amount)
	if err != nil {
		err = fmt.Errorf("HandleCreateEquipment -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, equipment)
}

// HandleAddRentalCost godoc
// @Summary      Record a rental payment
// @Description  Appends a rental transaction for rented equipment. Purchased equipment is rejected.
// @Tags         equipments
// @Accept       json
// @Produce      json
// @Param        equipmentID  path      int                           true  "Equipment ID"
// @Param        input        body      request.AddRentalCostRequest  true  "Rental details"
// @Success      201          {object}  domain.EquipmentTransaction
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /equipments/{equipmentID}/rentals [post]
func (h *EquipmentHandler) HandleAddRentalCost(ctx *gin.Context) {
	equipmentID, err := strconv.ParseUint(ctx.Param("equipmentID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid equipment ID: %w", err)))
		return
	}

	var req request.AddRentalCostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	paidAt, err := time.Parse(request.DateLayout, req.Date)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid rental date: %w", err)))
		return
	}

	transaction, err := h.svc.AddRentalCost(ctx.Request.Context(), uint(equipmentID), req.Amount, paidAt, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEquipmentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("equipment", "ID", equipmentID))
		case errors.Is(err, service.ErrEquipmentNotRented), errors.Is(err, service.ErrInvalidAmount):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleAddRentalCost -> h.svc.AddRentalCost -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, transaction)
}

// HandleAddMaintenanceCost godoc
// @Summary      Record a maintenance cost
// @Description  Bumps the maintenance counter of purchased equipment. Rented equipment is rejected.
// @Tags         equipments
// @Accept       json
// @Produce      json
// @Param        equipmentID  path      int                                true  "Equipment ID"
// @Param        input        body      request.AddMaintenanceCostRequest  true  "Maintenance details"
// @Success      200          {object}  domain.Equipment
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /equipments/{equipmentID}/maintenance [post]
func (h *EquipmentHandler) HandleAddMaintenanceCost(ctx *gin.Context) {
	equipmentID, err := strconv.ParseUint(ctx.Param("equipmentID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid equipment ID: %w", err)))
		return
	}

	var req request.AddMaintenanceCostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	equipment, err := h.svc.AddMaintenanceCost(ctx.Request.Context(), uint(equipmentID), req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEquipmentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("equipment", "ID", equipmentID))
		case errors.Is(err, service.ErrEquipmentNotPurchased), errors.Is(err, service.ErrInvalidAmount):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleAddMaintenanceCost -> h.svc.AddMaintenanceCost -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, equipment)
}

// HandleDeleteEquipment godoc
// @Summary      Delete equipment
// @Description  Removes the equipment together with its transaction history
// @Tags         equipments
// @Produce      json
// @Param        equipmentID  path  int  true  "Equipment ID"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /equipments/{equipmentID} [delete]
func (h *EquipmentHandler) HandleDeleteEquipment(ctx *gin.Context) {
	equipmentID, err := strconv.ParseUint(ctx.Param("equipmentID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid equipment ID: %w", err)))
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), uint(equipmentID)); err != nil {
		if errors.Is(err, service.ErrEquipmentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("equipment", "ID", equipmentID))
			return
		}

		err = fmt.Errorf("HandleDeleteEquipment -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "equipment deleted"})
}
