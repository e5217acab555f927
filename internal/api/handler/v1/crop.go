package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/farmstead/farmstead-api/internal/api/handler/v1/request"
	"github.com/farmstead/farmstead-api/internal/api/handler/v1/response"
	"github.com/farmstead/farmstead-api/internal/domain"
	"github.com/farmstead/farmstead-api/internal/service"
)

type CropService interface {
	GetOverview(ctx context.Context) ([]domain.Crop, []domain.CropSale, error)
	Create(ctx context.Context, c domain.Crop) (domain.Crop, error)
	Update(ctx context.Context, id uint, addQuantity *int, growthStage *string) (domain.Crop, error)
	Delete(ctx context.Context, id uint) error
	AddCost(ctx context.Context, cropID uint, costType string, amount decimal.Decimal, month, notes string) (domain.CropCost, error)
	Sell(ctx context.Context, cropID uint, quantity int, salePrice decimal.Decimal, notes string) (domain.CropSale, error)
	ResetAllSales(ctx context.Context) error
}

type CropHandler struct {
	svc CropService
}

func NewCropHandler(svc CropService) *CropHandler {
	return &CropHandler{
		svc: svc,
	}
}

// HandleGetCrops godoc
// @Summary      Get crop overview
// @Description  Retrieves all crops with their derived sales totals, plus the full sale history
// @Tags         crops
// @Produce      json
// @Success      200  {object}  response.CropOverview
// @Failure      500  {object}  response.Err
// @Router       /crops [get]
func (h *CropHandler) HandleGetCrops(ctx *gin.Context) {
	crops, sales, err := h.svc.GetOverview(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetCrops -> h.svc.GetOverview -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.CropOverview{
		Crops: crops,
		Sales: sales,
	})
}

// HandleCreateCrop godoc
// @Summary      Create a crop
// @Description  Creates a new crop plot with its planted quantity
// @Tags         crops
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateCropRequest  true  "Crop details"
// @Success      201    {object}  domain.Crop
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /crops [post]
func (h *CropHandler) HandleCreateCrop(ctx *gin.Context) {
	var req request.CreateCropRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	crop, err := h.svc.Create(ctx.Request.Context(), domain.Crop{
		Name:        req.Name,
		Quantity:    req.Quantity,
		GrowthStage: req.GrowthStage,
	})
	if err != nil {
		err = fmt.Errorf("HandleCreateCrop -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, crop)
}

// HandleUpdateCrop godoc
// @Summary      Update a crop
// @Description  Extends the planted quantity and/or sets the growth stage
// @Tags         crops
// @Accept       json
// @Produce      json
// @Param        cropID  path      int                        true  "Crop ID"
// @Param        input   body      request.UpdateCropRequest  true  "Fields to update"
// @Success      200     {object}  domain.Crop
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /crops/{cropID} [put]
func (h *CropHandler) HandleUpdateCrop(ctx *gin.Context) {
	cropID, err := strconv.ParseUint(ctx.Param("cropID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid crop ID: %w", err)))
		return
	}

	var req request.UpdateCropRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	crop, err := h.svc.Update(ctx.Request.Context(), uint(cropID), req.AddQuantity, req.GrowthStage)
	if err != nil {
		if errors.Is(err, service.ErrCropNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("crop", "ID", cropID))
			return
		}

		err = fmt.Errorf("HandleUpdateCrop -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, crop)
}

// HandleDeleteCrop godoc
// @Summary      Delete a crop
// @Description  Removes the crop together with its sale and cost history
// @Tags         crops
// @Produce      json
// @Param        cropID  path  int  true  "Crop ID"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /crops/{cropID} [delete]
func (h *CropHandler) HandleDeleteCrop(ctx *gin.Context) {
	cropID, err := strconv.ParseUint(ctx.Param("cropID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid crop ID: %w", err)))
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), uint(cropID)); err != nil {
		if errors.Is(err, service.ErrCropNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("crop", "ID", cropID))
			return
		}

		err = fmt.Errorf("HandleDeleteCrop -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "crop deleted"})
}

// HandleAddCost godoc
// @Summary      Record a cost-of-care entry
// @Description  Appends a cost entry for the crop and bumps its cost-of-care counter in one transaction
// @Tags         crops
// @Accept       json
// @Produce      json
// @Param        cropID  path      int                         true  "Crop ID"
// @Param        input   body      request.AddCropCostRequest  true  "Cost details"
// @Success      201     {object}  domain.CropCost
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /crops/{cropID}/costs [post]
func (h *CropHandler) HandleAddCost(ctx *gin.Context) {
	cropID, err := strconv.ParseUint(ctx.Param("cropID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid crop ID: %w", err)))
		return
	}

	var req request.AddCropCostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	cost, err := h.svc.AddCost(ctx.Request.Context(), uint(cropID), req.CostType, req.Amount, req.Month, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCropNotFound):
			response.RenderErr(ctx, response.ErrNotFound("crop", "ID", cropID))
		case errors.Is(err, service.ErrInvalidAmount):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleAddCost -> h.svc.AddCost -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, cost)
}

// HandleSell godoc
// @Summary      Sell a crop
// @Description  Records a sale with the cost per unit frozen at sale time and decrements the crop's quantity, all in one transaction
// @Tags         crops
// @Accept       json
// @Produce      json
// @Param        cropID  path      int                      true  "Crop ID"
// @Param        input   body      request.SellCropRequest  true  "Sale details"
// @Success      201     {object}  domain.CropSale
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /crops/{cropID}/sales [post]
func (h *CropHandler) HandleSell(ctx *gin.Context) {
	cropID, err := strconv.ParseUint(ctx.Param("cropID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid crop ID: %w", err)))
		return
	}

	var req request.SellCropRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sale, err := h.svc.Sell(ctx.Request.Context(), uint(cropID), req.Quantity, req.SalePrice, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCropNotFound):
			response.RenderErr(ctx, response.ErrNotFound("crop", "ID", cropID))
		case errors.Is(err, service.ErrInsufficientStock):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleSell -> h.svc.Sell -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, sale)
}

// HandleResetAllSales godoc
// @Summary      Reset all crop sales
// @Description  Deletes every crop sale record and restores the sold quantities back to their crops in one transaction
// @Tags         crops
// @Produce      json
// @Success      200
// @Failure      500  {object}  response.Err
// @Router       /crop-sales [delete]
func (h *CropHandler) HandleResetAllSales(ctx *gin.Context) {
	if err := h.svc.ResetAllSales(ctx.Request.Context()); err != nil {
		err = fmt.Errorf("HandleResetAllSales -> h.svc.ResetAllSales -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "all crop sales reset"})
}
