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

type LivestockService interface {
	GetOverview(ctx context.Context) ([]domain.LivestockType, []domain.LivestockSale, error)
	UpsertType(ctx context.Context, t domain.LivestockType) (domain.LivestockType, error)
	UpdateTypeCosts(ctx context.Context, name string, purchaseCost, costOfLiving *decimal.Decimal) (domain.LivestockType, error)
	DeleteType(ctx context.Context, name string) error
	AddCost(ctx context.Context, typeName string, amount decimal.Decimal, month, notes string) (domain.CostEntry, error)
	ResetCost(ctx context.Context, typeName string) error
	Sell(ctx context.Context, typeName string, quantity int, salePrice decimal.Decimal, notes string) (domain.LivestockSale, error)
	RecordLoss(ctx context.Context, typeName string, quantity int) error
	ResetAllSales(ctx context.Context) error
	GetAnimals(ctx context.Context) ([]domain.Animal, []domain.LivestockType, error)
	RegisterAnimal(ctx context.Context, a domain.Animal) (domain.Animal, error)
	UpdateAnimal(ctx context.Context, id uint, feedCost *decimal.Decimal, production *string) (domain.Animal, error)
	DeleteAnimal(ctx context.Context, id uint) error
}

type LivestockHandler struct {
	svc LivestockService
}

func NewLivestockHandler(svc LivestockService) *LivestockHandler {
	return &LivestockHandler{
		svc: svc,
	}
}

// HandleGetLivestock godoc
// @Summary      Get livestock overview
// @Description  Retrieves all livestock types with their derived sales totals, plus the full sale history
// @Tags         livestock
// @Produce      json
// @Success      200  {object}  response.LivestockOverview
// @Failure      500  {object}  response.Err
// @Router       /livestock-types [get]
func (h *LivestockHandler) HandleGetLivestock(ctx *gin.Context) {
	types, sales, err := h.svc.GetOverview(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetLivestock -> h.svc.GetOverview -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LivestockOverview{
		Types: types,
		Sales: sales,
	})
}

// HandleUpsertType godoc
// @Summary      Create or merge a livestock type
// @Description  Creates a new livestock type, or additively merges quantities and costs into an existing one with the same name
// @Tags         livestock
// @Accept       json
// @Produce      json
// @Param        input  body      request.UpsertLivestockTypeRequest  true  "Livestock type details"
// @Success      201    {object}  domain.LivestockType
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /livestock-types [post]
func (h *LivestockHandler) HandleUpsertType(ctx *gin.Context) {
	var req request.UpsertLivestockTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	t, err := h.svc.UpsertType(ctx.Request.Context(), domain.LivestockType{
		Name:              req.Name,
		Quantity:          req.Quantity,
		TotalPurchaseCost: req.TotalPurchaseCost,
		TotalCostOfLiving: req.TotalCostOfLiving,
	})
	if err != nil {
		err = fmt.Errorf("HandleUpsertType -> h.svc.UpsertType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, t)
}

// HandleUpdateTypeCosts godoc
// @Summary      Set cost counters of a livestock type
// @Description  Overwrites the purchase cost and/or cost-of-living counters of the named type
// @Tags         livestock
// @Accept       json
// @Produce      json
// @Param        name   path      string                               true  "Livestock type name"
// @Param        input  body      request.UpdateLivestockCostsRequest  true  "Cost counters"
// @Success      200    {object}  domain.LivestockType
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /livestock-types/{name} [put]
func (h *LivestockHandler) HandleUpdateTypeCosts(ctx *gin.Context) {
	name := ctx.Param("name")

	var req request.UpdateLivestockCostsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	t, err := h.svc.UpdateTypeCosts(ctx.Request.Context(), name, req.TotalPurchaseCost, req.TotalCostOfLiving)
	if err != nil {
		if errors.Is(err, service.ErrLivestockTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("livestock type", "name", name))
			return
		}

		err = fmt.Errorf("HandleUpdateTypeCosts -> h.svc.UpdateTypeCosts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, t)
}

// HandleDeleteType godoc
// @Summary      Delete a livestock type
// @Description  Removes the named type together with its sale and cost history
// @Tags         livestock
// @Produce      json
// @Param        name  path  string  true  "Livestock type name"
// @Success      200
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /livestock-types/{name} [delete]
func (h *LivestockHandler) HandleDeleteType(ctx *gin.Context) {
	name := ctx.Param("name")

	if err := h.svc.DeleteType(ctx.Request.Context(), name); err != nil {
		if errors.Is(err, service.ErrLivestockTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("livestock type", "name", name))
			return
		}

		err = fmt.Errorf("HandleDeleteType -> h.svc.DeleteType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "livestock type deleted"})
}

// HandleAddCost godoc
// @Summary      Record a cost-of-living entry
// @Description  Appends a cost entry for the named type and bumps its cost-of-living counter in one transaction
// @Tags         livestock
// @Accept       json
// @Produce      json
// @Param        name   path      string                           true  "Livestock type name"
// @Param        input  body      request.AddLivestockCostRequest  true  "Cost details"
// @Success      201    {object}  domain.CostEntry
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /livestock-types/{name}/costs [post]
func (h *LivestockHandler) HandleAddCost(ctx *gin.Context) {
	name := ctx.Param("name")

	var req request.AddLivestockCostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entry, err := h.svc.AddCost(ctx.Request.Context(), name, req.Amount, req.Month, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLivestockTypeNotFound):
			response.RenderErr(ctx, response.ErrNotFound("livestock type", "name", name))
		case errors.Is(err, service.ErrInvalidAmount):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleAddCost -> h.svc.AddCost -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, entry)
}

// HandleResetCost godoc
// @Summary      Reset the cost-of-living counter
// @Description  Zeroes the named type's cost-of-living counter while keeping the cost history
// @Tags         livestock
// @Produce      json
// @Param        name  path  string  true  "Livestock type name"
// @Success      200
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /livestock-types/{name}/costs [delete]
func (h *LivestockHandler) HandleResetCost(ctx *gin.Context) {
	name := ctx.Param("name")

	if err := h.svc.ResetCost(ctx.Request.Context(), name); err != nil {
		if errors.Is(err, service.ErrLivestockTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("livestock type", "name", name))
			return
		}

		err = fmt.Errorf("HandleResetCost -> h.svc.ResetCost -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "cost of living reset"})
}

// HandleSell godoc
// @Summary      Sell livestock
// @Description  Records a sale with the cost per unit frozen at sale time and decrements the type's quantity, all in one transaction
// @Tags         livestock
// @Accept       json
// @Produce      json
// @Param        name   path      string                        true  "Livestock type name"
// @Param        input  body      request.SellLivestockRequest  true  "Sale details"
// @Success      201    {object}  domain.LivestockSale
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /livestock-types/{name}/sales [post]
func (h *LivestockHandler) HandleSell(ctx *gin.Context) {
	name := ctx.Param("name")

	var req request.SellLivestockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sale, err := h.svc.Sell(ctx.Request.Context(), name, req.Quantity, req.SalePrice, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLivestockTypeNotFound):
			response.RenderErr(ctx, response.ErrNotFound("livestock type", "name", name))
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

// HandleRecordLoss godoc
// @Summary      Record a livestock loss
// @Description  Decrements the named type's quantity without creating any sale or cost record
// @Tags         livestock
// @Accept       json
// @Produce      json
// @Param        name   path      string                     true  "Livestock type name"
// @Param        input  body      request.RecordLossRequest  true  "Loss details"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /livestock-types/{name}/losses [post]
func (h *LivestockHandler) HandleRecordLoss(ctx *gin.Context) {
	name := ctx.Param("name")

	var req request.RecordLossRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.RecordLoss(ctx.Request.Context(), name, req.Quantity); err != nil {
		switch {
		case errors.Is(err, service.ErrLivestockTypeNotFound):
			response.RenderErr(ctx, response.ErrNotFound("livestock type", "name", name))
		case errors.Is(err, service.ErrInsufficientStock):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleRecordLoss -> h.svc.RecordLoss -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "loss recorded"})
}

// HandleResetAllSales godoc
// @Summary      Reset all livestock sales
// @Description  Deletes every livestock sale record and restores the sold quantities back to their types in one transaction
// @Tags         livestock
// @Produce      json
// @Success      200
// @Failure      500  {object}  response.Err
// @Router       /livestock-sales [delete]
func (h *LivestockHandler) HandleResetAllSales(ctx *gin.Context) {
	if err := h.svc.ResetAllSales(ctx.Request.Context()); err != nil {
		err = fmt.Errorf("HandleResetAllSales -> h.svc.ResetAllSales -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "all livestock sales reset"})
}

// HandleGetAnimals godoc
// @Summary      Get animals
// @Description  Retrieves every registered animal plus the per-type balance summary
// @Tags         animals
// @Produce      json
// @Success      200  {object}  response.AnimalsOverview
// @Failure      500  {object}  response.Err
// @Router       /animals [get]
func (h *LivestockHandler) HandleGetAnimals(ctx *gin.Context) {
	animals, summary, err := h.svc.GetAnimals(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetAnimals -> h.svc.GetAnimals -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.AnimalsOverview{
		Animals: animals,
		Summary: summary,
	})
}

// HandleRegisterAnimal godoc
// @Summary      Register an animal
// @Description  Creates an individual animal record and bumps its type's quantity and purchase cost, creating the type if it does not exist yet
// @Tags         animals
// @Accept       json
// @Produce      json
// @Param        input  body      request.RegisterAnimalRequest  true  "Animal details"
// @Success      201    {object}  domain.Animal
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /animals [post]
func (h *LivestockHandler) HandleRegisterAnimal(ctx *gin.Context) {
	var req request.RegisterAnimalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	animal, err := h.svc.RegisterAnimal(ctx.Request.Context(), domain.Animal{
		TypeName:      req.Type,
		PurchasePrice: req.PurchasePrice,
		FeedCost:      req.FeedCost,
		Production:    req.Production,
		ParentID:      req.ParentID,
	})
	if err != nil {
		err = fmt.Errorf("HandleRegisterAnimal -> h.svc.RegisterAnimal -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, animal)
}

// HandleUpdateAnimal godoc
// @Summary      Update an animal
// @Description  Updates the feed cost and/or production note of an animal
// @Tags         animals
// @Accept       json
// @Produce      json
// @Param        animalID  path      int                          true  "Animal ID"
// @Param        input     body      request.UpdateAnimalRequest  true  "Fields to update"
// @Success      200       {object}  domain.Animal
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /animals/{animalID} [put]
func (h *LivestockHandler) HandleUpdateAnimal(ctx *gin.Context) {
	animalID, err := strconv.ParseUint(ctx.Param("animalID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid animal ID: %w", err)))
		return
	}

	var req request.UpdateAnimalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	animal, err := h.svc.UpdateAnimal(ctx.Request.Context(), uint(animalID), req.FeedCost, req.Production)
	if err != nil {
		if errors.Is(err, service.ErrAnimalNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("animal", "ID", animalID))
			return
		}

		err = fmt.Errorf("HandleUpdateAnimal -> h.svc.UpdateAnimal -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, animal)
}

// HandleDeleteAnimal godoc
// @Summary      Delete an animal
// @Description  Removes the individual animal record. Type balances stay untouched; losses are recorded separately.
// @Tags         animals
// @Produce      json
// @Param        animalID  path  int  true  "Animal ID"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /animals/{animalID} [delete]
func (h *LivestockHandler) HandleDeleteAnimal(ctx *gin.Context) {
	animalID, err := strconv.ParseUint(ctx.Param("animalID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid animal ID: %w", err)))
		return
	}

	if err := h.svc.DeleteAnimal(ctx.Request.Context(), uint(animalID)); err != nil {
		if errors.Is(err, service.ErrAnimalNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("animal", "ID", animalID))
			return
		}

		err = fmt.Errorf("HandleDeleteAnimal -> h.svc.DeleteAnimal -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "animal deleted"})
}
