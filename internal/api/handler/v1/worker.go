package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farmstead/farmstead-api/internal/api/handler/v1/request"
	"github.com/farmstead/farmstead-api/internal/api/handler/v1/response"
	"github.com/farmstead/farmstead-api/internal/domain"
	"github.com/farmstead/farmstead-api/internal/service"
)

type WorkerService interface {
	GetAll(ctx context.Context) ([]domain.Worker, error)
	Create(ctx context.Context, w domain.Worker) (domain.Worker, error)
	Update(ctx context.Context, w domain.Worker) (domain.Worker, error)
	RecordPayment(ctx context.Context, p domain.SalaryPayment) (domain.SalaryPayment, error)
	GetAllPayments(ctx context.Context) ([]domain.SalaryPayment, error)
	GetAllRoles(ctx context.Context) ([]domain.Role, error)
	CreateRole(ctx context.Context, r domain.Role) (domain.Role, error)
	GetAllAreas(ctx context.Context) ([]domain.ResponsibilityArea, error)
	CreateArea(ctx context.Context, a domain.ResponsibilityArea) (domain.ResponsibilityArea, error)
}

type WorkerHandler struct {
	svc WorkerService
}

func NewWorkerHandler(svc WorkerService) *WorkerHandler {
	return &WorkerHandler{
		svc: svc,
	}
}

// HandleGetWorkers godoc
// @Summary      Get workers
// @Description  Retrieves all workers
// @Tags         workers
// @Produce      json
// @Success      200  {array}   domain.Worker
// @Failure      500  {object}  response.Err
// @Router       /workers [get]
func (h *WorkerHandler) HandleGetWorkers(ctx *gin.Context) {
	workers, err := h.svc.GetAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetWorkers -> h.svc.GetAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, workers)
}

// HandleCreateWorker godoc
// @Summary      Hire a worker
// @Description  Creates a worker with their role, payment type and wage. New workers start active.
// @Tags         workers
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateWorkerRequest  true  "Worker details"
// @Success      201    {object}  domain.Worker
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /workers [post]
func (h *WorkerHandler) HandleCreateWorker(ctx *gin.Context) {
	var req request.CreateWorkerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	worker, err := h.svc.Create(ctx.Request.Context(), domain.Worker{
		Name:        req.Name,
		Role:        req.Role,
		PaymentType: domain.PaymentType(req.PaymentType),
		Wage:        req.Wage,
		HoursWorked: req.HoursWorked,
		IsActive:    true,
	})
	if err != nil {
		err = fmt.Errorf("HandleCreateWorker -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, worker)
}

// HandleUpdateWorker godoc
// @Summary      Update a worker
// @Description  Overwrites the worker's details, including the active flag used to retire them
// @Tags         workers
// @Accept       json
// @Produce      json
// @Param        workerID  path      int                          true  "Worker ID"
// @Param        input     body      request.UpdateWorkerRequest  true  "Worker details"
// @Success      200       {object}  domain.Worker
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /workers/{workerID} [put]
func (h *WorkerHandler) HandleUpdateWorker(ctx *gin.Context) {
	workerID, err := strconv.ParseUint(ctx.Param("workerID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid worker ID: %w", err)))
		return
	}

	var req request.UpdateWorkerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	worker, err := h.svc.Update(ctx.Request.Context(), domain.Worker{
		ID:          uint(workerID),
		Name:        req.Name,
		Role:        req.Role,
		PaymentType: domain.PaymentType(req.PaymentType),
		Wage:        req.Wage,
		HoursWorked: req.HoursWorked,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if errors.Is(err, service.ErrWorkerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("worker", "ID", workerID))
			return
		}

		err = fmt.Errorf("HandleUpdateWorker -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, worker)
}

// HandleGetPayments godoc
// @Summary      Get salary payments
// @Description  Retrieves the full payroll history
// @Tags         workers
// @Produce      json
// @Success      200  {array}   domain.SalaryPayment
// @Failure      500  {object}  response.Err
// @Router       /salary-payments [get]
func (h *WorkerHandler) HandleGetPayments(ctx *gin.Context) {
	payments, err := h.svc.GetAllPayments(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetPayments -> h.svc.GetAllPayments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, payments)
}

// HandleRecordPayment godoc
// @Summary      Record a salary payment
// @Description  Appends a payroll entry. The worker must be active, the payment type must match the worker's configured type, and per-task payments need a task description.
// @Tags         workers
// @Accept       json
// @Produce      json
// @Param        input  body      request.RecordPaymentRequest  true  "Payment details"
// @Success      201    {object}  domain.SalaryPayment
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /salary-payments [post]
func (h *WorkerHandler) HandleRecordPayment(ctx *gin.Context) {
	var req request.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	paidAt, err := time.Parse(request.DateLayout, req.PaymentDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid payment date: %w", err)))
		return
	}

	payment, err := h.svc.RecordPayment(ctx.Request.Context(), domain.SalaryPayment{
		WorkerID:        req.WorkerID,
		Amount:          req.Amount,
		PaymentDate:     paidAt,
		PaymentType:     domain.PaymentType(req.PaymentType),
		TaskDescription: req.TaskDescription,
		Notes:           req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkerNotFound):
			response.RenderErr(ctx, response.ErrNotFound("worker", "ID", req.WorkerID))
		case errors.Is(err, service.ErrWorkerInactive),
			errors.Is(err, service.ErrPaymentTypeMismatch),
			errors.Is(err, service.ErrTaskDescriptionRequired),
			errors.Is(err, service.ErrInvalidAmount):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleRecordPayment -> h.svc.RecordPayment -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, payment)
}

// HandleGetRoles godoc
// @Summary      Get roles
// @Description  Retrieves the configured worker roles
// @Tags         workers
// @Produce      json
// @Success      200  {array}   domain.Role
// @Failure      500  {object}  response.Err
// @Router       /roles [get]
func (h *WorkerHandler) HandleGetRoles(ctx *gin.Context) {
	roles, err := h.svc.GetAllRoles(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetRoles -> h.svc.GetAllRoles -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, roles)
}

// HandleCreateRole godoc
// @Summary      Create a role
// @Description  Adds a worker role. Role names are unique.
// @Tags         workers
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateRoleRequest  true  "Role details"
// @Success      201    {object}  domain.Role
// @Failure      400    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /roles [post]
func (h *WorkerHandler) HandleCreateRole(ctx *gin.Context) {
	var req request.CreateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	role, err := h.svc.CreateRole(ctx.Request.Context(), domain.Role{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrRoleExists) {
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		err = fmt.Errorf("HandleCreateRole -> h.svc.CreateRole -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, role)
}

// HandleGetAreas godoc
// @Summary      Get responsibility areas
// @Description  Retrieves the configured responsibility areas
// @Tags         workers
// @Produce      json
// @Success      200  {array}   domain.ResponsibilityArea
// @Failure      500  {object}  response.Err
// @Router       /responsibility-areas [get]
func (h *WorkerHandler) HandleGetAreas(ctx *gin.Context) {
	areas, err := h.svc.GetAllAreas(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetAreas -> h.svc.GetAllAreas -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, areas)
}

// HandleCreateArea godoc
// @Summary      Create a responsibility area
// @Description  Adds a responsibility area. Area names are unique.
// @Tags         workers
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateAreaRequest  true  "Area details"
// @Success      201    {object}  domain.ResponsibilityArea
// @Failure      400    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /responsibility-areas [post]
func (h *WorkerHandler) HandleCreateArea(ctx *gin.Context) {
	var req request.CreateAreaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	area, err := h.svc.CreateArea(ctx.Request.Context(), domain.ResponsibilityArea{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrAreaExists) {
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		err = fmt.Errorf("HandleCreateArea -> h.svc.CreateArea -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, area)
}
