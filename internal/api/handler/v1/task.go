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

type TaskService interface {
	GetAll(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, t domain.Task) (domain.Task, error)
	Update(ctx context.Context, id uint, title, description, taskTime *string, taskDate *time.Time, status, recurrence *string) (domain.Task, error)
	Delete(ctx context.Context, id uint) error
	Calendar(ctx context.Context, from, to time.Time) ([]service.TaskOccurrence, error)
}

type TaskHandler struct {
	svc TaskService
}

func NewTaskHandler(svc TaskService) *TaskHandler {
	return &TaskHandler{
		svc: svc,
	}
}

// HandleGetTasks godoc
// @Summary      Get tasks
// @Description  Retrieves all tasks ordered by date
// @Tags         tasks
// @Produce      json
// @Success      200  {array}   domain.Task
// @Failure      500  {object}  response.Err
// @Router       /tasks [get]
func (h *TaskHandler) HandleGetTasks(ctx *gin.Context) {
	tasks, err := h.svc.GetAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetTasks -> h.svc.GetAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

// HandleCreateTask godoc
// @Summary      Create a task
// @Description  Creates a task, defaulting to Pending status and no recurrence
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateTaskRequest  true  "Task details"
// @Success      201    {object}  domain.Task
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /tasks [post]
func (h *TaskHandler) HandleCreateTask(ctx *gin.Context) {
	var req request.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	taskDate, err := time.Parse(request.DateLayout, req.TaskDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid task date: %w", err)))
		return
	}

	task, err := h.svc.Create(ctx.Request.Context(), domain.Task{
		Title:       req.Title,
		Description: req.Description,
		TaskDate:    taskDate,
		Time:        req.Time,
		Status:      domain.TaskStatus(req.Status),
		Recurrence:  domain.Recurrence(req.Recurrence),
	})
	if err != nil {
		err = fmt.Errorf("HandleCreateTask -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, task)
}

// HandleUpdateTask godoc
// @Summary      Update a task
// @Description  Updates only the provided fields of a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        taskID  path      int                        true  "Task ID"
// @Param        input   body      request.UpdateTaskRequest  true  "Fields to update"
// @Success      200     {object}  domain.Task
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /tasks/{taskID} [put]
func (h *TaskHandler) HandleUpdateTask(ctx *gin.Context) {
	taskID, err := strconv.ParseUint(ctx.Param("taskID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid task ID: %w", err)))
		return
	}

	var req request.UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var taskDate *time.Time
	if req.TaskDate != nil {
		parsed, err := time.Parse(request.DateLayout, *req.TaskDate)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid task date: %w", err)))
			return
		}
		taskDate = &parsed
	}

	task, err := h.svc.Update(ctx.Request.Context(), uint(taskID), req.Title, req.Description, req.Time, taskDate, req.Status, req.Recurrence)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("task", "ID", taskID))
			return
		}

		err = fmt.Errorf("HandleUpdateTask -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, task)
}

// HandleDeleteTask godoc
// @Summary      Delete a task
// @Description  Removes a task and all of its future occurrences
// @Tags         tasks
// @Produce      json
// @Param        taskID  path  int  true  "Task ID"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tasks/{taskID} [delete]
func (h *TaskHandler) HandleDeleteTask(ctx *gin.Context) {
	taskID, err := strconv.ParseUint(ctx.Param("taskID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid task ID: %w", err)))
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), uint(taskID)); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("task", "ID", taskID))
			return
		}

		err = fmt.Errorf("HandleDeleteTask -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}

// HandleGetCalendar godoc
// @Summary      Get the task calendar
// @Description  Expands recurring tasks into concrete occurrences within the requested window
// @Tags         tasks
// @Produce      json
// @Param        from  query     string  true  "Window start (YYYY-MM-DD)"
// @Param        to    query     string  true  "Window end (YYYY-MM-DD)"
// @Success      200   {array}   response.CalendarEntry
// @Failure      400   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /tasks/calendar [get]
func (h *TaskHandler) HandleGetCalendar(ctx *gin.Context) {
	from, err := time.Parse(request.DateLayout, ctx.Query("from"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid from date: %w", err)))
		return
	}

	to, err := time.Parse(request.DateLayout, ctx.Query("to"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid to date: %w", err)))
		return
	}

	occurrences, err := h.svc.Calendar(ctx.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPeriod) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleGetCalendar -> h.svc.Calendar -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	entries := make([]response.CalendarEntry, 0, len(occurrences))
	for _, o := range occurrences {
		entries = append(entries, response.CalendarEntry{
			Date: o.Date.Format(request.DateLayout),
			Task: o.Task,
		})
	}

	ctx.JSON(http.StatusOK, entries)
}
