package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/farmstead/farmstead-api/internal/domain"
	"github.com/farmstead/farmstead-api/internal/service"
)

type fakeWorkerSvc struct {
	WorkerService

	recordPaymentFn func(ctx context.Context, p domain.SalaryPayment) (domain.SalaryPayment, error)
	createRoleFn    func(ctx context.Context, r domain.Role) (domain.Role, error)
}

func (f *fakeWorkerSvc) RecordPayment(ctx context.Context, p domain.SalaryPayment) (domain.SalaryPayment, error) {
	return f.recordPaymentFn(ctx, p)
}

func (f *fakeWorkerSvc) CreateRole(ctx context.Context, r domain.Role) (domain.Role, error) {
	return f.createRoleFn(ctx, r)
}

func setupWorkerRouter(svc WorkerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewWorkerHandler(svc)

	router.POST("/api/v1/salary-payments", handler.HandleRecordPayment)
	router.POST("/api/v1/roles", handler.HandleCreateRole)

	return router
}

func TestWorkerHandler_HandleRecordPayment(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
	}{
		{"valid payment", nil, http.StatusCreated},
		{"unknown worker", service.ErrWorkerNotFound, http.StatusNotFound},
		{"inactive worker", service.ErrWorkerInactive, http.StatusBadRequest},
		{"payment type mismatch", service.ErrPaymentTypeMismatch, http.StatusBadRequest},
		{"per-task payment without description", service.ErrTaskDescriptionRequired, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeWorkerSvc{
				recordPaymentFn: func(ctx context.Context, p domain.SalaryPayment) (domain.SalaryPayment, error) {
					if tt.svcErr != nil {
						return domain.SalaryPayment{}, tt.svcErr
					}
					p.ID = 1
					return p, nil
				},
			}
			router := setupWorkerRouter(svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/salary-payments",
				strings.NewReader(`{"worker_id":1,"amount":1200,"payment_date":"2025-03-31","payment_type":"Monthly"}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	t.Run("rejects an unknown payment type", func(t *testing.T) {
		router := setupWorkerRouter(&fakeWorkerSvc{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/salary-payments",
			strings.NewReader(`{"worker_id":1,"amount":1200,"payment_date":"2025-03-31","payment_type":"Hourly"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWorkerHandler_HandleCreateRole(t *testing.T) {
	t.Run("maps duplicate names to 409", func(t *testing.T) {
		svc := &fakeWorkerSvc{
			createRoleFn: func(ctx context.Context, r domain.Role) (domain.Role, error) {
				return domain.Role{}, service.ErrRoleExists
			},
		}
		router := setupWorkerRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/roles",
			strings.NewReader(`{"name":"Shepherd"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("creates a role", func(t *testing.T) {
		svc := &fakeWorkerSvc{
			createRoleFn: func(ctx context.Context, r domain.Role) (domain.Role, error) {
				r.ID = 1
				return r, nil
			},
		}
		router := setupWorkerRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/roles",
			strings.NewReader(`{"name":"Shepherd","description":"Tends the flock"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}
