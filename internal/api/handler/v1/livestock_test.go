package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmstead/farmstead-api/internal/domain"
	"github.com/farmstead/farmstead-api/internal/service"
)

type fakeLivestockSvc struct {
	LivestockService

	getOverviewFn func(ctx context.Context) ([]domain.LivestockType, []domain.LivestockSale, error)
	sellFn        func(ctx context.Context, typeName string, quantity int, salePrice decimal.Decimal, notes string) (domain.LivestockSale, error)
	upsertTypeFn  func(ctx context.Context, t domain.LivestockType) (domain.LivestockType, error)
	addCostFn     func(ctx context.Context, typeName string, amount decimal.Decimal, month, notes string) (domain.CostEntry, error)
	recordLossFn  func(ctx context.Context, typeName string, quantity int) error
}

func (f *fakeLivestockSvc) GetOverview(ctx context.Context) ([]domain.LivestockType, []domain.LivestockSale, error) {
	return f.getOverviewFn(ctx)
}

func (f *fakeLivestockSvc) Sell(ctx context.Context, typeName string, quantity int, salePrice decimal.Decimal, notes string) (domain.LivestockSale, error) {
	return f.sellFn(ctx, typeName, quantity, salePrice, notes)
}

func (f *fakeLivestockSvc) UpsertType(ctx context.Context, t domain.LivestockType) (domain.LivestockType, error) {
	return f.upsertTypeFn(ctx, t)
}

func (f *fakeLivestockSvc) AddCost(ctx context.Context, typeName string, amount decimal.Decimal, month, notes string) (domain.CostEntry, error) {
	return f.addCostFn(ctx, typeName, amount, month, notes)
}

func (f *fakeLivestockSvc) RecordLoss(ctx context.Context, typeName string, quantity int) error {
	return f.recordLossFn(ctx, typeName, quantity)
}

func setupLivestockRouter(svc LivestockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewLivestockHandler(svc)

	router.GET("/api/v1/livestock-types", handler.HandleGetLivestock)
	router.POST("/api/v1/livestock-types", handler.HandleUpsertType)
	router.POST("/api/v1/livestock-types/:name/costs", handler.HandleAddCost)
	router.POST("/api/v1/livestock-types/:name/sales", handler.HandleSell)
	router.POST("/api/v1/livestock-types/:name/losses", handler.HandleRecordLoss)

	return router
}

func TestLivestockHandler_HandleGetLivestock(t *testing.T) {
	svc := &fakeLivestockSvc{
		getOverviewFn: func(ctx context.Context) ([]domain.LivestockType, []domain.LivestockSale, error) {
			return []domain.LivestockType{{Name: "Sheep", Quantity: 10}},
				[]domain.LivestockSale{{TypeName: "Sheep", Quantity: 4}},
				nil
		},
	}
	router := setupLivestockRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/livestock-types", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Types []domain.LivestockType `json:"types"`
		Sales []domain.LivestockSale `json:"sales"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Types, 1)
	assert.Equal(t, "Sheep", body.Types[0].Name)
	require.Len(t, body.Sales, 1)
}

func TestLivestockHandler_HandleUpsertType(t *testing.T) {
	t.Run("creates a type", func(t *testing.T) {
		svc := &fakeLivestockSvc{
			upsertTypeFn: func(ctx context.Context, typ domain.LivestockType) (domain.LivestockType, error) {
				typ.ID = 1
				typ.InitialQuantity = typ.Quantity
				return typ, nil
			},
		}
		router := setupLivestockRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/livestock-types",
			strings.NewReader(`{"name":"Sheep","quantity":10,"total_purchase_cost":100}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		router := setupLivestockRouter(&fakeLivestockSvc{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/livestock-types",
			strings.NewReader(`{"quantity":10}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLivestockHandler_HandleAddCost(t *testing.T) {
	t.Run("rejects a malformed month label", func(t *testing.T) {
		router := setupLivestockRouter(&fakeLivestockSvc{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/livestock-types/Sheep/costs",
			strings.NewReader(`{"amount":100,"month":"March 2025"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("records a cost", func(t *testing.T) {
		svc := &fakeLivestockSvc{
			addCostFn: func(ctx context.Context, typeName string, amount decimal.Decimal, month, notes string) (domain.CostEntry, error) {
				return domain.CostEntry{TypeName: typeName, Amount: amount, Month: month}, nil
			},
		}
		router := setupLivestockRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/livestock-types/Sheep/costs",
			strings.NewReader(`{"amount":100,"month":"2025-03"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("maps unknown types to 404", func(t *testing.T) {
		svc := &fakeLivestockSvc{
			addCostFn: func(ctx context.Context, typeName string, amount decimal.Decimal, month, notes string) (domain.CostEntry, error) {
				return domain.CostEntry{}, service.ErrLivestockTypeNotFound
			},
		}
		router := setupLivestockRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/livestock-types/Goats/costs",
			strings.NewReader(`{"amount":100,"month":"2025-03"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLivestockHandler_HandleSell(t *testing.T) {
	t.Run("records a sale", func(t *testing.T) {
		svc := &fakeLivestockSvc{
			sellFn: func(ctx context.Context, typeName string, quantity int, salePrice decimal.Decimal, notes string) (domain.LivestockSale, error) {
				return domain.LivestockSale{
					TypeName:    typeName,
					Quantity:    quantity,
					SalePrice:   salePrice,
					CostPerUnit: decimal.NewFromInt(10),
				}, nil
			},
		}
		router := setupLivestockRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/livestock-types/Sheep/sales",
			strings.NewReader(`{"quantity":4,"sale_price":500}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var sale domain.LivestockSale
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sale))
		assert.Equal(t, 4, sale.Quantity)
	})

	t.Run("maps insufficient stock to 400", func(t *testing.T) {
		svc := &fakeLivestockSvc{
			sellFn: func(ctx context.Context, typeName string, quantity int, salePrice decimal.Decimal, notes string) (domain.LivestockSale, error) {
				return domain.LivestockSale{}, service.ErrInsufficientStock
			},
		}
		router := setupLivestockRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/livestock-types/Sheep/sales",
			strings.NewReader(`{"quantity":20,"sale_price":500}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body, "error")
	})

	t.Run("rejects a zero quantity", func(t *testing.T) {
		router := setupLivestockRouter(&fakeLivestockSvc{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/livestock-types/Sheep/sales",
			strings.NewReader(`{"quantity":0,"sale_price":500}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("accepts a zero-price sale", func(t *testing.T) {
		svc := &fakeLivestockSvc{
			sellFn: func(ctx context.Context, typeName string, quantity int, salePrice decimal.Decimal, notes string) (domain.LivestockSale, error) {
				return domain.LivestockSale{
					TypeName:  typeName,
					Quantity:  quantity,
					SalePrice: salePrice,
				}, nil
			},
		}
		router := setupLivestockRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/livestock-types/Sheep/sales",
			strings.NewReader(`{"quantity":2,"sale_price":0,"notes":"given to a neighbor"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var sale domain.LivestockSale
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sale))
		assert.True(t, sale.SalePrice.IsZero())
	})
}

func TestLivestockHandler_HandleRecordLoss(t *testing.T) {
	t.Run("accepts notes alongside the quantity", func(t *testing.T) {
		var gotQuantity int
		svc := &fakeLivestockSvc{
			recordLossFn: func(ctx context.Context, typeName string, quantity int) error {
				gotQuantity = quantity
				return nil
			},
		}
		router := setupLivestockRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/livestock-types/Sheep/losses",
			strings.NewReader(`{"quantity":2,"notes":"lost to wolves"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, gotQuantity)
	})

	t.Run("maps insufficient stock to 400", func(t *testing.T) {
		svc := &fakeLivestockSvc{
			recordLossFn: func(ctx context.Context, typeName string, quantity int) error {
				return service.ErrInsufficientStock
			},
		}
		router := setupLivestockRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/livestock-types/Sheep/losses",
			strings.NewReader(`{"quantity":50}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
