package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jstore/internal/application/order/usecases"
	apperrors "jstore/internal/shared/errors"
)

type mockPurchaseInitiator struct {
	executeFunc func(ctx context.Context, cmd usecases.InitiatePurchaseCommand) (*usecases.InitiatePurchaseResult, error)
}

func (m *mockPurchaseInitiator) Execute(ctx context.Context, cmd usecases.InitiatePurchaseCommand) (*usecases.InitiatePurchaseResult, error) {
	return m.executeFunc(ctx, cmd)
}

type mockOrderStatusGetter struct {
	executeFunc func(ctx context.Context, cmd usecases.GetOrderStatusCommand) (*usecases.GetOrderStatusResult, error)
}

func (m *mockOrderStatusGetter) Execute(ctx context.Context, cmd usecases.GetOrderStatusCommand) (*usecases.GetOrderStatusResult, error) {
	return m.executeFunc(ctx, cmd)
}

type mockDownloadGetter struct {
	executeFunc func(ctx context.Context, cmd usecases.GetDownloadCommand) (*usecases.GetDownloadResult, error)
}

func (m *mockDownloadGetter) Execute(ctx context.Context, cmd usecases.GetDownloadCommand) (*usecases.GetDownloadResult, error) {
	return m.executeFunc(ctx, cmd)
}

func orderTestRouter(handler *OrderHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/purchase", handler.InitiatePurchase)
	router.GET("/orders/:id/status", handler.GetOrderStatus)
	router.GET("/orders/:id/download", handler.GetDownload)
	return router
}

func TestOrderHandler_InitiatePurchase(t *testing.T) {
	t.Run("returns redirect url", func(t *testing.T) {
		var captured usecases.InitiatePurchaseCommand
		handler := NewOrderHandler(&mockPurchaseInitiator{
			executeFunc: func(ctx context.Context, cmd usecases.InitiatePurchaseCommand) (*usecases.InitiatePurchaseResult, error) {
				captured = cmd
				return &usecases.InitiatePurchaseResult{
					OrderID:     "ord_abc123def456",
					RedirectURL: "https://mp.test/checkout/pref-1",
				}, nil
			},
		}, nil, nil, testLogger())

		body := []byte(`{"email":"buyer@example.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/purchase", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		orderTestRouter(handler).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, "buyer@example.com", captured.CustomerEmail)

		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				OrderID     string `json:"order_id"`
				RedirectURL string `json:"redirect_url"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "ord_abc123def456", resp.Data.OrderID)
		assert.Equal(t, "https://mp.test/checkout/pref-1", resp.Data.RedirectURL)
	})

	t.Run("empty body is allowed", func(t *testing.T) {
		handler := NewOrderHandler(&mockPurchaseInitiator{
			executeFunc: func(ctx context.Context, cmd usecases.InitiatePurchaseCommand) (*usecases.InitiatePurchaseResult, error) {
				assert.Empty(t, cmd.CustomerEmail)
				return &usecases.InitiatePurchaseResult{OrderID: "ord_x", RedirectURL: "https://mp.test/x"}, nil
			},
		}, nil, nil, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/purchase", nil)
		recorder := httptest.NewRecorder()
		orderTestRouter(handler).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		handler := NewOrderHandler(&mockPurchaseInitiator{
			executeFunc: func(ctx context.Context, cmd usecases.InitiatePurchaseCommand) (*usecases.InitiatePurchaseResult, error) {
				t.Fatal("usecase should not be called")
				return nil, nil
			},
		}, nil, nil, testLogger())

		body := []byte(`{"email":"not-an-email"}`)
		req := httptest.NewRequest(http.MethodPost, "/purchase", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		orderTestRouter(handler).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("gateway failure returns 500", func(t *testing.T) {
		handler := NewOrderHandler(&mockPurchaseInitiator{
			executeFunc: func(ctx context.Context, cmd usecases.InitiatePurchaseCommand) (*usecases.InitiatePurchaseResult, error) {
				return nil, apperrors.NewPaymentGatewayError("failed to create checkout preference")
			},
		}, nil, nil, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/purchase", nil)
		recorder := httptest.NewRecorder()
		orderTestRouter(handler).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestOrderHandler_GetOrderStatus(t *testing.T) {
	t.Run("returns status", func(t *testing.T) {
		handler := NewOrderHandler(nil, &mockOrderStatusGetter{
			executeFunc: func(ctx context.Context, cmd usecases.GetOrderStatusCommand) (*usecases.GetOrderStatusResult, error) {
				assert.Equal(t, "ord_abc123def456", cmd.OrderID)
				return &usecases.GetOrderStatusResult{
					OrderID:     cmd.OrderID,
					Status:      "APPROVED",
					ProductName: "JStore License",
					AmountCents: 4990,
					Currency:    "BRL",
				}, nil
			},
		}, nil, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/orders/ord_abc123def456/status", nil)
		recorder := httptest.NewRecorder()
		orderTestRouter(handler).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"status":"APPROVED"`)
	})

	t.Run("unknown order returns 404", func(t *testing.T) {
		handler := NewOrderHandler(nil, &mockOrderStatusGetter{
			executeFunc: func(ctx context.Context, cmd usecases.GetOrderStatusCommand) (*usecases.GetOrderStatusResult, error) {
				return nil, apperrors.NewNotFoundError("order not found")
			},
		}, nil, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/orders/ord_missing/status", nil)
		recorder := httptest.NewRecorder()
		orderTestRouter(handler).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestOrderHandler_GetDownload(t *testing.T) {
	t.Run("approved order gets download payload", func(t *testing.T) {
		handler := NewOrderHandler(nil, nil, &mockDownloadGetter{
			executeFunc: func(ctx context.Context, cmd usecases.GetDownloadCommand) (*usecases.GetDownloadResult, error) {
				return &usecases.GetDownloadResult{
					OrderID:      cmd.OrderID,
					InstallerURL: "https://cdn.store.test/installer.exe",
					TutorialHTML: "<h1>Install</h1>",
				}, nil
			},
		}, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/orders/ord_abc123def456/download", nil)
		recorder := httptest.NewRecorder()
		orderTestRouter(handler).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "installer.exe")
	})

	t.Run("unapproved order returns 403", func(t *testing.T) {
		handler := NewOrderHandler(nil, nil, &mockDownloadGetter{
			executeFunc: func(ctx context.Context, cmd usecases.GetDownloadCommand) (*usecases.GetDownloadResult, error) {
				return nil, apperrors.NewForbiddenError("order is not approved")
			},
		}, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/orders/ord_abc123def456/download", nil)
		recorder := httptest.NewRecorder()
		orderTestRouter(handler).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}
