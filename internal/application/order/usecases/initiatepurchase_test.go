package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jstore/internal/application/order/paymentgateway"
	"jstore/internal/domain/order"
	apperrors "jstore/internal/shared/errors"
)

func purchaseConfig() PurchaseConfig {
	return PurchaseConfig{
		ProductName:     "JStore License",
		PriceCents:      4990,
		Currency:        "BRL",
		FrontendBaseURL: "https://store.test",
		NotifyURL:       "https://api.store.test/payment-notifications",
	}
}

func TestInitiatePurchaseUseCase_Execute(t *testing.T) {
	t.Run("creates order and preference", func(t *testing.T) {
		var created *order.Order
		var capturedReq paymentgateway.CreatePreferenceRequest

		repo := &mockOrderRepository{
			createFunc: func(ctx context.Context, o *order.Order) error {
				o.SetID(1)
				created = o
				return nil
			},
		}
		gateway := &mockPaymentGateway{
			createPreferenceFunc: func(ctx context.Context, req paymentgateway.CreatePreferenceRequest) (*paymentgateway.CreatePreferenceResponse, error) {
				capturedReq = req
				return &paymentgateway.CreatePreferenceResponse{
					PreferenceID: "pref-1",
					RedirectURL:  "https://checkout.test/pref-1",
				}, nil
			},
		}

		uc := NewInitiatePurchaseUseCase(repo, gateway, &mockTxRunner{}, purchaseConfig(), testLogger())
		result, err := uc.Execute(context.Background(), InitiatePurchaseCommand{CustomerEmail: "buyer@example.com"})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(result.OrderID, "ord_"))
		assert.Equal(t, "https://checkout.test/pref-1", result.RedirectURL)

		require.NotNil(t, created)
		assert.Equal(t, created.SID(), capturedReq.ExternalReference)
		assert.Equal(t, "JStore License", capturedReq.Title)
		assert.Equal(t, 1, capturedReq.Quantity)
		assert.Equal(t, int64(4990), capturedReq.UnitPriceCents)
		assert.Equal(t, "buyer@example.com", capturedReq.PayerEmail)
		assert.Contains(t, capturedReq.BackURLs.Success, "status=approved&order_id="+created.SID())
		assert.Equal(t, "https://api.store.test/payment-notifications", capturedReq.NotificationURL)

		require.NotNil(t, created.PreferenceID())
		assert.Equal(t, "pref-1", *created.PreferenceID())
	})

	t.Run("gateway failure surfaces as payment gateway error", func(t *testing.T) {
		var updateCalled bool
		repo := &mockOrderRepository{
			updateFunc: func(ctx context.Context, o *order.Order) error {
				updateCalled = true
				return nil
			},
		}
		gateway := &mockPaymentGateway{
			createPreferenceFunc: func(ctx context.Context, req paymentgateway.CreatePreferenceRequest) (*paymentgateway.CreatePreferenceResponse, error) {
				return nil, errors.New("provider timeout")
			},
		}

		uc := NewInitiatePurchaseUseCase(repo, gateway, &mockTxRunner{}, purchaseConfig(), testLogger())
		_, err := uc.Execute(context.Background(), InitiatePurchaseCommand{})
		require.Error(t, err)
		assert.True(t, apperrors.IsPaymentGatewayError(err))
		assert.False(t, updateCalled)
	})

	t.Run("create failure surfaces as storage error", func(t *testing.T) {
		repo := &mockOrderRepository{
			createFunc: func(ctx context.Context, o *order.Order) error {
				return errors.New("connection refused")
			},
		}

		uc := NewInitiatePurchaseUseCase(repo, &mockPaymentGateway{}, &mockTxRunner{}, purchaseConfig(), testLogger())
		_, err := uc.Execute(context.Background(), InitiatePurchaseCommand{})
		require.Error(t, err)
		assert.True(t, apperrors.IsStorageError(err))
	})

	t.Run("empty email is accepted", func(t *testing.T) {
		var created *order.Order
		repo := &mockOrderRepository{
			createFunc: func(ctx context.Context, o *order.Order) error {
				created = o
				return nil
			},
		}

		uc := NewInitiatePurchaseUseCase(repo, &mockPaymentGateway{}, &mockTxRunner{}, purchaseConfig(), testLogger())
		_, err := uc.Execute(context.Background(), InitiatePurchaseCommand{})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Nil(t, created.CustomerEmail())
	})
}
