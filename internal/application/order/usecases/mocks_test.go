package usecases

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"jstore/internal/application/order/paymentgateway"
	"jstore/internal/domain/order"
	"jstore/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockOrderRepository struct {
	createFunc   func(ctx context.Context, o *order.Order) error
	updateFunc   func(ctx context.Context, o *order.Order) error
	getBySIDFunc func(ctx context.Context, sid string) (*order.Order, error)
}

func (m *mockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) GetBySID(ctx context.Context, sid string) (*order.Order, error) {
	if m.getBySIDFunc != nil {
		return m.getBySIDFunc(ctx, sid)
	}
	return nil, errors.New("not implemented")
}

type mockPaymentGateway struct {
	createPreferenceFunc func(ctx context.Context, req paymentgateway.CreatePreferenceRequest) (*paymentgateway.CreatePreferenceResponse, error)
	getPaymentFunc       func(ctx context.Context, paymentID string) (*paymentgateway.PaymentInfo, error)
}

func (m *mockPaymentGateway) CreatePreference(ctx context.Context, req paymentgateway.CreatePreferenceRequest) (*paymentgateway.CreatePreferenceResponse, error) {
	if m.createPreferenceFunc != nil {
		return m.createPreferenceFunc(ctx, req)
	}
	return &paymentgateway.CreatePreferenceResponse{PreferenceID: "pref-test", RedirectURL: "https://checkout.test/pref-test"}, nil
}

func (m *mockPaymentGateway) GetPayment(ctx context.Context, paymentID string) (*paymentgateway.PaymentInfo, error) {
	if m.getPaymentFunc != nil {
		return m.getPaymentFunc(ctx, paymentID)
	}
	return nil, errors.New("not implemented")
}

// mockTxRunner runs the function directly. A non-nil err is returned
// after fn to simulate commit failures.
type mockTxRunner struct {
	err error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return m.err
}

type mockTutorialProvider struct {
	contentFunc func(ctx context.Context) (string, error)
}

func (m *mockTutorialProvider) Content(ctx context.Context) (string, error) {
	if m.contentFunc != nil {
		return m.contentFunc(ctx)
	}
	return "<h1>Getting Started</h1>", nil
}
