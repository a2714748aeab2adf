package usecases

import (
	"context"
	"time"

	"jstore/internal/domain/order"
	apperrors "jstore/internal/shared/errors"
	"jstore/internal/shared/logger"
)

type GetOrderStatusCommand struct {
	OrderID string
}

type GetOrderStatusResult struct {
	OrderID     string
	Status      string
	ProductName string
	AmountCents int64
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GetOrderStatusUseCase returns the current lifecycle state of an order
// for storefront polling.
type GetOrderStatusUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewGetOrderStatusUseCase(orderRepo order.Repository, logger logger.Interface) *GetOrderStatusUseCase {
	return &GetOrderStatusUseCase{orderRepo: orderRepo, logger: logger}
}

func (uc *GetOrderStatusUseCase) Execute(ctx context.Context, cmd GetOrderStatusCommand) (*GetOrderStatusResult, error) {
	if cmd.OrderID == "" {
		return nil, apperrors.NewValidationError("order id is required")
	}

	o, err := uc.orderRepo.GetBySID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	return &GetOrderStatusResult{
		OrderID:     o.SID(),
		Status:      o.Status().String(),
		ProductName: o.ProductName(),
		AmountCents: o.Price().AmountInCents(),
		Currency:    o.Price().Currency(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}, nil
}
