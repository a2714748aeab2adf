package order

import "context"

// Repository persists order aggregates.
type Repository interface {
	Create(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	GetBySID(ctx context.Context, sid string) (*Order, error)
}
