package order

import (
	"fmt"
	"time"

	"jstore/internal/domain/order/valueobjects"
	"jstore/internal/shared/biztime"
	"jstore/internal/shared/id"
)

// StatusApplication is the outcome of applying a provider payment status
// to an order.
type StatusApplication int

const (
	// StatusApplied means the order status changed.
	StatusApplied StatusApplication = iota
	// StatusUnchanged means the incoming status equals the current one.
	StatusUnchanged
	// StatusSuppressed means the order is already final and the incoming
	// status was discarded.
	StatusSuppressed
)

func (a StatusApplication) String() string {
	switch a {
	case StatusApplied:
		return "applied"
	case StatusUnchanged:
		return "unchanged"
	case StatusSuppressed:
		return "suppressed"
	default:
		return "unknown"
	}
}

// Order is the purchase aggregate. Its SID doubles as the external
// reference sent to the payment provider, so notifications can be
// correlated back without storing provider-side state.
type Order struct {
	id            uint
	sid           string
	status        valueobjects.OrderStatus
	preferenceID  *string
	paymentID     *string
	customerEmail *string
	productName   string
	price         valueobjects.Money
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

func NewOrder(productName string, price valueobjects.Money, customerEmail *string) (*Order, error) {
	if productName == "" {
		return nil, fmt.Errorf("product name cannot be empty")
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("price must be positive")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixOrder, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order sid: %w", err)
	}

	now := biztime.NowUTC()
	return &Order{
		sid:           sid,
		status:        valueobjects.OrderStatusPending,
		customerEmail: customerEmail,
		productName:   productName,
		price:         price,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// AttachPreference records the checkout preference created at the provider.
// The preference is write-once; an order is never re-submitted for checkout.
func (o *Order) AttachPreference(preferenceID string) error {
	if preferenceID == "" {
		return fmt.Errorf("preference id cannot be empty")
	}
	if o.preferenceID != nil {
		return fmt.Errorf("order %s already has a preference attached", o.sid)
	}
	o.preferenceID = &preferenceID
	o.touch()
	return nil
}

// ApplyPaymentStatus reconciles an authoritative provider status into the
// order. Because notifications arrive at least once and out of order, the
// transition is idempotent and, unless allowRegression is set, a final
// status is never overwritten.
func (o *Order) ApplyPaymentStatus(next valueobjects.OrderStatus, paymentID string, allowRegression bool) (StatusApplication, error) {
	if !next.IsValid() {
		return StatusUnchanged, fmt.Errorf("invalid order status: %s", next)
	}

	if next == o.status {
		// Same status can still carry a newly seen payment id.
		o.recordPaymentID(paymentID)
		return StatusUnchanged, nil
	}

	if o.status.IsFinal() && !allowRegression {
		return StatusSuppressed, nil
	}

	o.status = next
	o.recordPaymentID(paymentID)
	o.touch()
	return StatusApplied, nil
}

// recordPaymentID keeps the most recently reported payment id. When a
// different id was already stored the newer one wins.
func (o *Order) recordPaymentID(paymentID string) {
	if paymentID == "" {
		return
	}
	if o.paymentID != nil && *o.paymentID == paymentID {
		return
	}
	o.paymentID = &paymentID
	o.touch()
}

func (o *Order) touch() {
	o.updatedAt = biztime.NowUTC()
	o.version++
}

func (o *Order) ID() uint                         { return o.id }
func (o *Order) SID() string                      { return o.sid }
func (o *Order) Status() valueobjects.OrderStatus { return o.status }
func (o *Order) PreferenceID() *string            { return o.preferenceID }
func (o *Order) PaymentID() *string               { return o.paymentID }
func (o *Order) CustomerEmail() *string           { return o.customerEmail }
func (o *Order) ProductName() string              { return o.productName }
func (o *Order) Price() valueobjects.Money        { return o.price }
func (o *Order) Version() int                     { return o.version }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) UpdatedAt() time.Time             { return o.updatedAt }
func (o *Order) IsApproved() bool                 { return o.status.IsApproved() }

// SetID assigns the database identity after the initial insert.
func (o *Order) SetID(dbID uint) {
	o.id = dbID
}

// OrderReconstructParams carries persisted state back into the aggregate.
type OrderReconstructParams struct {
	ID            uint
	SID           string
	Status        valueobjects.OrderStatus
	PreferenceID  *string
	PaymentID     *string
	CustomerEmail *string
	ProductName   string
	Price         valueobjects.Money
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ReconstructOrder rebuilds an order from storage without validation side
// effects.
func ReconstructOrder(params OrderReconstructParams) *Order {
	return &Order{
		id:            params.ID,
		sid:           params.SID,
		status:        params.Status,
		preferenceID:  params.PreferenceID,
		paymentID:     params.PaymentID,
		customerEmail: params.CustomerEmail,
		productName:   params.ProductName,
		price:         params.Price,
		version:       params.Version,
		createdAt:     params.CreatedAt,
		updatedAt:     params.UpdatedAt,
	}
}
