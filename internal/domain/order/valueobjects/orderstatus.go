package valueobjects

// OrderStatus is the local order lifecycle status. The uppercase wire values
// are part of the persisted schema and the public API.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusApproved  OrderStatus = "APPROVED"
	OrderStatusRejected  OrderStatus = "REJECTED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusRejected, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

func (s OrderStatus) IsApproved() bool {
	return s == OrderStatusApproved
}

func (s OrderStatus) IsPending() bool {
	return s == OrderStatusPending
}

// IsFinal reports whether the status is terminal. Final orders ignore
// further provider notifications unless regression is explicitly allowed.
func (s OrderStatus) IsFinal() bool {
	return s == OrderStatusApproved || s == OrderStatusRejected || s == OrderStatusCancelled
}

func (s OrderStatus) String() string {
	return string(s)
}

// OrderStatusFromProvider maps an authoritative provider payment status to
// the local order status. The second return is false for statuses the
// mapping does not recognize; those notifications are acknowledged without
// touching the order.
func OrderStatusFromProvider(providerStatus string) (OrderStatus, bool) {
	switch providerStatus {
	case "approved":
		return OrderStatusApproved, true
	case "rejected", "cancelled", "refunded":
		return OrderStatusRejected, true
	case "pending", "in_process":
		return OrderStatusPending, true
	default:
		return "", false
	}
}
