package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_IsFinal(t *testing.T) {
	tests := []struct {
		name   string
		status OrderStatus
		want   bool
	}{
		{"pending is not final", OrderStatusPending, false},
		{"approved is final", OrderStatusApproved, true},
		{"rejected is final", OrderStatusRejected, true},
		{"cancelled is final", OrderStatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsFinal())
		})
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusApproved.IsValid())
	assert.False(t, OrderStatus("approved").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrderStatusFromProvider(t *testing.T) {
	tests := []struct {
		name           string
		providerStatus string
		want           OrderStatus
		wantMapped     bool
	}{
		{"approved maps to approved", "approved", OrderStatusApproved, true},
		{"rejected maps to rejected", "rejected", OrderStatusRejected, true},
		{"cancelled maps to rejected", "cancelled", OrderStatusRejected, true},
		{"refunded maps to rejected", "refunded", OrderStatusRejected, true},
		{"pending maps to pending", "pending", OrderStatusPending, true},
		{"in_process maps to pending", "in_process", OrderStatusPending, true},
		{"unknown status is unmapped", "charged_back", "", false},
		{"empty status is unmapped", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, mapped := OrderStatusFromProvider(tt.providerStatus)
			assert.Equal(t, tt.wantMapped, mapped)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewMoney(t *testing.T) {
	t.Run("defaults currency", func(t *testing.T) {
		m, err := NewMoney(4990, "")
		assert.NoError(t, err)
		assert.Equal(t, DefaultCurrency, m.Currency())
		assert.Equal(t, int64(4990), m.AmountInCents())
		assert.InDelta(t, 49.90, m.Amount(), 0.0001)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := NewMoney(-1, "BRL")
		assert.Error(t, err)
	})
}
