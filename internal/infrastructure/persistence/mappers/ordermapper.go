package mappers

import (
	"fmt"

	"jstore/internal/domain/order"
	"jstore/internal/domain/order/valueobjects"
	"jstore/internal/infrastructure/persistence/models"
)

// OrderMapper converts between order aggregates and persistence models.
type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

// ToModel converts a domain order to a persistence model
func (m *OrderMapper) ToModel(o *order.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:            o.ID(),
		SID:           o.SID(),
		Status:        o.Status().String(),
		PreferenceID:  o.PreferenceID(),
		PaymentID:     o.PaymentID(),
		CustomerEmail: o.CustomerEmail(),
		ProductName:   o.ProductName(),
		PriceCents:    o.Price().AmountInCents(),
		Currency:      o.Price().Currency(),
		Version:       o.Version(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

// ToDomain converts a persistence model to a domain order. A stored status
// outside the known set is a storage-level fault, not a valid order.
func (m *OrderMapper) ToDomain(model *models.OrderModel) (*order.Order, error) {
	status := valueobjects.OrderStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("order %s has unrecognized stored status %q", model.SID, model.Status)
	}

	price, err := valueobjects.NewMoney(model.PriceCents, model.Currency)
	if err != nil {
		return nil, fmt.Errorf("order %s has invalid stored price: %w", model.SID, err)
	}

	return order.ReconstructOrder(order.OrderReconstructParams{
		ID:            model.ID,
		SID:           model.SID,
		Status:        status,
		PreferenceID:  model.PreferenceID,
		PaymentID:     model.PaymentID,
		CustomerEmail: model.CustomerEmail,
		ProductName:   model.ProductName,
		Price:         price,
		Version:       model.Version,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}), nil
}
