package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"jstore/internal/domain/order"
	"jstore/internal/infrastructure/persistence/mappers"
	"jstore/internal/infrastructure/persistence/models"
	sharedDB "jstore/internal/shared/db"
	apperrors "jstore/internal/shared/errors"
)

// OrderRepository implements order.Repository backed by GORM.
type OrderRepository struct {
	db     *gorm.DB
	mapper *mappers.OrderMapper
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		db:     db,
		mapper: mappers.NewOrderMapper(),
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	db := sharedDB.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(o)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	o.SetID(model.ID)
	return nil
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	db := sharedDB.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(o)
	result := db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":         model.Status,
			"preference_id":  model.PreferenceID,
			"payment_id":     model.PaymentID,
			"customer_email": model.CustomerEmail,
			"version":        model.Version,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("order not found")
	}
	return nil
}

func (r *OrderRepository) GetBySID(ctx context.Context, sid string) (*order.Order, error) {
	db := sharedDB.GetTxFromContext(ctx, r.db)

	var model models.OrderModel
	if err := db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to get order by sid: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
