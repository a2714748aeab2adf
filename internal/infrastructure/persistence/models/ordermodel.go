package models

import "time"

// OrderModel is the GORM persistence model for orders.
type OrderModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	SID           string    `gorm:"column:sid;size:32;uniqueIndex:uk_orders_sid;not null"`
	Status        string    `gorm:"size:16;not null;default:'PENDING';index:idx_orders_status"`
	PreferenceID  *string   `gorm:"column:preference_id;size:128"`
	PaymentID     *string   `gorm:"column:payment_id;size:64;index:idx_orders_payment_id"`
	CustomerEmail *string   `gorm:"column:customer_email;size:255"`
	ProductName   string    `gorm:"column:product_name;size:255;not null"`
	PriceCents    int64     `gorm:"column:price_cents;not null"`
	Currency      string    `gorm:"size:8;not null;default:'BRL'"`
	Version       int       `gorm:"not null;default:1"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for OrderModel
func (OrderModel) TableName() string {
	return "orders"
}
