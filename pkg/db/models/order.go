package models

import (
	"time"

	"github.com/motorhaus-io/motorhaus-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Order is the persisted result of a checkout. TotalAmount is a snapshot
// computed at creation time; it is never recomputed from the items afterwards.
type Order struct {
	ID                uint              `gorm:"column:id;primaryKey"`
	UserID            uint              `gorm:"column:user_id;not null"`
	DeliveryAddressID *uint             `gorm:"column:delivery_address_id"`
	TotalAmount       decimal.Decimal   `gorm:"column:total_amount;type:numeric(10,2);not null"`
	Status            enums.OrderStatus `gorm:"column:status;type:order_status;not null;default:'pending'"`
	Items             []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	OrderDate         time.Time         `gorm:"column:order_date;autoCreateTime"`
	UpdatedAt         time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
