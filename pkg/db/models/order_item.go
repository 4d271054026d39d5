package models

import (
	"time"

	"github.com/motorhaus-io/motorhaus-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// OrderItem captures the snapshot of one cart line within an order. Price is
// the catalog unit price at order-creation time and is immutable afterwards,
// even if the catalog price changes. Items are only ever written as part of
// order creation.
type OrderItem struct {
	ID          uint              `gorm:"column:id;primaryKey"`
	OrderID     uint              `gorm:"column:order_id;not null"`
	ProductID   uint              `gorm:"column:product_id;not null"`
	ProductKind enums.ProductKind `gorm:"column:product_kind;type:product_kind;not null"`
	Quantity    int               `gorm:"column:quantity;not null"`
	Price       decimal.Decimal   `gorm:"column:price;type:numeric(10,2);not null"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
}
