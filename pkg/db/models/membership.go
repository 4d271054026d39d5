package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Membership is a catalog listing for a service membership plan. Quantity is
// always 1 on order lines referencing a membership.
type Membership struct {
	ID          uint            `gorm:"column:id;primaryKey"`
	Name        string          `gorm:"column:name;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Description *string         `gorm:"column:description"`
	Slug        *string         `gorm:"column:slug;unique"`
	Image       *string         `gorm:"column:image"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
