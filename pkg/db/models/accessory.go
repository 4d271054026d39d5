package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Accessory is a catalog listing for a vehicle accessory.
type Accessory struct {
	ID          uint            `gorm:"column:id;primaryKey"`
	Name        string          `gorm:"column:name;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Image       *string         `gorm:"column:image"`
	Description string          `gorm:"column:description;not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
