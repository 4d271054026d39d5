package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle is a catalog listing for a car. Prices are authoritative here; order
// lines copy the price at checkout rather than referencing it.
type Vehicle struct {
	ID          uint            `gorm:"column:id;primaryKey"`
	Name        string          `gorm:"column:name;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Image       *string         `gorm:"column:image"`
	Description string          `gorm:"column:description;not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
