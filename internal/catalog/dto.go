package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSummary carries the fields the pricing engine needs from a catalog row.
type ProductSummary struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ProductView is the full catalog row shape returned by browse and admin reads.
type ProductView struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       *string         `json:"image,omitempty"`
	Description *string         `json:"description,omitempty"`
	Slug        *string         `json:"slug,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductInput captures the writable catalog fields for admin create/update.
type ProductInput struct {
	Name        string
	Price       decimal.Decimal
	Image       *string
	Description *string
	Slug        *string
}
