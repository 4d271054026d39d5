package orders

import (
	"time"

	"github.com/motorhaus-io/motorhaus-backend/internal/users"
	"github.com/motorhaus-io/motorhaus-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// CartLine is one client-submitted cart entry. The client never supplies a
// price; every line is re-priced from the catalog before persistence.
type CartLine struct {
	ProductID  uint              `json:"productId" validate:"required,gt=0"`
	Quantity   int               `json:"quantity" validate:"required,gte=1"`
	SourceKind enums.ProductKind `json:"sourceKind" validate:"required"`
}

// PricedLine carries a cart line with its catalog-resolved unit price.
type PricedLine struct {
	ProductID  uint              `json:"product_id"`
	SourceKind enums.ProductKind `json:"source_kind"`
	Name       string            `json:"name"`
	Quantity   int               `json:"quantity"`
	UnitPrice  decimal.Decimal   `json:"unit_price"`
	Extended   decimal.Decimal   `json:"extended"`
}

// PricedCart is the all-or-nothing result of re-pricing a cart.
type PricedCart struct {
	Lines       []PricedLine    `json:"lines"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}

// CheckoutInput bundles everything the checkout operation needs.
type CheckoutInput struct {
	UserID   uint
	Delivery users.DeliveryInfo
	Cart     []CartLine
}

// OrderItemView is one persisted order line with its display name resolved.
type OrderItemView struct {
	ID          uint              `json:"id"`
	ProductID   uint              `json:"product_id"`
	ProductKind enums.ProductKind `json:"product_kind"`
	ProductName string            `json:"product_name"`
	Quantity    int               `json:"quantity"`
	Price       decimal.Decimal   `json:"price"`
}

// OrderView is the order shape returned by the listing and dashboard reads.
type OrderView struct {
	ID                uint              `json:"id"`
	Status            enums.OrderStatus `json:"status"`
	TotalAmount       decimal.Decimal   `json:"total_amount"`
	DeliveryAddressID *uint             `json:"delivery_address_id,omitempty"`
	OrderDate         time.Time         `json:"order_date"`
	UpdatedAt         time.Time         `json:"updated_at"`
	Items             []OrderItemView   `json:"items"`
}

// StatusUpdateView is the payload returned after a status transition.
type StatusUpdateView struct {
	ID          uint              `json:"id"`
	Status      enums.OrderStatus `json:"status"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	CreatedAt   time.Time         `json:"created_at"`
}

// RevenueByKind reports dashboard revenue split across the physical catalogs.
type RevenueByKind struct {
	Vehicles    decimal.Decimal `json:"vehicles"`
	Accessories decimal.Decimal `json:"accessories"`
}

// DashboardView aggregates order state for the admin dashboard.
type DashboardView struct {
	TotalSales        decimal.Decimal `json:"total_sales"`
	PendingCount      int64           `json:"pending_count"`
	CompletedCount    int64           `json:"completed_count"`
	ProductsSoldCount int64           `json:"products_sold_count"`
	RecentOrders      []OrderView     `json:"recent_orders"`
	RevenueByKind     RevenueByKind   `json:"revenue_by_kind"`
}
