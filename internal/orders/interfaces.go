package orders

import (
	"context"

	"github.com/motorhaus-io/motorhaus-backend/pkg/db/models"
	"github.com/motorhaus-io/motorhaus-backend/pkg/enums"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the order tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Order, error)
	ListRecent(ctx context.Context, limit int) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uint, status enums.OrderStatus) (*models.Order, error)
	TotalSales(ctx context.Context, status enums.OrderStatus) (decimal.Decimal, error)
	CountByStatus(ctx context.Context, status enums.OrderStatus) (int64, error)
	ProductsSold(ctx context.Context, status enums.OrderStatus) (int64, error)
	RevenueByKind(ctx context.Context, status enums.OrderStatus, kind enums.ProductKind) (decimal.Decimal, error)
}
