package orders

import (
	"context"
	"testing"
	"time"

	"github.com/motorhaus-io/motorhaus-backend/pkg/db/models"
	"github.com/motorhaus-io/motorhaus-backend/pkg/enums"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateOrderAndItemsRoundTrip(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := seedTestUser(t, db, "roundtrip@example.com")
	order, err := repo.CreateOrder(ctx, &models.Order{
		UserID:      user.ID,
		TotalAmount: decimal.RequireFromString("50005.00"),
		Status:      enums.OrderStatusPending,
	})
	require.NoError(t, err)
	require.NotZero(t, order.ID)

	require.NoError(t, repo.CreateOrderItems(ctx, []models.OrderItem{
		{OrderID: order.ID, ProductID: 1, ProductKind: enums.ProductKindVehicles, Quantity: 1, Price: decimal.RequireFromString("50000.00")},
	}))

	loaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPending, loaded.Status)
	assert.True(t, loaded.TotalAmount.Equal(decimal.RequireFromString("50005.00")))
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, uint(1), loaded.Items[0].ProductID)
	assert.True(t, loaded.Items[0].Price.Equal(decimal.RequireFromString("50000.00")))
}

func TestListByUserMostRecentFirstAndScoped(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	owner := seedTestUser(t, db, "owner@example.com")
	other := seedTestUser(t, db, "other@example.com")

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	older := seedOrder(t, db, owner.ID, enums.OrderStatusPending, "100.00", base)
	newer := seedOrder(t, db, owner.ID, enums.OrderStatusShipped, "200.00", base.Add(time.Hour))
	seedOrder(t, db, other.ID, enums.OrderStatusPending, "300.00", base.Add(2*time.Hour))

	orders, err := repo.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)
}

func TestListRecentLimitsResults(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := seedTestUser(t, db, "recent@example.com")
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		seedOrder(t, db, user.ID, enums.OrderStatusPending, "10.00", base.Add(time.Duration(i)*time.Minute))
	}

	orders, err := repo.ListRecent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, orders, 5)
	for i := 1; i < len(orders); i++ {
		assert.True(t, !orders[i-1].OrderDate.Before(orders[i].OrderDate))
	}
}

func TestUpdateStatusMutatesOnlyStatus(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := seedTestUser(t, db, "status@example.com")
	created := time.Date(2026, 7, 15, 9, 30, 0, 0, time.UTC)
	order := seedOrder(t, db, user.ID, enums.OrderStatusPending, "99.00", created)

	updated, err := repo.UpdateStatus(ctx, order.ID, enums.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusShipped, updated.Status)
	assert.True(t, updated.TotalAmount.Equal(decimal.RequireFromString("99.00")))
	assert.True(t, updated.OrderDate.Equal(created))
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	_, err := repo.UpdateStatus(context.Background(), 9999, enums.OrderStatusDelivered)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAggregatesCountDeliveredOrdersOnly(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := seedTestUser(t, db, "agg@example.com")
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	delivered := seedOrder(t, db, user.ID, enums.OrderStatusDelivered, "100.00", base)
	seedOrderItem(t, db, delivered.ID, 1, enums.ProductKindVehicles, 3, "10.00")
	seedOrderItem(t, db, delivered.ID, 2, enums.ProductKindAccessories, 2, "7.50")

	pending := seedOrder(t, db, user.ID, enums.OrderStatusPending, "40.00", base.Add(time.Minute))
	seedOrderItem(t, db, pending.ID, 1, enums.ProductKindVehicles, 1, "35.00")

	totalSales, err := repo.TotalSales(ctx, enums.OrderStatusDelivered)
	require.NoError(t, err)
	assert.True(t, totalSales.Equal(decimal.RequireFromString("100.00")))

	pendingCount, err := repo.CountByStatus(ctx, enums.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pendingCount)

	deliveredCount, err := repo.CountByStatus(ctx, enums.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deliveredCount)

	sold, err := repo.ProductsSold(ctx, enums.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, int64(5), sold)
}

func TestRevenueByKindSumsUnitPriceNotExtended(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := seedTestUser(t, db, "quirk@example.com")
	delivered := seedOrder(t, db, user.ID, enums.OrderStatusDelivered, "35.00", time.Now().UTC())
	seedOrderItem(t, db, delivered.ID, 1, enums.ProductKindVehicles, 3, "10.00")

	revenue, err := repo.RevenueByKind(ctx, enums.OrderStatusDelivered, enums.ProductKindVehicles)
	require.NoError(t, err)
	// unit price only, never price x quantity
	assert.True(t, revenue.Equal(decimal.RequireFromString("10.00")))
}

func TestAggregatesZeroState(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	totalSales, err := repo.TotalSales(ctx, enums.OrderStatusDelivered)
	require.NoError(t, err)
	assert.True(t, totalSales.IsZero())

	count, err := repo.CountByStatus(ctx, enums.OrderStatusPending)
	require.NoError(t, err)
	assert.Zero(t, count)

	sold, err := repo.ProductsSold(ctx, enums.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Zero(t, sold)

	revenue, err := repo.RevenueByKind(ctx, enums.OrderStatusDelivered, enums.ProductKindAccessories)
	require.NoError(t, err)
	assert.True(t, revenue.IsZero())
}
