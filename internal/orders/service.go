package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/motorhaus-io/motorhaus-backend/internal/users"
	"github.com/motorhaus-io/motorhaus-backend/pkg/db/models"
	"github.com/motorhaus-io/motorhaus-backend/pkg/enums"
	pkgerrors "github.com/motorhaus-io/motorhaus-backend/pkg/errors"
	"github.com/motorhaus-io/motorhaus-backend/pkg/metrics"
	"gorm.io/gorm"
)

// fallbackProductName replaces a line's display name when the referenced
// catalog row no longer exists.
const fallbackProductName = "Unknown Product"

const recentOrdersLimit = 5

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type pricer interface {
	Price(ctx context.Context, lines []CartLine) (*PricedCart, error)
}

type nameResolver interface {
	ResolveNames(ctx context.Context, kind enums.ProductKind, ids []uint) (map[uint]string, error)
}

// Service defines the order workflow operations exposed to controllers.
type Service interface {
	Checkout(ctx context.Context, input CheckoutInput) (uint, error)
	ListForUser(ctx context.Context, userID uint) ([]OrderView, error)
	Dashboard(ctx context.Context) (*DashboardView, error)
	SetStatus(ctx context.Context, orderID uint, requested string) (*StatusUpdateView, error)
}

type service struct {
	repo      Repository
	tx        txRunner
	pricer    pricer
	names     nameResolver
	addresses *users.AddressRepository
	metrics   *metrics.OrderMetrics
}

// ServiceParams bundles the dependencies required to build the orders service.
type ServiceParams struct {
	Repo      Repository
	Tx        txRunner
	Pricer    pricer
	Names     nameResolver
	Addresses *users.AddressRepository
	Metrics   *metrics.OrderMetrics
}

// NewService constructs the orders service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if params.Pricer == nil {
		return nil, fmt.Errorf("pricing engine required")
	}
	if params.Names == nil {
		return nil, fmt.Errorf("name resolver required")
	}
	if params.Addresses == nil {
		return nil, fmt.Errorf("address repository required")
	}
	return &service{
		repo:      params.Repo,
		tx:        params.Tx,
		pricer:    params.Pricer,
		names:     params.Names,
		addresses: params.Addresses,
		metrics:   params.Metrics,
	}, nil
}

// Checkout re-prices the cart from the catalogs and persists the order, its
// lines, and the delivery address in one transaction. Nothing is written when
// pricing fails, and a partial write failure rolls the whole order back.
func (s *service) Checkout(ctx context.Context, input CheckoutInput) (uint, error) {
	if input.UserID == 0 {
		s.metrics.IncCheckoutFailure("unauthorized")
		return 0, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if len(input.Cart) == 0 {
		s.metrics.IncCheckoutFailure("empty_cart")
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "cart must not be empty")
	}

	priced, err := s.pricer.Price(ctx, input.Cart)
	if err != nil {
		s.metrics.IncCheckoutFailure("pricing")
		return 0, err
	}

	var orderID uint
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		address, err := s.addresses.WithTx(tx).Create(ctx, input.UserID, input.Delivery)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create delivery address")
		}

		repo := s.repo.WithTx(tx)
		order, err := repo.CreateOrder(ctx, &models.Order{
			UserID:            input.UserID,
			DeliveryAddressID: &address.ID,
			TotalAmount:       priced.Total,
			Status:            enums.OrderStatusPending,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}

		items := make([]models.OrderItem, 0, len(priced.Lines))
		for _, line := range priced.Lines {
			items = append(items, models.OrderItem{
				OrderID:     order.ID,
				ProductID:   line.ProductID,
				ProductKind: line.SourceKind,
				Quantity:    line.Quantity,
				Price:       line.UnitPrice,
			})
		}
		if err := repo.CreateOrderItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order items")
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		s.metrics.IncCheckoutFailure("persistence")
		return 0, err
	}

	s.metrics.IncOrderCreated()
	return orderID, nil
}

// ListForUser returns the caller's orders, most recent first, with each line
// annotated with its catalog name or the unknown-product fallback.
func (s *service) ListForUser(ctx context.Context, userID uint) ([]OrderView, error) {
	if userID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return s.buildViews(ctx, orders)
}

// Dashboard aggregates delivered-order revenue, status counts, and the most
// recent orders for the admin dashboard. Empty tables produce zeros.
func (s *service) Dashboard(ctx context.Context) (*DashboardView, error) {
	totalSales, err := s.repo.TotalSales(ctx, enums.OrderStatusDelivered)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum delivered sales")
	}
	pending, err := s.repo.CountByStatus(ctx, enums.OrderStatusPending)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count pending orders")
	}
	completed, err := s.repo.CountByStatus(ctx, enums.OrderStatusDelivered)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count delivered orders")
	}
	sold, err := s.repo.ProductsSold(ctx, enums.OrderStatusDelivered)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum products sold")
	}
	vehicleRevenue, err := s.repo.RevenueByKind(ctx, enums.OrderStatusDelivered, enums.ProductKindVehicles)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum vehicle revenue")
	}
	accessoryRevenue, err := s.repo.RevenueByKind(ctx, enums.OrderStatusDelivered, enums.ProductKindAccessories)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum accessory revenue")
	}

	recent, err := s.repo.ListRecent(ctx, recentOrdersLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list recent orders")
	}
	recentViews, err := s.buildViews(ctx, recent)
	if err != nil {
		return nil, err
	}

	return &DashboardView{
		TotalSales:        totalSales,
		PendingCount:      pending,
		CompletedCount:    completed,
		ProductsSoldCount: sold,
		RecentOrders:      recentViews,
		RevenueByKind: RevenueByKind{
			Vehicles:    vehicleRevenue,
			Accessories: accessoryRevenue,
		},
	}, nil
}

// SetStatus normalizes the requested status (including the legacy
// "completed" alias) and applies it to the order.
func (s *service) SetStatus(ctx context.Context, orderID uint, requested string) (*StatusUpdateView, error) {
	status, err := enums.ParseOrderStatus(requested)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status").
			WithDetails(map[string]any{"status": requested})
	}

	order, err := s.repo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found").
				WithDetails(map[string]any{"order_id": orderID})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}

	s.metrics.IncStatusTransition(status.String())
	return &StatusUpdateView{
		ID:          order.ID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.OrderDate,
	}, nil
}

// buildViews annotates each order's lines with catalog names, batching one
// name lookup per kind across the whole result set.
func (s *service) buildViews(ctx context.Context, orders []models.Order) ([]OrderView, error) {
	idsByKind := map[enums.ProductKind][]uint{}
	seen := map[enums.ProductKind]map[uint]bool{}
	for _, order := range orders {
		for _, item := range order.Items {
			if seen[item.ProductKind] == nil {
				seen[item.ProductKind] = map[uint]bool{}
			}
			if seen[item.ProductKind][item.ProductID] {
				continue
			}
			seen[item.ProductKind][item.ProductID] = true
			idsByKind[item.ProductKind] = append(idsByKind[item.ProductKind], item.ProductID)
		}
	}

	namesByKind := map[enums.ProductKind]map[uint]string{}
	for kind, ids := range idsByKind {
		names, err := s.names.ResolveNames(ctx, kind, ids)
		if err != nil {
			return nil, err
		}
		namesByKind[kind] = names
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		items := make([]OrderItemView, 0, len(order.Items))
		for _, item := range order.Items {
			name, ok := namesByKind[item.ProductKind][item.ProductID]
			if !ok {
				name = fallbackProductName
			}
			items = append(items, OrderItemView{
				ID:          item.ID,
				ProductID:   item.ProductID,
				ProductKind: item.ProductKind,
				ProductName: name,
				Quantity:    item.Quantity,
				Price:       item.Price,
			})
		}
		views = append(views, OrderView{
			ID:                order.ID,
			Status:            order.Status,
			TotalAmount:       order.TotalAmount,
			DeliveryAddressID: order.DeliveryAddressID,
			OrderDate:         order.OrderDate,
			UpdatedAt:         order.UpdatedAt,
			Items:             items,
		})
	}
	return views, nil
}
