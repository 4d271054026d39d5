package controllers

import (
	"net/http"
	"time"

	"github.com/motorhaus-io/motorhaus-backend/api/middleware"
	"github.com/motorhaus-io/motorhaus-backend/api/responses"
	"github.com/motorhaus-io/motorhaus-backend/api/validators"
	"github.com/motorhaus-io/motorhaus-backend/internal/orders"
	"github.com/motorhaus-io/motorhaus-backend/internal/users"
	pkgerrors "github.com/motorhaus-io/motorhaus-backend/pkg/errors"
	"github.com/motorhaus-io/motorhaus-backend/pkg/logger"
	"github.com/motorhaus-io/motorhaus-backend/pkg/metrics"
)

type deliveryRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=255"`
	Address string  `json:"address" validate:"required,min=1"`
	City    string  `json:"city" validate:"required,min=1"`
	Country string  `json:"country" validate:"required,min=1"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

type checkoutRequest struct {
	Delivery deliveryRequest   `json:"deliveryInfo" validate:"required"`
	Carts    []orders.CartLine `json:"carts" validate:"required,dive"`
}

type checkoutResponse struct {
	OrderID uint `json:"orderId"`
}

type statusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

// Checkout reprices the submitted cart and persists the resulting order.
func Checkout(svc orders.Service, m *metrics.OrderMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var body checkoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		start := time.Now()
		orderID, err := svc.Checkout(r.Context(), orders.CheckoutInput{
			UserID: middleware.UserIDFromContext(r.Context()),
			Delivery: users.DeliveryInfo{
				Name:    body.Delivery.Name,
				Address: body.Delivery.Address,
				City:    body.Delivery.City,
				Country: body.Delivery.Country,
				Phone:   body.Delivery.Phone,
			},
			Cart: body.Carts,
		})
		if err != nil {
			m.ObserveCheckout("failure", time.Since(start))
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		m.ObserveCheckout("success", time.Since(start))

		responses.WriteSuccessStatus(w, http.StatusCreated, checkoutResponse{OrderID: orderID})
	}
}

// OrdersList returns the authenticated user's order history.
func OrdersList(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		views, err := svc.ListForUser(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, views)
	}
}

// OrdersDashboard serves the back-office sales summary.
func OrdersDashboard(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		view, err := svc.Dashboard(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

// OrderStatusUpdate moves an order through its fulfilment lifecycle.
func OrderStatusUpdate(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		orderID, err := validators.ParsePathUint(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body statusUpdateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.SetStatus(r.Context(), orderID, body.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}
