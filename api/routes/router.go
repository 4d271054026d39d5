package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/motorhaus-io/motorhaus-backend/api/controllers"
	"github.com/motorhaus-io/motorhaus-backend/api/middleware"
	"github.com/motorhaus-io/motorhaus-backend/internal/auth"
	"github.com/motorhaus-io/motorhaus-backend/internal/catalog"
	"github.com/motorhaus-io/motorhaus-backend/internal/orders"
	"github.com/motorhaus-io/motorhaus-backend/pkg/config"
	"github.com/motorhaus-io/motorhaus-backend/pkg/db"
	"github.com/motorhaus-io/motorhaus-backend/pkg/enums"
	"github.com/motorhaus-io/motorhaus-backend/pkg/logger"
	"github.com/motorhaus-io/motorhaus-backend/pkg/metrics"
	pkgredis "github.com/motorhaus-io/motorhaus-backend/pkg/redis"
)

// RouterParams bundles the dependencies the HTTP surface needs.
type RouterParams struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           db.Pinger
	Redis        *pkgredis.Client
	Registry     *prometheus.Registry
	AuthService  auth.Service
	Catalog      catalog.Service
	Orders       orders.Service
	OrderMetrics *metrics.OrderMetrics
}

func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, p.DB, redisPinger(p.Redis), logg))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(p.AuthService, logg))
	})

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/{kind}", controllers.CatalogList(p.Catalog, logg))
		r.Get("/{kind}/{productId}", controllers.CatalogGet(p.Catalog, logg))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.Idempotency(idempotencyStore(p.Redis), cfg.Orders, logg))

		r.Post("/api/v1/orders", controllers.Checkout(p.Orders, p.OrderMetrics, logg))
		r.Get("/api/v1/orders", controllers.OrdersList(p.Orders, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(enums.UserRoleAdmin.String(), logg))

			r.Get("/api/v1/orders/dashboard", controllers.OrdersDashboard(p.Orders, logg))
			r.Put("/api/v1/orders/{orderId}/status", controllers.OrderStatusUpdate(p.Orders, logg))
		})
	})

	r.Route("/api/v1/admin/catalog/{kind}", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.RequireRole(enums.UserRoleAdmin.String(), logg))

		r.Post("/", controllers.CatalogCreate(p.Catalog, logg))
		r.Put("/{productId}", controllers.CatalogUpdate(p.Catalog, logg))
		r.Delete("/{productId}", controllers.CatalogDelete(p.Catalog, logg))
	})

	return r
}

// idempotencyStore keeps a typed nil redis client from reaching the
// middleware as a non-nil interface.
func idempotencyStore(client *pkgredis.Client) pkgredis.IdempotencyStore {
	if client == nil {
		return nil
	}
	return client
}

func redisPinger(client *pkgredis.Client) pkgredis.Pinger {
	if client == nil {
		return nil
	}
	return client
}
