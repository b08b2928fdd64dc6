package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mak-alamin/bestools-server/api/controllers"
	"github.com/mak-alamin/bestools-server/api/middleware"
	ordersvc "github.com/mak-alamin/bestools-server/internal/orders"
	paymentsvc "github.com/mak-alamin/bestools-server/internal/payments"
	productsvc "github.com/mak-alamin/bestools-server/internal/products"
	usersvc "github.com/mak-alamin/bestools-server/internal/users"
	"github.com/mak-alamin/bestools-server/pkg/config"
	"github.com/mak-alamin/bestools-server/pkg/logger"
	"github.com/mak-alamin/bestools-server/pkg/metrics"
	"github.com/mak-alamin/bestools-server/pkg/redis"
)

// NewRouter wires every route with its guard chain. The path layout is flat,
// matching the storefront client the API serves.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	httpMetrics *metrics.HTTPMetrics,
	redisClient *redis.Client,
	readiness map[string]controllers.Pinger,
	userRepo middleware.UserLoader,
	userService usersvc.Service,
	productService productsvc.Service,
	orderService ordersvc.Service,
	paymentService paymentsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(httpMetrics),
	)

	tokenPolicy := middleware.NewAuthRateLimitPolicy(
		"token",
		cfg.AuthRateLimit.TokenWindow,
		cfg.AuthRateLimit.TokenIPLimit,
		cfg.AuthRateLimit.TokenEmailLimit,
	)

	auth := middleware.Auth(cfg.JWT, logg)
	admin := middleware.RequireAdmin(userRepo, logg)
	validID := middleware.ValidateID(logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.With(middleware.AuthRateLimit(tokenPolicy, redisClient, logg)).
		Get("/jwt", controllers.IssueToken(userService, cfg.JWT, logg))

	r.Route("/user", func(r chi.Router) {
		r.With(auth).Get("/", controllers.ListUsers(userService, logg))
		r.With(auth, admin).Put("/admin/{email}", controllers.PromoteAdmin(userService, logg))
		r.With(auth).Get("/{email}", controllers.GetUser(userService, logg))
		r.Post("/{email}", controllers.CreateUser(userService, logg))
		r.Put("/{email}", controllers.UpsertUser(userService, logg))
	})

	r.Route("/product", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(productService, logg))
		r.With(auth, admin).Post("/", controllers.CreateProduct(productService, logg))
		r.With(validID).Get("/{id}", controllers.GetProduct(productService, logg))
		r.With(auth, admin, validID).Put("/{id}", controllers.UpdateProduct(productService, logg))
		r.With(auth, admin, validID).Delete("/{id}", controllers.DeleteProduct(productService, logg))
	})

	r.Route("/orders", func(r chi.Router) {
		r.With(auth, admin).Get("/", controllers.ListOrders(orderService, logg))
		r.With(auth).Get("/{email}", controllers.ListOrdersByEmail(orderService, logg))
	})

	r.Route("/order", func(r chi.Router) {
		r.With(auth).Post("/", controllers.CreateOrder(orderService, logg))
		r.With(auth, validID).Get("/{id}", controllers.GetOrder(orderService, logg))
		r.With(auth, validID).Patch("/{id}", controllers.UpdateOrder(orderService, logg))
		r.With(auth, validID).Delete("/{id}", controllers.DeleteOrder(orderService, logg))
	})

	r.With(auth).Post("/create-payment-intent", controllers.CreatePaymentIntent(paymentService, logg))

	return r
}
