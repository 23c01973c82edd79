package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	User    *handler.UserHandler
	Catalog *handler.CatalogHandler
	Ledger  *handler.LedgerHandler
	Health  *handler.HealthHandler
	Metrics http.Handler // nil disables the scrape endpoint
}

// Options configures the global middlewares
type Options struct {
	ServiceName    string
	MetricsPath    string
	AllowedOrigins []string
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, tokens middleware.TokenParser, options Options) {
	router.GET("/healthz", h.Health.Healthz)
	if h.Metrics != nil {
		path := options.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, gin.WrapH(h.Metrics))
	}

	// Public catalog and registration
	router.POST("/users", h.User.CreateUser)
	router.GET("/activities", h.Catalog.ListActivities)
	router.GET("/activities/:id", h.Catalog.GetActivity)
	router.GET("/products", h.Catalog.ListProducts)
	router.GET("/products/:id", h.Catalog.GetProduct)

	// Authenticated user actions
	authed := router.Group("/", middleware.Authenticate(tokens))
	{
		authed.GET("/me", h.User.Me)
		authed.POST("/activities/:id/enrollments", h.Ledger.Enroll)
		authed.POST("/enrollments/:id/cancel", h.Ledger.Cancel)
		authed.POST("/products/:id/redemptions", h.Ledger.Redeem)
	}

	admin := router.Group("/admin", middleware.Authenticate(tokens), middleware.RequireAdmin())
	{
		admin.POST("/activities", h.Catalog.CreateActivity)
		admin.POST("/activities/seed", h.Catalog.SeedActivities)
		admin.POST("/products", h.Catalog.CreateProduct)
		admin.POST("/enrollments/attendance", h.Ledger.RecordAttendance)
		admin.POST("/enrollments/absence", h.Ledger.MarkAbsent)
		admin.POST("/redemptions/delivery", h.Ledger.MarkDelivered)
	}
}

// SetupMiddlewares configures global middlewares for the API.
// The access log sits outside the error handler so it sees the final status.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, recorder metrics.Recorder, options Options) {
	serviceName := options.ServiceName
	if serviceName == "" {
		serviceName = "community-ledger"
	}

	router.Use(otelgin.Middleware(serviceName))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics(recorder))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(options.AllowedOrigins))
}
