package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	catalogUseCase "github.com/amirhossein-jamali/community-ledger/internal/domain/usecase/catalog"
	ledgerUseCase "github.com/amirhossein-jamali/community-ledger/internal/domain/usecase/ledger"
	userUseCase "github.com/amirhossein-jamali/community-ledger/internal/domain/usecase/user"

	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/outbox"
	timeProvider "github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/tracing"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load and validate configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production:  cfg.Logger.Format == "json",
		Level:       cfg.Logger.Level,
		ServiceName: cfg.Tracing.ServiceName,
		Environment: cfg.Environment,
	})

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Service stopped with error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
	_ = appLogger.Flush()
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()

	// Tracing first so the database spans have a provider
	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing, cfg.Environment, appLogger)
	if err != nil {
		return err
	}

	// Metrics registry backs /metrics and every adapter recorder
	var recorder metrics.Recorder = metrics.NewNoopMetrics()
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		recorder = metrics.NewPrometheusMetrics(registry)
		metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	}

	// Connect to the database
	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp, recorder)
	if _, err := dbManager.Connect(); err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	uow := dbManager.CreateUnitOfWork(database.UnitOfWorkOptions{
		Retry: database.RetryConfigFromViperConfig(cfg),
	})

	// Initialize use cases
	ledger := ledgerUseCase.NewLedgerService(uow, tp, appLogger, recorder)
	catalog := catalogUseCase.NewCatalogService(uow, tp, appLogger)
	users := userUseCase.NewUserUseCase(uow, tp, appLogger)

	if cfg.Ledger.SeedActivities {
		created, err := catalog.SeedDefaultActivities(ctx)
		if err != nil {
			appLogger.Error("Failed to seed default activities", map[string]any{
				"error": err.Error(),
			})
		} else {
			appLogger.Info("Default activities seeded", map[string]any{
				"created": created,
			})
		}
	}

	tokens := auth.NewTokenService(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, tp)

	// Initialize Gin router
	router := gin.New()
	options := routes.Options{
		ServiceName:    cfg.Tracing.ServiceName,
		MetricsPath:    cfg.Metrics.Path,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}
	routes.SetupMiddlewares(router, appLogger, recorder, options)
	routes.SetupRoutes(router, routes.Handlers{
		User:    handler.NewUserHandler(users, tokens, appLogger),
		Catalog: handler.NewCatalogHandler(catalog, appLogger),
		Ledger:  handler.NewLedgerHandler(ledger, appLogger),
		Health:  handler.NewHealthHandler(dbManager.HealthChecker(), appLogger),
		Metrics: metricsHandler,
	}, tokens, options)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	var producer *outbox.KafkaProducer
	if cfg.Outbox.Enabled {
		producer = outbox.NewKafkaProducer(cfg.Outbox.Brokers)
		dispatcher := outbox.NewDispatcher(
			dbManager.CreateUnitOfWork(database.UnitOfWorkOptions{}),
			producer,
			cfg.Outbox.Topic,
			cfg.Outbox.PollInterval,
			cfg.Outbox.BatchSize,
			tp,
			appLogger,
			recorder,
		)
		group.Go(func() error {
			dispatcher.Start(groupCtx)
			return nil
		})
	}

	group.Go(func() error {
		appLogger.Info("Starting server", map[string]any{
			"addr":      server.Addr,
			"env":       cfg.Environment,
			"log_level": appLogger.GetLevel().String(),
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	// Shut everything down once a signal arrives or a component fails
	group.Go(func() error {
		<-groupCtx.Done()
		appLogger.Info("Shutting down server...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		var errs []error
		if err := server.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("server shutdown: %w", err))
		}
		if producer != nil {
			if err := producer.Close(); err != nil {
				errs = append(errs, fmt.Errorf("kafka producer close: %w", err))
			}
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
		return errors.Join(errs...)
	})

	if err := group.Wait(); err != nil {
		return err
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}
