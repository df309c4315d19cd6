package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Abinaya503/my-cab-payment/internal/app"
	"github.com/Abinaya503/my-cab-payment/internal/config"
	"github.com/Abinaya503/my-cab-payment/internal/logger"
	"github.com/Abinaya503/my-cab-payment/internal/metrics"
	internalRedis "github.com/Abinaya503/my-cab-payment/internal/redis"
	"github.com/Abinaya503/my-cab-payment/internal/repository"
	"github.com/Abinaya503/my-cab-payment/internal/repository/memory"
	"github.com/Abinaya503/my-cab-payment/internal/repository/postgres"
	"github.com/Abinaya503/my-cab-payment/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	log, err := logger.New(cfg.NewRelic.AppName, cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Warn("failed to initialize New Relic", zap.Error(err))
		} else {
			log.Info("New Relic enabled", zap.String("app", cfg.NewRelic.AppName))
		}
	}

	// Ride data provider.
	var db *sql.DB
	if cfg.RideSource == config.RideSourcePostgres {
		db, err = app.NewDatabase(ctx, cfg.Database, nrApp)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		log.Info("connected to PostgreSQL", zap.String("db", cfg.Database.DBName))
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = app.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		log.Info("connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// Wire dependencies.
	server := wireServer(db, redisClient, nrApp, cfg, log)

	// Start server in goroutine.
	go func() {
		log.Info("starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}

	log.Info("server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config, log *zap.Logger) *http.Server {
	var store *memory.Store
	var rideRepo repository.RideRepository

	if db != nil {
		// Rides come from Postgres; the ledger starts empty.
		store = memory.NewStore(memory.Seed{})
		rideRepo = postgres.NewRideRepository(db)
	} else {
		store = memory.NewStore(memory.DefaultSeed())
		rideRepo = store.Rides()
	}

	var locker service.RideLocker
	if redisClient != nil {
		rideRepo = internalRedis.NewCachedRideRepository(rideRepo, internalRedis.NewCacheStore(redisClient), log.Named("ride_cache"))
		locker = internalRedis.NewLockStore(redisClient)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	ledger := app.NewLedger(cfg, app.LedgerDeps{
		Store:    store,
		RideRepo: rideRepo,
		Locker:   locker,
		Metrics:  metrics.New(registry),
		Logger:   log,
	})
	rideHandler, paymentHandler, receiptHandler := ledger.Handlers()

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		RideHandler:    rideHandler,
		PaymentHandler: paymentHandler,
		ReceiptHandler: receiptHandler,
		MetricsHandler: metrics.Handler(registry),
		RedisClient:    redisClient,
		NewRelicApp:    nrApp,
		Logger:         log,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
