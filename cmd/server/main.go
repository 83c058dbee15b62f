package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio-api/adapters/http"
	"github.com/khoahotran/portfolio-api/adapters/persistence"
	aiUC "github.com/khoahotran/portfolio-api/internal/application/usecase/ai"
	seedUC "github.com/khoahotran/portfolio-api/internal/application/usecase/seed"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/tracing"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Environment, cfg.App.Debug)
	defer appLogger.Sync()
	appLogger.Info("Starting Portfolio API Server...",
		zap.String("environment", cfg.App.Environment),
		zap.String("version", cfg.App.Version),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing
	shutdownTracing, err := tracing.Setup(ctx, cfg, appLogger, httpAdapter.ServiceName)
	if err != nil {
		appLogger.Fatal("Failed to initialize tracing", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			appLogger.Warn("Failed to flush traces", zap.Error(err))
		}
	}()

	// Database
	store, err := persistence.Open(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot open database", err)
	}
	defer store.Close()

	if err := store.CreateTables(ctx); err != nil {
		appLogger.Fatal("Cannot create tables", err)
	}

	if cfg.Features.SeedOnStartup {
		if _, err := seedUC.NewSeedUseCase(store, seedUC.SampleData(), appLogger).Execute(ctx); err != nil {
			appLogger.Fatal("Failed to seed sample data", err)
		}
	}

	readiness := map[string]httpAdapter.Pinger{"database": store}

	// Analytics
	publisher, closePublisher, err := event.NewPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka", err)
	}
	defer closePublisher()

	if cfg.Features.EnableAnalytics {
		redisClient, err := persistence.NewRedisClient(ctx, cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot connect Redis", err)
		}
		defer redisClient.Close()
		readiness["redis"] = httpAdapter.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	// HTTP
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(httpAdapter.RouterDeps{
		Config:    cfg,
		Store:     store,
		Publisher: publisher,
		Portfolio: httpAdapter.NewPortfolioHandler(appLogger),
		AI:        httpAdapter.NewAIHandler(aiUC.NewAIUseCase(cfg, publisher, appLogger)),
		Health:    httpAdapter.NewHealthHandler(cfg, readiness, appLogger),
		Logger:    appLogger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down Portfolio API Server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Graceful shutdown failed", err)
	}
}
