package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/persistence"
	seedUC "github.com/khoahotran/portfolio-api/internal/application/usecase/seed"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// Creates the schema and loads the sample portfolio, then exits.
// Usage: go run ./scripts/init_db.go
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Environment, cfg.App.Debug)
	defer appLogger.Sync()
	appLogger.Info("Starting database initialization...")

	ctx := context.Background()
	store, err := persistence.Open(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot open database", err)
	}
	defer store.Close()

	if err := store.CreateTables(ctx); err != nil {
		appLogger.Fatal("Failed to create tables", err)
	}

	seeded, err := seedUC.NewSeedUseCase(store, seedUC.SampleData(), appLogger).Execute(ctx)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", err)
	}
	appLogger.Info("Database initialized successfully!", zap.Bool("seeded", seeded))
}
