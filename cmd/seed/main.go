package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/estatia/estatia/config"
	"github.com/estatia/estatia/internal/application"
	pginfra "github.com/estatia/estatia/internal/infrastructure/postgres"
	"github.com/estatia/estatia/pkg/helpers"
)

// Manual entry point for the same idempotent seeding the API performs on
// startup; useful after wiping a local database.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	svc := application.NewPropertyService(
		pginfra.NewPropertyRepository(pool),
		nil, 0, // no cache
		nil, "", // no index
		logger,
	)
	if err := svc.SeedSampleData(ctx); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	logger.Info("seeding complete")
}
