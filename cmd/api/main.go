package main

import (
	"context"
	"log"
	"time"

	"tajir/adapters/postgres"
	"tajir/app"
	"tajir/internal"
	"tajir/internal/config"
	"tajir/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := internal.NewDefaultLogger().With("api")

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(16)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	server := ui.NewServer(
		cfg,
		logger,
		postgres.NewDatasetRepository(db),
		postgres.NewAnalysisRepository(db),
		app.NewConfiguredAnalysisService(app.Config{
			DetectSampleSize:    cfg.Data.DetectSampleSize,
			ForecastHorizonDays: cfg.Data.ForecastHorizon,
		}),
	)
	if err := server.Start(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
