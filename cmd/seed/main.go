package main

import (
	"context"
	"log"

	"credimatch/internal/repository"
	"credimatch/internal/service"
	"credimatch/pkg/config"
	"credimatch/pkg/logger"
	"credimatch/pkg/postgres"

	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS entities (
	id UUID PRIMARY KEY,
	code TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id UUID PRIMARY KEY,
	entity_id UUID NOT NULL REFERENCES entities(id),
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	min_age INT NOT NULL,
	max_age INT NOT NULL,
	min_income DOUBLE PRECISION NOT NULL,
	min_work_months INT NOT NULL,
	min_credit_score INT NOT NULL,
	max_debt_to_income DOUBLE PRECISION NOT NULL,
	required_documents TEXT[] NOT NULL DEFAULT '{}',
	amount_min DOUBLE PRECISION NOT NULL,
	amount_max DOUBLE PRECISION NOT NULL,
	term_min_months INT NOT NULL,
	term_max_months INT NOT NULL,
	down_payment_pct DOUBLE PRECISION,
	rate_min DOUBLE PRECISION NOT NULL,
	rate_max DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS leads (
	id UUID PRIMARY KEY,
	profile_id UUID NOT NULL,
	offer_id UUID NOT NULL,
	full_name TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	entity TEXT NOT NULL,
	product TEXT NOT NULL,
	rate DOUBLE PRECISION NOT NULL,
	amount DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
`

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Starting catalog seeding...")

	if _, err := db.Exec(ctx, schema); err != nil {
		appLogger.Fatal("Failed to create schema", zap.Error(err))
	}

	productRepo := repository.NewProductRepository(db, appLogger)

	seeded := 0
	for _, entity := range service.DefaultRegistry() {
		if err := productRepo.CreateEntity(ctx, &entity); err != nil {
			appLogger.Fatal("Failed to seed entity",
				zap.String("entity", entity.Name),
				zap.Error(err),
			)
		}
		for i := range entity.Products {
			prod := entity.Products[i]
			if err := productRepo.CreateProduct(ctx, &prod); err != nil {
				appLogger.Fatal("Failed to seed product",
					zap.String("entity", entity.Name),
					zap.String("product", prod.Name),
					zap.Error(err),
				)
			}
			seeded++
		}
	}

	appLogger.Info("Catalog seeding completed", zap.Int("products", seeded))
}
