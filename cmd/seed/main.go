package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/greenloop/greencycle/config"
	"github.com/greenloop/greencycle/internal/application"
	"github.com/greenloop/greencycle/internal/infrastructure/mongodb"
	"github.com/greenloop/greencycle/pkg/helpers"
)

// Seeds the reference lookup tables (centers, tutorials). Safe to run
// repeatedly; populated tables are left untouched.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoConnTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.MongoDatabase)

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	svc := application.NewReferenceService(
		mongodb.NewCenterRepository(db),
		mongodb.NewTutorialRepository(db),
		logger,
	)
	if err := svc.Seed(ctx); err != nil {
		log.Fatalf("failed to seed reference data: %v", err)
	}
	fmt.Println("reference data seeded")
}
