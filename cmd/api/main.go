package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dkellner85/poi-console-services/api/internal/config"
	"github.com/dkellner85/poi-console-services/api/internal/infrastructure/logger"
	"github.com/dkellner85/poi-console-services/api/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	appLogger := logger.New(cfg.LogLevel, cfg.Env == "development")
	defer func() { _ = appLogger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Fatalw("MongoDB connection failed", "error", err)
	}

	app, err := server.New(cfg, client, appLogger)
	if err != nil {
		appLogger.Fatalw("server assembly failed", "error", err)
	}
	if err := app.Run(); err != nil {
		log.Fatalf("server start failed: %v", err)
	}
}
