package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-api/config"
	_ "catalog-api/docs" // Swagger docs
	"catalog-api/internal/catalog"
	"catalog-api/internal/httpserver"
	"catalog-api/pkg/log"
	"catalog-api/pkg/mongo"
)

// @title       Catalog API
// @description CRUD endpoints over the items and products collections.
// @version     1
// @host        localhost:3000
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Catalog API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Store: the listener comes up first, requests get 503 until this succeeds.
	store := mongo.New(mongo.Config{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
	})
	connected := make(chan struct{})
	go func() {
		defer close(connected)
		if err := store.Connect(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Fatalf(ctx, "Failed to connect to MongoDB: %v", err)
		}
		logger.Infof(ctx, "Connected to MongoDB (database %q)", cfg.Mongo.Database)
	}()
	defer func() {
		stop()
		<-connected
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Disconnect(dctx); err != nil {
			logger.Warnf(dctx, "MongoDB disconnect: %v", err)
		}
	}()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Store:           store,
		Resources:       toResources(cfg.Catalog.Resources),
		StrictQuery:     cfg.Catalog.StrictQuery,
		AuthToken:       cfg.Auth.Token,
		RequestsPerMin:  cfg.RateLimit.RequestsPerMin,
		Burst:           cfg.RateLimit.Burst,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func toResources(in []config.ResourceConfig) []catalog.Resource {
	out := make([]catalog.Resource, 0, len(in))
	for _, r := range in {
		out = append(out, catalog.Resource{
			Name:               r.Name,
			Collection:         r.Collection,
			Path:               r.Path,
			Label:              r.Label,
			RequireAuth:        r.RequireAuth,
			CategoryProjection: r.CategoryProjection,
			ErrorKey:           r.ErrorKey,
		})
	}
	return out
}
