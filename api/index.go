// Package handler is the serverless entry point: a net/http handler serving the mock REST API.
package handler

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"movie-catalog/core/cache"
	"movie-catalog/core/config"
	"movie-catalog/core/logger"
	"movie-catalog/core/middleware/cors"
	"movie-catalog/feature/mockapi"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"go.uber.org/zap"
)

var (
	once    sync.Once
	serve   http.HandlerFunc
	initErr error
)

// Handler serves every request through a fiber app built on first use.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		var app *fiber.App
		app, initErr = NewApp(context.Background())
		if initErr == nil {
			serve = adaptor.FiberApp(app)
		}
	})

	if initErr != nil {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		http.Error(w, initErr.Error(), http.StatusInternalServerError)
		return
	}
	serve(w, r)
}

// NewApp builds the mock API app from the environment: CORS in front of the collection routes.
func NewApp(ctx context.Context) (*fiber.App, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Serverless instances only get the file store; other stores need long-lived connections.
	if cfg.Mock.Store != mockapi.StoreFile {
		logg.Warn("Serverless handler only supports the file store", zap.String("store", cfg.Mock.Store))
		cfg.Mock.Store = mockapi.StoreFile
	}

	store, err := mockapi.Open(ctx, cfg.Mock, mockapi.Backends{
		Redis:  cache.NewRedis(cfg.Cache, logg),
		TTL:    cfg.Cache.TTL(),
		Logger: logg,
	})
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(cors.New(cfg.Server.AllowOrigins))

	if err := mockapi.NewFeature(store, cfg.Mock.Collection, logg, true).Load(app); err != nil {
		return nil, err
	}
	return app, nil
}
