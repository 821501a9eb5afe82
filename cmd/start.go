package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"movie-catalog/core/cache"
	"movie-catalog/core/config"
	"movie-catalog/core/database"
	"movie-catalog/core/loader"
	"movie-catalog/core/logger"
	"movie-catalog/core/middleware/auth"
	"movie-catalog/core/middleware/cors"
	"movie-catalog/core/middleware/rayid"
	"movie-catalog/core/notify"
	"movie-catalog/core/server"
	"movie-catalog/core/storage"
	"movie-catalog/feature/mockapi"
	"movie-catalog/feature/movies"
	"movie-catalog/feature/movies/remote"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "movie-catalog/docs/swagger"
)

// @title Movie Catalog API
// @version 1.0
// @description Optimistic movie catalog and json-server compatible mock backend.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the movie catalog server",
	Long:  `Starts the HTTP server with the mock REST backend and the catalog API.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx := context.Background()

		store, err := openMockStore(ctx, cfg, logg)
		if err != nil {
			logg.Fatal("Failed to open mock store", zap.String("store", cfg.Mock.Store), zap.Error(err))
		}
		if n, err := mockapi.Seed(ctx, store, cfg.Mock.Seed); err != nil {
			logg.Warn("Seeding mock store failed", zap.Error(err))
		} else if n > 0 {
			logg.Info("Seeded mock store", zap.Int("movies", n))
		}

		accessor, err := remote.New(cfg.Remote, logg)
		if err != nil {
			logg.Fatal("Failed to create remote accessor", zap.Error(err))
		}

		center := notify.NewCenter()
		defer center.Close()
		coord := movies.NewCoordinator(accessor, center, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(mockapi.NewFeature(store, cfg.Mock.Collection, logg, cfg.Server.FeatureEnabled(server.FeatureMock)))
		mgr.Register(movies.NewFeature(coord, logg, cfg.Server.FeatureEnabled(server.FeatureCatalog)))

		// Ray id first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(cors.New(cfg.Server.AllowOrigins))

		app.Get("/swagger/*", swagger.HandlerDefault)

		// The mock collection stays open like json-server so the rest backend can reach it.
		app.Use(auth.New(auth.Config{
			ApiKey: cfg.Server.ApiKey,
			Skip:   []string{"/" + cfg.Mock.Collection},
		}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server",
				zap.String("address", cfg.Server.Address()),
				zap.String("remote", cfg.Remote.Backend),
				zap.String("mock_store", cfg.Mock.Store),
			)
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

// openMockStore connects only the backends the configured mock store needs.
func openMockStore(ctx context.Context, cfg *config.Config, logg *zap.Logger) (mockapi.Store, error) {
	backends := mockapi.Backends{
		Bucket: cfg.Storage.Bucket,
		Region: cfg.Storage.Region,
		Redis:  cache.NewRedis(cfg.Cache, logg),
		TTL:    cfg.Cache.TTL(),
		Logger: logg,
	}

	switch cfg.Mock.Store {
	case mockapi.StoreObject:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		backends.Storage = client
	case mockapi.StoreDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
		backends.DB = db
	}

	return mockapi.Open(ctx, cfg.Mock, backends)
}
