package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"etalase/internal/catalog"
	"etalase/internal/config"
	"etalase/internal/handlers"
	"etalase/internal/logging"
	"etalase/internal/middleware"
	"etalase/internal/repositories"
	"etalase/internal/services"
	"etalase/pkg/rabbitmq"

	"github.com/asaskevich/EventBus"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	// --- Configuration ---
	cfg := config.Load(viper.GetViper())

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	// --- Catalog ---
	cat, err := loadCatalog(cfg, logger)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.String("driver", cfg.CatalogDriver),
		zap.Int("products", cat.Len()),
		zap.Int("categories", len(cat.Categories())),
		zap.Int("brands", len(cat.Brands())),
	)

	// --- Store ---
	bus := EventBus.New()
	store := services.NewCommerceStore(cat, services.WithLogger(logger), services.WithEventBus(bus))

	// --- Activity relay (optional) ---
	if cfg.RelayEnabled() {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: cfg.ActivityExchange})
		if err != nil {
			logger.Warn("activity relay disabled", zap.Error(err))
		} else {
			defer mqClient.Close()
			relay := services.NewActivityRelay(bus, mqClient, cfg.ActivityExchange, logger)
			if err := relay.Start(); err != nil {
				logger.Fatal("failed to start activity relay", zap.Error(err))
			}
			defer func() {
				if err := relay.Stop(); err != nil {
					logger.Warn("failed to stop activity relay", zap.Error(err))
				}
			}()
		}
	}

	app := newApp(store, logger)

	// --- Start HTTP Server ---
	logger.Info("starting server", zap.String("port", cfg.AppPort))

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	logger.Info("shutting down server")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("error during fiber shutdown", zap.Error(err))
	}

	// Let queued activity events drain before the relay and broker close.
	store.Close()
	logger.Info("server gracefully stopped")
}

// newApp builds the Fiber application with middleware and every route.
func newApp(store *services.CommerceStore, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Etalase Storefront",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: middleware.ErrorHandler(logger),
	})

	middleware.SetupMiddleware(app, store)

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	handlers.NewCatalogHandler(store, logger).RegisterRoutes(apiV1)
	handlers.NewFilterHandler(store, logger).RegisterRoutes(apiV1)
	handlers.NewCartHandler(store, logger).RegisterRoutes(apiV1)
	handlers.NewWishlistHandler(store, logger).RegisterRoutes(apiV1)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"products": store.Catalog().Len(),
			"version":  store.Version(),
		})
	})

	return app
}

// loadCatalog builds the catalog from the configured source. The in-memory
// driver always serves the built-in dataset; database drivers are migrated and
// seeded when empty if seeding is enabled.
func loadCatalog(cfg config.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	if cfg.CatalogDriver == repositories.DriverMemory {
		repo := repositories.NewMockCatalogRepository()
		if err := catalog.Seed(repo, catalog.DefaultDataset()); err != nil {
			return nil, err
		}
		return catalog.Load(repo)
	}

	db, err := repositories.Open(cfg.CatalogDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	// The catalog is read once at startup.
	defer sqlDB.Close()

	repo := repositories.NewGORMCatalogRepository(db)
	if err := repo.Migrate(); err != nil {
		return nil, err
	}

	if cfg.CatalogSeed {
		empty, err := repo.IsEmpty()
		if err != nil {
			return nil, err
		}
		if empty {
			logger.Info("seeding empty catalog database", zap.String("driver", cfg.CatalogDriver))
			if err := catalog.Seed(repo, catalog.DefaultDataset()); err != nil {
				return nil, err
			}
		}
	}

	return catalog.Load(repo)
}
