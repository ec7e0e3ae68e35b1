package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/akashadev/akasha-api/internal/application/auth"
	"github.com/akashadev/akasha-api/internal/application/inventory"
	"github.com/akashadev/akasha-api/internal/application/orders"
	"github.com/akashadev/akasha-api/internal/application/usecase"
	"github.com/akashadev/akasha-api/internal/infrastructure/postgres"
	httpRouter "github.com/akashadev/akasha-api/internal/interfaces/http"
	"github.com/akashadev/akasha-api/internal/metrics"
	"github.com/akashadev/akasha-api/pkg/config"
	"github.com/akashadev/akasha-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repos de lectura sobre el pool; los de escritura del motor los provee
	// el TxRunner dentro de cada transacción.
	orderRepo := postgres.NewOrderRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	orderMetrics := metrics.NewOrderMetrics()
	validator := orders.NewAvailabilityValidator(stockRepo)
	recordOrderUC := orders.NewRecordOrderUseCase(txRunner, validator, orderMetrics)
	orderQueryUC := orders.NewOrderQueryUseCase(orderRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner)
	stockUC := inventory.NewStockUseCase(stockRepo, movementRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		RecordOrder:      recordOrderUC,
		OrderQuery:       orderQueryUC,
		RegisterMovement: registerMovementUC,
		StockUC:          stockUC,
		ProductUC:        productUC,
		CategoryUC:       categoryUC,
		LocationUC:       locationUC,
		SupplierUC:       supplierUC,
		CustomerUC:       customerUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
