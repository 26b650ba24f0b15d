package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/inventory"
	"github.com/jhoicas/Ventas-api/internal/application/sales"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Ventas-api/internal/interfaces/http"
	"github.com/jhoicas/Ventas-api/pkg/config"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool (las operaciones transaccionales usan
	// repos ligados a la tx vía los runners).
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	saleTxRunner := postgres.NewSaleTxRunner(pool)

	// Casos de uso.
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, warehouseRepo)
	stockQueriesUC := inventory.NewStockQueriesUseCase(stockRepo, movementRepo, productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ventas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.SetupRoutes(app, httpRouter.RouterDeps{
		JWTSecret: cfg.JWT.Secret,
		Auth:      httpRouter.NewAuthHandler(authUC),
		Products:  httpRouter.NewProductHandler(productUC),
		Warehouse: httpRouter.NewWarehouseHandler(warehouseUC),
		Customers: httpRouter.NewCustomerHandler(customerUC),
		Inventory: httpRouter.NewInventoryHandler(registerMovementUC, stockQueriesUC),
		Sales: httpRouter.NewSaleHandler(httpRouter.SaleHandlerDeps{
			CreateUC:       sales.NewCreateSaleUseCase(saleRepo, customerRepo, productRepo),
			SubmitUC:       sales.NewSubmitForApprovalUseCase(saleRepo),
			ApproveUC:      sales.NewApproveSaleUseCase(saleTxRunner),
			RejectUC:       sales.NewRejectSaleUseCase(saleRepo),
			CompleteUC:     sales.NewCompleteSaleUseCase(saleTxRunner),
			CancelUC:       sales.NewCancelSaleUseCase(saleTxRunner),
			AddItemUC:      sales.NewAddItemUseCase(saleRepo, productRepo),
			RemoveItemUC:   sales.NewRemoveItemUseCase(saleRepo),
			UpdateItemUC:   sales.NewUpdateItemQuantityUseCase(saleRepo),
			SaleDiscountUC: sales.NewApplySaleDiscountUseCase(saleRepo),
			ItemDiscountUC: sales.NewApplyItemDiscountUseCase(saleRepo),
			QueriesUC:      sales.NewSaleQueriesUseCase(saleRepo),
		}),
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
