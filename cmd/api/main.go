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
	"github.com/stockypocky/sp-api/internal/application/auth"
	"github.com/stockypocky/sp-api/internal/application/shopping"
	stockapp "github.com/stockypocky/sp-api/internal/application/stock"
	"github.com/stockypocky/sp-api/internal/application/usecase"
	"github.com/stockypocky/sp-api/internal/infrastructure/postgres"
	httpRouter "github.com/stockypocky/sp-api/internal/interfaces/http"
	"github.com/stockypocky/sp-api/pkg/config"
	"github.com/stockypocky/sp-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	memoRepo := postgres.NewMemoRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	historyRepo := postgres.NewStockHistoryRepository(pool)
	shoppingListRepo := postgres.NewShoppingListRepository(pool)
	recordRepo := postgres.NewShoppingRecordRepository(pool)
	spendingRepo := postgres.NewSpendingRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	itemUC := usecase.NewItemUseCase(itemRepo)
	memoUC := usecase.NewMemoUseCase(memoRepo)
	shoppingListUC := usecase.NewShoppingListUseCase(shoppingListRepo)
	stockUC := stockapp.NewAdjustUseCase(txRunner, stockRepo, historyRepo)
	recordUC := shopping.NewRecordUseCase(txRunner, recordRepo, stockRepo, stockUC)
	spendingUC := shopping.NewSpendingUseCase(spendingRepo)

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
		Title:    "StockyPocky API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		CategoryUC:     categoryUC,
		ItemUC:         itemUC,
		MemoUC:         memoUC,
		ShoppingListUC: shoppingListUC,
		StockUC:        stockUC,
		RecordUC:       recordUC,
		SpendingUC:     spendingUC,
		JWTSecret:      cfg.JWT.Secret,
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
