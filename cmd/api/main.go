package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Joyeria-api/internal/application/auth"
	"github.com/jhoicas/Joyeria-api/internal/application/catalog"
	"github.com/jhoicas/Joyeria-api/internal/application/prices"
	"github.com/jhoicas/Joyeria-api/internal/application/reports"
	"github.com/jhoicas/Joyeria-api/internal/application/stock"
	infrapdf "github.com/jhoicas/Joyeria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Joyeria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Joyeria-api/internal/interfaces/http"
	"github.com/jhoicas/Joyeria-api/pkg/config"
	"github.com/jhoicas/Joyeria-api/pkg/logger"

	_ "github.com/jhoicas/Joyeria-api/docs"
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

	stockRepo := postgres.NewStockEntryRepository(pool)
	archiveRepo := postgres.NewArchiveRepository(pool)
	snapshotRepo := postgres.NewPriceSnapshotRepository(pool)
	historyRepo := postgres.NewPriceHistoryRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := stock.NewLedgerUseCase(stockRepo)
	archiveUC := stock.NewArchiveUseCase(archiveRepo)
	pricesUC := prices.NewLedgerUseCase(snapshotRepo, historyRepo, txRunner)
	catalogUC := catalog.NewUseCase(catalogRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	valuationUC := reports.NewValuationUseCase(stockRepo, snapshotRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Joyería Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:     stockUC,
		ArchiveUC:   archiveUC,
		PricesUC:    pricesUC,
		CatalogUC:   catalogUC,
		AuthUC:      authUC,
		ValuationUC: valuationUC,
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
