package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Joyeria-api/internal/application/auth"
	"github.com/jhoicas/Joyeria-api/internal/application/catalog"
	"github.com/jhoicas/Joyeria-api/internal/application/prices"
	"github.com/jhoicas/Joyeria-api/internal/application/reports"
	"github.com/jhoicas/Joyeria-api/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC     *stock.LedgerUseCase
	ArchiveUC   *stock.ArchiveUseCase
	PricesUC    *prices.LedgerUseCase
	CatalogUC   *catalog.UseCase
	AuthUC      *auth.UseCase
	ValuationUC *reports.ValuationUseCase
}

// Router registra las rutas de la API. Todas las rutas son públicas: el
// frontend existente no envía token. Para proteger un grupo, montar
// AuthMiddleware(secret) sobre él al registrarlo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Stock activo
	stockHandler := NewStockHandler(deps.StockUC)
	api.Get("/active-stock", stockHandler.List)
	api.Post("/active-stock", stockHandler.Create)
	api.Delete("/active-stock/:id", stockHandler.Delete)

	// Archivo de piezas retiradas
	archiveHandler := NewArchiveHandler(deps.ArchiveUC)
	api.Get("/archive", archiveHandler.List)
	api.Post("/archive", archiveHandler.Append)

	// Cotizaciones
	priceHandler := NewPriceHandler(deps.PricesUC)
	api.Get("/prices", priceHandler.GetCurrent)
	api.Put("/prices", priceHandler.Update)
	api.Put("/prices/gold", priceHandler.UpdateGold)
	api.Put("/prices/silver", priceHandler.UpdateSilver)
	api.Get("/price-history", priceHandler.History)

	// Catálogo general (contrato histórico: rutas y códigos tal cual)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/stocks", catalogHandler.List)
	api.Post("/add-stock", catalogHandler.Create)
	api.Put("/stocks/:id", catalogHandler.Update)
	api.Delete("/stocks/:id", catalogHandler.Delete)

	// Credenciales
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)
	api.Put("/login", authHandler.UpdateUser)
	api.Get("/user-details", authHandler.UserDetails)

	// Reportes
	reportHandler := NewReportHandler(deps.ValuationUC)
	api.Get("/reports/stock-valuation", reportHandler.StockValuation)
}
