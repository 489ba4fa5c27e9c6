package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdatePricesRequest entrada para actualizar cotizaciones. Un campo ausente
// (nil) deja el valor vigente intacto y no genera registro de historial.
type UpdatePricesRequest struct {
	GoldPrice   *decimal.Decimal `json:"gold_price"`
	SilverPrice *decimal.Decimal `json:"silver_price"`
}

// PriceSnapshotResponse cotización vigente. Un metal nunca cotizado sale en null.
type PriceSnapshotResponse struct {
	GoldPrice   *decimal.Decimal `json:"gold_price"`
	SilverPrice *decimal.Decimal `json:"silver_price"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// PriceChangeResponse registro del historial de cotizaciones.
type PriceChangeResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Price     decimal.Decimal `json:"price"`
	UpdatedAt time.Time       `json:"updated_at"`
}
