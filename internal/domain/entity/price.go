package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Metales cotizados.
const (
	MetalGold   = "gold"
	MetalSilver = "silver"
)

// PriceSnapshot es la cotización vigente de oro y plata. Existe a lo sumo una
// instancia, modelada como fila única bien conocida; un metal nunca cotizado
// queda en nil.
type PriceSnapshot struct {
	GoldPrice   *decimal.Decimal
	SilverPrice *decimal.Decimal
	UpdatedAt   time.Time
}

// PriceChange es un registro inmutable del historial de cotizaciones: un
// registro por metal por cada escritura aceptada.
type PriceChange struct {
	ID        string
	Type      string // gold | silver
	Price     decimal.Decimal
	UpdatedAt time.Time // timestamp asignado por el servidor
}
