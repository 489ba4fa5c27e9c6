package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ornamento admitidos para el stock activo.
const (
	OrnamentGold   = "Gold"
	OrnamentSilver = "Silver"
)

// StockEntry representa una pieza de stock activo entregada a un tercero.
// Solo se crea y se elimina; no existe operación de actualización.
type StockEntry struct {
	ID             string
	ItemName       string
	ProductGivenTo string
	Weight         decimal.Decimal // gramos, siempre > 0
	Pieces         int
	OrnamentType   string // Gold | Silver
	Date           time.Time
	Author         string
	CreatedAt      time.Time
}

// ValidOrnamentType indica si el tipo está dentro de la enumeración permitida.
func ValidOrnamentType(t string) bool {
	return t == OrnamentGold || t == OrnamentSilver
}
