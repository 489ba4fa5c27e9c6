package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogItem es un registro plano del catálogo general de stock. No tiene
// ciclo de vida ni relación con el archivo; es un recurso hermano aislado.
type CatalogItem struct {
	ID        string
	ItemName  string
	Weight    decimal.Decimal
	Pieces    int
	Type      string
	Date      time.Time
	Author    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
