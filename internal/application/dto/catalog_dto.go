package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCatalogItemRequest entrada para agregar un ítem al catálogo general.
// El nombre JSON "itemname" (minúsculas) replica el contrato histórico.
type CreateCatalogItemRequest struct {
	ItemName string          `json:"itemname"`
	Weight   decimal.Decimal `json:"weight"`
	Pieces   int             `json:"pieces"`
	Type     string          `json:"type"`
	Date     *time.Time      `json:"date"`
	Author   string          `json:"author"`
}

// UpdateCatalogItemRequest entrada para actualizar un ítem (la fecha la asigna el servidor).
type UpdateCatalogItemRequest struct {
	ItemName *string          `json:"itemname"`
	Weight   *decimal.Decimal `json:"weight"`
	Pieces   *int             `json:"pieces"`
	Type     *string          `json:"type"`
	Author   *string          `json:"author"`
}

// CatalogItemResponse salida de un ítem del catálogo.
type CatalogItemResponse struct {
	ID       string          `json:"id"`
	ItemName string          `json:"itemname"`
	Weight   decimal.Decimal `json:"weight"`
	Pieces   int             `json:"pieces"`
	Type     string          `json:"type"`
	Date     time.Time       `json:"date"`
	Author   string          `json:"author"`
}
