package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockEntryRequest entrada para registrar una pieza en el stock activo.
// Los nombres JSON replican el contrato del frontend existente.
type CreateStockEntryRequest struct {
	ItemName       string          `json:"itemName" validate:"required,min=1"`
	ProductGivenTo string          `json:"productGivenTo" validate:"required,min=1"`
	Weight         decimal.Decimal `json:"weight" validate:"required"`
	Pieces         int             `json:"pieces"`
	OrnamentType   string          `json:"ornamentType" validate:"omitempty,oneof=Gold Silver"`
	Author         string          `json:"author" validate:"required,min=1"`
}

// StockEntryResponse salida de una pieza del stock activo.
type StockEntryResponse struct {
	ID             string          `json:"id"`
	ItemName       string          `json:"itemName"`
	ProductGivenTo string          `json:"productGivenTo"`
	Weight         decimal.Decimal `json:"weight"`
	Pieces         int             `json:"pieces"`
	OrnamentType   string          `json:"ornamentType"`
	Date           time.Time       `json:"date"`
	Author         string          `json:"author"`
}

// AppendArchiveRequest entrada para archivar la copia de una pieza retirada.
// Date y DeletionDate son opcionales; Status por defecto es "Deleted".
type AppendArchiveRequest struct {
	ItemName       string          `json:"itemName" validate:"required,min=1"`
	ProductGivenTo string          `json:"productGivenTo" validate:"required,min=1"`
	Weight         decimal.Decimal `json:"weight" validate:"required"`
	Pieces         int             `json:"pieces"`
	OrnamentType   string          `json:"ornamentType"`
	Date           *time.Time      `json:"date"`
	Author         string          `json:"author" validate:"required,min=1"`
	Status         string          `json:"status"`
	DeletionDate   *time.Time      `json:"deletionDate"`
}

// ArchiveEntryResponse salida de un registro archivado.
type ArchiveEntryResponse struct {
	ID             string          `json:"id"`
	ItemName       string          `json:"itemName"`
	ProductGivenTo string          `json:"productGivenTo"`
	Weight         decimal.Decimal `json:"weight"`
	Pieces         int             `json:"pieces"`
	OrnamentType   string          `json:"ornamentType"`
	Date           time.Time       `json:"date"`
	Author         string          `json:"author"`
	Status         string          `json:"status"`
	DeletionDate   *time.Time      `json:"deletionDate,omitempty"`
}
