package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ValuationLine es una pieza del stock activo tal como sale en el reporte.
type ValuationLine struct {
	ItemName       string
	ProductGivenTo string
	OrnamentType   string
	Weight         decimal.Decimal
	Pieces         int
	Date           time.Time
	Author         string
}

// MetalSummary totales por metal. UnitPrice y Value quedan en nil cuando el
// snapshot no tiene cotización para ese metal.
type MetalSummary struct {
	Metal       string
	TotalWeight decimal.Decimal
	Entries     int
	UnitPrice   *decimal.Decimal
	Value       *decimal.Decimal
}

// ValuationData es el insumo completo del reporte de valoración.
type ValuationData struct {
	GeneratedAt time.Time
	Lines       []ValuationLine
	Gold        MetalSummary
	Silver      MetalSummary
	TotalValue  *decimal.Decimal
}

// ValuationPDFGenerator renderiza el reporte de valoración como PDF.
type ValuationPDFGenerator interface {
	GenerateValuationPDF(ctx context.Context, data *ValuationData) ([]byte, error)
}
