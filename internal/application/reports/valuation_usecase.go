package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Joyeria-api/internal/domain/entity"
	"github.com/jhoicas/Joyeria-api/internal/domain/repository"
)

// ValuationUseCase arma el reporte de valoración del stock activo: cada pieza
// listada y los gramos totales por metal valorados a la cotización vigente.
// Lectura pura sobre el libro activo y el snapshot; no toca el archivo ni el
// historial.
type ValuationUseCase struct {
	stockRepo    repository.StockEntryRepository
	snapshotRepo repository.PriceSnapshotRepository
	generator    ValuationPDFGenerator
}

// NewValuationUseCase construye el caso de uso.
func NewValuationUseCase(
	stockRepo repository.StockEntryRepository,
	snapshotRepo repository.PriceSnapshotRepository,
	generator ValuationPDFGenerator,
) *ValuationUseCase {
	return &ValuationUseCase{stockRepo: stockRepo, snapshotRepo: snapshotRepo, generator: generator}
}

// Generate calcula los totales y devuelve el PDF renderizado.
func (uc *ValuationUseCase) Generate(ctx context.Context) ([]byte, error) {
	entries, err := uc.stockRepo.List()
	if err != nil {
		return nil, err
	}
	snapshot, err := uc.snapshotRepo.Get()
	if err != nil {
		return nil, err
	}
	data := BuildValuation(entries, snapshot, time.Now())
	return uc.generator.GenerateValuationPDF(ctx, data)
}

// BuildValuation agrega pesos por metal y los valora con el snapshot.
// Valor de un metal = gramos totales × precio unitario; nil sin cotización.
func BuildValuation(entries []*entity.StockEntry, snapshot *entity.PriceSnapshot, at time.Time) *ValuationData {
	data := &ValuationData{
		GeneratedAt: at,
		Lines:       make([]ValuationLine, 0, len(entries)),
		Gold:        MetalSummary{Metal: entity.OrnamentGold, TotalWeight: decimal.Zero},
		Silver:      MetalSummary{Metal: entity.OrnamentSilver, TotalWeight: decimal.Zero},
	}
	for _, e := range entries {
		data.Lines = append(data.Lines, ValuationLine{
			ItemName:       e.ItemName,
			ProductGivenTo: e.ProductGivenTo,
			OrnamentType:   e.OrnamentType,
			Weight:         e.Weight,
			Pieces:         e.Pieces,
			Date:           e.Date,
			Author:         e.Author,
		})
		switch e.OrnamentType {
		case entity.OrnamentSilver:
			data.Silver.TotalWeight = data.Silver.TotalWeight.Add(e.Weight)
			data.Silver.Entries++
		default:
			data.Gold.TotalWeight = data.Gold.TotalWeight.Add(e.Weight)
			data.Gold.Entries++
		}
	}
	if snapshot != nil {
		data.Gold.UnitPrice = snapshot.GoldPrice
		data.Silver.UnitPrice = snapshot.SilverPrice
	}
	data.Gold.Value = valueOf(data.Gold)
	data.Silver.Value = valueOf(data.Silver)
	data.TotalValue = sumValues(data.Gold.Value, data.Silver.Value)
	return data
}

func valueOf(s MetalSummary) *decimal.Decimal {
	if s.UnitPrice == nil {
		return nil
	}
	v := s.TotalWeight.Mul(*s.UnitPrice)
	return &v
}

func sumValues(values ...*decimal.Decimal) *decimal.Decimal {
	var total *decimal.Decimal
	for _, v := range values {
		if v == nil {
			continue
		}
		if total == nil {
			t := *v
			total = &t
			continue
		}
		t := total.Add(*v)
		total = &t
	}
	return total
}
