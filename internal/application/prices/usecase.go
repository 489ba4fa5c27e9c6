package prices

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Joyeria-api/internal/application/dto"
	"github.com/jhoicas/Joyeria-api/internal/domain"
	"github.com/jhoicas/Joyeria-api/internal/domain/entity"
	"github.com/jhoicas/Joyeria-api/internal/domain/repository"
)

// LedgerUseCase orquesta el snapshot de cotizaciones y su historial como una
// unidad lógica. Toda escritura aceptada que incluya un metal produce
// exactamente un registro de historial para ese metal, sin importar por cuál
// endpoint entró, y snapshot + historial se confirman en una sola transacción.
type LedgerUseCase struct {
	snapshotRepo repository.PriceSnapshotRepository
	historyRepo  repository.PriceHistoryRepository
	tx           TxRunner
}

// NewLedgerUseCase construye el caso de uso. snapshotRepo y historyRepo se
// usan para lecturas (atados al pool); las escrituras van por el TxRunner.
func NewLedgerUseCase(
	snapshotRepo repository.PriceSnapshotRepository,
	historyRepo repository.PriceHistoryRepository,
	tx TxRunner,
) *LedgerUseCase {
	return &LedgerUseCase{snapshotRepo: snapshotRepo, historyRepo: historyRepo, tx: tx}
}

// GetCurrent devuelve la cotización vigente, o nil si nunca se escribió.
func (uc *LedgerUseCase) GetCurrent() (*dto.PriceSnapshotResponse, error) {
	snap, err := uc.snapshotRepo.Get()
	if err != nil {
		return nil, err
	}
	return toSnapshotResponse(snap), nil
}

// GetHistory devuelve todo el historial, del cambio más reciente al más antiguo.
func (uc *LedgerUseCase) GetHistory() ([]dto.PriceChangeResponse, error) {
	list, err := uc.historyRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PriceChangeResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.PriceChangeResponse{
			ID:        c.ID,
			Type:      c.Type,
			Price:     c.Price,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return items, nil
}

// Update aplica una escritura parcial: upsert del snapshot con los metales
// presentes y un append de historial por cada uno, todo en una transacción.
// Con ambos campos en nil solo toca updated_at del snapshot y no genera historial.
func (uc *LedgerUseCase) Update(ctx context.Context, in dto.UpdatePricesRequest) (*dto.PriceSnapshotResponse, error) {
	var snap *entity.PriceSnapshot
	err := uc.tx.Run(ctx, func(
		snapshotRepo repository.PriceSnapshotRepository,
		historyRepo repository.PriceHistoryRepository,
	) error {
		s, err := snapshotRepo.Upsert(in.GoldPrice, in.SilverPrice)
		if err != nil {
			return err
		}
		now := time.Now()
		if in.GoldPrice != nil {
			if err := historyRepo.Append(newPriceChange(entity.MetalGold, *in.GoldPrice, now)); err != nil {
				return err
			}
		}
		if in.SilverPrice != nil {
			if err := historyRepo.Append(newPriceChange(entity.MetalSilver, *in.SilverPrice, now)); err != nil {
				return err
			}
		}
		snap = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSnapshotResponse(snap), nil
}

// UpdateGold actualiza solo la cotización del oro. Falla con
// ErrMissingGoldPrice cuando el campo no viene en la petición.
func (uc *LedgerUseCase) UpdateGold(ctx context.Context, goldPrice *decimal.Decimal) (*dto.PriceSnapshotResponse, error) {
	if goldPrice == nil {
		return nil, domain.ErrMissingGoldPrice
	}
	return uc.Update(ctx, dto.UpdatePricesRequest{GoldPrice: goldPrice})
}

// UpdateSilver actualiza solo la cotización de la plata. Simétrico a UpdateGold.
func (uc *LedgerUseCase) UpdateSilver(ctx context.Context, silverPrice *decimal.Decimal) (*dto.PriceSnapshotResponse, error) {
	if silverPrice == nil {
		return nil, domain.ErrMissingSilverPrice
	}
	return uc.Update(ctx, dto.UpdatePricesRequest{SilverPrice: silverPrice})
}

func newPriceChange(metal string, price decimal.Decimal, at time.Time) *entity.PriceChange {
	return &entity.PriceChange{
		ID:        uuid.New().String(),
		Type:      metal,
		Price:     price,
		UpdatedAt: at,
	}
}

func toSnapshotResponse(s *entity.PriceSnapshot) *dto.PriceSnapshotResponse {
	if s == nil {
		return nil
	}
	return &dto.PriceSnapshotResponse{
		GoldPrice:   s.GoldPrice,
		SilverPrice: s.SilverPrice,
		UpdatedAt:   s.UpdatedAt,
	}
}
