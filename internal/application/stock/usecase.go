package stock

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Joyeria-api/internal/application/dto"
	"github.com/jhoicas/Joyeria-api/internal/domain"
	"github.com/jhoicas/Joyeria-api/internal/domain/entity"
	"github.com/jhoicas/Joyeria-api/internal/domain/repository"
)

// LedgerUseCase casos de uso del stock activo: listar, crear y eliminar.
// No existe actualización; una pieza solo sale del libro al eliminarse, y el
// archivado es una llamada separada del cliente (ver ArchiveUseCase).
type LedgerUseCase struct {
	repo repository.StockEntryRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(repo repository.StockEntryRepository) *LedgerUseCase {
	return &LedgerUseCase{repo: repo}
}

// List devuelve todas las piezas activas ordenadas por fecha descendente.
func (uc *LedgerUseCase) List() ([]dto.StockEntryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toStockEntryResponse(e))
	}
	return items, nil
}

// Create valida y persiste una pieza nueva con los valores por defecto
// (pieces=0, ornamentType=Gold, date=now).
func (uc *LedgerUseCase) Create(in dto.CreateStockEntryRequest) (*dto.StockEntryResponse, error) {
	if in.ItemName == "" || in.ProductGivenTo == "" || in.Author == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Weight.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Pieces < 0 {
		return nil, domain.ErrInvalidInput
	}
	ornamentType := in.OrnamentType
	if ornamentType == "" {
		ornamentType = entity.OrnamentGold
	}
	if !entity.ValidOrnamentType(ornamentType) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	entry := &entity.StockEntry{
		ID:             uuid.New().String(),
		ItemName:       in.ItemName,
		ProductGivenTo: in.ProductGivenTo,
		Weight:         in.Weight,
		Pieces:         in.Pieces,
		OrnamentType:   ornamentType,
		Date:           now,
		Author:         in.Author,
		CreatedAt:      now,
	}
	if err := uc.repo.Create(entry); err != nil {
		return nil, err
	}
	return toStockEntryResponse(entry), nil
}

// Delete elimina una pieza por ID. No archiva como efecto colateral: el
// cliente debe enviar la copia al archivo en una llamada aparte.
func (uc *LedgerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toStockEntryResponse(e *entity.StockEntry) *dto.StockEntryResponse {
	if e == nil {
		return nil
	}
	return &dto.StockEntryResponse{
		ID:             e.ID,
		ItemName:       e.ItemName,
		ProductGivenTo: e.ProductGivenTo,
		Weight:         e.Weight,
		Pieces:         e.Pieces,
		OrnamentType:   e.OrnamentType,
		Date:           e.Date,
		Author:         e.Author,
	}
}
