package stock

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Joyeria-api/internal/application/dto"
	"github.com/jhoicas/Joyeria-api/internal/domain"
	"github.com/jhoicas/Joyeria-api/internal/domain/entity"
	"github.com/jhoicas/Joyeria-api/internal/domain/repository"
)

// ArchiveUseCase casos de uso del archivo de piezas retiradas (write-once,
// read-many). Append inserta incondicionalmente: no deduplica, no actualiza.
type ArchiveUseCase struct {
	repo repository.ArchiveRepository
}

// NewArchiveUseCase construye el caso de uso.
func NewArchiveUseCase(repo repository.ArchiveRepository) *ArchiveUseCase {
	return &ArchiveUseCase{repo: repo}
}

// List devuelve los registros archivados en orden de inserción.
func (uc *ArchiveUseCase) List() ([]dto.ArchiveEntryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArchiveEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toArchiveEntryResponse(e))
	}
	return items, nil
}

// Append valida los mismos campos requeridos que la creación de stock activo
// y persiste un registro inmutable. OrnamentType viaja como texto libre
// (copia desnormalizada); Status por defecto es "Deleted".
func (uc *ArchiveUseCase) Append(in dto.AppendArchiveRequest) (*dto.ArchiveEntryResponse, error) {
	if in.ItemName == "" || in.ProductGivenTo == "" || in.Author == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Weight.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Pieces < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	status := in.Status
	if status == "" {
		status = entity.StatusDeleted
	}
	ornamentType := in.OrnamentType
	if ornamentType == "" {
		ornamentType = entity.OrnamentGold
	}
	entry := &entity.ArchiveEntry{
		ID:             uuid.New().String(),
		ItemName:       in.ItemName,
		ProductGivenTo: in.ProductGivenTo,
		Weight:         in.Weight,
		Pieces:         in.Pieces,
		OrnamentType:   ornamentType,
		Date:           date,
		Author:         in.Author,
		Status:         status,
		DeletionDate:   in.DeletionDate,
		CreatedAt:      now,
	}
	if err := uc.repo.Append(entry); err != nil {
		return nil, err
	}
	return toArchiveEntryResponse(entry), nil
}

func toArchiveEntryResponse(e *entity.ArchiveEntry) *dto.ArchiveEntryResponse {
	if e == nil {
		return nil
	}
	return &dto.ArchiveEntryResponse{
		ID:             e.ID,
		ItemName:       e.ItemName,
		ProductGivenTo: e.ProductGivenTo,
		Weight:         e.Weight,
		Pieces:         e.Pieces,
		OrnamentType:   e.OrnamentType,
		Date:           e.Date,
		Author:         e.Author,
		Status:         e.Status,
		DeletionDate:   e.DeletionDate,
	}
}
