package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Joyeria-api/internal/application/dto"
	"github.com/jhoicas/Joyeria-api/internal/domain/entity"
	"github.com/jhoicas/Joyeria-api/internal/domain/repository"
)

// UseCase CRUD plano del catálogo general de stock. Recurso hermano del
// stock activo: sin ciclo de vida, sin archivo, sin relación con precios.
type UseCase struct {
	repo repository.CatalogRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.CatalogRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List devuelve todos los ítems del catálogo.
func (uc *UseCase) List() ([]dto.CatalogItemResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toCatalogItemResponse(it))
	}
	return items, nil
}

// Create agrega un ítem. Todos los campos son opcionales; la fecha por defecto es now.
func (uc *UseCase) Create(in dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	item := &entity.CatalogItem{
		ID:        uuid.New().String(),
		ItemName:  in.ItemName,
		Weight:    in.Weight,
		Pieces:    in.Pieces,
		Type:      in.Type,
		Date:      date,
		Author:    in.Author,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toCatalogItemResponse(item), nil
}

// Update actualiza los campos presentes y estampa la fecha con now.
// Devuelve nil, nil cuando el ID no existe.
func (uc *UseCase) Update(id string, in dto.UpdateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.ItemName != nil {
		item.ItemName = *in.ItemName
	}
	if in.Weight != nil {
		item.Weight = *in.Weight
	}
	if in.Pieces != nil {
		item.Pieces = *in.Pieces
	}
	if in.Type != nil {
		item.Type = *in.Type
	}
	if in.Author != nil {
		item.Author = *in.Author
	}
	now := time.Now()
	item.Date = now
	item.UpdatedAt = now
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toCatalogItemResponse(item), nil
}

// Delete elimina un ítem por ID. Propaga domain.ErrNotFound si no existe.
func (uc *UseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCatalogItemResponse(it *entity.CatalogItem) *dto.CatalogItemResponse {
	if it == nil {
		return nil
	}
	return &dto.CatalogItemResponse{
		ID:       it.ID,
		ItemName: it.ItemName,
		Weight:   it.Weight,
		Pieces:   it.Pieces,
		Type:     it.Type,
		Date:     it.Date,
		Author:   it.Author,
	}
}
