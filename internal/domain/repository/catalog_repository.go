package repository

import "github.com/jhoicas/Joyeria-api/internal/domain/entity"

// CatalogRepository define el puerto del catálogo general de stock (CRUD plano).
type CatalogRepository interface {
	Create(item *entity.CatalogItem) error
	GetByID(id string) (*entity.CatalogItem, error)
	List() ([]*entity.CatalogItem, error)
	Update(item *entity.CatalogItem) error
	// Delete elimina por ID. Retorna domain.ErrNotFound si el ID no existe.
	Delete(id string) error
}
