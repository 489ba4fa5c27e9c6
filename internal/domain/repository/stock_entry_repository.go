package repository

import "github.com/jhoicas/Joyeria-api/internal/domain/entity"

// StockEntryRepository define el puerto de persistencia para el stock activo (DIP).
type StockEntryRepository interface {
	Create(entry *entity.StockEntry) error
	// List devuelve todas las piezas ordenadas por fecha descendente.
	List() ([]*entity.StockEntry, error)
	// Delete elimina por ID. Retorna domain.ErrNotFound si el ID no existe.
	Delete(id string) error
}
