package repository

import "github.com/jhoicas/Joyeria-api/internal/domain/entity"

// ArchiveRepository define el puerto del archivo de piezas retiradas.
// Es write-once, read-many: no expone update ni delete.
type ArchiveRepository interface {
	// Append inserta incondicionalmente; los duplicados son válidos.
	Append(entry *entity.ArchiveEntry) error
	// List devuelve los registros en orden de inserción.
	List() ([]*entity.ArchiveEntry, error)
}
