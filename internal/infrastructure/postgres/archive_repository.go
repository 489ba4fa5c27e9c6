package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Joyeria-api/internal/domain/entity"
	"github.com/jhoicas/Joyeria-api/internal/domain/repository"
)

var _ repository.ArchiveRepository = (*ArchiveRepo)(nil)

// ArchiveRepo implementación del archivo de piezas retiradas sobre PostgreSQL.
// Solo inserta y lee; la inmutabilidad del log se sostiene en que no existe
// ninguna ruta de UPDATE o DELETE sobre la tabla.
type ArchiveRepo struct {
	q Querier
}

// NewArchiveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewArchiveRepository(q Querier) *ArchiveRepo {
	return &ArchiveRepo{q: q}
}

// Append inserta incondicionalmente un registro archivado.
func (r *ArchiveRepo) Append(entry *entity.ArchiveEntry) error {
	query := `
		INSERT INTO archive_entries (id, item_name, product_given_to, weight, pieces, ornament_type, date, author, status, deletion_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ItemName, entry.ProductGivenTo, entry.Weight, entry.Pieces,
		entry.OrnamentType, entry.Date, entry.Author, entry.Status, entry.DeletionDate, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert archive entry: %w", err)
	}
	return nil
}

// List devuelve los registros en orden de inserción.
func (r *ArchiveRepo) List() ([]*entity.ArchiveEntry, error) {
	query := `
		SELECT id, item_name, product_given_to, weight, pieces, ornament_type, date, author, status, deletion_date, created_at
		FROM archive_entries ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list archive entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.ArchiveEntry
	for rows.Next() {
		var e entity.ArchiveEntry
		if err := rows.Scan(&e.ID, &e.ItemName, &e.ProductGivenTo, &e.Weight, &e.Pieces,
			&e.OrnamentType, &e.Date, &e.Author, &e.Status, &e.DeletionDate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan archive entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
