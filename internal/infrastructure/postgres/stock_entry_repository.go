package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Joyeria-api/internal/domain"
	"github.com/jhoicas/Joyeria-api/internal/domain/entity"
	"github.com/jhoicas/Joyeria-api/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

// StockEntryRepo implementación del puerto StockEntryRepository sobre PostgreSQL.
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

// Create persiste una pieza nueva del stock activo.
func (r *StockEntryRepo) Create(entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (id, item_name, product_given_to, weight, pieces, ornament_type, date, author, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ItemName, entry.ProductGivenTo, entry.Weight, entry.Pieces,
		entry.OrnamentType, entry.Date, entry.Author, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock entry: %w", err)
	}
	return nil
}

// List devuelve todas las piezas ordenadas por fecha descendente.
func (r *StockEntryRepo) List() ([]*entity.StockEntry, error) {
	query := `
		SELECT id, item_name, product_given_to, weight, pieces, ornament_type, date, author, created_at
		FROM stock_entries ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(&e.ID, &e.ItemName, &e.ProductGivenTo, &e.Weight, &e.Pieces,
			&e.OrnamentType, &e.Date, &e.Author, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina una pieza por ID. Retorna domain.ErrNotFound si no existía.
func (r *StockEntryRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM stock_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
