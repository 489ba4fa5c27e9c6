package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Joyeria-api/internal/domain"
	"github.com/jhoicas/Joyeria-api/internal/domain/entity"
	"github.com/jhoicas/Joyeria-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación del catálogo general sobre PostgreSQL.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// Create persiste un ítem nuevo del catálogo.
func (r *CatalogRepo) Create(item *entity.CatalogItem) error {
	query := `
		INSERT INTO catalog_items (id, item_name, weight, pieces, type, date, author, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ItemName, item.Weight, item.Pieces, item.Type,
		item.Date, item.Author, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert catalog item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID. Devuelve nil, nil cuando no existe.
func (r *CatalogRepo) GetByID(id string) (*entity.CatalogItem, error) {
	query := `
		SELECT id, item_name, weight, pieces, type, date, author, created_at, updated_at
		FROM catalog_items WHERE id = $1`
	var it entity.CatalogItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.ItemName, &it.Weight, &it.Pieces, &it.Type,
		&it.Date, &it.Author, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get catalog item: %w", err)
	}
	return &it, nil
}

// List devuelve todos los ítems del catálogo.
func (r *CatalogRepo) List() ([]*entity.CatalogItem, error) {
	query := `
		SELECT id, item_name, weight, pieces, type, date, author, created_at, updated_at
		FROM catalog_items ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list catalog items: %w", err)
	}
	defer rows.Close()
	var list []*entity.CatalogItem
	for rows.Next() {
		var it entity.CatalogItem
		if err := rows.Scan(&it.ID, &it.ItemName, &it.Weight, &it.Pieces, &it.Type,
			&it.Date, &it.Author, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan catalog item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza un ítem existente.
func (r *CatalogRepo) Update(item *entity.CatalogItem) error {
	query := `
		UPDATE catalog_items SET item_name = $2, weight = $3, pieces = $4, type = $5, date = $6, author = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.ItemName, item.Weight, item.Pieces, item.Type,
		item.Date, item.Author, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update catalog item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un ítem por ID. Retorna domain.ErrNotFound si no existía.
func (r *CatalogRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM catalog_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete catalog item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
