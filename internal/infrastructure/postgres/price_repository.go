package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Joyeria-api/internal/domain/entity"
	"github.com/jhoicas/Joyeria-api/internal/domain/repository"
)

var _ repository.PriceSnapshotRepository = (*PriceSnapshotRepo)(nil)
var _ repository.PriceHistoryRepository = (*PriceHistoryRepo)(nil)

// snapshotRowID es la clave de la fila única de cotizaciones. Modelar el
// singleton como fila bien conocida evita el "buscar el único documento".
const snapshotRowID = 1

// PriceSnapshotRepo implementación del snapshot de cotizaciones sobre PostgreSQL.
type PriceSnapshotRepo struct {
	q Querier
}

// NewPriceSnapshotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceSnapshotRepository(q Querier) *PriceSnapshotRepo {
	return &PriceSnapshotRepo{q: q}
}

// Get devuelve la cotización vigente, o nil si la fila aún no existe.
func (r *PriceSnapshotRepo) Get() (*entity.PriceSnapshot, error) {
	query := `
		SELECT gold_price, silver_price, updated_at
		FROM price_snapshot WHERE id = $1`
	var s entity.PriceSnapshot
	err := r.q.QueryRow(context.Background(), query, snapshotRowID).Scan(
		&s.GoldPrice, &s.SilverPrice, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price snapshot: %w", err)
	}
	return &s, nil
}

// Upsert crea o actualiza la fila única en una sola sentencia. COALESCE deja
// intacto el metal que venga en nil; en la primera creación queda NULL.
func (r *PriceSnapshotRepo) Upsert(goldPrice, silverPrice *decimal.Decimal) (*entity.PriceSnapshot, error) {
	query := `
		INSERT INTO price_snapshot (id, gold_price, silver_price, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE SET
			gold_price = COALESCE(EXCLUDED.gold_price, price_snapshot.gold_price),
			silver_price = COALESCE(EXCLUDED.silver_price, price_snapshot.silver_price),
			updated_at = now()
		RETURNING gold_price, silver_price, updated_at`
	var s entity.PriceSnapshot
	err := r.q.QueryRow(context.Background(), query, snapshotRowID, goldPrice, silverPrice).Scan(
		&s.GoldPrice, &s.SilverPrice, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert price snapshot: %w", err)
	}
	return &s, nil
}

// PriceHistoryRepo implementación del historial de cotizaciones sobre
// PostgreSQL. Append-only: sin UPDATE ni DELETE.
type PriceHistoryRepo struct {
	q Querier
}

// NewPriceHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceHistoryRepository(q Querier) *PriceHistoryRepo {
	return &PriceHistoryRepo{q: q}
}

// Append persiste un registro inmutable del historial.
func (r *PriceHistoryRepo) Append(change *entity.PriceChange) error {
	query := `
		INSERT INTO price_changes (id, type, price, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		change.ID, change.Type, change.Price, change.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert price change: %w", err)
	}
	return nil
}

// List devuelve todo el historial ordenado por fecha de actualización descendente.
func (r *PriceHistoryRepo) List() ([]*entity.PriceChange, error) {
	query := `
		SELECT id, type, price, updated_at
		FROM price_changes ORDER BY updated_at DESC, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list price changes: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceChange
	for rows.Next() {
		var c entity.PriceChange
		if err := rows.Scan(&c.ID, &c.Type, &c.Price, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan price change: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
