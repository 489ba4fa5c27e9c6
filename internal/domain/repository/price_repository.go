package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Joyeria-api/internal/domain/entity"
)

// PriceSnapshotRepository define el puerto de la cotización vigente.
// Upsert es la única vía de escritura (fila única bien conocida).
type PriceSnapshotRepository interface {
	// Get devuelve el snapshot, o nil si nunca se escribió (no es error).
	Get() (*entity.PriceSnapshot, error)
	// Upsert crea o actualiza la fila única en una sola sentencia atómica.
	// Un metal en nil se deja intacto (o NULL en la primera creación).
	Upsert(goldPrice, silverPrice *decimal.Decimal) (*entity.PriceSnapshot, error)
}

// PriceHistoryRepository define el puerto del historial de cotizaciones
// (append-only, inmutable).
type PriceHistoryRepository interface {
	Append(change *entity.PriceChange) error
	// List devuelve todos los registros ordenados por fecha de actualización descendente.
	List() ([]*entity.PriceChange, error)
}
