package prices

import (
	"context"

	"github.com/jhoicas/Joyeria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el upsert del snapshot y sus
// appends de historial se confirmen (o se reviertan) como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		snapshotRepo repository.PriceSnapshotRepository,
		historyRepo repository.PriceHistoryRepository,
	) error) error
}
