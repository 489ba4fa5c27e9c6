package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusDeleted es el estado por defecto de un registro archivado.
const StatusDeleted = "Deleted"

// ArchiveEntry es la copia inmutable de una pieza retirada del stock activo.
// OrnamentType se guarda como texto libre: es una copia desnormalizada del
// registro original y no se vuelve a validar contra la enumeración.
type ArchiveEntry struct {
	ID             string
	ItemName       string
	ProductGivenTo string
	Weight         decimal.Decimal
	Pieces         int
	OrnamentType   string
	Date           time.Time
	Author         string
	Status         string
	DeletionDate   *time.Time
	CreatedAt      time.Time
}
