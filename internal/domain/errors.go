package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("credenciales inválidas")
	ErrMissingGoldPrice   = errors.New("gold_price es requerido")
	ErrMissingSilverPrice = errors.New("silver_price es requerido")
)
