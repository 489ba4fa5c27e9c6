package repository

import "github.com/jhoicas/Joyeria-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para credenciales.
// La búsqueda es por coincidencia exacta de username (case-sensitive).
type UserRepository interface {
	Create(user *entity.User) error
	// FindByUsername devuelve nil, nil cuando el username no existe.
	FindByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
}
