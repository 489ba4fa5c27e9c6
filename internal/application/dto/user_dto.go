package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse respuesta de login: identidad visible más un token de sesión.
type LoginResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

// UserDetailsResponse identidad visible de un usuario.
type UserDetailsResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// UpdateUserRequest actualización de credenciales. Password vacío conserva el hash actual.
type UpdateUserRequest struct {
	OriginalUsername string `json:"originalUsername" validate:"required"`
	Username         string `json:"username" validate:"required"`
	Password         string `json:"password"`
	Name             string `json:"name"`
}
