package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Joyeria-api/internal/application/dto"
	"github.com/jhoicas/Joyeria-api/internal/domain"
	"github.com/jhoicas/Joyeria-api/internal/domain/repository"
	"github.com/jhoicas/Joyeria-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de credenciales: login, consulta y actualización.
// El contrato externo es username entra, nombre visible sale, 401 si no
// coincide; la verificación interna es contra un hash bcrypt.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password contra el hash y devuelve la identidad
// visible más un JWT. Username desconocido y password incorrecto responden
// igual (ErrUnauthorized) para no revelar qué usuarios existen.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, user.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Username: user.Username,
		Name:     user.Name,
		Token:    token,
	}, nil
}

// UserDetails devuelve la identidad visible por username exacto.
func (uc *UseCase) UserDetails(username string) (*dto.UserDetailsResponse, error) {
	user, err := uc.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.UserDetailsResponse{Username: user.Username, Name: user.Name}, nil
}

// UpdateUser actualiza username, nombre y (si viene) password de la
// credencial identificada por OriginalUsername. Password vacío conserva el
// hash vigente.
func (uc *UseCase) UpdateUser(in dto.UpdateUserRequest) error {
	user, err := uc.userRepo.FindByUsername(in.OriginalUsername)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	user.Username = in.Username
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}
