package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Joyeria-api/internal/application/auth"
	"github.com/jhoicas/Joyeria-api/internal/application/dto"
	"github.com/jhoicas/Joyeria-api/internal/domain"
	"github.com/jhoicas/Joyeria-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Joyeria-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

type userRepoMock struct {
	mock.Mock
}

func (m *userRepoMock) Create(u *entity.User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *userRepoMock) FindByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if v := args.Get(0); v != nil {
		return v.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *userRepoMock) Update(u *entity.User) error {
	args := m.Called(u)
	return args.Error(0)
}

func testUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           "00000000-0000-0000-0000-000000000001",
		Username:     "maria",
		PasswordHash: string(hash),
		Name:         "María Jiménez",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func newUseCase(repo *userRepoMock) *auth.UseCase {
	return auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "joyeria-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := new(userRepoMock)
	repo.On("FindByUsername", "maria").Return(testUser(t, "secreto123"), nil)

	out, err := newUseCase(repo).Login(dto.LoginRequest{Username: "maria", Password: "secreto123"})
	require.NoError(t, err)

	assert.Equal(t, "maria", out.Username)
	assert.Equal(t, "María Jiménez", out.Name)
	require.NotEmpty(t, out.Token)

	// El token es verificable con el mismo secret y transporta la identidad.
	username, name, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "maria", username)
	assert.Equal(t, "María Jiménez", name)
}

func TestLogin_PasswordIncorrecto_Retorna401(t *testing.T) {
	repo := new(userRepoMock)
	repo.On("FindByUsername", "maria").Return(testUser(t, "secreto123"), nil)

	_, err := newUseCase(repo).Login(dto.LoginRequest{Username: "maria", Password: "otro"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioDesconocido_MismoError(t *testing.T) {
	repo := new(userRepoMock)
	repo.On("FindByUsername", "fantasma").Return(nil, nil)

	_, err := newUseCase(repo).Login(dto.LoginRequest{Username: "fantasma", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"usuario desconocido y password incorrecto deben responder igual")
}

// ──────────────────────────────────────────────────────────────────────────────
// UserDetails
// ──────────────────────────────────────────────────────────────────────────────

func TestUserDetails_Existente(t *testing.T) {
	repo := new(userRepoMock)
	repo.On("FindByUsername", "maria").Return(testUser(t, "x"), nil)

	out, err := newUseCase(repo).UserDetails("maria")
	require.NoError(t, err)
	assert.Equal(t, "maria", out.Username)
	assert.Equal(t, "María Jiménez", out.Name)
}

func TestUserDetails_Desconocido_NotFound(t *testing.T) {
	repo := new(userRepoMock)
	repo.On("FindByUsername", "fantasma").Return(nil, nil)

	_, err := newUseCase(repo).UserDetails("fantasma")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateUser
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateUser_PasswordNuevoSeRehashea(t *testing.T) {
	repo := new(userRepoMock)
	user := testUser(t, "viejo")
	oldHash := user.PasswordHash
	repo.On("FindByUsername", "maria").Return(user, nil)
	var updated *entity.User
	repo.On("Update", mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) { updated = args.Get(0).(*entity.User) }).
		Return(nil)

	err := newUseCase(repo).UpdateUser(dto.UpdateUserRequest{
		OriginalUsername: "maria",
		Username:         "maria.j",
		Password:         "nuevo-password",
		Name:             "María J.",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "maria.j", updated.Username)
	assert.Equal(t, "María J.", updated.Name)
	assert.NotEqual(t, oldHash, updated.PasswordHash, "el password nuevo debe rehashearse")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("nuevo-password")))
}

func TestUpdateUser_PasswordVacioConservaHash(t *testing.T) {
	repo := new(userRepoMock)
	user := testUser(t, "viejo")
	oldHash := user.PasswordHash
	repo.On("FindByUsername", "maria").Return(user, nil)
	var updated *entity.User
	repo.On("Update", mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) { updated = args.Get(0).(*entity.User) }).
		Return(nil)

	err := newUseCase(repo).UpdateUser(dto.UpdateUserRequest{
		OriginalUsername: "maria",
		Username:         "maria",
	})
	require.NoError(t, err)
	assert.Equal(t, oldHash, updated.PasswordHash)
}

func TestUpdateUser_Desconocido_NotFound(t *testing.T) {
	repo := new(userRepoMock)
	repo.On("FindByUsername", "fantasma").Return(nil, nil)

	err := newUseCase(repo).UpdateUser(dto.UpdateUserRequest{
		OriginalUsername: "fantasma",
		Username:         "nuevo",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}
