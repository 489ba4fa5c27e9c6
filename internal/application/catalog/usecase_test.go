package catalog_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Joyeria-api/internal/application/catalog"
	"github.com/jhoicas/Joyeria-api/internal/application/dto"
	"github.com/jhoicas/Joyeria-api/internal/domain/entity"
)

type catalogRepoMock struct {
	mock.Mock
}

func (m *catalogRepoMock) Create(it *entity.CatalogItem) error {
	args := m.Called(it)
	return args.Error(0)
}

func (m *catalogRepoMock) GetByID(id string) (*entity.CatalogItem, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*entity.CatalogItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *catalogRepoMock) List() ([]*entity.CatalogItem, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]*entity.CatalogItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *catalogRepoMock) Update(it *entity.CatalogItem) error {
	args := m.Called(it)
	return args.Error(0)
}

func (m *catalogRepoMock) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestCatalogCreate_FechaPorDefectoEsNow(t *testing.T) {
	repo := new(catalogRepoMock)
	repo.On("Create", mock.AnythingOfType("*entity.CatalogItem")).Return(nil)
	uc := catalog.NewUseCase(repo)

	out, err := uc.Create(dto.CreateCatalogItemRequest{
		ItemName: "Dije corazón",
		Weight:   decimal.RequireFromString("1.2"),
		Pieces:   3,
		Type:     "Gold",
		Author:   "maria",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.WithinDuration(t, time.Now(), out.Date, time.Minute)
}

func TestCatalogUpdate_EstampaFechaConNow(t *testing.T) {
	repo := new(catalogRepoMock)
	ayer := time.Now().Add(-24 * time.Hour)
	repo.On("GetByID", "abc").Return(&entity.CatalogItem{
		ID:       "abc",
		ItemName: "Dije corazón",
		Date:     ayer,
	}, nil)
	repo.On("Update", mock.AnythingOfType("*entity.CatalogItem")).Return(nil)
	uc := catalog.NewUseCase(repo)

	nombre := "Dije estrella"
	out, err := uc.Update("abc", dto.UpdateCatalogItemRequest{ItemName: &nombre})
	require.NoError(t, err)

	assert.Equal(t, "Dije estrella", out.ItemName)
	assert.True(t, out.Date.After(ayer), "la fecha la pisa el servidor en cada update")
}

func TestCatalogUpdate_Inexistente_DevuelveNil(t *testing.T) {
	repo := new(catalogRepoMock)
	repo.On("GetByID", "no-existe").Return(nil, nil)
	uc := catalog.NewUseCase(repo)

	out, err := uc.Update("no-existe", dto.UpdateCatalogItemRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}
