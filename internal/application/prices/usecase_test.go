package prices_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Joyeria-api/internal/application/dto"
	"github.com/jhoicas/Joyeria-api/internal/application/prices"
	"github.com/jhoicas/Joyeria-api/internal/domain"
	"github.com/jhoicas/Joyeria-api/internal/domain/entity"
	"github.com/jhoicas/Joyeria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks
// ──────────────────────────────────────────────────────────────────────────────

type snapshotRepoMock struct {
	mock.Mock
}

func (m *snapshotRepoMock) Get() (*entity.PriceSnapshot, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.(*entity.PriceSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *snapshotRepoMock) Upsert(goldPrice, silverPrice *decimal.Decimal) (*entity.PriceSnapshot, error) {
	args := m.Called(goldPrice, silverPrice)
	if v := args.Get(0); v != nil {
		return v.(*entity.PriceSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

type historyRepoMock struct {
	mock.Mock
}

func (m *historyRepoMock) Append(c *entity.PriceChange) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *historyRepoMock) List() ([]*entity.PriceChange, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]*entity.PriceChange), args.Error(1)
	}
	return nil, args.Error(1)
}

// fakeTxRunner entrega los repos del test al callback, sin transacción real.
type fakeTxRunner struct {
	snapshotRepo repository.PriceSnapshotRepository
	historyRepo  repository.PriceHistoryRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	snapshotRepo repository.PriceSnapshotRepository,
	historyRepo repository.PriceHistoryRepository,
) error) error {
	return fn(f.snapshotRepo, f.historyRepo)
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newLedger(snap *snapshotRepoMock, hist *historyRepoMock) *prices.LedgerUseCase {
	return prices.NewLedgerUseCase(snap, hist, &fakeTxRunner{snapshotRepo: snap, historyRepo: hist})
}

func snapshotWith(gold, silver *decimal.Decimal) *entity.PriceSnapshot {
	return &entity.PriceSnapshot{GoldPrice: gold, SilverPrice: silver, UpdatedAt: time.Now()}
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetCurrent_NuncaEscrito_DevuelveNil(t *testing.T) {
	snap := new(snapshotRepoMock)
	hist := new(historyRepoMock)
	snap.On("Get").Return(nil, nil)

	out, err := newLedger(snap, hist).GetCurrent()
	require.NoError(t, err)
	assert.Nil(t, out, "sin escritura previa la cotización vigente es null")
}

func TestGetHistory_DevuelveTodo(t *testing.T) {
	snap := new(snapshotRepoMock)
	hist := new(historyRepoMock)
	hist.On("List").Return([]*entity.PriceChange{
		{ID: "b", Type: entity.MetalGold, Price: decimal.RequireFromString("210")},
		{ID: "a", Type: entity.MetalGold, Price: decimal.RequireFromString("200")},
	}, nil)

	out, err := newLedger(snap, hist).GetHistory()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].ID, "el repo ya entrega del más reciente al más antiguo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Escrituras: exactamente un registro de historial por metal presente
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_AmbosMetales_DosRegistrosDeHistorial(t *testing.T) {
	snap := new(snapshotRepoMock)
	hist := new(historyRepoMock)
	gold, silver := dec("250.5"), dec("3.75")
	snap.On("Upsert", gold, silver).Return(snapshotWith(gold, silver), nil)
	hist.On("Append", mock.AnythingOfType("*entity.PriceChange")).Return(nil)

	out, err := newLedger(snap, hist).Update(context.Background(), dto.UpdatePricesRequest{
		GoldPrice:   gold,
		SilverPrice: silver,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	hist.AssertNumberOfCalls(t, "Append", 2)
	types := map[string]decimal.Decimal{}
	for _, call := range hist.Calls {
		c := call.Arguments.Get(0).(*entity.PriceChange)
		types[c.Type] = c.Price
	}
	assert.True(t, types[entity.MetalGold].Equal(*gold))
	assert.True(t, types[entity.MetalSilver].Equal(*silver))
}

func TestUpdate_SoloOro_UnRegistroDeHistorial(t *testing.T) {
	snap := new(snapshotRepoMock)
	hist := new(historyRepoMock)
	gold := dec("260")
	// La plata ausente conserva su valor vigente en el snapshot.
	snap.On("Upsert", gold, (*decimal.Decimal)(nil)).Return(snapshotWith(gold, dec("3.75")), nil)
	hist.On("Append", mock.AnythingOfType("*entity.PriceChange")).Return(nil)

	out, err := newLedger(snap, hist).Update(context.Background(), dto.UpdatePricesRequest{GoldPrice: gold})
	require.NoError(t, err)
	require.NotNil(t, out.SilverPrice, "el metal ausente no se pisa")

	hist.AssertNumberOfCalls(t, "Append", 1)
	c := hist.Calls[0].Arguments.Get(0).(*entity.PriceChange)
	assert.Equal(t, entity.MetalGold, c.Type)
}

func TestUpdate_SinMetales_NoGeneraHistorial(t *testing.T) {
	snap := new(snapshotRepoMock)
	hist := new(historyRepoMock)
	snap.On("Upsert", (*decimal.Decimal)(nil), (*decimal.Decimal)(nil)).
		Return(snapshotWith(nil, nil), nil)

	_, err := newLedger(snap, hist).Update(context.Background(), dto.UpdatePricesRequest{})
	require.NoError(t, err)
	hist.AssertNotCalled(t, "Append", mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// Endpoints por metal: mismo invariante, validación de campo requerido
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateGold_CampoAusente_Falla(t *testing.T) {
	snap := new(snapshotRepoMock)
	hist := new(historyRepoMock)

	_, err := newLedger(snap, hist).UpdateGold(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrMissingGoldPrice)
	snap.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUpdateSilver_CampoAusente_Falla(t *testing.T) {
	snap := new(snapshotRepoMock)
	hist := new(historyRepoMock)

	_, err := newLedger(snap, hist).UpdateSilver(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrMissingSilverPrice)
	snap.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUpdateGold_PrecioCeroEsValido(t *testing.T) {
	snap := new(snapshotRepoMock)
	hist := new(historyRepoMock)
	cero := dec("0")
	snap.On("Upsert", cero, (*decimal.Decimal)(nil)).Return(snapshotWith(cero, nil), nil)
	hist.On("Append", mock.AnythingOfType("*entity.PriceChange")).Return(nil)

	// Solo un campo ausente se rechaza; presente con valor cero se acepta.
	out, err := newLedger(snap, hist).UpdateGold(context.Background(), cero)
	require.NoError(t, err)
	require.NotNil(t, out.GoldPrice)
	assert.True(t, out.GoldPrice.IsZero())

	hist.AssertNumberOfCalls(t, "Append", 1)
	c := hist.Calls[0].Arguments.Get(0).(*entity.PriceChange)
	assert.True(t, c.Price.IsZero(), "el historial registra el cero tal cual")
}

func TestUpdateGold_GeneraUnSoloRegistro(t *testing.T) {
	snap := new(snapshotRepoMock)
	hist := new(historyRepoMock)
	gold := dec("270")
	snap.On("Upsert", gold, (*decimal.Decimal)(nil)).Return(snapshotWith(gold, nil), nil)
	hist.On("Append", mock.AnythingOfType("*entity.PriceChange")).Return(nil)

	_, err := newLedger(snap, hist).UpdateGold(context.Background(), gold)
	require.NoError(t, err)
	hist.AssertNumberOfCalls(t, "Append", 1)
}
