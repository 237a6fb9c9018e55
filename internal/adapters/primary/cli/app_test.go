package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"vehicle-inventory-frontend/internal/config"
	"vehicle-inventory-frontend/internal/core/domain"
	ports "vehicle-inventory-frontend/internal/core/ports/output"
	"vehicle-inventory-frontend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type harness struct {
	api  *testutil.MockInventoryAPI
	out  *bytes.Buffer
	seen []config.APIConfig
}

func run(t *testing.T, h *harness, stdin string, args ...string) error {
	t.Helper()
	defaults := config.APIConfig{BaseURL: config.DefaultAPIBaseURL, Timeout: 15 * time.Second}
	connect := func(cfg config.APIConfig) ports.InventoryAPI {
		h.seen = append(h.seen, cfg)
		return h.api
	}
	app := NewApp(defaults, connect, strings.NewReader(stdin), h.out)
	return app.Run(append([]string{"inventario"}, args...))
}

func newHarness() *harness {
	return &harness{api: new(testutil.MockInventoryAPI), out: &bytes.Buffer{}}
}

func TestCarrosList_Table(t *testing.T) {
	h := newHarness()
	modelo := testutil.NewModelo(3, "Toyota", "Corolla", 2024)
	h.api.On("GetCarros", mock.Anything).Return([]*domain.Carro{testutil.NewCarro(5, modelo, 11, 12)}, nil)

	require.NoError(t, run(t, h, "", "carros", "list"))

	lines := strings.Split(strings.TrimSpace(h.out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "Toyota Corolla (2024)")
	assert.Contains(t, lines[1], "Prata")
}

func TestCarrosList_JSON(t *testing.T) {
	h := newHarness()
	modelo := testutil.NewModelo(3, "Toyota", "Corolla", 2024)
	h.api.On("GetCarros", mock.Anything).Return([]*domain.Carro{testutil.NewCarro(5, modelo, 11)}, nil)

	require.NoError(t, run(t, h, "", "--json", "carros", "list"))

	var got []carroView
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, int64(5), got[0].ID)
	assert.Equal(t, "M0003", got[0].Modelo.Codigo)
	require.Len(t, got[0].Imagens, 1)
	assert.True(t, got[0].Imagens[0].Principal)
}

func TestGlobalFlagsReachConnector(t *testing.T) {
	h := newHarness()
	h.api.On("GetModelos", mock.Anything).Return([]*domain.Modelo{}, nil)

	require.NoError(t, run(t, h, "", "--api-url", "http://api:9000/v1/", "--timeout", "2s", "modelos", "list"))

	require.Len(t, h.seen, 1)
	assert.Equal(t, "http://api:9000/v1", h.seen[0].BaseURL)
	assert.Equal(t, 2*time.Second, h.seen[0].Timeout)
}

func TestCarrosShow(t *testing.T) {
	h := newHarness()
	h.api.On("GetCarro", mock.Anything, int64(5)).Return(testutil.NewCarro(5, nil, 11, 12), nil)

	require.NoError(t, run(t, h, "", "carros", "show", "5"))

	out := h.out.String()
	assert.Contains(t, out, "Modelo:")
	assert.Contains(t, out, "IMAGEM")
	assert.Contains(t, out, "sim")
}

func TestCarrosShow_InvalidID(t *testing.T) {
	h := newHarness()

	err := run(t, h, "", "carros", "show", "abc")

	assert.ErrorIs(t, err, domain.ErrInvalidID)
	h.api.AssertNotCalled(t, "GetCarro", mock.Anything, mock.Anything)
}

func TestCarrosDelete_Declined(t *testing.T) {
	h := newHarness()

	require.NoError(t, run(t, h, "n\n", "carros", "delete", "5"))

	assert.Contains(t, h.out.String(), "Tem certeza que deseja excluir o carro #5? [s/N]")
	assert.Contains(t, h.out.String(), "Operação cancelada.")
	h.api.AssertNotCalled(t, "DeleteCarro", mock.Anything, mock.Anything)
}

func TestCarrosDelete_EmptyInputDeclines(t *testing.T) {
	h := newHarness()

	require.NoError(t, run(t, h, "", "carros", "delete", "5"))

	h.api.AssertNotCalled(t, "DeleteCarro", mock.Anything, mock.Anything)
}

func TestCarrosDelete_Confirmed(t *testing.T) {
	h := newHarness()
	h.api.On("DeleteCarro", mock.Anything, int64(5)).Return(nil)

	require.NoError(t, run(t, h, "Sim\n", "carros", "delete", "5"))

	assert.Contains(t, h.out.String(), "Carro #5 excluído.")
	h.api.AssertExpectations(t)
}

func TestCarrosDelete_YesFlag(t *testing.T) {
	h := newHarness()
	h.api.On("DeleteCarro", mock.Anything, int64(5)).Return(nil)

	require.NoError(t, run(t, h, "", "carros", "delete", "--yes", "5"))

	assert.NotContains(t, h.out.String(), "[s/N]")
	h.api.AssertExpectations(t)
}

func TestCarrosSetPrincipal(t *testing.T) {
	h := newHarness()
	h.api.On("GetCarro", mock.Anything, int64(5)).Return(testutil.NewCarro(5, nil, 11, 12), nil)
	h.api.On("SetImagemPrincipal", mock.Anything, int64(5), int64(12)).Return(nil)

	require.NoError(t, run(t, h, "", "carros", "set-principal", "5", "12"))

	assert.Contains(t, h.out.String(), "Imagem #12 definida como principal.")
	h.api.AssertExpectations(t)
}

func TestCarrosReorder(t *testing.T) {
	h := newHarness()
	h.api.On("GetCarro", mock.Anything, int64(5)).Return(testutil.NewCarro(5, nil, 11, 12, 13), nil)
	h.api.On("ReordenarImagens", mock.Anything, int64(5), []int64{13, 11, 12}).Return(nil)

	require.NoError(t, run(t, h, "", "carros", "reorder", "5", "13", "11", "12"))

	h.api.AssertExpectations(t)
}

func TestCarrosReorder_NotAPermutation(t *testing.T) {
	h := newHarness()
	h.api.On("GetCarro", mock.Anything, int64(5)).Return(testutil.NewCarro(5, nil, 11, 12), nil)

	err := run(t, h, "", "carros", "reorder", "5", "11", "11")

	assert.ErrorIs(t, err, domain.ErrInvalidImageOrder)
	h.api.AssertNotCalled(t, "ReordenarImagens", mock.Anything, mock.Anything, mock.Anything)
}

func TestModelosCreate(t *testing.T) {
	h := newHarness()
	h.api.On("CreateModelo", mock.Anything, domain.ModeloInput{Marca: "Fiat", Nome: "Uno", Ano: 2019}).
		Return(testutil.NewModelo(1, "Fiat", "Uno", 2019), nil)

	require.NoError(t, run(t, h, "", "modelos", "create", "--marca", "Fiat", "--nome", "Uno", "--ano", "2019"))

	assert.Contains(t, h.out.String(), "M0001")
	h.api.AssertExpectations(t)
}

func TestModelosCreate_Validation(t *testing.T) {
	h := newHarness()

	err := run(t, h, "", "modelos", "create", "--marca", "Fiat")

	assert.ErrorIs(t, err, domain.ErrValidation)
	h.api.AssertNotCalled(t, "CreateModelo", mock.Anything, mock.Anything)
}

func TestModelosUpdate_KeepsOmittedFields(t *testing.T) {
	h := newHarness()
	current := testutil.NewModelo(1, "Fiat", "Uno", 2019)
	current.Descricao = "Compacto"
	h.api.On("GetModelo", mock.Anything, int64(1)).Return(current, nil)
	h.api.On("UpdateModelo", mock.Anything, int64(1), domain.ModeloInput{Marca: "Fiat", Nome: "Uno", Descricao: "Compacto", Ano: 2020}).
		Return(testutil.NewModelo(1, "Fiat", "Uno", 2020), nil)

	require.NoError(t, run(t, h, "", "modelos", "update", "--ano", "2020", "1"))

	h.api.AssertExpectations(t)
}

func TestModelosDelete_InUse(t *testing.T) {
	h := newHarness()
	modelo := testutil.NewModelo(1, "Fiat", "Uno", 2019)
	h.api.On("GetCarros", mock.Anything).Return([]*domain.Carro{testutil.NewCarro(5, modelo)}, nil)

	err := run(t, h, "", "modelos", "delete", "--yes", "1")

	assert.ErrorIs(t, err, domain.ErrModeloEmUso)
	h.api.AssertNotCalled(t, "DeleteModelo", mock.Anything, mock.Anything)
}
