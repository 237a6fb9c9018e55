package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vehicle-inventory-frontend/internal/core/domain"
	"vehicle-inventory-frontend/internal/testutil"
)

func validCarroInput() domain.CarroInput {
	return domain.CarroInput{
		ModeloID:      3,
		AnoFabricacao: 2024,
		Cor:           " Prata ",
		Descricao:     "Único dono",
	}
}

func TestCarroService_Create(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewCarroService(api)

	input := validCarroInput()
	input.Imagens = []domain.Upload{{Filename: "frente.png", ContentType: "application/octet-stream", Data: testutil.PNG}}

	created := testutil.NewCarro(7, testutil.NewModelo(3, "FORD", "TERRITORY", 2025))
	api.On("CreateCarro", mock.Anything, mock.MatchedBy(func(in domain.CarroInput) bool {
		return in.Cor == "Prata" && len(in.Imagens) == 1 && in.Imagens[0].ContentType == "image/png"
	})).Return(created, nil)

	carro, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(7), carro.ID)
	api.AssertExpectations(t)
}

func TestCarroService_Create_ValidationNeverReachesAPI(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewCarroService(api)

	_, err := svc.Create(context.Background(), domain.CarroInput{AnoFabricacao: 1700})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.First("modelo_id"))
	assert.NotEmpty(t, verr.First("cor"))
	assert.Contains(t, verr.First("ano_fabricacao"), "1886")
	api.AssertNotCalled(t, "CreateCarro", mock.Anything, mock.Anything)
}

func TestCarroService_Create_RejectsNonImageUpload(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewCarroService(api)

	input := validCarroInput()
	input.Imagens = []domain.Upload{{Filename: "notas.txt", ContentType: "image/png", Data: []byte("just some text")}}

	_, err := svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrUnsupportedUpload)
	assert.ErrorIs(t, err, domain.ErrValidation)
	api.AssertNotCalled(t, "CreateCarro", mock.Anything, mock.Anything)
}

func TestCarroService_Create_RejectsEmptyCover(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewCarroService(api)

	input := validCarroInput()
	input.ImagemPrincipal = &domain.Upload{Filename: "capa.jpg"}

	_, err := svc.Create(context.Background(), input)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.First("imagem_principal"))
}

func TestCarroService_Update(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewCarroService(api)

	updated := testutil.NewCarro(7, nil)
	api.On("UpdateCarro", mock.Anything, int64(7), mock.AnythingOfType("domain.CarroInput")).Return(updated, nil)

	_, err := svc.Update(context.Background(), 7, validCarroInput())
	assert.NoError(t, err)
	api.AssertExpectations(t)
}

func TestCarroService_Update_InvalidID(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewCarroService(api)

	_, err := svc.Update(context.Background(), 0, validCarroInput())
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestCarroService_Get_NotFound(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewCarroService(api)

	api.On("GetCarro", mock.Anything, int64(9)).Return(nil, domain.ErrCarroNotFound)

	_, err := svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrCarroNotFound)
}

func TestCarroService_Delete(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewCarroService(api)

	api.On("DeleteCarro", mock.Anything, int64(7)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 7))
	assert.ErrorIs(t, svc.Delete(context.Background(), -1), domain.ErrInvalidID)
	api.AssertNumberOfCalls(t, "DeleteCarro", 1)
}
