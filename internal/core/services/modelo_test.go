package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vehicle-inventory-frontend/internal/core/domain"
	"vehicle-inventory-frontend/internal/testutil"
)

func TestModeloService_List_SortedByBrandThenName(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewModeloService(api, api)

	api.On("GetModelos", mock.Anything).Return([]*domain.Modelo{
		testutil.NewModelo(1, "TOYOTA", "COROLLA", 2023),
		testutil.NewModelo(2, "bmw", "X1", 2024),
		testutil.NewModelo(3, "AUDI", "A3", 2020),
		testutil.NewModelo(4, "TOYOTA", "ETIOS", 2019),
	}, nil)

	modelos, err := svc.List(context.Background())
	require.NoError(t, err)

	var ids []int64
	for _, m := range modelos {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int64{3, 2, 1, 4}, ids)
}

func TestModeloService_Create(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewModeloService(api, api)

	want := domain.ModeloInput{Marca: "FORD", Nome: "TERRITORY SEL", Ano: 2025}
	api.On("CreateModelo", mock.Anything, want).Return(testutil.NewModelo(9, "FORD", "TERRITORY SEL", 2025), nil)

	m, err := svc.Create(context.Background(), domain.ModeloInput{Marca: "  FORD", Nome: "TERRITORY SEL ", Ano: 2025})
	require.NoError(t, err)
	assert.Equal(t, int64(9), m.ID)
	api.AssertExpectations(t)
}

func TestModeloService_Create_Validation(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewModeloService(api, api)

	_, err := svc.Create(context.Background(), domain.ModeloInput{Marca: "   ", Ano: 3000})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.First("nome_marca"))
	assert.NotEmpty(t, verr.First("nome_modelo"))
	assert.NotEmpty(t, verr.First("ano_modelo"))
	api.AssertNotCalled(t, "CreateModelo", mock.Anything, mock.Anything)
}

func TestModeloService_Update(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewModeloService(api, api)

	in := domain.ModeloInput{Marca: "BMW", Nome: "X1", Ano: 2024}
	api.On("UpdateModelo", mock.Anything, int64(4), in).Return(testutil.NewModelo(4, "BMW", "X1", 2024), nil)

	_, err := svc.Update(context.Background(), 4, in)
	assert.NoError(t, err)
	api.AssertExpectations(t)
}

func TestModeloService_Delete(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewModeloService(api, api)

	api.On("GetCarros", mock.Anything).Return([]*domain.Carro{testutil.NewCarro(1, testutil.NewModelo(2, "BMW", "X1", 2024))}, nil)
	api.On("DeleteModelo", mock.Anything, int64(4)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 4))
	api.AssertExpectations(t)
}

func TestModeloService_Delete_InUse(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewModeloService(api, api)

	api.On("GetCarros", mock.Anything).Return([]*domain.Carro{testutil.NewCarro(1, testutil.NewModelo(4, "BMW", "X1", 2024))}, nil)

	err := svc.Delete(context.Background(), 4)
	assert.ErrorIs(t, err, domain.ErrModeloEmUso)
	api.AssertNotCalled(t, "DeleteModelo", mock.Anything, mock.Anything)
}

func TestModeloService_Delete_CarroListFails(t *testing.T) {
	api := new(testutil.MockInventoryAPI)
	svc := NewModeloService(api, api)

	upstream := errors.Join(domain.ErrUpstreamUnavailable, errors.New("connection refused"))
	api.On("GetCarros", mock.Anything).Return(nil, upstream)

	err := svc.Delete(context.Background(), 4)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	api.AssertNotCalled(t, "DeleteModelo", mock.Anything, mock.Anything)
}
