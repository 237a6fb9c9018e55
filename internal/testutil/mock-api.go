package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vehicle-inventory-frontend/internal/core/domain"
)

// MockInventoryAPI is a mock of ports.InventoryAPI.
type MockInventoryAPI struct {
	mock.Mock
}

func (m *MockInventoryAPI) GetCarros(ctx context.Context) ([]*domain.Carro, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Carro), args.Error(1)
}

func (m *MockInventoryAPI) GetCarro(ctx context.Context, id int64) (*domain.Carro, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Carro), args.Error(1)
}

func (m *MockInventoryAPI) CreateCarro(ctx context.Context, input domain.CarroInput) (*domain.Carro, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Carro), args.Error(1)
}

func (m *MockInventoryAPI) UpdateCarro(ctx context.Context, id int64, input domain.CarroInput) (*domain.Carro, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Carro), args.Error(1)
}

func (m *MockInventoryAPI) DeleteCarro(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInventoryAPI) GetModelos(ctx context.Context) ([]*domain.Modelo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Modelo), args.Error(1)
}

func (m *MockInventoryAPI) GetModelo(ctx context.Context, id int64) (*domain.Modelo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Modelo), args.Error(1)
}

func (m *MockInventoryAPI) CreateModelo(ctx context.Context, input domain.ModeloInput) (*domain.Modelo, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Modelo), args.Error(1)
}

func (m *MockInventoryAPI) UpdateModelo(ctx context.Context, id int64, input domain.ModeloInput) (*domain.Modelo, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Modelo), args.Error(1)
}

func (m *MockInventoryAPI) DeleteModelo(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInventoryAPI) DeleteImagem(ctx context.Context, carroID, imagemID int64) error {
	args := m.Called(ctx, carroID, imagemID)
	return args.Error(0)
}

func (m *MockInventoryAPI) ReordenarImagens(ctx context.Context, carroID int64, imagemIDs []int64) error {
	args := m.Called(ctx, carroID, imagemIDs)
	return args.Error(0)
}

func (m *MockInventoryAPI) SetImagemPrincipal(ctx context.Context, carroID, imagemID int64) error {
	args := m.Called(ctx, carroID, imagemID)
	return args.Error(0)
}

func (m *MockInventoryAPI) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
