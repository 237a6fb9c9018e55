package ports

import (
	"context"

	"vehicle-inventory-frontend/internal/core/domain"
)

// CarroAPI covers the carros/ resource of the inventory API.
type CarroAPI interface {
	GetCarros(ctx context.Context) ([]*domain.Carro, error)
	GetCarro(ctx context.Context, id int64) (*domain.Carro, error)
	CreateCarro(ctx context.Context, input domain.CarroInput) (*domain.Carro, error)
	UpdateCarro(ctx context.Context, id int64, input domain.CarroInput) (*domain.Carro, error)
	DeleteCarro(ctx context.Context, id int64) error
}

// ModeloAPI covers the modelos/ resource of the inventory API.
type ModeloAPI interface {
	GetModelos(ctx context.Context) ([]*domain.Modelo, error)
	GetModelo(ctx context.Context, id int64) (*domain.Modelo, error)
	CreateModelo(ctx context.Context, input domain.ModeloInput) (*domain.Modelo, error)
	UpdateModelo(ctx context.Context, id int64, input domain.ModeloInput) (*domain.Modelo, error)
	DeleteModelo(ctx context.Context, id int64) error
}

// ImagemAPI covers the image actions nested under carros/{id}/.
type ImagemAPI interface {
	DeleteImagem(ctx context.Context, carroID, imagemID int64) error
	ReordenarImagens(ctx context.Context, carroID int64, imagemIDs []int64) error
	SetImagemPrincipal(ctx context.Context, carroID, imagemID int64) error
}

// InventoryAPI is the full contract of the remote inventory API.
type InventoryAPI interface {
	CarroAPI
	ModeloAPI
	ImagemAPI

	// Ping reports whether the API answers at all.
	Ping(ctx context.Context) error
}
