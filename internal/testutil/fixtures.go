package testutil

import (
	"time"

	"vehicle-inventory-frontend/internal/core/domain"
)

// PNG is the smallest byte sequence mimetype detects as image/png.
var PNG = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

func NewModelo(id int64, marca, nome string, ano int) *domain.Modelo {
	return &domain.Modelo{ID: id, Marca: marca, Nome: nome, Ano: ano}
}

// NewCarro builds a vehicle whose images get ordem in the given order;
// the first one is the cover.
func NewCarro(id int64, modelo *domain.Modelo, imagemIDs ...int64) *domain.Carro {
	c := &domain.Carro{
		ID:            id,
		Modelo:        modelo,
		AnoFabricacao: 2024,
		Cor:           "Prata",
		DataCadastro:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	for i, imgID := range imagemIDs {
		c.Imagens = append(c.Imagens, domain.Imagem{
			ID:        imgID,
			URL:       "http://127.0.0.1:8000/media/carros/img.jpg",
			Ordem:     i,
			Principal: i == 0,
		})
	}
	return c
}
