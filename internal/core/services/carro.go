package services

import (
	"context"
	"fmt"
	"strings"

	"vehicle-inventory-frontend/internal/core/domain"
	ports "vehicle-inventory-frontend/internal/core/ports/output"
)

type CarroService struct {
	api ports.CarroAPI
}

func NewCarroService(api ports.CarroAPI) *CarroService {
	return &CarroService{api: api}
}

func (s *CarroService) List(ctx context.Context) ([]*domain.Carro, error) {
	return s.api.GetCarros(ctx)
}

func (s *CarroService) Get(ctx context.Context, id int64) (*domain.Carro, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	return s.api.GetCarro(ctx, id)
}

func (s *CarroService) Create(ctx context.Context, input domain.CarroInput) (*domain.Carro, error) {
	input, err := prepareCarroInput(input)
	if err != nil {
		return nil, err
	}
	return s.api.CreateCarro(ctx, input)
}

func (s *CarroService) Update(ctx context.Context, id int64, input domain.CarroInput) (*domain.Carro, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	input, err := prepareCarroInput(input)
	if err != nil {
		return nil, err
	}
	return s.api.UpdateCarro(ctx, id, input)
}

func (s *CarroService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	return s.api.DeleteCarro(ctx, id)
}

func prepareCarroInput(input domain.CarroInput) (domain.CarroInput, error) {
	input.Cor = strings.TrimSpace(input.Cor)
	input.Descricao = strings.TrimSpace(input.Descricao)

	verr := validateStruct(input)

	uploads := make([]domain.Upload, len(input.Imagens))
	copy(uploads, input.Imagens)
	for i := range uploads {
		if err := checkUpload(&uploads[i]); err != nil {
			verr.AddCause("imagens", fmt.Sprintf("O arquivo %q não é uma imagem válida.", uploads[i].Filename), err)
		}
	}
	input.Imagens = uploads

	if input.ImagemPrincipal != nil {
		cover := *input.ImagemPrincipal
		if err := checkUpload(&cover); err != nil {
			verr.AddCause("imagem_principal", fmt.Sprintf("O arquivo %q não é uma imagem válida.", cover.Filename), err)
		}
		input.ImagemPrincipal = &cover
	}

	if !verr.Empty() {
		return input, verr
	}
	return input, nil
}
