package services

import (
	"context"
	"sort"
	"strings"

	"vehicle-inventory-frontend/internal/core/domain"
	ports "vehicle-inventory-frontend/internal/core/ports/output"
)

type ModeloService struct {
	modelos ports.ModeloAPI
	carros  ports.CarroAPI
}

func NewModeloService(modelos ports.ModeloAPI, carros ports.CarroAPI) *ModeloService {
	return &ModeloService{modelos: modelos, carros: carros}
}

// List returns models ordered by brand, then model name.
func (s *ModeloService) List(ctx context.Context) ([]*domain.Modelo, error) {
	modelos, err := s.modelos.GetModelos(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(modelos, func(i, j int) bool {
		a, b := modelos[i], modelos[j]
		if ma, mb := strings.ToLower(a.Marca), strings.ToLower(b.Marca); ma != mb {
			return ma < mb
		}
		return strings.ToLower(a.Nome) < strings.ToLower(b.Nome)
	})
	return modelos, nil
}

func (s *ModeloService) Get(ctx context.Context, id int64) (*domain.Modelo, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	return s.modelos.GetModelo(ctx, id)
}

func (s *ModeloService) Create(ctx context.Context, input domain.ModeloInput) (*domain.Modelo, error) {
	input = normalizeModeloInput(input)
	if verr := validateStruct(input); !verr.Empty() {
		return nil, verr
	}
	return s.modelos.CreateModelo(ctx, input)
}

func (s *ModeloService) Update(ctx context.Context, id int64, input domain.ModeloInput) (*domain.Modelo, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	input = normalizeModeloInput(input)
	if verr := validateStruct(input); !verr.Empty() {
		return nil, verr
	}
	return s.modelos.UpdateModelo(ctx, id, input)
}

// Delete refuses to remove a model that a vehicle still references; the
// API protects the relation as well.
func (s *ModeloService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}

	carros, err := s.carros.GetCarros(ctx)
	if err != nil {
		return err
	}
	for _, c := range carros {
		if c.Modelo != nil && c.Modelo.ID == id {
			return domain.ErrModeloEmUso
		}
	}

	return s.modelos.DeleteModelo(ctx, id)
}

func normalizeModeloInput(input domain.ModeloInput) domain.ModeloInput {
	input.Marca = strings.TrimSpace(input.Marca)
	input.Nome = strings.TrimSpace(input.Nome)
	input.Descricao = strings.TrimSpace(input.Descricao)
	return input
}
