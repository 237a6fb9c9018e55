package inventoryapi

import (
	"context"
	"fmt"
	"net/http"

	"vehicle-inventory-frontend/internal/core/domain"
)

func carroPath(id int64) string {
	return fmt.Sprintf("carros/%d/", id)
}

func (c *Client) GetCarros(ctx context.Context) ([]*domain.Carro, error) {
	wires, err := getList[carroWire](ctx, c, "carros/")
	if err != nil {
		return nil, fmt.Errorf("list carros: %w", err)
	}

	carros := make([]*domain.Carro, 0, len(wires))
	for i := range wires {
		carros = append(carros, wires[i].toDomain())
	}
	return carros, nil
}

func (c *Client) GetCarro(ctx context.Context, id int64) (*domain.Carro, error) {
	var w carroWire
	if err := c.call(ctx, http.MethodGet, carroPath(id), nil, "", domain.ErrCarroNotFound, &w); err != nil {
		return nil, fmt.Errorf("get carro %d: %w", id, err)
	}
	return w.toDomain(), nil
}

// CreateCarro posts the vehicle as multipart/form-data so image files
// travel in the same request.
func (c *Client) CreateCarro(ctx context.Context, input domain.CarroInput) (*domain.Carro, error) {
	body, contentType, err := encodeCarroForm(input)
	if err != nil {
		return nil, fmt.Errorf("create carro: %w", err)
	}

	var w carroWire
	if err := c.call(ctx, http.MethodPost, "carros/", body, contentType, nil, &w); err != nil {
		return nil, fmt.Errorf("create carro: %w", err)
	}
	return w.toDomain(), nil
}

// UpdateCarro patches the vehicle as multipart/form-data.
func (c *Client) UpdateCarro(ctx context.Context, id int64, input domain.CarroInput) (*domain.Carro, error) {
	body, contentType, err := encodeCarroForm(input)
	if err != nil {
		return nil, fmt.Errorf("update carro %d: %w", id, err)
	}

	var w carroWire
	if err := c.call(ctx, http.MethodPatch, carroPath(id), body, contentType, domain.ErrCarroNotFound, &w); err != nil {
		return nil, fmt.Errorf("update carro %d: %w", id, err)
	}
	return w.toDomain(), nil
}

func (c *Client) DeleteCarro(ctx context.Context, id int64) error {
	if err := c.call(ctx, http.MethodDelete, carroPath(id), nil, "", domain.ErrCarroNotFound, nil); err != nil {
		return fmt.Errorf("delete carro %d: %w", id, err)
	}
	return nil
}
