package inventoryapi

import (
	"context"
	"fmt"
	"net/http"

	"vehicle-inventory-frontend/internal/core/domain"
)

func modeloPath(id int64) string {
	return fmt.Sprintf("modelos/%d/", id)
}

func (c *Client) GetModelos(ctx context.Context) ([]*domain.Modelo, error) {
	wires, err := getList[modeloWire](ctx, c, "modelos/")
	if err != nil {
		return nil, fmt.Errorf("list modelos: %w", err)
	}

	modelos := make([]*domain.Modelo, 0, len(wires))
	for i := range wires {
		modelos = append(modelos, wires[i].toDomain())
	}
	return modelos, nil
}

func (c *Client) GetModelo(ctx context.Context, id int64) (*domain.Modelo, error) {
	var w modeloWire
	if err := c.call(ctx, http.MethodGet, modeloPath(id), nil, "", domain.ErrModeloNotFound, &w); err != nil {
		return nil, fmt.Errorf("get modelo %d: %w", id, err)
	}
	return w.toDomain(), nil
}

func (c *Client) CreateModelo(ctx context.Context, input domain.ModeloInput) (*domain.Modelo, error) {
	var w modeloWire
	if err := c.callJSON(ctx, http.MethodPost, "modelos/", newModeloRequest(input), nil, &w); err != nil {
		return nil, fmt.Errorf("create modelo: %w", err)
	}
	return w.toDomain(), nil
}

func (c *Client) UpdateModelo(ctx context.Context, id int64, input domain.ModeloInput) (*domain.Modelo, error) {
	var w modeloWire
	if err := c.callJSON(ctx, http.MethodPatch, modeloPath(id), newModeloRequest(input), domain.ErrModeloNotFound, &w); err != nil {
		return nil, fmt.Errorf("update modelo %d: %w", id, err)
	}
	return w.toDomain(), nil
}

// DeleteModelo removes a model. The API refuses with 409 while vehicles
// still reference it.
func (c *Client) DeleteModelo(ctx context.Context, id int64) error {
	err := c.call(ctx, http.MethodDelete, modeloPath(id), nil, "", domain.ErrModeloNotFound, nil)
	if err == nil {
		return nil
	}
	if StatusCode(err) == http.StatusConflict {
		return fmt.Errorf("delete modelo %d: %w: %w", id, domain.ErrModeloEmUso, err)
	}
	return fmt.Errorf("delete modelo %d: %w", id, err)
}
