package inventoryapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"vehicle-inventory-frontend/internal/core/domain"
)

// DeleteImagem removes one image. The image id travels in the body of
// the DELETE request.
func (c *Client) DeleteImagem(ctx context.Context, carroID, imagemID int64) error {
	path := carroPath(carroID) + "delete_imagem/"
	if err := c.callJSON(ctx, http.MethodDelete, path, imagemRequest{ImagemID: imagemID}, nil, nil); err != nil {
		return fmt.Errorf("delete imagem %d of carro %d: %w", imagemID, carroID, imagemNotFound(err))
	}
	return nil
}

// ReordenarImagens sends the complete image id sequence in display order.
func (c *Client) ReordenarImagens(ctx context.Context, carroID int64, imagemIDs []int64) error {
	path := carroPath(carroID) + "reordenar_imagens/"
	if imagemIDs == nil {
		imagemIDs = []int64{}
	}
	if err := c.callJSON(ctx, http.MethodPost, path, reorderRequest{Imagens: imagemIDs}, nil, nil); err != nil {
		return fmt.Errorf("reorder imagens of carro %d: %w", carroID, imagemNotFound(err))
	}
	return nil
}

func (c *Client) SetImagemPrincipal(ctx context.Context, carroID, imagemID int64) error {
	path := carroPath(carroID) + "set_imagem_principal/"
	if err := c.callJSON(ctx, http.MethodPost, path, imagemRequest{ImagemID: imagemID}, nil, nil); err != nil {
		return fmt.Errorf("set imagem principal %d of carro %d: %w", imagemID, carroID, imagemNotFound(err))
	}
	return nil
}

// imagemNotFound tells a missing image from a missing carro on the image
// actions, which share one 404 status. The API names the image in its
// message when the image id is the unknown part.
func imagemNotFound(err error) error {
	var se *StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusNotFound {
		return err
	}
	if strings.Contains(strings.ToLower(se.Detail), "imagem") {
		return fmt.Errorf("%w: %s", domain.ErrImagemNotFound, se.Detail)
	}
	return fmt.Errorf("%w: %s", domain.ErrCarroNotFound, se.Detail)
}
