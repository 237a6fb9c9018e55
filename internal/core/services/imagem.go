package services

import (
	"context"

	"vehicle-inventory-frontend/internal/core/domain"
	ports "vehicle-inventory-frontend/internal/core/ports/output"
)

type Direction string

const (
	DirectionUp   Direction = "cima"
	DirectionDown Direction = "baixo"
)

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "cima", "up":
		return DirectionUp, nil
	case "baixo", "down":
		return DirectionDown, nil
	}
	return "", domain.ErrInvalidDirection
}

// ImagemService manages the pictures of one vehicle. Every operation
// loads the vehicle first so requests naming a foreign image never reach
// the API.
type ImagemService struct {
	carros  ports.CarroAPI
	imagens ports.ImagemAPI
}

func NewImagemService(carros ports.CarroAPI, imagens ports.ImagemAPI) *ImagemService {
	return &ImagemService{carros: carros, imagens: imagens}
}

func (s *ImagemService) load(ctx context.Context, carroID, imagemID int64) (*domain.Carro, domain.Imagem, error) {
	if carroID <= 0 || imagemID <= 0 {
		return nil, domain.Imagem{}, domain.ErrInvalidID
	}
	carro, err := s.carros.GetCarro(ctx, carroID)
	if err != nil {
		return nil, domain.Imagem{}, err
	}
	img, ok := carro.Imagem(imagemID)
	if !ok {
		return nil, domain.Imagem{}, domain.ErrImagemNotFound
	}
	return carro, img, nil
}

func (s *ImagemService) Delete(ctx context.Context, carroID, imagemID int64) error {
	if _, _, err := s.load(ctx, carroID, imagemID); err != nil {
		return err
	}
	return s.imagens.DeleteImagem(ctx, carroID, imagemID)
}

// SetPrincipal flags imagemID as the cover. It reports false when the
// image already was the cover and nothing was sent.
func (s *ImagemService) SetPrincipal(ctx context.Context, carroID, imagemID int64) (bool, error) {
	_, img, err := s.load(ctx, carroID, imagemID)
	if err != nil {
		return false, err
	}
	if img.Principal {
		return false, nil
	}
	if err := s.imagens.SetImagemPrincipal(ctx, carroID, imagemID); err != nil {
		return false, err
	}
	return true, nil
}

// Move shifts one image a single position. It reports false at the
// boundary, where nothing is sent.
func (s *ImagemService) Move(ctx context.Context, carroID, imagemID int64, dir Direction) (bool, error) {
	carro, _, err := s.load(ctx, carroID, imagemID)
	if err != nil {
		return false, err
	}

	order, moved := moveImage(carro.ImagemIDs(), imagemID, dir)
	if !moved {
		return false, nil
	}
	if err := s.imagens.ReordenarImagens(ctx, carroID, order); err != nil {
		return false, err
	}
	return true, nil
}

// Reorder sends an explicit order. ids must be a permutation of the
// vehicle's image ids.
func (s *ImagemService) Reorder(ctx context.Context, carroID int64, ids []int64) error {
	if carroID <= 0 {
		return domain.ErrInvalidID
	}
	carro, err := s.carros.GetCarro(ctx, carroID)
	if err != nil {
		return err
	}

	current := carro.ImagemIDs()
	if !isPermutation(current, ids) {
		return domain.ErrInvalidImageOrder
	}
	if equalOrder(current, ids) {
		return nil
	}
	return s.imagens.ReordenarImagens(ctx, carroID, ids)
}

func moveImage(order []int64, id int64, dir Direction) ([]int64, bool) {
	pos := -1
	for i, v := range order {
		if v == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return order, false
	}

	target := pos - 1
	if dir == DirectionDown {
		target = pos + 1
	}
	if target < 0 || target >= len(order) {
		return order, false
	}

	out := make([]int64, len(order))
	copy(out, order)
	out[pos], out[target] = out[target], out[pos]
	return out, true
}

func isPermutation(current, proposed []int64) bool {
	if len(current) != len(proposed) {
		return false
	}
	seen := make(map[int64]int, len(current))
	for _, id := range current {
		seen[id]++
	}
	for _, id := range proposed {
		if seen[id] == 0 {
			return false
		}
		seen[id]--
	}
	return true
}

func equalOrder(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
