package domain

import (
	"sort"
	"time"
)

// Carro is a vehicle record as owned by the inventory API.
type Carro struct {
	ID                 int64
	Modelo             *Modelo
	AnoFabricacao      int
	Cor                string
	Descricao          string
	ImagemPrincipalURL string
	DataCadastro       time.Time
	Imagens            []Imagem
}

// Imagem is one picture of a vehicle. Ordem is the display position.
type Imagem struct {
	ID        int64
	URL       string
	Ordem     int
	Principal bool
}

// Upload is an image file submitted with a vehicle form.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CarroInput is the writable part of a vehicle, sent as multipart.
type CarroInput struct {
	ModeloID      int64  `field:"modelo_id" validate:"required,gt=0"`
	AnoFabricacao int    `field:"ano_fabricacao" validate:"required,ano"`
	Cor           string `field:"cor" validate:"required,max=50"`
	Descricao     string `field:"descricao_carro" validate:"max=2000"`

	Imagens         []Upload `field:"imagens"`
	ImagemPrincipal *Upload  `field:"imagem_principal"`
}

// OrderedImagens returns the images sorted by display order, ties broken by id.
func (c *Carro) OrderedImagens() []Imagem {
	out := make([]Imagem, len(c.Imagens))
	copy(out, c.Imagens)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Ordem != out[j].Ordem {
			return out[i].Ordem < out[j].Ordem
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ImagemIDs returns the image ids in display order.
func (c *Carro) ImagemIDs() []int64 {
	ordered := c.OrderedImagens()
	ids := make([]int64, 0, len(ordered))
	for _, img := range ordered {
		ids = append(ids, img.ID)
	}
	return ids
}

func (c *Carro) Imagem(id int64) (Imagem, bool) {
	for _, img := range c.Imagens {
		if img.ID == id {
			return img, true
		}
	}
	return Imagem{}, false
}

// Principal returns the cover image, if any image is flagged.
func (c *Carro) Principal() (Imagem, bool) {
	for _, img := range c.Imagens {
		if img.Principal {
			return img, true
		}
	}
	return Imagem{}, false
}

// CoverURL is the URL to show as the vehicle thumbnail.
func (c *Carro) CoverURL() string {
	if img, ok := c.Principal(); ok && img.URL != "" {
		return img.URL
	}
	if c.ImagemPrincipalURL != "" {
		return c.ImagemPrincipalURL
	}
	if ordered := c.OrderedImagens(); len(ordered) > 0 {
		return ordered[0].URL
	}
	return ""
}

func (c *Carro) ModeloLabel() string {
	if c.Modelo == nil {
		return "-"
	}
	return c.Modelo.String()
}
