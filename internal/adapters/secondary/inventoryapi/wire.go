package inventoryapi

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"vehicle-inventory-frontend/internal/core/domain"
)

// listPage decodes either a bare JSON array or a paginated envelope
// {"count": n, "next": url, "results": [...]}.
type listPage[T any] struct {
	Items []T
	Next  string
}

func (l *listPage[T]) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &l.Items)
	}

	var env struct {
		Next    *string `json:"next"`
		Results []T     `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return err
	}
	l.Items = env.Results
	if env.Next != nil {
		l.Next = *env.Next
	}
	return nil
}

// modeloID accepts the numeric id or the formatted code ("CAR001",
// "M0123") the API may send in its place.
type modeloID struct {
	ID   int64
	Code string
}

func (m *modeloID) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}

	if trimmed[0] != '"' {
		n, err := strconv.ParseInt(string(trimmed), 10, 64)
		if err != nil {
			return fmt.Errorf("modelo id %s: %w", trimmed, err)
		}
		m.ID = n
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return err
	}
	id, code, err := parseModeloCode(s)
	if err != nil {
		return err
	}
	m.ID, m.Code = id, code
	return nil
}

// parseModeloCode reads the trailing digits of a code as the numeric id.
// A purely numeric string carries no code.
func parseModeloCode(s string) (int64, string, error) {
	s = strings.TrimSpace(s)
	end := len(s)
	start := end
	for start > 0 && s[start-1] >= '0' && s[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, "", fmt.Errorf("modelo id %q has no numeric part", s)
	}

	n, err := strconv.ParseInt(s[start:end], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("modelo id %q: %w", s, err)
	}
	if start == 0 {
		return n, "", nil
	}
	return n, s, nil
}

type modeloWire struct {
	ID        modeloID `json:"id"`
	Codigo    string   `json:"codigo,omitempty"`
	Marca     string   `json:"nome_marca"`
	Nome      string   `json:"nome_modelo"`
	Descricao *string  `json:"descricao_modelo"`
	Ano       int      `json:"ano_modelo"`
}

func (w *modeloWire) toDomain() *domain.Modelo {
	m := &domain.Modelo{
		ID:     w.ID.ID,
		Codigo: w.ID.Code,
		Marca:  w.Marca,
		Nome:   w.Nome,
		Ano:    w.Ano,
	}
	if w.Codigo != "" {
		m.Codigo = w.Codigo
	}
	if w.Descricao != nil {
		m.Descricao = *w.Descricao
	}
	return m
}

type modeloRequest struct {
	Marca     string  `json:"nome_marca"`
	Nome      string  `json:"nome_modelo"`
	Descricao *string `json:"descricao_modelo"`
	Ano       int     `json:"ano_modelo"`
}

func newModeloRequest(in domain.ModeloInput) modeloRequest {
	req := modeloRequest{
		Marca: in.Marca,
		Nome:  in.Nome,
		Ano:   in.Ano,
	}
	if in.Descricao != "" {
		d := in.Descricao
		req.Descricao = &d
	}
	return req
}

type imagemWire struct {
	ID        int64  `json:"id"`
	Imagem    string `json:"imagem"`
	ImagemURL string `json:"imagem_url"`
	Ordem     int    `json:"ordem"`
	Principal bool   `json:"principal"`
}

func (w *imagemWire) toDomain() domain.Imagem {
	url := w.ImagemURL
	if url == "" {
		url = w.Imagem
	}
	return domain.Imagem{
		ID:        w.ID,
		URL:       url,
		Ordem:     w.Ordem,
		Principal: w.Principal,
	}
}

type carroWire struct {
	ID                 int64        `json:"id"`
	Modelo             *modeloWire  `json:"modelo"`
	AnoFabricacao      int          `json:"ano_fabricacao"`
	Cor                string       `json:"cor"`
	Descricao          *string      `json:"descricao_carro"`
	ImagemPrincipal    *string      `json:"imagem_principal"`
	ImagemPrincipalURL *string      `json:"imagem_principal_url"`
	DataCadastro       *time.Time   `json:"data_cadastro"`
	Imagens            []imagemWire `json:"imagens"`
}

func (w *carroWire) toDomain() *domain.Carro {
	c := &domain.Carro{
		ID:            w.ID,
		AnoFabricacao: w.AnoFabricacao,
		Cor:           w.Cor,
	}
	if w.Modelo != nil {
		c.Modelo = w.Modelo.toDomain()
	}
	if w.Descricao != nil {
		c.Descricao = *w.Descricao
	}
	switch {
	case w.ImagemPrincipalURL != nil && *w.ImagemPrincipalURL != "":
		c.ImagemPrincipalURL = *w.ImagemPrincipalURL
	case w.ImagemPrincipal != nil:
		c.ImagemPrincipalURL = *w.ImagemPrincipal
	}
	if w.DataCadastro != nil {
		c.DataCadastro = *w.DataCadastro
	}
	c.Imagens = make([]domain.Imagem, 0, len(w.Imagens))
	for i := range w.Imagens {
		c.Imagens = append(c.Imagens, w.Imagens[i].toDomain())
	}
	return c
}

type imagemRequest struct {
	ImagemID int64 `json:"imagem_id"`
}

type reorderRequest struct {
	Imagens []int64 `json:"imagens"`
}
