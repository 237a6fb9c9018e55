package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	jsoniter "github.com/json-iterator/go"

	"vehicle-inventory-frontend/internal/core/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type modeloView struct {
	ID        int64  `json:"id"`
	Codigo    string `json:"codigo"`
	Marca     string `json:"nome_marca"`
	Nome      string `json:"nome_modelo"`
	Descricao string `json:"descricao_modelo,omitempty"`
	Ano       int    `json:"ano_modelo"`
}

type imagemView struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	Ordem     int    `json:"ordem"`
	Principal bool   `json:"principal"`
}

type carroView struct {
	ID              int64        `json:"id"`
	Modelo          *modeloView  `json:"modelo,omitempty"`
	AnoFabricacao   int          `json:"ano_fabricacao"`
	Cor             string       `json:"cor"`
	Descricao       string       `json:"descricao_carro,omitempty"`
	ImagemPrincipal string       `json:"imagem_principal,omitempty"`
	DataCadastro    *time.Time   `json:"data_cadastro,omitempty"`
	Imagens         []imagemView `json:"imagens"`
}

func newModeloView(m *domain.Modelo) *modeloView {
	if m == nil {
		return nil
	}
	return &modeloView{
		ID:        m.ID,
		Codigo:    m.Code(),
		Marca:     m.Marca,
		Nome:      m.Nome,
		Descricao: m.Descricao,
		Ano:       m.Ano,
	}
}

func newCarroView(c *domain.Carro) carroView {
	v := carroView{
		ID:              c.ID,
		Modelo:          newModeloView(c.Modelo),
		AnoFabricacao:   c.AnoFabricacao,
		Cor:             c.Cor,
		Descricao:       c.Descricao,
		ImagemPrincipal: c.CoverURL(),
		Imagens:         make([]imagemView, 0, len(c.Imagens)),
	}
	if !c.DataCadastro.IsZero() {
		t := c.DataCadastro
		v.DataCadastro = &t
	}
	for _, img := range c.OrderedImagens() {
		v.Imagens = append(v.Imagens, imagemView(img))
	}
	return v
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02/01/2006 15:04")
}

func printCarros(w io.Writer, carros []*domain.Carro) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tMODELO\tANO\tCOR\tIMAGENS\tCADASTRO")
	for _, c := range carros {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%d\t%s\n",
			c.ID, c.ModeloLabel(), c.AnoFabricacao, c.Cor, len(c.Imagens), formatDate(c.DataCadastro))
	}
	return tw.Flush()
}

func printCarro(w io.Writer, c *domain.Carro) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%d\n", c.ID)
	fmt.Fprintf(tw, "Modelo:\t%s\n", c.ModeloLabel())
	fmt.Fprintf(tw, "Ano de fabricação:\t%d\n", c.AnoFabricacao)
	fmt.Fprintf(tw, "Cor:\t%s\n", c.Cor)
	if c.Descricao != "" {
		fmt.Fprintf(tw, "Descrição:\t%s\n", c.Descricao)
	}
	fmt.Fprintf(tw, "Cadastro:\t%s\n", formatDate(c.DataCadastro))
	if err := tw.Flush(); err != nil {
		return err
	}

	imagens := c.OrderedImagens()
	if len(imagens) == 0 {
		fmt.Fprintln(w, "\nSem imagens.")
		return nil
	}

	fmt.Fprintln(w)
	tw = newTable(w)
	fmt.Fprintln(tw, "IMAGEM\tORDEM\tPRINCIPAL\tURL")
	for _, img := range imagens {
		principal := ""
		if img.Principal {
			principal = "sim"
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", img.ID, img.Ordem, principal, img.URL)
	}
	return tw.Flush()
}

func printModelos(w io.Writer, modelos []*domain.Modelo) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "CÓDIGO\tMARCA\tMODELO\tANO")
	for _, m := range modelos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", m.Code(), m.Marca, m.Nome, m.Ano)
	}
	return tw.Flush()
}

func printModelo(w io.Writer, m *domain.Modelo) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%d\n", m.ID)
	fmt.Fprintf(tw, "Código:\t%s\n", m.Code())
	fmt.Fprintf(tw, "Marca:\t%s\n", m.Marca)
	fmt.Fprintf(tw, "Modelo:\t%s\n", m.Nome)
	fmt.Fprintf(tw, "Ano:\t%d\n", m.Ano)
	if m.Descricao != "" {
		fmt.Fprintf(tw, "Descrição:\t%s\n", m.Descricao)
	}
	return tw.Flush()
}
