package dto

import (
	"strconv"
	"strings"

	"vehicle-inventory-frontend/internal/core/domain"
)

type ModeloForm struct {
	Marca     string `form:"nome_marca"`
	Nome      string `form:"nome_modelo"`
	Descricao string `form:"descricao_modelo"`
	Ano       string `form:"ano_modelo"`
}

func ToModeloForm(m *domain.Modelo) ModeloForm {
	f := ModeloForm{
		Marca:     m.Marca,
		Nome:      m.Nome,
		Descricao: m.Descricao,
	}
	if m.Ano != 0 {
		f.Ano = strconv.Itoa(m.Ano)
	}
	return f
}

func (f ModeloForm) ToInput() (domain.ModeloInput, *domain.ValidationError) {
	input := domain.ModeloInput{
		Marca:     f.Marca,
		Nome:      f.Nome,
		Descricao: f.Descricao,
	}

	if s := strings.TrimSpace(f.Ano); s != "" {
		ano, err := strconv.Atoi(s)
		if err != nil {
			verr := domain.NewValidationError()
			verr.Add("ano_modelo", "Informe um número inteiro válido.")
			return input, verr
		}
		input.Ano = ano
	}
	return input, nil
}
