package dto

import (
	"strconv"
	"strings"

	"vehicle-inventory-frontend/internal/core/domain"
)

// CarroForm is the vehicle form as posted by the browser. Numbers stay
// strings so a bad value can be shown back to the user.
type CarroForm struct {
	ModeloID      string `form:"modelo_id"`
	AnoFabricacao string `form:"ano_fabricacao"`
	Cor           string `form:"cor"`
	Descricao     string `form:"descricao_carro"`
}

func ToCarroForm(c *domain.Carro) CarroForm {
	f := CarroForm{
		Cor:       c.Cor,
		Descricao: c.Descricao,
	}
	if c.Modelo != nil {
		f.ModeloID = strconv.FormatInt(c.Modelo.ID, 10)
	}
	if c.AnoFabricacao != 0 {
		f.AnoFabricacao = strconv.Itoa(c.AnoFabricacao)
	}
	return f
}

// ToInput converts the form into domain input. Unparseable numbers are
// reported as field errors.
func (f CarroForm) ToInput() (domain.CarroInput, *domain.ValidationError) {
	verr := domain.NewValidationError()
	input := domain.CarroInput{
		Cor:       f.Cor,
		Descricao: f.Descricao,
	}

	if s := strings.TrimSpace(f.ModeloID); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			verr.Add("modelo_id", "Selecione um modelo válido.")
		}
		input.ModeloID = id
	}
	if s := strings.TrimSpace(f.AnoFabricacao); s != "" {
		ano, err := strconv.Atoi(s)
		if err != nil {
			verr.Add("ano_fabricacao", "Informe um número inteiro válido.")
		}
		input.AnoFabricacao = ano
	}

	if !verr.Empty() {
		return input, verr
	}
	return input, nil
}
