package domain

import "fmt"

// Modelo is a vehicle model/trim record.
//
// Codigo holds the display code the API sent in place of a numeric id
// ("CAR001", "M0123"); it is empty when the API sent a plain number.
type Modelo struct {
	ID        int64
	Codigo    string
	Marca     string
	Nome      string
	Descricao string
	Ano       int
}

// ModeloInput is the writable part of a model, sent as JSON.
type ModeloInput struct {
	Marca     string `field:"nome_marca" validate:"required,max=100"`
	Nome      string `field:"nome_modelo" validate:"required,max=100"`
	Descricao string `field:"descricao_modelo" validate:"max=2000"`
	Ano       int    `field:"ano_modelo" validate:"required,ano"`
}

func (m *Modelo) String() string {
	return fmt.Sprintf("%s %s (%d)", m.Marca, m.Nome, m.Ano)
}

// Code returns the code shown in tables.
func (m *Modelo) Code() string {
	if m.Codigo != "" {
		return m.Codigo
	}
	return fmt.Sprintf("M%04d", m.ID)
}
