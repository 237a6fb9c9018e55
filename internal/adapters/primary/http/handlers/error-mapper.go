package handlers

import (
	"errors"
	"net/http"

	"vehicle-inventory-frontend/internal/core/domain"
	"vehicle-inventory-frontend/internal/web"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrCarroNotFound),
		errors.Is(err, domain.ErrModeloNotFound),
		errors.Is(err, domain.ErrImagemNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidDirection),
		errors.Is(err, domain.ErrInvalidImageOrder):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, domain.ErrModeloEmUso):
		return http.StatusConflict

	// Validation errors
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity

	// Upstream errors
	case errors.Is(err, domain.ErrUpstreamUnavailable),
		errors.Is(err, domain.ErrUpstreamRejected):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// userMessage is the notice shown to the user for err.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrCarroNotFound):
		return "Carro não encontrado."
	case errors.Is(err, domain.ErrModeloNotFound):
		return "Modelo não encontrado."
	case errors.Is(err, domain.ErrImagemNotFound):
		return "Imagem não encontrada neste carro."
	case errors.Is(err, domain.ErrInvalidID):
		return "Identificador inválido."
	case errors.Is(err, domain.ErrInvalidDirection):
		return "Direção inválida."
	case errors.Is(err, domain.ErrInvalidImageOrder):
		return "A nova ordem deve conter cada imagem do carro exatamente uma vez."
	case errors.Is(err, domain.ErrModeloEmUso):
		return "Este modelo possui carros vinculados e não pode ser excluído."
	case errors.Is(err, domain.ErrValidation):
		return "Verifique os campos destacados."
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return "Não foi possível contatar a API de inventário. Tente novamente em instantes."
	case errors.Is(err, domain.ErrUpstreamRejected):
		return "A API de inventário recusou a operação."
	default:
		return "Ocorreu um erro inesperado."
	}
}

// mapDomainError renders the error view (or the not-found view) with the
// status that matches err.
func mapDomainError(c *gin.Context, active string, err error) {
	status := statusFor(err)
	_ = c.Error(err)

	if status == http.StatusNotFound {
		c.HTML(status, web.PageNotFound, page(c, active, "Não encontrado", gin.H{
			"Path": c.Request.URL.Path,
		}))
		return
	}

	c.HTML(status, web.PageError, page(c, active, "Erro", gin.H{
		"Status":  status,
		"Message": userMessage(err),
	}))
}
