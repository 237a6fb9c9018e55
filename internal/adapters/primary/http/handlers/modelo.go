package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"vehicle-inventory-frontend/internal/adapters/primary/http/dto"
	"vehicle-inventory-frontend/internal/core/domain"
	"vehicle-inventory-frontend/internal/web"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const activeModelos = "modelos"

func (h *Handler) ListModelos(c *gin.Context) {
	modelos, err := h.modeloSvc.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list modelos")
		mapDomainError(c, activeModelos, err)
		return
	}

	c.HTML(http.StatusOK, web.PageModelos, page(c, activeModelos, "Modelos", gin.H{
		"Modelos": modelos,
	}))
}

func (h *Handler) NewModelo(c *gin.Context) {
	renderModeloForm(c, http.StatusOK, nil, dto.ModeloForm{}, nil, "")
}

func (h *Handler) CreateModelo(c *gin.Context) {
	var form dto.ModeloForm
	if err := c.ShouldBind(&form); err != nil {
		status, verr := bindError(err)
		renderModeloForm(c, status, nil, form, verr, "")
		return
	}

	input, verr := form.ToInput()
	if verr != nil {
		renderModeloForm(c, http.StatusUnprocessableEntity, nil, form, verr, "")
		return
	}

	modelo, err := h.modeloSvc.Create(c.Request.Context(), input)
	if err != nil {
		modeloFailed(c, nil, form, err, "create")
		return
	}

	log.WithField("modelo_id", modelo.ID).Info("Modelo created")
	redirectNotice(c, "/modelos", fmt.Sprintf("Modelo %s cadastrado com sucesso!", modelo.String()))
}

func (h *Handler) EditModelo(c *gin.Context) {
	modelo, ok := h.loadModelo(c)
	if !ok {
		return
	}
	renderModeloForm(c, http.StatusOK, modelo, dto.ToModeloForm(modelo), nil, "")
}

func (h *Handler) UpdateModelo(c *gin.Context) {
	modelo, ok := h.loadModelo(c)
	if !ok {
		return
	}

	var form dto.ModeloForm
	if err := c.ShouldBind(&form); err != nil {
		status, verr := bindError(err)
		renderModeloForm(c, status, modelo, form, verr, "")
		return
	}

	input, verr := form.ToInput()
	if verr != nil {
		renderModeloForm(c, http.StatusUnprocessableEntity, modelo, form, verr, "")
		return
	}

	updated, err := h.modeloSvc.Update(c.Request.Context(), modelo.ID, input)
	if err != nil {
		modeloFailed(c, modelo, form, err, "update")
		return
	}

	log.WithField("modelo_id", modelo.ID).Info("Modelo updated")
	redirectNotice(c, "/modelos", fmt.Sprintf("Modelo %s atualizado com sucesso!", updated.String()))
}

func (h *Handler) ConfirmDeleteModelo(c *gin.Context) {
	modelo, ok := h.loadModelo(c)
	if !ok {
		return
	}

	renderConfirm(c, activeModelos,
		fmt.Sprintf("Tem certeza que deseja excluir o modelo %s (%s)?", modelo.Code(), modelo.String()),
		fmt.Sprintf("/modelos/%d/excluir", modelo.ID),
		"/modelos",
	)
}

func (h *Handler) DeleteModelo(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		mapDomainError(c, activeModelos, err)
		return
	}
	if !confirmed(c) {
		redirectNotice(c, "/modelos", "Exclusão cancelada.")
		return
	}

	if err := h.modeloSvc.Delete(c.Request.Context(), id); err != nil {
		entry := log.WithError(err).WithField("modelo_id", id)
		if errors.Is(err, domain.ErrModeloEmUso) {
			entry.Info("Refused to delete modelo in use")
		} else {
			entry.Error("Failed to delete modelo")
		}
		redirectError(c, "/modelos", err)
		return
	}

	log.WithField("modelo_id", id).Info("Modelo deleted")
	redirectNotice(c, "/modelos", "Modelo excluído com sucesso!")
}

func (h *Handler) loadModelo(c *gin.Context) (*domain.Modelo, bool) {
	id, err := parseID(c, "id")
	if err != nil {
		mapDomainError(c, activeModelos, err)
		return nil, false
	}

	modelo, err := h.modeloSvc.Get(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, domain.ErrModeloNotFound) {
			log.WithError(err).WithField("modelo_id", id).Error("Failed to get modelo")
		}
		mapDomainError(c, activeModelos, err)
		return nil, false
	}
	return modelo, true
}

func modeloFailed(c *gin.Context, modelo *domain.Modelo, form dto.ModeloForm, err error, op string) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		renderModeloForm(c, http.StatusUnprocessableEntity, modelo, form, verr, "")
		return
	}

	log.WithError(err).Errorf("Failed to %s modelo", op)
	_ = c.Error(err)
	renderModeloForm(c, statusFor(err), modelo, form, nil, userMessage(err))
}

func renderModeloForm(c *gin.Context, status int, modelo *domain.Modelo, form dto.ModeloForm, verr *domain.ValidationError, erro string) {
	title, action := "Adicionar modelo", "/modelos/novo"
	if modelo != nil {
		title, action = "Editar modelo "+modelo.Code(), fmt.Sprintf("/modelos/%d", modelo.ID)
	}

	data := page(c, activeModelos, title, gin.H{
		"Form":   form,
		"Action": action,
		"Errors": fieldErrors(verr),
	})
	if erro != "" {
		data["Erro"] = erro
	}
	c.HTML(status, web.PageModeloForm, data)
}
