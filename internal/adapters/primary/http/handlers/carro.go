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

const activeCarros = "carros"

func (h *Handler) ListCarros(c *gin.Context) {
	carros, err := h.carroSvc.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list carros")
		mapDomainError(c, activeCarros, err)
		return
	}

	c.HTML(http.StatusOK, web.PageCarros, page(c, activeCarros, "Carros", gin.H{
		"Carros": carros,
	}))
}

func (h *Handler) NewCarro(c *gin.Context) {
	h.renderCarroForm(c, http.StatusOK, nil, dto.CarroForm{}, nil, "")
}

func (h *Handler) CreateCarro(c *gin.Context) {
	var form dto.CarroForm
	if err := c.ShouldBind(&form); err != nil {
		status, verr := bindError(err)
		h.renderCarroForm(c, status, nil, form, verr, "")
		return
	}

	input, ok := h.carroInput(c, nil, form)
	if !ok {
		return
	}

	carro, err := h.carroSvc.Create(c.Request.Context(), input)
	if err != nil {
		h.carroFailed(c, nil, form, err, "create")
		return
	}

	log.WithField("carro_id", carro.ID).Info("Carro created")
	redirectNotice(c, fmt.Sprintf("/carros/%d", carro.ID), "Carro cadastrado com sucesso!")
}

// ShowCarro is the edit view: the form plus the image gallery.
func (h *Handler) ShowCarro(c *gin.Context) {
	carro, ok := h.loadCarro(c)
	if !ok {
		return
	}
	h.renderCarroForm(c, http.StatusOK, carro, dto.ToCarroForm(carro), nil, "")
}

func (h *Handler) UpdateCarro(c *gin.Context) {
	carro, ok := h.loadCarro(c)
	if !ok {
		return
	}

	var form dto.CarroForm
	if err := c.ShouldBind(&form); err != nil {
		status, verr := bindError(err)
		h.renderCarroForm(c, status, carro, form, verr, "")
		return
	}

	input, ok := h.carroInput(c, carro, form)
	if !ok {
		return
	}

	if _, err := h.carroSvc.Update(c.Request.Context(), carro.ID, input); err != nil {
		h.carroFailed(c, carro, form, err, "update")
		return
	}

	log.WithField("carro_id", carro.ID).Info("Carro updated")
	redirectNotice(c, fmt.Sprintf("/carros/%d", carro.ID), "Carro atualizado com sucesso!")
}

func (h *Handler) ConfirmDeleteCarro(c *gin.Context) {
	carro, ok := h.loadCarro(c)
	if !ok {
		return
	}

	renderConfirm(c, activeCarros,
		fmt.Sprintf("Tem certeza que deseja excluir o carro #%d (%s)?", carro.ID, carro.ModeloLabel()),
		fmt.Sprintf("/carros/%d/excluir", carro.ID),
		"/carros",
	)
}

// DeleteCarro only deletes when the confirmation form was submitted.
func (h *Handler) DeleteCarro(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		mapDomainError(c, activeCarros, err)
		return
	}
	if !confirmed(c) {
		redirectNotice(c, "/carros", "Exclusão cancelada.")
		return
	}

	if err := h.carroSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).WithField("carro_id", id).Error("Failed to delete carro")
		redirectError(c, "/carros", err)
		return
	}

	log.WithField("carro_id", id).Info("Carro deleted")
	redirectNotice(c, "/carros", fmt.Sprintf("Carro #%d excluído com sucesso!", id))
}

func (h *Handler) loadCarro(c *gin.Context) (*domain.Carro, bool) {
	id, err := parseID(c, "id")
	if err != nil {
		mapDomainError(c, activeCarros, err)
		return nil, false
	}

	carro, err := h.carroSvc.Get(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, domain.ErrCarroNotFound) {
			log.WithError(err).WithField("carro_id", id).Error("Failed to get carro")
		}
		mapDomainError(c, activeCarros, err)
		return nil, false
	}
	return carro, true
}

// carroInput turns the posted form and files into service input. On
// failure the form has already been re-rendered.
func (h *Handler) carroInput(c *gin.Context, carro *domain.Carro, form dto.CarroForm) (domain.CarroInput, bool) {
	input, verr := form.ToInput()
	if verr == nil {
		verr = domain.NewValidationError()
	}

	imagens, err := h.readUploads(c, "imagens")
	if err != nil {
		verr.AddCause("imagens", uploadMessage(err), err)
	}
	input.Imagens = imagens

	covers, err := h.readUploads(c, "imagem_principal")
	if err != nil {
		verr.AddCause("imagem_principal", uploadMessage(err), err)
	}
	if len(covers) > 0 {
		input.ImagemPrincipal = &covers[0]
	}

	if !verr.Empty() {
		h.renderCarroForm(c, http.StatusUnprocessableEntity, carro, form, verr, "")
		return input, false
	}
	return input, true
}

func (h *Handler) carroFailed(c *gin.Context, carro *domain.Carro, form dto.CarroForm, err error, op string) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		h.renderCarroForm(c, http.StatusUnprocessableEntity, carro, form, verr, "")
		return
	}

	entry := log.WithError(err)
	if carro != nil {
		entry = entry.WithField("carro_id", carro.ID)
	}
	entry.Errorf("Failed to %s carro", op)

	_ = c.Error(err)
	h.renderCarroForm(c, statusFor(err), carro, form, nil, userMessage(err))
}

// renderCarroForm shows the create form (carro == nil) or the edit form.
func (h *Handler) renderCarroForm(c *gin.Context, status int, carro *domain.Carro, form dto.CarroForm, verr *domain.ValidationError, erro string) {
	modelos, err := h.modeloSvc.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Warn("Failed to list modelos for carro form")
		if erro == "" {
			erro = userMessage(err)
		}
	}

	title, action := "Adicionar carro", "/carros/novo"
	if carro != nil {
		title, action = fmt.Sprintf("Editar carro #%d", carro.ID), fmt.Sprintf("/carros/%d", carro.ID)
	}

	data := page(c, activeCarros, title, gin.H{
		"Form":    form,
		"Carro":   carro,
		"Modelos": modelos,
		"Action":  action,
		"Errors":  fieldErrors(verr),
	})
	if erro != "" {
		data["Erro"] = erro
	}
	c.HTML(status, web.PageCarroForm, data)
}

// bindError turns a form that could not be parsed into the status and
// errors to re-render with. A body over the upload limit is blamed on
// the images field like any other rejected upload.
func bindError(err error) (int, *domain.ValidationError) {
	verr := domain.NewValidationError()
	if uploadTooLarge(err) {
		verr.AddCause("imagens", uploadMessage(err), err)
		return http.StatusUnprocessableEntity, verr
	}
	verr.AddCause("non_field_errors", uploadMessage(err), err)
	return http.StatusBadRequest, verr
}

func uploadTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return errors.As(err, &tooLarge) || errors.Is(err, errUploadTooLarge)
}

func uploadMessage(err error) string {
	if uploadTooLarge(err) {
		return "Os arquivos enviados excedem o tamanho máximo permitido."
	}
	return "Não foi possível ler o formulário enviado."
}
