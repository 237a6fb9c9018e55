package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"vehicle-inventory-frontend/internal/core/domain"
	"vehicle-inventory-frontend/internal/web"

	"github.com/gin-gonic/gin"
)

const (
	noticeKey = "aviso"
	errorKey  = "erro"
)

// page builds the data every template expects: the layout reads Title,
// Active and the flash notices; form templates read Errors.
func page(c *gin.Context, active, title string, data gin.H) gin.H {
	out := gin.H{
		"Title":  title,
		"Active": active,
		"Aviso":  c.Query(noticeKey),
		"Erro":   c.Query(errorKey),
		"Errors": map[string][]string{},
	}
	for k, v := range data {
		out[k] = v
	}
	return out
}

func redirectWith(c *gin.Context, path, key, msg string) {
	loc := path
	if msg != "" {
		loc += "?" + url.Values{key: []string{msg}}.Encode()
	}
	c.Redirect(http.StatusSeeOther, loc)
}

func redirectNotice(c *gin.Context, path, msg string) {
	redirectWith(c, path, noticeKey, msg)
}

func redirectError(c *gin.Context, path string, err error) {
	_ = c.Error(err)
	redirectWith(c, path, errorKey, userMessage(err))
}

func confirmed(c *gin.Context) bool {
	return c.PostForm("confirmar") == "sim"
}

func renderConfirm(c *gin.Context, active, message, action, cancel string) {
	c.HTML(http.StatusOK, web.PageConfirm, page(c, active, "Confirmar exclusão", gin.H{
		"Message": message,
		"Action":  action,
		"Cancel":  cancel,
	}))
}

func parseID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func fieldErrors(verr *domain.ValidationError) map[string][]string {
	if verr == nil || verr.Fields == nil {
		return map[string][]string{}
	}
	return verr.Fields
}

var errUploadTooLarge = errors.New("upload exceeds size limit")

// readUploads collects the files posted under field. Requests that are
// not multipart carry no files.
func (h *Handler) readUploads(c *gin.Context, field string) ([]domain.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	headers := form.File[field]
	uploads := make([]domain.Upload, 0, len(headers))
	for _, fh := range headers {
		up, err := h.readUpload(fh)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, up)
	}
	return uploads, nil
}

func (h *Handler) readUpload(fh *multipart.FileHeader) (domain.Upload, error) {
	if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
		return domain.Upload{}, fmt.Errorf("%s: %w", fh.Filename, errUploadTooLarge)
	}

	f, err := fh.Open()
	if err != nil {
		return domain.Upload{}, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.Upload{}, fmt.Errorf("read upload %s: %w", fh.Filename, err)
	}

	return domain.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, web.PageNotFound, page(c, "", "Não encontrado", gin.H{
		"Path": c.Request.URL.Path,
	}))
}
