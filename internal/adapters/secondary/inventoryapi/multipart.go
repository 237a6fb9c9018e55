package inventoryapi

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"

	"vehicle-inventory-frontend/internal/core/domain"
)

const (
	fieldImagens         = "imagens"
	fieldImagemPrincipal = "imagem_principal"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeCarroForm renders a vehicle as multipart/form-data and returns
// the body with its content type (boundary included).
func encodeCarroForm(input domain.CarroInput) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct {
		name  string
		value string
	}{
		{"modelo_id", strconv.FormatInt(input.ModeloID, 10)},
		{"ano_fabricacao", strconv.Itoa(input.AnoFabricacao)},
		{"cor", input.Cor},
		{"descricao_carro", input.Descricao},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.name, err)
		}
	}

	for _, up := range input.Imagens {
		if err := writeFile(w, fieldImagens, up); err != nil {
			return nil, "", err
		}
	}
	if input.ImagemPrincipal != nil {
		if err := writeFile(w, fieldImagemPrincipal, *input.ImagemPrincipal); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func writeFile(w *multipart.Writer, field string, up domain.Upload) error {
	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(up.Filename)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create %s part: %w", field, err)
	}
	if _, err := part.Write(up.Data); err != nil {
		return fmt.Errorf("write %s part: %w", field, err)
	}
	return nil
}
