package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"

	"vehicle-inventory-frontend/internal/core/domain"
)

// MinAno is the first model year accepted (the first automobile patent).
const MinAno = 1886

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("ano", validateAno); err != nil {
		panic(err)
	}

	// Report fields under the names the inventory API uses.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("field"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateAno accepts years from MinAno up to next year.
func validateAno(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= MinAno && year <= int64(time.Now().Year()+1)
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Este campo é obrigatório."
	case "max":
		return fmt.Sprintf("Certifique-se de que este campo não tenha mais de %s caracteres.", e.Param())
	case "gt":
		return "Selecione um valor válido."
	case "ano":
		return fmt.Sprintf("Informe um ano entre %d e %d.", MinAno, time.Now().Year()+1)
	default:
		return fmt.Sprintf("Valor inválido (%s).", e.Tag())
	}
}

// validateStruct runs the struct tags of v and converts failures into a
// domain.ValidationError keyed by API field name.
func validateStruct(v interface{}) *domain.ValidationError {
	verr := domain.NewValidationError()

	err := validate.Struct(v)
	if err == nil {
		return verr
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.Add("non_field_errors", err.Error())
		return verr
	}
	for _, e := range fieldErrs {
		verr.Add(e.Field(), validationMessage(e))
	}
	return verr
}

// checkUpload sniffs the file content and replaces the client supplied
// content type with the detected one. Only images pass.
func checkUpload(up *domain.Upload) error {
	if len(up.Data) == 0 {
		return fmt.Errorf("%s: empty file: %w", up.Filename, domain.ErrUnsupportedUpload)
	}

	mt := mimetype.Detect(up.Data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return fmt.Errorf("%s is %s: %w", up.Filename, mt.String(), domain.ErrUnsupportedUpload)
	}
	up.ContentType = mt.String()
	return nil
}
