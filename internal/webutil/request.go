package webutil

import (
	"encoding/json"
	"errors"
	"net/http"

	"go_5_wheelword/internal/model"

	"github.com/go-playground/validator/v10"
)

// maxBodyBytes はリクエストボディの上限
const maxBodyBytes = 64 << 10

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return errors.Join(model.ErrInvalidInput, err)
	}
	return nil
}

// ValidateStruct はDTOを検証し、最初のエラーを日本語メッセージの AppError にします
func ValidateStruct(req interface{}) error {
	err := Validator.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	first := validationErrors[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		first.Translate(Trans),
		first.Field(),
		model.ErrInvalidInput,
	)
}
