// Package httpx holds the request decoding and response writing shared by
// every handler.
package httpx

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"FounderX/internals/apperrors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json field names instead of Go ones
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type ErrorBody struct {
	Error ErrorPayload `json:"error"`
}

type ErrorPayload struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Meta      map[string]string `json:"meta,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// DecodeJSON reads the request body into dst and validates its struct tags.
func DecodeJSON(r *http.Request, dst any) error {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		return apperrors.ErrInvalidJSON(err)
	}
	return Validate(dst)
}

// Validate runs validator tags on v and reports the first failing field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.ErrInvalidField(verrs[0].Field(), verrs[0].Tag())
	}
	return apperrors.ErrInvalidJSON(err)
}

func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// WriteError writes err as a JSON error body. Untyped errors become a 500
// without details and are logged.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	payload := ErrorPayload{
		Code:      "internal_error",
		Message:   "internal error",
		RequestID: middleware.GetReqID(r.Context()),
	}

	var ae *apperrors.Error
	if errors.As(err, &ae) {
		payload.Code = ae.Code
		payload.Message = ae.Message
		if status < http.StatusInternalServerError {
			payload.Meta = ae.Meta
		}
	}

	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", payload.RequestID).
			Msg("request failed")
	}

	JSON(w, r, status, ErrorBody{Error: payload})
}
