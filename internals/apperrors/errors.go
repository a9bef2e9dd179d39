package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind groups errors by how they are surfaced to a client.
type Kind string

const (
	KindValidation  Kind = "validation"   // 400
	KindAuth        Kind = "auth"         // 401
	KindNotFound    Kind = "not_found"    // 404
	KindConflict    Kind = "conflict"     // 409
	KindRateLimited Kind = "rate_limited" // 429
	KindUnavailable Kind = "unavailable"  // 503
	KindInternal    Kind = "internal"     // 500
)

// Error is a typed application error.
// Code is a stable machine-readable identifier, Message is safe to show to callers,
// Cause is kept for logs only.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Meta    map[string]string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind Kind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func Wrap(kind Kind, code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, Cause: cause}
}

func WithMeta(err *Error, meta map[string]string) *Error {
	err.Meta = meta
	return err
}

// Is reports whether err is an *Error carrying the given code.
func Is(err error, code string) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

// HTTPStatus maps an error to a response status. Untyped errors are 500.
func HTTPStatus(err error) int {
	var ae *Error
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// validation

func ErrInvalidJSON(cause error) *Error {
	return Wrap(KindValidation, "invalid_json", "invalid JSON body", cause)
}

func ErrInvalidField(field, reason string) *Error {
	return WithMeta(New(KindValidation, "invalid_field", "invalid field"), map[string]string{
		"field":  field,
		"reason": reason,
	})
}

func ErrUnknownFounder(cause error) *Error {
	return Wrap(KindValidation, "unknown_founder", "founder does not exist", cause)
}

// auth

// ErrInvalidCredentials is returned for both unknown email and wrong password.
func ErrInvalidCredentials() *Error {
	return New(KindAuth, "invalid_credentials", "invalid credentials")
}

func ErrTokenMissing() *Error {
	return New(KindAuth, "token_missing", "no token provided")
}

func ErrTokenInvalid() *Error {
	return New(KindAuth, "token_invalid", "invalid token")
}

func ErrTokenExpired() *Error {
	return New(KindAuth, "token_expired", "token is expired")
}

// not found / conflict

func ErrUserNotFound() *Error {
	return New(KindNotFound, "user_not_found", "user not found")
}

func ErrStartupNotFound() *Error {
	return New(KindNotFound, "startup_not_found", "startup not found")
}

func ErrEmailExists(cause error) *Error {
	return Wrap(KindConflict, "email_exists", "email already registered", cause)
}

// misc

func ErrRateLimited() *Error {
	return New(KindRateLimited, "rate_limited", "too many requests")
}

func ErrUnavailable(cause error) *Error {
	return Wrap(KindUnavailable, "unavailable", "service unavailable", cause)
}

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, "internal_error", "internal error", cause)
}
