package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FounderX/internals/apperrors"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count" validate:"gte=1"`
}

func TestDecodeJSON(t *testing.T) {
	var s sample
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","count":2}`))
	require.NoError(t, DecodeJSON(r, &s))
	assert.Equal(t, sample{Name: "a", Count: 2}, s)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.True(t, apperrors.Is(DecodeJSON(r, &s), "invalid_json"))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","count":0}`))
	err := DecodeJSON(r, &s)
	var ae *apperrors.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "invalid_field", ae.Code)
	assert.Equal(t, "count", ae.Meta["field"])
}

func TestWriteError_Typed(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/", nil), apperrors.ErrInvalidField("email", "email"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid_field", body.Error.Code)
	assert.Equal(t, "email", body.Error.Meta["field"])
}

func TestWriteError_UntypedIsHiddenAndLogged(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	r := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r = r.WithContext(logger.WithContext(r.Context()))

	w := httptest.NewRecorder()
	WriteError(w, r, errors.New("secret connection string"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
	assert.Contains(t, logs.String(), "secret connection string")
	assert.Contains(t, logs.String(), "/boom")
}
