package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-fxrates/internal/api/http/middleware"
	"service-fxrates/internal/models"
)

type stubValidator struct {
	exists bool
	active bool
	err    error

	gotKey string
}

func (v *stubValidator) Validate(_ context.Context, rawKey string) (bool, bool, error) {
	v.gotKey = rawKey
	return v.exists, v.active, v.err
}

func protected(v *stubValidator) (http.Handler, *bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	return middleware.APIKeyAuth(v)(next), &reached
}

func request(key string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates", nil)
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	return req
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) models.BusinessError {
	t.Helper()
	var bizErr models.BusinessError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bizErr))
	return bizErr
}

func TestAPIKeyAuth_ValidKey(t *testing.T) {
	validator := &stubValidator{exists: true, active: true}
	handler, reached := protected(validator)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, request("good-key"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *reached)
	assert.Equal(t, "good-key", validator.gotKey)
}

func TestAPIKeyAuth_MissingKey(t *testing.T) {
	handler, reached := protected(&stubValidator{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, request(""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
	assert.Equal(t, "missing_api_key", decodeErr(t, rec).Code)
}

func TestAPIKeyAuth_UnknownKey(t *testing.T) {
	handler, reached := protected(&stubValidator{exists: false})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, request("who-is-this"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
	assert.Equal(t, "invalid_api_key", decodeErr(t, rec).Code)
}

func TestAPIKeyAuth_RevokedKey(t *testing.T) {
	handler, reached := protected(&stubValidator{exists: true, active: false})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, request("revoked-key"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *reached)
	assert.Equal(t, "api_key_expired", decodeErr(t, rec).Code)
}

func TestAPIKeyAuth_ValidatorError(t *testing.T) {
	handler, reached := protected(&stubValidator{err: errors.New("database down")})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, request("any-key"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, *reached)

	bizErr := decodeErr(t, rec)
	assert.Equal(t, "internal_error", bizErr.Code)
	assert.NotContains(t, bizErr.Message, "database down")
}

func TestAPIKeyAuth_TrimsKey(t *testing.T) {
	validator := &stubValidator{exists: true, active: true}
	handler, _ := protected(validator)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, request("  padded-key  "))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "padded-key", validator.gotKey)
}
