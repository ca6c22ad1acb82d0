package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"service-fxrates/internal/logger"
	"service-fxrates/internal/models"
)

type APIKeyValidator interface {
	Validate(ctx context.Context, rawKey string) (exists bool, isActive bool, err error)
}

// APIKeyAuth guards wrapped handlers behind the X-API-Key header. Missing
// and unknown keys are 401, revoked keys are 403.
func APIKeyAuth(store APIKeyValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get("X-API-Key"))
			if key == "" {
				writeErr(w, http.StatusUnauthorized, &models.BusinessError{
					Code:    "missing_api_key",
					Message: "missing X-API-Key",
				})
				return
			}

			exists, active, err := store.Validate(r.Context(), key)
			if err != nil {
				logger.Error("api key validation failed", zap.Error(err))
				writeErr(w, http.StatusInternalServerError, &models.BusinessError{
					Code:    "internal_error",
					Message: "internal error",
				})
				return
			}
			if !exists {
				writeErr(w, http.StatusUnauthorized, &models.BusinessError{
					Code:    "invalid_api_key",
					Message: "invalid api key",
				})
				return
			}
			if !active {
				writeErr(w, http.StatusForbidden, &models.BusinessError{
					Code:    "api_key_expired",
					Message: "api key is expired",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeErr(w http.ResponseWriter, status int, bizErr *models.BusinessError) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(bizErr)
}
