package rates

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"service-fxrates/internal/logger"
	"service-fxrates/internal/models"
	"service-fxrates/internal/service/audit"
)

type Handler struct {
	cache     RatesCache
	converter RateConverter
	logger    audit.RequestLogger
}

func New(cache RatesCache, converter RateConverter, l audit.RequestLogger) *Handler {
	return &Handler{cache: cache, converter: converter, logger: l}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/v1/rates", h.getRates)
	mux.HandleFunc("/api/v1/rate", h.getRate)
}

// getRates serves the cached table from the last successful refresh.
func (h *Handler) getRates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		st := http.StatusMethodNotAllowed
		w.WriteHeader(st)
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
		return
	}

	latest, ok := h.cache.Latest()
	if !ok {
		st := writeErr(w, http.StatusServiceUnavailable, &models.BusinessError{
			Code:    "rates_not_loaded",
			Message: "no rates fetched yet, try again later",
		})
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
		return
	}

	st := http.StatusOK
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(latest)
	_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
}

// getRate serves one base/quote pair computed from stored history.
func (h *Handler) getRate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		st := http.StatusMethodNotAllowed
		w.WriteHeader(st)
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
		return
	}

	base := r.URL.Query().Get("base")
	quote := r.URL.Query().Get("quote")

	out, err := h.converter.GetPairRate(r.Context(), base, quote)
	if err != nil {
		status := http.StatusBadRequest

		var bizErr *models.BusinessError
		if !errors.As(err, &bizErr) {
			logger.Error("pair rate failed", zap.Error(err),
				zap.String("base", base), zap.String("quote", quote))
			status = http.StatusInternalServerError
			bizErr = &models.BusinessError{Code: "internal_error", Message: "internal error"}
		}

		st := writeErr(w, status, bizErr)
		_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, nil)
		return
	}

	st := http.StatusOK
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(out)
	_ = h.logger.LogRequest(r.Context(), r.URL.Path, &st, &out.Quote)
}

func writeErr(w http.ResponseWriter, status int, bizErr *models.BusinessError) int {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(bizErr)
	return status
}
