package analytics

import (
	"encoding/json"
	"net/http"

	"github.com/de-tools/edi-analytics/pkg/adapters"
	"github.com/de-tools/edi-analytics/pkg/models/api"
	"github.com/de-tools/edi-analytics/pkg/services/dashboard"
	"github.com/rs/zerolog"
)

type Handler struct {
	dashboard dashboard.Service
}

func NewHandler(svc dashboard.Service) *Handler {
	return &Handler{dashboard: svc}
}

func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	metrics, err := h.dashboard.Metrics(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to compute metrics")
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(adapters.MapDomainMetricsToApi(metrics))
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode metrics")
	}
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	report, err := h.dashboard.Report(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to generate report")
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(report + "\n")); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to write report")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, cause error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(api.Error{Error: cause.Error()}); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode error response")
	}
}
