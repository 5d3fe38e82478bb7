package handler

import (
	"net/http"

	"github.com/blaisecz/comfort-census/internal/service"
	"github.com/blaisecz/comfort-census/pkg/problem"
	"github.com/go-chi/chi/v5"
)

type MetricsHandler struct {
	service service.CheckInService
}

func NewMetricsHandler(service service.CheckInService) *MetricsHandler {
	return &MetricsHandler{service: service}
}

// Today handles GET /api/metrics/today
// @Summary Today's community metrics
// @Description Check-in counters for the current UTC day. Counters are zero when nobody has checked in yet.
// @Tags metrics
// @Produce json
// @Success 200 {object} domain.DailyMetrics "Daily metrics"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /metrics/today [get]
func (h *MetricsHandler) Today(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.service.TodayMetrics(r.Context())
	if err != nil {
		problem.InternalError("Failed to load metrics", err).Write(w)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

// ByDate handles GET /api/metrics/{date}
// @Summary Community metrics for a day
// @Tags metrics
// @Produce json
// @Param date path string true "UTC date" format(date) example(2024-01-16)
// @Success 200 {object} domain.DailyMetrics "Daily metrics"
// @Failure 400 {object} problem.Problem "Invalid date"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /metrics/{date} [get]
func (h *MetricsHandler) ByDate(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.service.MetricsFor(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		if writeInputError(w, err) {
			return
		}
		problem.InternalError("Failed to load metrics", err).Write(w)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}
