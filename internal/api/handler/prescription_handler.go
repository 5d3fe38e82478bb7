package handler

import (
	"net/http"

	"github.com/blaisecz/comfort-census/internal/api/validation"
	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/blaisecz/comfort-census/internal/service"
	"github.com/blaisecz/comfort-census/pkg/problem"
	"github.com/rs/zerolog/log"
)

const (
	HeaderPrescriptionSource = "X-Prescription-Source"
	HeaderTraceID            = "X-Trace-ID"
)

type PrescriptionHandler struct {
	service service.PrescriptionService
}

func NewPrescriptionHandler(service service.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{service: service}
}

// Generate handles POST /api/generate-prescription
// @Summary Generate a comfort prescription
// @Description Generates a prescription for the selected mood and comfort. The AI provider is tried first; on any failure or timeout the curated static prescription is returned instead. X-Prescription-Source tells which one was served.
// @Tags prescriptions
// @Accept json
// @Produce json
// @Param request body domain.GeneratePrescriptionRequest true "Mood and comfort selection"
// @Success 200 {object} domain.Recommendation "Prescription"
// @Header 200 {string} X-Prescription-Source "ai or static"
// @Header 200 {string} X-Trace-ID "Trace id for feedback, AI prescriptions only"
// @Failure 400 {object} problem.Problem "Mood or comfort missing or unknown"
// @Failure 405 {object} problem.Problem "Method not allowed"
// @Failure 500 {object} problem.Problem "No prescription could be produced"
// @Router /generate-prescription [post]
func (h *PrescriptionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.GeneratePrescriptionRequest
	if err := decodeBody(r, &req, true); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if req.Mood == "" || req.Comfort == "" {
		problem.BadRequest("Mood and comfort are required").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Unknown mood or comfort", fieldErrors).Write(w)
		return
	}

	p, err := h.service.Prescribe(r.Context(), req.Mood, req.Comfort)
	if err != nil {
		if writeInputError(w, err) {
			return
		}
		log.Error().Err(err).Msg("prescription failed after fallback")
		problem.InternalError("Failed to generate prescription", err).Write(w)
		return
	}

	w.Header().Set(HeaderPrescriptionSource, string(p.Source))
	if p.TraceID != "" {
		w.Header().Set(HeaderTraceID, p.TraceID)
	}
	writeJSON(w, http.StatusOK, p.Recommendation)
}

// Feedback handles POST /api/prescriptions/feedback
// @Summary Rate a prescription
// @Description Attaches a 1-5 rating to the AI generation identified by the X-Trace-ID header of an earlier response.
// @Tags prescriptions
// @Accept json
// @Param request body domain.FeedbackRequest true "Rating"
// @Success 204 "Feedback recorded"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /prescriptions/feedback [post]
func (h *PrescriptionHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req domain.FeedbackRequest
	if err := decodeBody(r, &req, false); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.service.RecordFeedback(r.Context(), &req); err != nil {
		problem.InternalError("Failed to record feedback", err).Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MethodNotAllowed answers non-POST calls to the generation endpoint.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	problem.MethodNotAllowed("Method not allowed").Write(w)
}
