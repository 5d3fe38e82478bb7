package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/comfort-census/internal/api/validation"
	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/blaisecz/comfort-census/internal/service"
	"github.com/blaisecz/comfort-census/pkg/pagination"
	"github.com/blaisecz/comfort-census/pkg/problem"
	"github.com/go-chi/chi/v5"
)

type CheckInHandler struct {
	service service.CheckInService
}

func NewCheckInHandler(service service.CheckInService) *CheckInHandler {
	return &CheckInHandler{service: service}
}

// Create handles POST /api/check-ins
// @Summary Record a check-in
// @Description Records one completed mood and comfort check-in and counts it in today's community metrics.
// @Tags check-ins
// @Accept json
// @Produce json
// @Param request body domain.CreateCheckInRequest true "Check-in"
// @Success 201 {object} domain.CheckIn "Check-in recorded"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 503 {object} problem.Problem "Check-in could not be saved"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /check-ins [post]
func (h *CheckInHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCheckInRequest
	if err := decodeBody(r, &req, false); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	checkIn, err := h.service.Record(r.Context(), req.SessionID, req.Mood, req.Comfort)
	if err != nil {
		if writeInputError(w, err) {
			return
		}
		var persistErr *domain.PersistenceError
		if errors.As(err, &persistErr) {
			problem.ServiceUnavailable("Check-in could not be saved", err).Write(w)
			return
		}
		problem.InternalError("Failed to record check-in", err).Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, checkIn)
}

// History handles GET /api/sessions/{sessionId}/check-ins
// @Summary List a session's check-ins
// @Description Paginated check-in history of one session, newest first.
// @Tags check-ins
// @Produce json
// @Param sessionId path string true "Session identifier" example(session_1712345678_ab12cd34e)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.CheckInListResponse "Check-ins with pagination"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sessions/{sessionId}/check-ins [get]
func (h *CheckInHandler) History(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	if !validation.ValidSessionID(sessionID) {
		problem.BadRequest("Invalid session ID format").Write(w)
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.History(r.Context(), sessionID, filter)
	if err != nil {
		problem.InternalError("Failed to list check-ins", err).Write(w)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func parseListFilter(r *http.Request) (domain.CheckInFilter, []problem.FieldError) {
	var filter domain.CheckInFilter
	var fieldErrors []problem.FieldError

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	if cursor := r.URL.Query().Get("cursor"); cursor != "" {
		if _, err := pagination.DecodeCursor(cursor); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "cursor",
				Message: "is not a valid cursor",
			})
		} else {
			filter.Cursor = cursor
		}
	}

	return filter, fieldErrors
}
