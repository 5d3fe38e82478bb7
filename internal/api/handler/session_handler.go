package handler

import (
	"errors"
	"net/http"

	"github.com/blaisecz/comfort-census/internal/api/validation"
	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/blaisecz/comfort-census/internal/flow"
	"github.com/blaisecz/comfort-census/internal/service"
	"github.com/blaisecz/comfort-census/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// SessionResponse is a session view plus whether the session has checked in before.
// @Description Session state returned by POST /api/sessions.
type SessionResponse struct {
	flow.View
	ReturningUser bool `json:"returning_user" example:"true"`
}

type SessionHandler struct {
	registry *flow.Registry
	checkIns service.CheckInService
}

func NewSessionHandler(registry *flow.Registry, checkIns service.CheckInService) *SessionHandler {
	return &SessionHandler{registry: registry, checkIns: checkIns}
}

// Create handles POST /api/sessions
// @Summary Start or resume a session
// @Description Resumes the session named in the body, creating it at the welcome step if it is unknown. Without a session_id a new one is issued.
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body domain.StartSessionRequest false "Session to resume"
// @Success 201 {object} handler.SessionResponse "New session"
// @Success 200 {object} handler.SessionResponse "Existing session"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Router /sessions [post]
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.StartSessionRequest
	if err := decodeBody(r, &req, true); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	ctrl, created := h.registry.Resume(req.SessionID)

	returning, err := h.checkIns.HasVisited(r.Context(), ctrl.SessionID())
	if err != nil {
		log.Warn().Err(err).Str("session_id", ctrl.SessionID()).Msg("could not look up check-in history")
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, SessionResponse{View: ctrl.View(), ReturningUser: returning})
}

// Get handles GET /api/sessions/{sessionId}
// @Summary Get session state
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session identifier" example(session_1712345678_ab12cd34e)
// @Success 200 {object} flow.View "Session state"
// @Failure 400 {object} problem.Problem "Invalid session ID"
// @Failure 404 {object} problem.Problem "Session not found"
// @Router /sessions/{sessionId} [get]
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.controller(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ctrl.View())
}

// Start handles POST /api/sessions/{sessionId}/start
// @Summary Leave the welcome step
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session identifier"
// @Success 200 {object} flow.View "Session state"
// @Failure 404 {object} problem.Problem "Session not found"
// @Failure 409 {object} problem.Problem "Transition not allowed"
// @Router /sessions/{sessionId}/start [post]
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(c *flow.Controller) (flow.View, error) {
		return c.Start()
	})
}

// SelectMood handles POST /api/sessions/{sessionId}/mood
// @Summary Select a mood
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionId path string true "Session identifier"
// @Param request body domain.SelectMoodRequest true "Mood"
// @Success 200 {object} flow.View "Session state"
// @Failure 400 {object} problem.Problem "Invalid mood"
// @Failure 404 {object} problem.Problem "Session not found"
// @Failure 409 {object} problem.Problem "Not on the mood step"
// @Router /sessions/{sessionId}/mood [post]
func (h *SessionHandler) SelectMood(w http.ResponseWriter, r *http.Request) {
	var req domain.SelectMoodRequest
	if err := decodeBody(r, &req, false); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	h.apply(w, r, func(c *flow.Controller) (flow.View, error) {
		return c.SelectMood(req.Mood)
	})
}

// Continue handles POST /api/sessions/{sessionId}/continue
// @Summary Continue from mood to comfort
// @Description Requires a selected mood.
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session identifier"
// @Success 200 {object} flow.View "Session state"
// @Failure 404 {object} problem.Problem "Session not found"
// @Failure 409 {object} problem.Problem "No mood selected or wrong step"
// @Router /sessions/{sessionId}/continue [post]
func (h *SessionHandler) Continue(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(c *flow.Controller) (flow.View, error) {
		return c.Continue()
	})
}

// SelectComfort handles POST /api/sessions/{sessionId}/comfort
// @Summary Select a comfort
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionId path string true "Session identifier"
// @Param request body domain.SelectComfortRequest true "Comfort"
// @Success 200 {object} flow.View "Session state"
// @Failure 400 {object} problem.Problem "Invalid comfort"
// @Failure 404 {object} problem.Problem "Session not found"
// @Failure 409 {object} problem.Problem "Not on the comfort step"
// @Router /sessions/{sessionId}/comfort [post]
func (h *SessionHandler) SelectComfort(w http.ResponseWriter, r *http.Request) {
	var req domain.SelectComfortRequest
	if err := decodeBody(r, &req, false); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	h.apply(w, r, func(c *flow.Controller) (flow.View, error) {
		return c.SelectComfort(req.Comfort)
	})
}

// Back handles POST /api/sessions/{sessionId}/back
// @Summary Go back from comfort to mood
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session identifier"
// @Success 200 {object} flow.View "Session state"
// @Failure 404 {object} problem.Problem "Session not found"
// @Failure 409 {object} problem.Problem "Not on the comfort step"
// @Router /sessions/{sessionId}/back [post]
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(c *flow.Controller) (flow.View, error) {
		return c.Back()
	})
}

// Submit handles POST /api/sessions/{sessionId}/submit
// @Summary Submit the check-in
// @Description Produces the prescription and records the check-in. If recording fails the results are still returned with a notice.
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session identifier"
// @Success 200 {object} flow.View "Results"
// @Failure 404 {object} problem.Problem "Session not found"
// @Failure 409 {object} problem.Problem "Selection incomplete or submission already running"
// @Failure 500 {object} problem.Problem "No prescription could be produced"
// @Router /sessions/{sessionId}/submit [post]
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(c *flow.Controller) (flow.View, error) {
		return c.Submit(r.Context())
	})
}

// StartOver handles POST /api/sessions/{sessionId}/start-over
// @Summary Start over from the results
// @Description Clears the selection and the prescription and returns to the welcome step.
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session identifier"
// @Success 200 {object} flow.View "Session state"
// @Failure 404 {object} problem.Problem "Session not found"
// @Failure 409 {object} problem.Problem "Not on the results step"
// @Router /sessions/{sessionId}/start-over [post]
func (h *SessionHandler) StartOver(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(c *flow.Controller) (flow.View, error) {
		return c.StartOver()
	})
}

func (h *SessionHandler) controller(w http.ResponseWriter, r *http.Request) (*flow.Controller, bool) {
	sessionID := chi.URLParam(r, "sessionId")
	if !validation.ValidSessionID(sessionID) {
		problem.BadRequest("Invalid session ID format").Write(w)
		return nil, false
	}

	ctrl, err := h.registry.Get(sessionID)
	if err != nil {
		problem.NotFound("Session not found").Write(w)
		return nil, false
	}
	return ctrl, true
}

func (h *SessionHandler) apply(w http.ResponseWriter, r *http.Request, fn func(*flow.Controller) (flow.View, error)) {
	ctrl, ok := h.controller(w, r)
	if !ok {
		return
	}

	view, err := fn(ctrl)
	if err != nil {
		switch {
		case writeInputError(w, err):
		case errors.Is(err, domain.ErrSubmissionInProgress):
			problem.Conflict("A submission is already in progress").Write(w)
		case errors.Is(err, domain.ErrInvalidTransition):
			problem.Conflict(err.Error()).Write(w)
		default:
			log.Error().Err(err).Str("session_id", ctrl.SessionID()).Msg("session step failed")
			problem.InternalError("Failed to generate prescription", err).Write(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, view)
}
