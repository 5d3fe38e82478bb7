package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/blaisecz/comfort-census/pkg/pagination"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func TestCheckInHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockCheckInService
		wantStatusCode int
	}{
		{
			name:           "valid check-in",
			body:           `{"session_id": "session_1712345678_ab12cd34e", "mood": "tired", "comfort": "stillness"}`,
			mockService:    &MockCheckInService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "missing session",
			body:           `{"mood": "tired", "comfort": "stillness"}`,
			mockService:    &MockCheckInService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "malformed session id",
			body:           `{"session_id": "no spaces please", "mood": "tired", "comfort": "stillness"}`,
			mockService:    &MockCheckInService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown comfort",
			body:           `{"session_id": "s1", "mood": "tired", "comfort": "noise"}`,
			mockService:    &MockCheckInService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           `{"session_id":`,
			mockService:    &MockCheckInService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "store unavailable",
			body: `{"session_id": "s1", "mood": "calm", "comfort": "warmth"}`,
			mockService: &MockCheckInService{
				recordFunc: func(ctx context.Context, sessionID string, mood domain.MoodState, comfort domain.ComfortType) (*domain.CheckIn, error) {
					return nil, &domain.PersistenceError{Op: "record check-in", Err: errors.New("connection refused")}
				},
			},
			wantStatusCode: http.StatusServiceUnavailable,
		},
		{
			name: "unexpected error",
			body: `{"session_id": "s1", "mood": "calm", "comfort": "warmth"}`,
			mockService: &MockCheckInService{
				recordFunc: func(ctx context.Context, sessionID string, mood domain.MoodState, comfort domain.ComfortType) (*domain.CheckIn, error) {
					return nil, errors.New("boom")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCheckInHandler(tt.mockService)
			r := chi.NewRouter()
			r.Post("/api/check-ins", h.Create)

			req := httptest.NewRequest(http.MethodPost, "/api/check-ins", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestCheckInHandler_Create_Response(t *testing.T) {
	h := NewCheckInHandler(&MockCheckInService{})
	r := chi.NewRouter()
	r.Post("/api/check-ins", h.Create)

	req := httptest.NewRequest(http.MethodPost, "/api/check-ins", bytes.NewBufferString(`{"session_id":"s1","mood":"energized","comfort":"distraction"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"id", "session_id", "mood_state", "comfort_type", "created_at"} {
		if _, ok := body[key]; !ok {
			t.Errorf("response missing %q: %v", key, body)
		}
	}
	if body["mood_state"] != "energized" || body["comfort_type"] != "distraction" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestCheckInHandler_History(t *testing.T) {
	validCursor := pagination.After(uuid.New(), time.Now()).Encode()

	tests := []struct {
		name           string
		path           string
		wantStatusCode int
		wantFilter     domain.CheckInFilter
	}{
		{name: "default", path: "/api/sessions/s1/check-ins", wantStatusCode: http.StatusOK},
		{name: "with limit and cursor", path: "/api/sessions/s1/check-ins?limit=5&cursor=" + validCursor, wantStatusCode: http.StatusOK, wantFilter: domain.CheckInFilter{Limit: 5, Cursor: validCursor}},
		{name: "bad limit", path: "/api/sessions/s1/check-ins?limit=0", wantStatusCode: http.StatusBadRequest},
		{name: "bad cursor", path: "/api/sessions/s1/check-ins?cursor=%21%21", wantStatusCode: http.StatusBadRequest},
		{name: "bad session", path: "/api/sessions/bad;id/check-ins", wantStatusCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFilter domain.CheckInFilter
			svc := &MockCheckInService{
				historyFunc: func(ctx context.Context, sessionID string, filter domain.CheckInFilter) (*domain.CheckInListResponse, error) {
					gotFilter = filter
					return &domain.CheckInListResponse{Data: []domain.CheckIn{}}, nil
				},
			}
			h := NewCheckInHandler(svc)
			r := chi.NewRouter()
			r.Get("/api/sessions/{sessionId}/check-ins", h.History)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("status = %d, want %d; body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantStatusCode == http.StatusOK && gotFilter != tt.wantFilter {
				t.Errorf("filter = %+v, want %+v", gotFilter, tt.wantFilter)
			}
		})
	}
}
