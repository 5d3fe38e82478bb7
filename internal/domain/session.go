package domain

// StartSessionRequest is the request body for POST /api/sessions.
// @Description Resume a session by id, or omit the id to start a new one.
type StartSessionRequest struct {
	// Existing client session identifier
	SessionID string `json:"session_id,omitempty" validate:"omitempty,sessionid" example:"session_1712345678_ab12cd34e"`
}

// SelectMoodRequest is the request body for POST /api/sessions/{sessionId}/mood.
// @Description Mood selection.
type SelectMoodRequest struct {
	Mood MoodState `json:"mood" validate:"required,oneof=energized calm neutral tired" example:"calm" enums:"energized,calm,neutral,tired"`
}

// SelectComfortRequest is the request body for POST /api/sessions/{sessionId}/comfort.
// @Description Comfort selection.
type SelectComfortRequest struct {
	Comfort ComfortType `json:"comfort" validate:"required,oneof=warmth stillness distraction" example:"warmth" enums:"warmth,stillness,distraction"`
}
