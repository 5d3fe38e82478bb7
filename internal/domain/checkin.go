package domain

import (
	"time"

	"github.com/google/uuid"
)

// MoodState is how the user feels at check-in time.
// @Description One of the four predefined mood categories.
type MoodState string

const (
	MoodEnergized MoodState = "energized"
	MoodCalm      MoodState = "calm"
	MoodNeutral   MoodState = "neutral"
	MoodTired     MoodState = "tired"
)

// ComfortType is the kind of comfort the user asks for.
// @Description One of the three predefined comfort needs.
type ComfortType string

const (
	ComfortWarmth      ComfortType = "warmth"
	ComfortStillness   ComfortType = "stillness"
	ComfortDistraction ComfortType = "distraction"
)

// Moods lists every MoodState in display order.
var Moods = []MoodState{MoodEnergized, MoodCalm, MoodNeutral, MoodTired}

// Comforts lists every ComfortType in display order.
var Comforts = []ComfortType{ComfortWarmth, ComfortStillness, ComfortDistraction}

func (m MoodState) Valid() bool {
	switch m {
	case MoodEnergized, MoodCalm, MoodNeutral, MoodTired:
		return true
	}
	return false
}

func (c ComfortType) Valid() bool {
	switch c {
	case ComfortWarmth, ComfortStillness, ComfortDistraction:
		return true
	}
	return false
}

// CheckIn is one completed mood + comfort submission. Rows are insert-only.
type CheckIn struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID   string      `gorm:"type:varchar(128);not null;index:idx_check_ins_session_created" json:"session_id"`
	MoodState   MoodState   `gorm:"type:varchar(16);not null" json:"mood_state"`
	ComfortType ComfortType `gorm:"type:varchar(16);not null" json:"comfort_type"`
	CreatedAt   time.Time   `gorm:"not null;index:idx_check_ins_session_created,sort:desc" json:"created_at"`
}

func (CheckIn) TableName() string {
	return "check_ins"
}

// CreateCheckInRequest is the request body for recording a check-in.
// @Description Request payload for recording a completed check-in.
type CreateCheckInRequest struct {
	// Client session identifier
	SessionID string `json:"session_id" validate:"required,sessionid" example:"session_1712345678_ab12cd34e"`
	// Selected mood
	Mood MoodState `json:"mood" validate:"required,oneof=energized calm neutral tired" example:"tired" enums:"energized,calm,neutral,tired"`
	// Selected comfort need
	Comfort ComfortType `json:"comfort" validate:"required,oneof=warmth stillness distraction" example:"stillness" enums:"warmth,stillness,distraction"`
}

// CheckInListResponse is a page of a session's check-ins.
// @Description Paginated check-in history for one session.
type CheckInListResponse struct {
	Data       []CheckIn          `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"false"`
}

// CheckInFilter contains paging parameters for listing check-ins.
type CheckInFilter struct {
	Limit  int
	Cursor string
}
