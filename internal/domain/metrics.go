package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the format of DailyMetrics.Date.
const DateLayout = "2006-01-02"

// DailyMetrics aggregates check-ins for one UTC calendar day.
// @Description Community counters for a single day.
type DailyMetrics struct {
	ID               uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	Date             string              `gorm:"type:varchar(10);not null;uniqueIndex" json:"date" example:"2024-01-16"`
	TotalCheckIns    int                 `gorm:"not null;default:0" json:"total_check_ins" example:"42"`
	MoodBreakdown    map[MoodState]int   `gorm:"serializer:json;type:jsonb;not null" json:"mood_breakdown"`
	ComfortBreakdown map[ComfortType]int `gorm:"serializer:json;type:jsonb;not null" json:"comfort_breakdown"`
	UpdatedAt        time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DailyMetrics) TableName() string {
	return "daily_metrics"
}

// DateOf returns the metrics date key for t.
func DateOf(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// NewDailyMetrics returns an empty aggregate with every counter present at zero.
func NewDailyMetrics(date string) *DailyMetrics {
	m := &DailyMetrics{
		ID:               uuid.New(),
		Date:             date,
		MoodBreakdown:    make(map[MoodState]int, len(Moods)),
		ComfortBreakdown: make(map[ComfortType]int, len(Comforts)),
	}
	for _, mood := range Moods {
		m.MoodBreakdown[mood] = 0
	}
	for _, comfort := range Comforts {
		m.ComfortBreakdown[comfort] = 0
	}
	return m
}

// Add counts one check-in.
func (m *DailyMetrics) Add(mood MoodState, comfort ComfortType) {
	if m.MoodBreakdown == nil {
		m.MoodBreakdown = make(map[MoodState]int)
	}
	if m.ComfortBreakdown == nil {
		m.ComfortBreakdown = make(map[ComfortType]int)
	}
	m.TotalCheckIns++
	m.MoodBreakdown[mood]++
	m.ComfortBreakdown[comfort]++
}
