package service

import (
	"context"
	"sync"

	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/blaisecz/comfort-census/internal/langfuse"
)

type mockGenerator struct {
	mu           sync.Mutex
	calls        int
	generateFunc func(ctx context.Context, mood domain.MoodState, comfort domain.ComfortType) (domain.Recommendation, error)
}

func (m *mockGenerator) Generate(ctx context.Context, mood domain.MoodState, comfort domain.ComfortType) (domain.Recommendation, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.generateFunc != nil {
		return m.generateFunc(ctx, mood, comfort)
	}
	return aiRecommendation(), nil
}

func (m *mockGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func aiRecommendation() domain.Recommendation {
	return domain.Recommendation{
		Title:       "Blanket Fort Retreat",
		Description: "Build a soft hideaway and let the day go quiet.",
		Suggestions: []string{"Drape a blanket over two chairs", "Bring a flashlight and a book", "Queue a rain-sounds track"},
		LinkText:    "Enter the Fort",
		LinkURL:     "/nook/blanket-fort",
	}
}

type mockCheckInRepository struct {
	createFunc          func(ctx context.Context, checkIn *domain.CheckIn) error
	getDailyMetricsFunc func(ctx context.Context, date string) (*domain.DailyMetrics, error)
	countBySessionFunc  func(ctx context.Context, sessionID string) (int64, error)
	listBySessionFunc   func(ctx context.Context, sessionID string, filter domain.CheckInFilter) ([]domain.CheckIn, error)
}

func (m *mockCheckInRepository) Create(ctx context.Context, checkIn *domain.CheckIn) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, checkIn)
	}
	return nil
}

func (m *mockCheckInRepository) GetDailyMetrics(ctx context.Context, date string) (*domain.DailyMetrics, error) {
	if m.getDailyMetricsFunc != nil {
		return m.getDailyMetricsFunc(ctx, date)
	}
	return nil, domain.ErrNotFound
}

func (m *mockCheckInRepository) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	if m.countBySessionFunc != nil {
		return m.countBySessionFunc(ctx, sessionID)
	}
	return 0, nil
}

func (m *mockCheckInRepository) ListBySession(ctx context.Context, sessionID string, filter domain.CheckInFilter) ([]domain.CheckIn, error) {
	if m.listBySessionFunc != nil {
		return m.listBySessionFunc(ctx, sessionID, filter)
	}
	return nil, nil
}

type mockLangfuse struct {
	enabled         bool
	createScoreFunc func(ctx context.Context, in langfuse.ScoreInput) error
}

func (m *mockLangfuse) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuse) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return in.ID, nil
}

func (m *mockLangfuse) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	if m.createScoreFunc != nil {
		return m.createScoreFunc(ctx, in)
	}
	return nil
}
