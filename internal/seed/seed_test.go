package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/comfort-census/internal/domain"
)

type mockRepo struct {
	existing int64
	created  []domain.CheckIn
	err      error
}

func (m *mockRepo) Create(ctx context.Context, checkIn *domain.CheckIn) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, *checkIn)
	return nil
}

func (m *mockRepo) GetDailyMetrics(ctx context.Context, date string) (*domain.DailyMetrics, error) {
	return nil, domain.ErrNotFound
}

func (m *mockRepo) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	return m.existing, nil
}

func (m *mockRepo) ListBySession(ctx context.Context, sessionID string, filter domain.CheckInFilter) ([]domain.CheckIn, error) {
	return nil, nil
}

func TestDemoCheckIns_CoverEveryPair(t *testing.T) {
	checkIns := demoCheckIns(time.Now())

	if len(checkIns) != len(domain.Moods)*len(domain.Comforts) {
		t.Fatalf("got %d check-ins", len(checkIns))
	}
	metrics := domain.NewDailyMetrics("today")
	for _, c := range checkIns {
		metrics.Add(c.MoodState, c.ComfortType)
	}
	for mood, n := range metrics.MoodBreakdown {
		if n == 0 {
			t.Errorf("mood %s not seeded", mood)
		}
	}
	for comfort, n := range metrics.ComfortBreakdown {
		if n == 0 {
			t.Errorf("comfort %s not seeded", comfort)
		}
	}
}

func TestDemoCheckIns_StayOnToday(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
	}{
		{"just after midnight", time.Date(2024, 1, 16, 0, 3, 0, 0, time.UTC)},
		{"exactly midnight", time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)},
		{"midday", time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range demoCheckIns(tt.now) {
				if got := domain.DateOf(c.CreatedAt); got != "2024-01-16" {
					t.Errorf("check-in at %s lands on %s, want 2024-01-16", c.CreatedAt, got)
				}
				if c.CreatedAt.After(tt.now) {
					t.Errorf("check-in at %s is in the future of %s", c.CreatedAt, tt.now)
				}
			}
		})
	}
}

func TestRun(t *testing.T) {
	repo := &mockRepo{}
	if err := Run(context.Background(), repo); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(repo.created) != 12 {
		t.Errorf("created %d check-ins, want 12", len(repo.created))
	}
}

func TestRun_SkipsWhenSeeded(t *testing.T) {
	repo := &mockRepo{existing: 3}
	if err := Run(context.Background(), repo); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(repo.created) != 0 {
		t.Errorf("reseeded %d check-ins", len(repo.created))
	}
}

func TestRun_PropagatesErrors(t *testing.T) {
	repo := &mockRepo{err: errors.New("db down")}
	if err := Run(context.Background(), repo); err == nil {
		t.Fatal("Run() expected error")
	}
}
