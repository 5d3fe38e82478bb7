package service

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/blaisecz/comfort-census/internal/repository"
	"github.com/blaisecz/comfort-census/pkg/pagination"
	"github.com/google/uuid"
)

type CheckInService interface {
	// Record persists one completed check-in. Store failures are returned as
	// *domain.PersistenceError.
	Record(ctx context.Context, sessionID string, mood domain.MoodState, comfort domain.ComfortType) (*domain.CheckIn, error)
	TodayMetrics(ctx context.Context) (*domain.DailyMetrics, error)
	MetricsFor(ctx context.Context, date string) (*domain.DailyMetrics, error)
	HasVisited(ctx context.Context, sessionID string) (bool, error)
	History(ctx context.Context, sessionID string, filter domain.CheckInFilter) (*domain.CheckInListResponse, error)
}

type checkInService struct {
	repo repository.CheckInRepository
	now  func() time.Time
}

func NewCheckInService(repo repository.CheckInRepository) CheckInService {
	return &checkInService{repo: repo, now: time.Now}
}

func (s *checkInService) Record(ctx context.Context, sessionID string, mood domain.MoodState, comfort domain.ComfortType) (*domain.CheckIn, error) {
	if sessionID == "" {
		return nil, &domain.InputError{Field: "session_id", Reason: "is required"}
	}
	if err := checkSelection(mood, comfort); err != nil {
		return nil, err
	}

	checkIn := &domain.CheckIn{
		ID:          uuid.New(),
		SessionID:   sessionID,
		MoodState:   mood,
		ComfortType: comfort,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, checkIn); err != nil {
		return nil, &domain.PersistenceError{Op: "record check-in", Err: err}
	}
	return checkIn, nil
}

func (s *checkInService) TodayMetrics(ctx context.Context) (*domain.DailyMetrics, error) {
	return s.MetricsFor(ctx, domain.DateOf(s.now()))
}

// MetricsFor returns the counters for date, zeroed when nobody checked in that day.
func (s *checkInService) MetricsFor(ctx context.Context, date string) (*domain.DailyMetrics, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, &domain.InputError{Field: "date", Reason: "must be formatted as YYYY-MM-DD"}
	}

	metrics, err := s.repo.GetDailyMetrics(ctx, date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			empty := domain.NewDailyMetrics(date)
			empty.ID = uuid.Nil
			return empty, nil
		}
		return nil, err
	}
	return metrics, nil
}

func (s *checkInService) HasVisited(ctx context.Context, sessionID string) (bool, error) {
	count, err := s.repo.CountBySession(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *checkInService) History(ctx context.Context, sessionID string, filter domain.CheckInFilter) (*domain.CheckInListResponse, error) {
	checkIns, err := s.repo.ListBySession(ctx, sessionID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(checkIns) > limit

	// Trim to actual limit
	if hasMore {
		checkIns = checkIns[:limit]
	}

	response := &domain.CheckInListResponse{
		Data: checkIns,
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	if response.Data == nil {
		response.Data = []domain.CheckIn{}
	}

	if hasMore && len(checkIns) > 0 {
		last := checkIns[len(checkIns)-1]
		response.Pagination.NextCursor = pagination.After(last.ID, last.CreatedAt).Encode()
	}

	return response, nil
}
