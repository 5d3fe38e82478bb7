package handler

import (
	"context"
	"time"

	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/blaisecz/comfort-census/internal/prescription"
	"github.com/google/uuid"
)

// MockPrescriptionService is a mock implementation of PrescriptionService
type MockPrescriptionService struct {
	prescribeFunc      func(ctx context.Context, mood domain.MoodState, comfort domain.ComfortType) (*domain.Prescription, error)
	recordFeedbackFunc func(ctx context.Context, req *domain.FeedbackRequest) error
}

func (m *MockPrescriptionService) Prescribe(ctx context.Context, mood domain.MoodState, comfort domain.ComfortType) (*domain.Prescription, error) {
	if m.prescribeFunc != nil {
		return m.prescribeFunc(ctx, mood, comfort)
	}
	rec, err := prescription.Lookup(mood, comfort)
	if err != nil {
		return nil, err
	}
	return &domain.Prescription{Recommendation: rec, Source: domain.SourceStatic}, nil
}

func (m *MockPrescriptionService) RecordFeedback(ctx context.Context, req *domain.FeedbackRequest) error {
	if m.recordFeedbackFunc != nil {
		return m.recordFeedbackFunc(ctx, req)
	}
	return nil
}

// MockCheckInService is a mock implementation of CheckInService
type MockCheckInService struct {
	recordFunc       func(ctx context.Context, sessionID string, mood domain.MoodState, comfort domain.ComfortType) (*domain.CheckIn, error)
	todayMetricsFunc func(ctx context.Context) (*domain.DailyMetrics, error)
	metricsForFunc   func(ctx context.Context, date string) (*domain.DailyMetrics, error)
	hasVisitedFunc   func(ctx context.Context, sessionID string) (bool, error)
	historyFunc      func(ctx context.Context, sessionID string, filter domain.CheckInFilter) (*domain.CheckInListResponse, error)
}

func (m *MockCheckInService) Record(ctx context.Context, sessionID string, mood domain.MoodState, comfort domain.ComfortType) (*domain.CheckIn, error) {
	if m.recordFunc != nil {
		return m.recordFunc(ctx, sessionID, mood, comfort)
	}
	return &domain.CheckIn{
		ID:          uuid.New(),
		SessionID:   sessionID,
		MoodState:   mood,
		ComfortType: comfort,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func (m *MockCheckInService) TodayMetrics(ctx context.Context) (*domain.DailyMetrics, error) {
	if m.todayMetricsFunc != nil {
		return m.todayMetricsFunc(ctx)
	}
	return domain.NewDailyMetrics(domain.DateOf(time.Now())), nil
}

func (m *MockCheckInService) MetricsFor(ctx context.Context, date string) (*domain.DailyMetrics, error) {
	if m.metricsForFunc != nil {
		return m.metricsForFunc(ctx, date)
	}
	return domain.NewDailyMetrics(date), nil
}

func (m *MockCheckInService) HasVisited(ctx context.Context, sessionID string) (bool, error) {
	if m.hasVisitedFunc != nil {
		return m.hasVisitedFunc(ctx, sessionID)
	}
	return false, nil
}

func (m *MockCheckInService) History(ctx context.Context, sessionID string, filter domain.CheckInFilter) (*domain.CheckInListResponse, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, sessionID, filter)
	}
	return &domain.CheckInListResponse{
		Data:       []domain.CheckIn{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}
