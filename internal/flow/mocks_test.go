package flow

import (
	"context"
	"sync/atomic"

	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/blaisecz/comfort-census/internal/prescription"
)

type mockPrescriber struct {
	calls         atomic.Int32
	prescribeFunc func(ctx context.Context, mood domain.MoodState, comfort domain.ComfortType) (*domain.Prescription, error)
}

func (m *mockPrescriber) Prescribe(ctx context.Context, mood domain.MoodState, comfort domain.ComfortType) (*domain.Prescription, error) {
	m.calls.Add(1)
	if m.prescribeFunc != nil {
		return m.prescribeFunc(ctx, mood, comfort)
	}
	rec, err := prescription.Lookup(mood, comfort)
	if err != nil {
		return nil, err
	}
	return &domain.Prescription{Recommendation: rec, Source: domain.SourceStatic}, nil
}

type mockRecorder struct {
	calls      atomic.Int32
	recordFunc func(ctx context.Context, sessionID string, mood domain.MoodState, comfort domain.ComfortType) (*domain.CheckIn, error)
}

func (m *mockRecorder) Record(ctx context.Context, sessionID string, mood domain.MoodState, comfort domain.ComfortType) (*domain.CheckIn, error) {
	m.calls.Add(1)
	if m.recordFunc != nil {
		return m.recordFunc(ctx, sessionID, mood, comfort)
	}
	return &domain.CheckIn{SessionID: sessionID, MoodState: mood, ComfortType: comfort}, nil
}
