package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/blaisecz/comfort-census/internal/langfuse"
)

func TestPrescriptionService_Prescribe_AI(t *testing.T) {
	gen := &mockGenerator{}
	svc := NewPrescriptionService(gen, nil, PrescriptionConfig{Timeout: time.Second})

	p, err := svc.Prescribe(context.Background(), domain.MoodTired, domain.ComfortStillness)
	if err != nil {
		t.Fatalf("Prescribe() error = %v", err)
	}
	if p.Source != domain.SourceAI {
		t.Errorf("Source = %s, want ai", p.Source)
	}
	if !reflect.DeepEqual(p.Recommendation, aiRecommendation()) {
		t.Errorf("Recommendation = %+v", p.Recommendation)
	}
	if gen.Calls() != 1 {
		t.Errorf("generator calls = %d, want 1", gen.Calls())
	}
}

func TestPrescriptionService_Prescribe_FallsBackToStatic(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"malformed", domain.NewGenerationError(domain.GenerationMalformedResponse, errors.New("not json"))},
		{"invalid", domain.NewGenerationError(domain.GenerationInvalidPrescription, &domain.ValidationError{})},
		{"provider status", &domain.GenerationError{Kind: domain.GenerationProviderStatus, StatusCode: 500, Err: errors.New("boom")}},
		{"unavailable", domain.NewGenerationError(domain.GenerationUnavailable, errors.New("no key"))},
		{"unclassified", errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mockGenerator{
				generateFunc: func(ctx context.Context, mood domain.MoodState, comfort domain.ComfortType) (domain.Recommendation, error) {
					return domain.Recommendation{}, tt.err
				},
			}
			svc := NewPrescriptionService(gen, nil, PrescriptionConfig{Timeout: time.Second})

			p, err := svc.Prescribe(context.Background(), domain.MoodTired, domain.ComfortStillness)
			if err != nil {
				t.Fatalf("Prescribe() error = %v", err)
			}
			if p.Source != domain.SourceStatic {
				t.Errorf("Source = %s, want static", p.Source)
			}
			if p.Recommendation.Title != "Restorative Rest" {
				t.Errorf("Title = %q, want Restorative Rest", p.Recommendation.Title)
			}
			if len(p.Recommendation.Suggestions) != 3 || p.Recommendation.Suggestions[0] != "Try a 20-minute guided meditation for sleep" {
				t.Errorf("Suggestions = %v", p.Recommendation.Suggestions)
			}
			if p.TraceID != "" {
				t.Errorf("static prescription carries trace id %q", p.TraceID)
			}
		})
	}
}

func TestPrescriptionService_Prescribe_NilGenerator(t *testing.T) {
	svc := NewPrescriptionService(nil, nil, PrescriptionConfig{})

	p, err := svc.Prescribe(context.Background(), domain.MoodCalm, domain.ComfortWarmth)
	if err != nil {
		t.Fatalf("Prescribe() error = %v", err)
	}
	if p.Source != domain.SourceStatic || p.Recommendation.Title != "Cozy Comfort" {
		t.Errorf("unexpected prescription: %+v", p)
	}
}

func TestPrescriptionService_Prescribe_TimeoutFallsBack(t *testing.T) {
	gen := &mockGenerator{
		generateFunc: func(ctx context.Context, mood domain.MoodState, comfort domain.ComfortType) (domain.Recommendation, error) {
			<-ctx.Done()
			return domain.Recommendation{}, domain.NewGenerationError(domain.GenerationTimeout, ctx.Err())
		},
	}
	svc := NewPrescriptionService(gen, nil, PrescriptionConfig{Timeout: 20 * time.Millisecond})

	start := time.Now()
	p, err := svc.Prescribe(context.Background(), domain.MoodNeutral, domain.ComfortDistraction)
	if err != nil {
		t.Fatalf("Prescribe() error = %v", err)
	}
	if p.Source != domain.SourceStatic {
		t.Errorf("Source = %s, want static", p.Source)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Prescribe took %s, timeout not applied", elapsed)
	}
}

func TestPrescriptionService_Prescribe_Retries(t *testing.T) {
	tests := []struct {
		name       string
		maxRetries int
		firstErr   error
		wantCalls  int
		wantSource domain.PrescriptionSource
	}{
		{
			name:       "no retries configured",
			maxRetries: 0,
			firstErr:   domain.NewGenerationError(domain.GenerationTransport, errors.New("reset")),
			wantCalls:  1,
			wantSource: domain.SourceStatic,
		},
		{
			name:       "retry succeeds",
			maxRetries: 1,
			firstErr:   domain.NewGenerationError(domain.GenerationTransport, errors.New("reset")),
			wantCalls:  2,
			wantSource: domain.SourceAI,
		},
		{
			name:       "retries clamped to one",
			maxRetries: 5,
			firstErr:   &domain.GenerationError{Kind: domain.GenerationProviderStatus, StatusCode: 503, Err: errors.New("busy")},
			wantCalls:  2,
			wantSource: domain.SourceAI,
		},
		{
			name:       "client error is not retried",
			maxRetries: 1,
			firstErr:   &domain.GenerationError{Kind: domain.GenerationProviderStatus, StatusCode: 400, Err: errors.New("bad request")},
			wantCalls:  1,
			wantSource: domain.SourceStatic,
		},
		{
			name:       "unavailable is not retried",
			maxRetries: 1,
			firstErr:   domain.NewGenerationError(domain.GenerationUnavailable, errors.New("no key")),
			wantCalls:  1,
			wantSource: domain.SourceStatic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mockGenerator{}
			gen.generateFunc = func(ctx context.Context, mood domain.MoodState, comfort domain.ComfortType) (domain.Recommendation, error) {
				if gen.Calls() == 1 {
					return domain.Recommendation{}, tt.firstErr
				}
				return aiRecommendation(), nil
			}
			svc := NewPrescriptionService(gen, nil, PrescriptionConfig{Timeout: time.Second, MaxRetries: tt.maxRetries})

			p, err := svc.Prescribe(context.Background(), domain.MoodEnergized, domain.ComfortWarmth)
			if err != nil {
				t.Fatalf("Prescribe() error = %v", err)
			}
			if gen.Calls() != tt.wantCalls {
				t.Errorf("generator calls = %d, want %d", gen.Calls(), tt.wantCalls)
			}
			if p.Source != tt.wantSource {
				t.Errorf("Source = %s, want %s", p.Source, tt.wantSource)
			}
		})
	}
}

func TestPrescriptionService_Prescribe_InputErrors(t *testing.T) {
	tests := []struct {
		name      string
		mood      domain.MoodState
		comfort   domain.ComfortType
		wantField string
	}{
		{"missing mood", "", domain.ComfortWarmth, "mood"},
		{"unknown mood", "grumpy", domain.ComfortWarmth, "mood"},
		{"missing comfort", domain.MoodCalm, "", "comfort"},
		{"unknown comfort", domain.MoodCalm, "noise", "comfort"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mockGenerator{}
			svc := NewPrescriptionService(gen, nil, PrescriptionConfig{})

			_, err := svc.Prescribe(context.Background(), tt.mood, tt.comfort)
			var inputErr *domain.InputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("Prescribe() error = %v, want InputError", err)
			}
			if inputErr.Field != tt.wantField {
				t.Errorf("Field = %s, want %s", inputErr.Field, tt.wantField)
			}
			if gen.Calls() != 0 {
				t.Error("generator called for invalid input")
			}
		})
	}
}

func TestPrescriptionService_Prescribe_StaticUnavailable(t *testing.T) {
	gen := &mockGenerator{
		generateFunc: func(ctx context.Context, mood domain.MoodState, comfort domain.ComfortType) (domain.Recommendation, error) {
			return domain.Recommendation{}, domain.NewGenerationError(domain.GenerationTransport, errors.New("down"))
		},
	}
	svc := NewPrescriptionService(gen, nil, PrescriptionConfig{}).(*prescriptionService)
	svc.lookup = func(domain.MoodState, domain.ComfortType) (domain.Recommendation, error) {
		return domain.Recommendation{}, domain.ErrUnknownCombination
	}

	_, err := svc.Prescribe(context.Background(), domain.MoodCalm, domain.ComfortWarmth)
	if !domain.IsGenerationKind(err, domain.GenerationUnavailable) {
		t.Fatalf("Prescribe() error = %v, want GenerationUnavailable", err)
	}
	if !errors.Is(err, domain.ErrUnknownCombination) {
		t.Errorf("error does not carry the lookup failure: %v", err)
	}
}

func TestPrescriptionService_RecordFeedback(t *testing.T) {
	var got langfuse.ScoreInput
	lf := &mockLangfuse{
		enabled: true,
		createScoreFunc: func(ctx context.Context, in langfuse.ScoreInput) error {
			got = in
			return nil
		},
	}
	svc := NewPrescriptionService(nil, lf, PrescriptionConfig{})

	err := svc.RecordFeedback(context.Background(), &domain.FeedbackRequest{TraceID: "abc", Score: 4, Comment: "nice"})
	if err != nil {
		t.Fatalf("RecordFeedback() error = %v", err)
	}
	if got.TraceID != "abc" || got.Name != langfuse.ScoreUserRating || got.Value != 4 || got.Comment != "nice" {
		t.Errorf("score = %+v", got)
	}
}

func TestPrescriptionService_RecordFeedback_Disabled(t *testing.T) {
	called := false
	lf := &mockLangfuse{
		createScoreFunc: func(ctx context.Context, in langfuse.ScoreInput) error {
			called = true
			return nil
		},
	}
	svc := NewPrescriptionService(nil, lf, PrescriptionConfig{})

	if err := svc.RecordFeedback(context.Background(), &domain.FeedbackRequest{TraceID: "abc", Score: 1}); err != nil {
		t.Fatalf("RecordFeedback() error = %v", err)
	}
	if called {
		t.Error("score sent while langfuse disabled")
	}
}

func TestPrescriptionService_RecordFeedback_Error(t *testing.T) {
	lf := &mockLangfuse{
		enabled: true,
		createScoreFunc: func(ctx context.Context, in langfuse.ScoreInput) error {
			return errors.New("trace id is required")
		},
	}
	svc := NewPrescriptionService(nil, lf, PrescriptionConfig{})

	if err := svc.RecordFeedback(context.Background(), &domain.FeedbackRequest{Score: 3}); err == nil {
		t.Fatal("RecordFeedback() expected error")
	}
}
