package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/blaisecz/comfort-census/internal/langfuse"
	"github.com/blaisecz/comfort-census/internal/llm"
	"github.com/blaisecz/comfort-census/internal/prescription"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultAITimeout = 8 * time.Second
	// MaxRetries bounds how often a failed generation is retried.
	MaxRetries = 1
)

// PrescriptionService acquires a comfort prescription, preferring the AI path.
type PrescriptionService interface {
	// Prescribe returns an AI prescription, or the static one when generation
	// fails for any reason. It only errors for invalid input or when the static
	// table cannot serve the pair either.
	Prescribe(ctx context.Context, mood domain.MoodState, comfort domain.ComfortType) (*domain.Prescription, error)
	// RecordFeedback attaches a user rating to a generated prescription.
	RecordFeedback(ctx context.Context, req *domain.FeedbackRequest) error
}

type PrescriptionConfig struct {
	// Timeout applies to each generation attempt.
	Timeout    time.Duration
	MaxRetries int
}

type prescriptionService struct {
	generator llm.PrescriptionGenerator
	langfuse  langfuse.Client
	cfg       PrescriptionConfig
	lookup    func(domain.MoodState, domain.ComfortType) (domain.Recommendation, error)
	tracer    trace.Tracer
}

// NewPrescriptionService creates a PrescriptionService. generator and lf may be nil.
func NewPrescriptionService(generator llm.PrescriptionGenerator, lf langfuse.Client, cfg PrescriptionConfig) PrescriptionService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultAITimeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.MaxRetries > MaxRetries {
		cfg.MaxRetries = MaxRetries
	}
	return &prescriptionService{
		generator: generator,
		langfuse:  lf,
		cfg:       cfg,
		lookup:    prescription.Lookup,
		tracer:    otel.Tracer("comfort-census/service"),
	}
}

func (s *prescriptionService) Prescribe(ctx context.Context, mood domain.MoodState, comfort domain.ComfortType) (*domain.Prescription, error) {
	if err := checkSelection(mood, comfort); err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "prescription.prescribe", trace.WithAttributes(
		attribute.String("prescription.mood", string(mood)),
		attribute.String("prescription.comfort", string(comfort)),
	))
	defer span.End()

	rec, genErr := s.generate(ctx, mood, comfort)
	if genErr == nil {
		span.SetAttributes(attribute.String("prescription.source", string(domain.SourceAI)))
		p := &domain.Prescription{Recommendation: rec, Source: domain.SourceAI}
		if sc := span.SpanContext(); sc.IsValid() {
			p.TraceID = sc.TraceID().String()
		}
		return p, nil
	}

	var kind domain.GenerationErrorKind
	var ge *domain.GenerationError
	if errors.As(genErr, &ge) {
		kind = ge.Kind
	}
	log.Warn().
		Err(genErr).
		Str("mood", string(mood)).
		Str("comfort", string(comfort)).
		Str("kind", string(kind)).
		Msg("[prescription] AI generation failed, serving static prescription")

	static, err := s.lookup(mood, comfort)
	if err != nil {
		return nil, &domain.GenerationError{
			Kind: domain.GenerationUnavailable,
			Err:  errors.Join(genErr, err),
		}
	}

	span.SetAttributes(attribute.String("prescription.source", string(domain.SourceStatic)))
	return &domain.Prescription{Recommendation: static, Source: domain.SourceStatic}, nil
}

// generate runs up to 1+MaxRetries attempts, each under its own timeout.
func (s *prescriptionService) generate(ctx context.Context, mood domain.MoodState, comfort domain.ComfortType) (domain.Recommendation, error) {
	if s.generator == nil {
		return domain.Recommendation{}, domain.NewGenerationError(domain.GenerationUnavailable, errors.New("no generator configured"))
	}

	var lastErr error
	for attempt := 0; attempt <= s.cfg.MaxRetries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
		rec, err := s.generator.Generate(attemptCtx, mood, comfort)
		cancel()
		if err == nil {
			return rec, nil
		}
		lastErr = err

		if ctx.Err() != nil || !retryable(err) {
			break
		}
		log.Debug().Err(err).Int("attempt", attempt+1).Msg("[prescription] retrying generation")
	}
	return domain.Recommendation{}, lastErr
}

// retryable reports whether another attempt could plausibly succeed.
func retryable(err error) bool {
	var ge *domain.GenerationError
	if !errors.As(err, &ge) {
		return true
	}
	switch ge.Kind {
	case domain.GenerationUnavailable:
		return false
	case domain.GenerationProviderStatus:
		return ge.StatusCode == http.StatusTooManyRequests || ge.StatusCode >= 500
	}
	return true
}

func (s *prescriptionService) RecordFeedback(ctx context.Context, req *domain.FeedbackRequest) error {
	if s.langfuse == nil || !s.langfuse.IsEnabled() {
		log.Debug().Str("trace_id", req.TraceID).Msg("[prescription] feedback dropped, langfuse disabled")
		return nil
	}

	err := s.langfuse.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    langfuse.ScoreUserRating,
		Value:   float64(req.Score),
		Comment: req.Comment,
	})
	if err != nil {
		return fmt.Errorf("record feedback: %w", err)
	}
	return nil
}
