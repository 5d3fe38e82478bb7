package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/blaisecz/comfort-census/internal/langfuse"
	"github.com/blaisecz/comfort-census/internal/prescription"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Provider performs one schema-constrained generation and returns the raw
// structured-output text. Implementations classify their own failures as
// *domain.GenerationError where they can.
type Provider interface {
	Name() string
	GenerateJSON(ctx context.Context, req Request) (string, error)
}

// PrescriptionGenerator produces AI prescriptions.
type PrescriptionGenerator interface {
	// Generate returns a schema-valid Recommendation or a *domain.GenerationError.
	Generate(ctx context.Context, mood domain.MoodState, comfort domain.ComfortType) (domain.Recommendation, error)
}

// Generator implements PrescriptionGenerator on top of a Provider. It keeps no
// state between calls and performs no retries.
type Generator struct {
	provider       Provider
	schema         *prescription.Schema
	systemTemplate string
	suggestions    int
	langfuse       langfuse.Client
	tracer         trace.Tracer
}

// Option configures a Generator.
type Option func(*Generator)

// WithSystemTemplate overrides DefaultSystemTemplate. Templates missing a
// placeholder are ignored.
func WithSystemTemplate(tmpl string) Option {
	return func(g *Generator) {
		if ValidTemplate(tmpl) {
			g.systemTemplate = tmpl
		} else if tmpl != "" {
			log.Warn().Msg("[llm] system template lacks {{mood}}/{{comfort}} placeholders, using built-in")
		}
	}
}

// WithLangfuse records one Langfuse trace per generation.
func WithLangfuse(c langfuse.Client) Option {
	return func(g *Generator) {
		g.langfuse = c
	}
}

// WithSuggestionCount sets how many suggestions the prompt and schema ask for.
func WithSuggestionCount(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.suggestions = n
		}
	}
}

// NewGenerator creates a Generator. A nil provider yields a generator that
// always fails with GenerationUnavailable.
func NewGenerator(provider Provider, schema *prescription.Schema, opts ...Option) *Generator {
	if schema == nil {
		schema = prescription.DefaultSchema()
	}
	g := &Generator{
		provider:       provider,
		schema:         schema,
		systemTemplate: DefaultSystemTemplate,
		suggestions:    prescription.DefaultSuggestionCount,
		tracer:         otel.Tracer("comfort-census/llm"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Generate(ctx context.Context, mood domain.MoodState, comfort domain.ComfortType) (domain.Recommendation, error) {
	if g == nil || isNilProvider(g.provider) {
		return domain.Recommendation{}, domain.NewGenerationError(domain.GenerationUnavailable, errors.New("no AI provider configured"))
	}

	ctx, span := g.tracer.Start(ctx, "prescription.generate", trace.WithAttributes(
		attribute.String("prescription.mood", string(mood)),
		attribute.String("prescription.comfort", string(comfort)),
		attribute.String("llm.provider", g.provider.Name()),
	))
	defer span.End()

	req := BuildRequest(g.systemTemplate, mood, comfort, g.suggestions)

	rec, err := g.generate(ctx, req)
	if err != nil {
		var genErr *domain.GenerationError
		if errors.As(err, &genErr) {
			span.SetAttributes(attribute.String("prescription.error_kind", string(genErr.Kind)))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
	}

	g.recordTrace(ctx, span, mood, comfort, rec, err)

	return rec, err
}

func (g *Generator) generate(ctx context.Context, req Request) (domain.Recommendation, error) {
	text, err := g.provider.GenerateJSON(ctx, req)
	if err != nil {
		return domain.Recommendation{}, classify(ctx, err)
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &members); err != nil {
		return domain.Recommendation{}, domain.NewGenerationError(domain.GenerationMalformedResponse, fmt.Errorf("response is not a JSON object: %w", err))
	}

	rec, err := g.schema.ValidateJSON([]byte(text))
	if err != nil {
		return domain.Recommendation{}, domain.NewGenerationError(domain.GenerationInvalidPrescription, err)
	}
	return rec, nil
}

// classify maps provider errors onto the generation taxonomy, treating
// deadline expiry as a timeout regardless of where it surfaced.
func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.NewGenerationError(domain.GenerationTimeout, err)
	}
	var genErr *domain.GenerationError
	if errors.As(err, &genErr) {
		return genErr
	}
	return domain.NewGenerationError(domain.GenerationTransport, err)
}

func (g *Generator) recordTrace(ctx context.Context, span trace.Span, mood domain.MoodState, comfort domain.ComfortType, rec domain.Recommendation, err error) {
	if g.langfuse == nil || !g.langfuse.IsEnabled() {
		return
	}

	in := langfuse.TraceInput{
		Name:      langfuse.TracePrescription,
		Input:     map[string]any{"mood": mood, "comfort": comfort},
		Tags:      []string{g.provider.Name()},
		SessionID: langfuse.SessionFromContext(ctx),
	}
	if sc := span.SpanContext(); sc.IsValid() {
		in.ID = sc.TraceID().String()
	}
	if err != nil {
		in.Metadata = map[string]any{"error": err.Error()}
	} else {
		in.Output = rec
	}

	if _, traceErr := g.langfuse.CreateTrace(ctx, in); traceErr != nil {
		log.Warn().Err(traceErr).Msg("[llm] failed to record langfuse trace")
	}
}

func isNilProvider(p Provider) bool {
	switch v := p.(type) {
	case nil:
		return true
	case *GeminiProvider:
		return v == nil
	case *OpenAIProvider:
		return v == nil
	}
	return false
}
