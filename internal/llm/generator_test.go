package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/blaisecz/comfort-census/internal/prescription"
)

func TestGenerate_ValidOutput(t *testing.T) {
	provider := &fakeProvider{text: validPrescriptionJSON}
	g := NewGenerator(provider, prescription.DefaultSchema())

	rec, err := g.Generate(context.Background(), domain.MoodTired, domain.ComfortStillness)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if rec.Title != "Blanket Fort Retreat" || len(rec.Suggestions) != 3 {
		t.Errorf("unexpected recommendation: %+v", rec)
	}
	if err := prescription.DefaultSchema().Check(rec); err != nil {
		t.Errorf("generated recommendation fails schema: %v", err)
	}
}

func TestGenerate_PromptCarriesSelection(t *testing.T) {
	provider := &fakeProvider{text: validPrescriptionJSON}
	g := NewGenerator(provider, nil)

	if _, err := g.Generate(context.Background(), domain.MoodCalm, domain.ComfortWarmth); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	req := provider.last
	if !strings.Contains(req.SystemInstruction, "mood (calm)") || !strings.Contains(req.SystemInstruction, "comfort need (warmth)") {
		t.Errorf("system instruction missing selection: %q", req.SystemInstruction)
	}
	if !strings.Contains(req.Prompt, "three distinct suggestions") || !strings.Contains(req.Prompt, "ONLY the JSON object") {
		t.Errorf("task prompt missing contract: %q", req.Prompt)
	}
	if req.Schema == nil || len(req.Schema.Required) != 5 {
		t.Fatalf("schema missing required fields: %+v", req.Schema)
	}
	if req.Schema.Properties["suggestions"].Items.Type != TypeString {
		t.Errorf("suggestions must be an array of strings")
	}
}

func TestGenerate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
		wantKind domain.GenerationErrorKind
	}{
		{
			name:     "not json",
			provider: &fakeProvider{text: "not json"},
			wantKind: domain.GenerationMalformedResponse,
		},
		{
			name:     "json array instead of object",
			provider: &fakeProvider{text: `["a","b"]`},
			wantKind: domain.GenerationMalformedResponse,
		},
		{
			name:     "empty output",
			provider: &fakeProvider{text: ""},
			wantKind: domain.GenerationMalformedResponse,
		},
		{
			name:     "missing link_url",
			provider: &fakeProvider{text: `{"title":"t","description":"d","suggestions":["a","b","c"],"link_text":"l"}`},
			wantKind: domain.GenerationInvalidPrescription,
		},
		{
			name:     "two suggestions",
			provider: &fakeProvider{text: `{"title":"t","description":"d","suggestions":["a","b"],"link_text":"l","link_url":"/u"}`},
			wantKind: domain.GenerationInvalidPrescription,
		},
		{
			name:     "unclassified provider error",
			provider: &fakeProvider{err: errors.New("connection reset")},
			wantKind: domain.GenerationTransport,
		},
		{
			name: "provider status error passes through",
			provider: &fakeProvider{err: &domain.GenerationError{
				Kind: domain.GenerationProviderStatus, StatusCode: 503, Err: errors.New("overloaded"),
			}},
			wantKind: domain.GenerationProviderStatus,
		},
		{
			name:     "deadline exceeded",
			provider: &fakeProvider{err: context.DeadlineExceeded},
			wantKind: domain.GenerationTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(tt.provider, nil)

			_, err := g.Generate(context.Background(), domain.MoodNeutral, domain.ComfortDistraction)
			var genErr *domain.GenerationError
			if !errors.As(err, &genErr) {
				t.Fatalf("Generate() error = %v, want *GenerationError", err)
			}
			if genErr.Kind != tt.wantKind {
				t.Errorf("kind = %s, want %s", genErr.Kind, tt.wantKind)
			}
		})
	}
}

func TestGenerate_InvalidPrescriptionWrapsValidationError(t *testing.T) {
	g := NewGenerator(&fakeProvider{text: `{"description":"d","suggestions":["a","b","c"],"link_text":"l","link_url":"/u"}`}, nil)

	_, err := g.Generate(context.Background(), domain.MoodCalm, domain.ComfortStillness)
	var valErr *domain.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected wrapped ValidationError, got %v", err)
	}
	if fields := valErr.Fields(); len(fields) != 1 || fields[0] != "title" {
		t.Errorf("fields = %v, want [title]", fields)
	}
}

func TestGenerate_ContextTimeout(t *testing.T) {
	provider := &fakeProvider{generateFunc: func(ctx context.Context, req Request) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}}
	g := NewGenerator(provider, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := g.Generate(ctx, domain.MoodTired, domain.ComfortWarmth)
	if !domain.IsGenerationKind(err, domain.GenerationTimeout) {
		t.Errorf("Generate() error = %v, want timeout", err)
	}
}

func TestGenerate_NilProvider(t *testing.T) {
	var provider *GeminiProvider // NewGeminiProvider returns nil without a key
	g := NewGenerator(provider, nil)

	_, err := g.Generate(context.Background(), domain.MoodTired, domain.ComfortWarmth)
	if !domain.IsGenerationKind(err, domain.GenerationUnavailable) {
		t.Errorf("Generate() error = %v, want unavailable", err)
	}
}

func TestGenerate_IsStateless(t *testing.T) {
	provider := &fakeProvider{text: validPrescriptionJSON}
	g := NewGenerator(provider, nil)

	_, _ = g.Generate(context.Background(), domain.MoodEnergized, domain.ComfortWarmth)
	first := provider.last
	_, _ = g.Generate(context.Background(), domain.MoodTired, domain.ComfortStillness)
	second := provider.last

	if strings.Contains(second.SystemInstruction, "energized") {
		t.Error("second request leaked the first selection")
	}
	if first.Prompt != second.Prompt {
		t.Error("task prompt should not depend on prior calls")
	}
}

func TestWithSystemTemplate(t *testing.T) {
	provider := &fakeProvider{text: validPrescriptionJSON}

	g := NewGenerator(provider, nil, WithSystemTemplate("Custom persona for {{mood}} / {{comfort}}."))
	_, _ = g.Generate(context.Background(), domain.MoodCalm, domain.ComfortDistraction)
	if provider.last.SystemInstruction != "Custom persona for calm / distraction." {
		t.Errorf("system instruction = %q", provider.last.SystemInstruction)
	}

	g = NewGenerator(provider, nil, WithSystemTemplate("No placeholders here"))
	_, _ = g.Generate(context.Background(), domain.MoodCalm, domain.ComfortDistraction)
	if !strings.HasPrefix(provider.last.SystemInstruction, "You are the Teddy Bear Sanctuary") {
		t.Errorf("invalid template should fall back to built-in, got %q", provider.last.SystemInstruction)
	}
}
