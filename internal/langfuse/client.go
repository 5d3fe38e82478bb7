// Package langfuse provides a lightweight HTTP client for Langfuse tracing.
// It uses the Langfuse HTTP ingestion API to record prescription generations
// and feedback scores. If not configured, the client operates as a no-op.
package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// asyncTimeout is the maximum time to wait for async Langfuse API calls.
const asyncTimeout = 5 * time.Second

const (
	// TracePrescription names traces for AI prescription generations.
	TracePrescription = "comfort-prescription"
	// ScoreUserRating names feedback scores submitted by users.
	ScoreUserRating = "user_rating"
)

// Client is the interface for Langfuse operations.
type Client interface {
	// IsEnabled returns true if Langfuse is configured and enabled.
	IsEnabled() bool
	// CreateTrace creates a new trace and returns its ID.
	CreateTrace(ctx context.Context, in TraceInput) (string, error)
	// CreateScore attaches a score to an existing trace.
	CreateScore(ctx context.Context, in ScoreInput) error
}

// TraceInput contains the data for creating a trace.
type TraceInput struct {
	ID        string // Optional: override trace ID (generates UUID if empty)
	SessionID string // Check-in session, groups traces in the Langfuse UI
	Name      string
	Input     any
	Output    any
	Tags      []string
	Metadata  map[string]any
}

// ScoreInput contains the data for creating a score.
type ScoreInput struct {
	TraceID string
	Name    string
	Value   float64
	Comment string
}

// Config holds Langfuse client configuration.
type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string
}

// Enabled reports whether cfg carries everything needed to talk to Langfuse.
func (cfg Config) Enabled() bool {
	return cfg.BaseURL != "" && cfg.PublicKey != "" && cfg.SecretKey != ""
}

type client struct {
	cfg        Config
	httpClient *http.Client
	// send is swapped out in tests to observe delivery synchronously.
	send func(event ingestionEvent, kind string)
}

// NewClient creates a new Langfuse client.
// If baseURL or keys are empty, returns a disabled no-op client.
func NewClient(cfg Config) Client {
	switch {
	case cfg.Enabled():
		log.Info().Str("base_url", cfg.BaseURL).Str("env", cfg.Environment).Msg("[langfuse] enabled")
	case cfg.BaseURL == "":
		log.Info().Msg("[langfuse] disabled: LANGFUSE_BASE_URL is empty")
	case cfg.PublicKey == "":
		log.Info().Msg("[langfuse] disabled: LANGFUSE_PUBLIC_KEY is empty")
	default:
		log.Info().Msg("[langfuse] disabled: LANGFUSE_SECRET_KEY is empty")
	}

	c := &client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	c.send = func(event ingestionEvent, kind string) {
		go c.sendAsync(event, kind)
	}
	return c
}

func (c *client) IsEnabled() bool {
	return c.cfg.Enabled()
}

func (c *client) CreateTrace(ctx context.Context, in TraceInput) (string, error) {
	if !c.IsEnabled() {
		return "", nil
	}

	traceID := in.ID
	if traceID == "" {
		traceID = uuid.New().String()
	}

	// The caller's map is never written to.
	metadata := in.Metadata
	if c.cfg.Environment != "" {
		metadata = make(map[string]any, len(in.Metadata)+1)
		maps.Copy(metadata, in.Metadata)
		metadata["environment"] = c.cfg.Environment
	}

	c.send(newEvent("trace-create", traceBody{
		ID:        traceID,
		Name:      in.Name,
		SessionID: in.SessionID,
		Input:     in.Input,
		Output:    in.Output,
		Tags:      in.Tags,
		Metadata:  metadata,
	}), "trace")

	return traceID, nil
}

func (c *client) CreateScore(ctx context.Context, in ScoreInput) error {
	if !c.IsEnabled() {
		return nil
	}
	if in.TraceID == "" {
		return fmt.Errorf("score %q: trace id is required", in.Name)
	}

	c.send(newEvent("score-create", scoreBody{
		ID:      uuid.New().String(),
		TraceID: in.TraceID,
		Name:    in.Name,
		Value:   in.Value,
		Comment: in.Comment,
	}), "score")

	return nil
}

// sendAsync delivers an event off the request path. Errors are logged only.
func (c *client) sendAsync(event ingestionEvent, kind string) {
	ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
	defer cancel()

	if err := c.sendBatch(ctx, []ingestionEvent{event}); err != nil {
		log.Warn().Err(err).Str("kind", kind).Msg("[langfuse] async send failed")
	}
}

func (c *client) sendBatch(ctx context.Context, events []ingestionEvent) error {
	body, err := json.Marshal(batchPayload{Batch: events})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/public/ingestion", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.PublicKey, c.cfg.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("ingestion failed with status %d", resp.StatusCode)
	}
	return nil
}

func newEvent(kind string, body any) ingestionEvent {
	return ingestionEvent{
		ID:        uuid.New().String(),
		Type:      kind,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body:      body,
	}
}

type batchPayload struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

type traceBody struct {
	ID        string         `json:"id"`
	Name      string         `json:"name,omitempty"`
	SessionID string         `json:"sessionId,omitempty"`
	Input     any            `json:"input,omitempty"`
	Output    any            `json:"output,omitempty"`
	Tags      []string       `json:"tags,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type scoreBody struct {
	ID      string  `json:"id"`
	TraceID string  `json:"traceId"`
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Comment string  `json:"comment,omitempty"`
}
