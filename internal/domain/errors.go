package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnknownCombination   = errors.New("no recommendation for mood and comfort")
	ErrInvalidTransition    = errors.New("transition not allowed from current step")
	ErrSubmissionInProgress = errors.New("submission already in progress")
)

// Violation describes one field that failed schema validation.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError means a candidate prescription does not match the schema.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+" "+v.Message)
	}
	return "invalid prescription: " + strings.Join(parts, "; ")
}

// Fields returns the names of the offending fields in order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

// GenerationErrorKind classifies AI generation failures.
type GenerationErrorKind string

const (
	GenerationUnavailable         GenerationErrorKind = "unavailable"
	GenerationTransport           GenerationErrorKind = "transport"
	GenerationProviderStatus      GenerationErrorKind = "provider_status"
	GenerationMalformedResponse   GenerationErrorKind = "malformed_response"
	GenerationInvalidPrescription GenerationErrorKind = "invalid_prescription"
	GenerationTimeout             GenerationErrorKind = "timeout"
)

// GenerationError is returned when the AI path cannot produce a valid Recommendation.
type GenerationError struct {
	Kind GenerationErrorKind
	// StatusCode is set for GenerationProviderStatus.
	StatusCode int
	Err        error
}

func (e *GenerationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generation failed (%s, status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("generation failed (%s): %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError wraps err with kind.
func NewGenerationError(kind GenerationErrorKind, err error) *GenerationError {
	return &GenerationError{Kind: kind, Err: err}
}

// IsGenerationKind reports whether err is a GenerationError of the given kind.
func IsGenerationKind(err error, kind GenerationErrorKind) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr) && genErr.Kind == kind
}

// PersistenceError means a check-in could not be saved.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// InputError means required mood/comfort input is missing or unknown.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return e.Field + " " + e.Reason
}
