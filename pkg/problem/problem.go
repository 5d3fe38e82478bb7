package problem

import (
	"encoding/json"
	"net/http"
)

const ContentType = "application/json"

// Problem is the JSON error body returned by every endpoint.
type Problem struct {
	Status int `json:"-"`
	// Human-readable summary
	Message string `json:"message" example:"Mood and comfort are required"`
	// Underlying cause, only for server-side failures
	Error string `json:"error,omitempty"`
	// Offending request fields
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field" example:"mood"`
	Message string `json:"message" example:"is required"`
}

// New creates a new Problem
func New(status int, message string) *Problem {
	return &Problem{
		Status:  status,
		Message: message,
	}
}

// WithErrors adds field errors to the problem
func (p *Problem) WithErrors(errors []FieldError) *Problem {
	p.Errors = errors
	return p
}

// WithCause exposes err's message in the error member.
func (p *Problem) WithCause(err error) *Problem {
	if err != nil {
		p.Error = err.Error()
	}
	return p
}

// Write writes the problem to the response
func (p *Problem) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(p.Status)
	json.NewEncoder(w).Encode(p)
}

// Common problem constructors

func NotFound(message string) *Problem {
	return New(http.StatusNotFound, message)
}

func BadRequest(message string) *Problem {
	return New(http.StatusBadRequest, message)
}

// ValidationError is a 400 listing the offending fields.
func ValidationError(message string, errors []FieldError) *Problem {
	return New(http.StatusBadRequest, message).WithErrors(errors)
}

func MethodNotAllowed(message string) *Problem {
	return New(http.StatusMethodNotAllowed, message)
}

func Conflict(message string) *Problem {
	return New(http.StatusConflict, message)
}

func ServiceUnavailable(message string, cause error) *Problem {
	return New(http.StatusServiceUnavailable, message).WithCause(cause)
}

func InternalError(message string, cause error) *Problem {
	return New(http.StatusInternalServerError, message).WithCause(cause)
}
