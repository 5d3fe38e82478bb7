package prescription

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/go-playground/validator/v10"
)

// DefaultSuggestionCount keeps AI output in parity with the static table.
const DefaultSuggestionCount = 3

// Candidate is an untrusted prescription as decoded from JSON. Pointer fields
// let the schema tell a missing field from an empty one. Unknown JSON members
// are ignored.
type Candidate struct {
	Title       *string  `json:"title" validate:"required,min=1"`
	Description *string  `json:"description" validate:"required,min=1"`
	Suggestions []string `json:"suggestions" validate:"required,dive,required"`
	LinkText    *string  `json:"link_text" validate:"required,min=1"`
	LinkURL     *string  `json:"link_url" validate:"required,min=1"`
}

// Schema enforces the prescription contract.
type Schema struct {
	validate       *validator.Validate
	minSuggestions int
	maxSuggestions int
}

// NewSchema creates a Schema accepting between minSuggestions and
// maxSuggestions suggestions. minSuggestions is raised to 1 and
// maxSuggestions to minSuggestions when out of range.
func NewSchema(minSuggestions, maxSuggestions int) *Schema {
	if minSuggestions < 1 {
		minSuggestions = 1
	}
	if maxSuggestions < minSuggestions {
		maxSuggestions = minSuggestions
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Schema{
		validate:       v,
		minSuggestions: minSuggestions,
		maxSuggestions: maxSuggestions,
	}
}

// DefaultSchema requires exactly DefaultSuggestionCount suggestions.
func DefaultSchema() *Schema {
	return NewSchema(DefaultSuggestionCount, DefaultSuggestionCount)
}

// Validate checks c and converts it into a Recommendation.
func (s *Schema) Validate(c Candidate) (domain.Recommendation, error) {
	var violations []domain.Violation

	if err := s.validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return domain.Recommendation{}, err
		}
		for _, fe := range fieldErrs {
			violations = append(violations, domain.Violation{
				Field:   fe.Field(),
				Message: violationMessage(fe),
			})
		}
	}

	if c.Suggestions != nil {
		rule := fmt.Sprintf("min=%d,max=%d", s.minSuggestions, s.maxSuggestions)
		if err := s.validate.Var(c.Suggestions, rule); err != nil {
			violations = append(violations, domain.Violation{
				Field:   "suggestions",
				Message: s.countMessage(),
			})
		}
	}

	if len(violations) > 0 {
		return domain.Recommendation{}, &domain.ValidationError{Violations: violations}
	}

	return domain.Recommendation{
		Title:       *c.Title,
		Description: *c.Description,
		Suggestions: append([]string(nil), c.Suggestions...),
		LinkText:    *c.LinkText,
		LinkURL:     *c.LinkURL,
	}, nil
}

// ValidateJSON decodes data as a Candidate and validates it. A member with the
// wrong JSON type is reported as a violation of that field, alongside every
// other violation of the partly decoded candidate.
func (s *Schema) ValidateJSON(data []byte) (domain.Recommendation, error) {
	var c Candidate
	err := json.Unmarshal(data, &c)
	if err == nil {
		return s.Validate(c)
	}

	// Unmarshal keeps decoding the remaining members after a type error.
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return domain.Recommendation{}, err
	}
	field := typeErr.Field
	if field == "" {
		field = "prescription"
	}
	violations := []domain.Violation{{
		Field:   field,
		Message: "must be a " + expectedType(field),
	}}

	_, err = s.Validate(c)
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		for _, v := range valErr.Violations {
			if v.Field == field || strings.HasPrefix(v.Field, field+"[") {
				continue
			}
			violations = append(violations, v)
		}
	}
	return domain.Recommendation{}, &domain.ValidationError{Violations: violations}
}

// Check validates an already typed Recommendation.
func (s *Schema) Check(r domain.Recommendation) error {
	_, err := s.Validate(CandidateFrom(r))
	return err
}

// CandidateFrom lifts r into a Candidate. Nil suggestions stay nil.
func CandidateFrom(r domain.Recommendation) Candidate {
	return Candidate{
		Title:       &r.Title,
		Description: &r.Description,
		Suggestions: r.Suggestions,
		LinkText:    &r.LinkText,
		LinkURL:     &r.LinkURL,
	}
}

func (s *Schema) countMessage() string {
	if s.minSuggestions == s.maxSuggestions {
		return fmt.Sprintf("must contain exactly %d items", s.minSuggestions)
	}
	return fmt.Sprintf("must contain between %d and %d items", s.minSuggestions, s.maxSuggestions)
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if strings.Contains(fe.Field(), "[") {
			return "must not be empty"
		}
		return "is required"
	case "min":
		return "must not be empty"
	default:
		return "is invalid"
	}
}

func expectedType(field string) string {
	if strings.HasPrefix(field, "suggestions") {
		return "list of strings"
	}
	return "string"
}
