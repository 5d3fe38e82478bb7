package llm

import "fmt"

// ResponseSchema describes structured output for the provider's
// schema-constrained mode. It marshals to Gemini's schema dialect and can be
// converted to JSON Schema for OpenAI.
type ResponseSchema struct {
	Type        string                     `json:"type"`
	Description string                     `json:"description,omitempty"`
	Properties  map[string]*ResponseSchema `json:"properties,omitempty"`
	Items       *ResponseSchema            `json:"items,omitempty"`
	Required    []string                   `json:"required,omitempty"`
	// PropertyOrdering is honoured by Gemini only.
	PropertyOrdering []string `json:"propertyOrdering,omitempty"`
}

const (
	TypeObject = "OBJECT"
	TypeArray  = "ARRAY"
	TypeString = "STRING"
)

// RequiredFields are the members every prescription must carry.
var RequiredFields = []string{"title", "description", "suggestions", "link_text", "link_url"}

// PrescriptionSchema returns the output schema for a prescription with the
// given number of suggestions.
func PrescriptionSchema(suggestions int) *ResponseSchema {
	return &ResponseSchema{
		Type: TypeObject,
		Properties: map[string]*ResponseSchema{
			"title":       {Type: TypeString, Description: "A catchy title for the prescription."},
			"description": {Type: TypeString, Description: "A one-sentence summary of the recommendation."},
			"suggestions": {
				Type:        TypeArray,
				Items:       &ResponseSchema{Type: TypeString},
				Description: fmt.Sprintf("%s detailed, unique comfort actions.", capitalize(countWord(suggestions))),
			},
			"link_text": {Type: TypeString, Description: "The primary call-to-action link text."},
			"link_url":  {Type: TypeString, Description: "A unique, themed URL path (e.g., /nook/sleep-guide)."},
		},
		Required:         RequiredFields,
		PropertyOrdering: RequiredFields,
	}
}

// JSONSchema converts s into a strict JSON Schema document.
func (s *ResponseSchema) JSONSchema() map[string]any {
	out := map[string]any{}
	switch s.Type {
	case TypeObject:
		out["type"] = "object"
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.JSONSchema()
		}
		out["properties"] = props
		out["required"] = append([]string(nil), s.Required...)
		out["additionalProperties"] = false
	case TypeArray:
		out["type"] = "array"
		if s.Items != nil {
			out["items"] = s.Items.JSONSchema()
		}
	default:
		out["type"] = "string"
	}
	if s.Description != "" {
		out["description"] = s.Description
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
