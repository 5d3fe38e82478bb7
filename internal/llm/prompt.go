package llm

import (
	"fmt"
	"strings"

	"github.com/blaisecz/comfort-census/internal/domain"
)

// DefaultSystemTemplate is the built-in persona. {{mood}} and {{comfort}} are
// replaced with the literal selection values.
const DefaultSystemTemplate = "You are the Teddy Bear Sanctuary's Chief Comfort Officer. " +
	"Your goal is to generate a single, actionable comfort prescription in JSON format. " +
	"The prescription must be based on the user's mood ({{mood}}) and comfort need ({{comfort}})."

const taskPromptTemplate = "Generate a cozy, unique prescription. Include %s distinct suggestions related to the user's comfort type. Return ONLY the JSON object."

// Request is everything a provider needs for one structured generation.
type Request struct {
	SystemInstruction string
	Prompt            string
	Schema            *ResponseSchema
}

// BuildRequest renders the instruction pair for mood and comfort. The output
// depends only on its arguments.
func BuildRequest(systemTemplate string, mood domain.MoodState, comfort domain.ComfortType, suggestions int) Request {
	if systemTemplate == "" {
		systemTemplate = DefaultSystemTemplate
	}
	system := strings.NewReplacer(
		"{{mood}}", string(mood),
		"{{comfort}}", string(comfort),
	).Replace(systemTemplate)

	return Request{
		SystemInstruction: system,
		Prompt:            fmt.Sprintf(taskPromptTemplate, countWord(suggestions)),
		Schema:            PrescriptionSchema(suggestions),
	}
}

// ValidTemplate reports whether tmpl carries both selection placeholders.
func ValidTemplate(tmpl string) bool {
	return strings.Contains(tmpl, "{{mood}}") && strings.Contains(tmpl, "{{comfort}}")
}

var countWords = []string{"zero", "one", "two", "three", "four", "five", "six"}

func countWord(n int) string {
	if n >= 0 && n < len(countWords) {
		return countWords[n]
	}
	return fmt.Sprintf("%d", n)
}
