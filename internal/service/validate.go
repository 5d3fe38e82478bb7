package service

import (
	"github.com/blaisecz/comfort-census/internal/domain"
)

// checkSelection rejects a missing or unknown mood/comfort pair.
func checkSelection(mood domain.MoodState, comfort domain.ComfortType) error {
	switch {
	case mood == "":
		return &domain.InputError{Field: "mood", Reason: "is required"}
	case !mood.Valid():
		return &domain.InputError{Field: "mood", Reason: "must be one of energized, calm, neutral, tired"}
	case comfort == "":
		return &domain.InputError{Field: "comfort", Reason: "is required"}
	case !comfort.Valid():
		return &domain.InputError{Field: "comfort", Reason: "must be one of warmth, stillness, distraction"}
	}
	return nil
}
