package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/blaisecz/comfort-census/internal/api/validation"
	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/blaisecz/comfort-census/pkg/problem"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeBody decodes a JSON body into dst. An empty body is allowed when
// optional is set.
func decodeBody(r *http.Request, dst any, optional bool) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if optional && errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// writeInputError answers 400 when err is an *domain.InputError.
func writeInputError(w http.ResponseWriter, err error) bool {
	var inputErr *domain.InputError
	if !errors.As(err, &inputErr) {
		return false
	}
	problem.ValidationError("Invalid "+inputErr.Field, validation.FromInputError(inputErr)).Write(w)
	return true
}
