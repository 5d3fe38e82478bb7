package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/blaisecz/comfort-census/pkg/problem"
	"github.com/rs/zerolog/log"
)

// Recovery recovers from panics and returns a 500 error
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error().
					Str("panic", fmt.Sprint(rec)).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")
				problem.InternalError("An unexpected error occurred", nil).Write(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
