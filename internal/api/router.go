package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/comfort-census/docs"
	"github.com/blaisecz/comfort-census/internal/api/handler"
	"github.com/blaisecz/comfort-census/internal/api/middleware"
	"github.com/blaisecz/comfort-census/pkg/problem"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	prescriptionHandler *handler.PrescriptionHandler
	checkInHandler      *handler.CheckInHandler
	metricsHandler      *handler.MetricsHandler
	sessionHandler      *handler.SessionHandler
	allowedOrigin       string
}

func NewRouter(
	prescriptionHandler *handler.PrescriptionHandler,
	checkInHandler *handler.CheckInHandler,
	metricsHandler *handler.MetricsHandler,
	sessionHandler *handler.SessionHandler,
	allowedOrigin string,
) *Router {
	return &Router{
		prescriptionHandler: prescriptionHandler,
		checkInHandler:      checkInHandler,
		metricsHandler:      metricsHandler,
		sessionHandler:      sessionHandler,
		allowedOrigin:       allowedOrigin,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)
	r.Use(middleware.CORS(rt.allowedOrigin))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		problem.NotFound("Not found").Write(w)
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Route("/generate-prescription", func(r chi.Router) {
			r.MethodNotAllowed(handler.MethodNotAllowed)
			r.Post("/", rt.prescriptionHandler.Generate)
		})
		r.Post("/prescriptions/feedback", rt.prescriptionHandler.Feedback)

		r.Post("/check-ins", rt.checkInHandler.Create)

		r.Route("/metrics", func(r chi.Router) {
			r.Get("/today", rt.metricsHandler.Today)
			r.Get("/{date}", rt.metricsHandler.ByDate)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", rt.sessionHandler.Create)
			r.Route("/{sessionId}", func(r chi.Router) {
				r.Get("/", rt.sessionHandler.Get)
				r.Get("/check-ins", rt.checkInHandler.History)
				r.Post("/start", rt.sessionHandler.Start)
				r.Post("/mood", rt.sessionHandler.SelectMood)
				r.Post("/continue", rt.sessionHandler.Continue)
				r.Post("/comfort", rt.sessionHandler.SelectComfort)
				r.Post("/back", rt.sessionHandler.Back)
				r.Post("/submit", rt.sessionHandler.Submit)
				r.Post("/start-over", rt.sessionHandler.StartOver)
			})
		})
	})

	return r
}
