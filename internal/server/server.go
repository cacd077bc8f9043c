// Package server exposes the tracker over HTTP: a JSON API for the app
// screens plus a server-sent-events stream carrying state snapshots.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Cyb3rh4ck/SmartGym/internal/tracker"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	tracker *tracker.Tracker
	log     *slog.Logger
	apiKey  string
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(tr *tracker.Tracker, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		tracker: tr,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/api/v1/health", s.handleHealth)

	// Read endpoints need no key; tsnet handles access in tailnet mode
	s.router.Get("/api/v1/profile", s.handleGetProfile)
	s.router.Get("/api/v1/logs", s.handleListLogs)
	s.router.Get("/api/v1/recommendation", s.handleRecommendation)
	s.router.Get("/api/v1/suggestion", s.handleSuggestion)
	s.router.Get("/api/v1/routines", s.handleListRoutines)
	s.router.Get("/api/v1/completed", s.handleListCompleted)
	s.router.Get("/api/v1/session", s.handleGetSession)
	s.router.Get("/api/v1/events", s.handleEvents)

	// Mutating endpoints (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))

		r.Put("/api/v1/profile", s.handleSaveProfile)

		r.Post("/api/v1/logs", s.handleCreateLog)
		r.Put("/api/v1/logs/{id}", s.handleUpdateLog)
		r.Delete("/api/v1/logs/{id}", s.handleDeleteLog)

		r.Post("/api/v1/routines", s.handleCreateRoutine)
		r.Delete("/api/v1/routines/{id}", s.handleDeleteRoutine)

		r.Post("/api/v1/draft", s.handleAddDraftExercise)
		r.Delete("/api/v1/draft/{index}", s.handleRemoveDraftExercise)
		r.Delete("/api/v1/draft", s.handleClearDraft)
		r.Post("/api/v1/draft/save", s.handleSaveDraft)

		r.Post("/api/v1/session/start", s.handleStartSession)
		r.Post("/api/v1/session/exercises/{exerciseID}/sets", s.handleAddSet)
		r.Delete("/api/v1/session/exercises/{exerciseID}/sets/{setID}", s.handleRemoveSet)
		r.Patch("/api/v1/session/exercises/{exerciseID}/sets/{setID}", s.handleUpdateSet)
		r.Post("/api/v1/session/finish", s.handleFinishSession)
		r.Post("/api/v1/session/cancel", s.handleCancelSession)
	})
}
