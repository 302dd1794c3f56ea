// Package handler implements the HTTP handlers for the Travel Planner API.
// All handlers are methods on Server. Methods are split into entity-specific
// files (trip.go, day.go, activity.go, health.go) but all share the same
// Server struct so they can access its dependencies. Handlers translate
// between HTTP and the service layer; no business logic lives here.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"travelplanner/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DayServicer defines the business operations the day handlers depend on.
type DayServicer interface {
	Create(ctx context.Context, day domain.Day) (domain.Day, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Day, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.DayPatch) (domain.Day, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivityServicer defines the business operations the activity handlers
// depend on, including the manual reorder.
type ActivityServicer interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	ListByDayID(ctx context.Context, dayID uuid.UUID) ([]domain.Activity, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ActivityPatch) (domain.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, id uuid.UUID, position int) (domain.Activity, error)
}

// Pinger is the subset of *pgxpool.Pool the health handler needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the dependencies for all API endpoints.
type Server struct {
	trips      TripServicer
	days       DayServicer
	activities ActivityServicer
	db         Pinger
	stats      StatsReader
	log        *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// db and stats may be nil in tests that do not exercise the health endpoint.
func NewServer(trips TripServicer, days DayServicer, activities ActivityServicer, db Pinger, stats StatsReader, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{trips: trips, days: days, activities: activities, db: db, stats: stats, log: log}
}

// APIRoutes returns the chi router for the /api subtree.
// Mount it at /api in main.go; /health is wired separately so it sits
// outside the API namespace.
func (s *Server) APIRoutes() chi.Router {
	r := chi.NewRouter()

	r.Use(s.recoverer)

	// Unknown routes and wrong methods get the same JSON envelope as every
	// other error, never a plain-text body.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed", nil)
	})

	r.Get("/", s.GetAPIInfo)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)
		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Get("/days", s.ListDays)
			r.Post("/days", s.CreateDay)
		})
	})

	r.Route("/days/{dayID}", func(r chi.Router) {
		r.Get("/", s.GetDay)
		r.Put("/", s.UpdateDay)
		r.Delete("/", s.DeleteDay)
		r.Get("/activities", s.ListActivities)
		r.Post("/activities", s.CreateActivity)
	})

	r.Route("/activities/{activityID}", func(r chi.Router) {
		r.Get("/", s.GetActivity)
		r.Put("/", s.UpdateActivity)
		r.Delete("/", s.DeleteActivity)
		r.Post("/reorder", s.ReorderActivity)
	})

	return r
}

// recoverer converts a panic inside an API handler into a SERVER_ERROR
// envelope, so API clients never see a plain-text 500 page.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				s.log.ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				writeError(w, http.StatusInternalServerError, codeServer, "an unexpected error occurred", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// pathID parses the named chi URL parameter as a UUID.
// A malformed ID is a validation failure, reported by the caller.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}
