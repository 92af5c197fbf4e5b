package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/herrenbrad/runplans/internal/catalog"
	"github.com/herrenbrad/runplans/internal/models"
	"github.com/herrenbrad/runplans/internal/plan"
)

// PlanStore is the persistence surface the handlers need. *storage.DB
// satisfies it; tests substitute an in-memory fake.
type PlanStore interface {
	GetOrCreateAthlete(ctx context.Context, name string) (int, error)
	ListAthletes(ctx context.Context) ([]models.AthleteRow, error)
	InsertPlan(ctx context.Context, row models.PlanRow) error
	GetPlan(ctx context.Context, id uuid.UUID) (*models.PlanRow, error)
	LatestPlan(ctx context.Context, athleteID int) (*models.PlanRow, error)
	ListPlans(ctx context.Context, athleteID int) ([]models.PlanSummary, error)
	SupersededBy(ctx context.Context, id uuid.UUID) ([]models.PlanSummary, error)
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store   PlanStore
	gen     *plan.Generator
	catalog *catalog.Catalog
	log     *slog.Logger
	apiKey  string
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(store PlanStore, cat *catalog.Catalog, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:   store,
		gen:     plan.NewGenerator(cat, log),
		catalog: cat,
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
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))

		r.Get("/athletes", s.handleListAthletes)
		r.Post("/plans", s.handleGeneratePlan)
		r.Get("/plans", s.handleListPlans)
		r.Get("/plans/{id}", s.handleGetPlan)
		r.Get("/plans/{id}/revisions", s.handleRevisions)
		r.Post("/plans/{id}/race-day", s.handleRaceDay)
		r.Post("/plans/{id}/injury", s.handleInjuryRecovery)
		r.Post("/plans/{id}/revert", s.handleRevert)

		r.Get("/catalog", s.handleCatalog)
		r.Get("/catalog/{category}", s.handleCatalogCategory)
		r.Get("/paces", s.handlePaces)
	})
}
