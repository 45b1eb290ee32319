// Package http exposes the solver as a stateless JSON API over HTTP,
// with optional plan persistence through a ports.PlanStore.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lattice-engine/lattice"
	"github.com/lattice-engine/lattice/internal/logging"
	"github.com/lattice-engine/lattice/internal/observability"
	"github.com/lattice-engine/lattice/internal/presentation/graph"
	"github.com/lattice-engine/lattice/pkg/domain"
	"github.com/lattice-engine/lattice/pkg/ports"
)

// StatePayload is the wire form of one MDP state.
type StatePayload struct {
	Name    string          `json:"name"`
	Reward  float64         `json:"reward"`
	Actions []domain.Action `json:"actions,omitempty"`
}

// SolveRequest is the body of POST /v1/solve.
type SolveRequest struct {
	Discount   float64        `json:"discount"`
	Iterations int            `json:"iterations,omitempty"`
	States     []StatePayload `json:"states"`
}

// SolveResponse carries the computed history back to the caller.
type SolveResponse struct {
	Iterations int               `json:"iterations"`
	Snapshots  []domain.Snapshot `json:"snapshots"`
	Rendered   string            `json:"rendered"`
}

// CreatePlanRequest is the body of POST /v1/plans.
type CreatePlanRequest struct {
	ID string `json:"id"`
	SolveRequest
}

// GraphRequest is the body of POST /v1/graph. When Discount is set the
// policy at the requested horizon is overlaid on the diagram.
type GraphRequest struct {
	States     []StatePayload `json:"states"`
	Discount   *float64       `json:"discount,omitempty"`
	Iterations int            `json:"iterations,omitempty"`
}

// Server implements the HTTP surface.
type Server struct {
	store   ports.PlanStore
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewHandler wires the routes. The registry receives the solve-path
// collectors and backs the /metrics endpoint.
func NewHandler(store ports.PlanStore, reg *prometheus.Registry, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		store:   store,
		metrics: observability.NewMetrics(reg),
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.Health)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Post("/v1/solve", s.Solve)
	r.Post("/v1/graph", s.Graph)
	r.Route("/v1/plans", func(r chi.Router) {
		r.Get("/", s.ListPlans)
		r.Post("/", s.CreatePlan)
		r.Get("/{id}", s.GetPlan)
		r.Delete("/{id}", s.DeletePlan)
	})

	return r
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": lattice.Version,
	})
}

// Solve handles POST /v1/solve: a one-shot, stateless solve.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := s.solve(req)
	if err != nil {
		s.writeSolveError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreatePlan handles POST /v1/plans: solve and persist under an ID.
func (s *Server) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		http.Error(w, "Plan id is required", http.StatusBadRequest)
		return
	}

	eng, resp, err := s.buildAndSolve(req.SolveRequest)
	if err != nil {
		s.writeSolveError(w, err)
		return
	}

	if err := s.store.Save(r.Context(), eng.Plan(req.ID)); err != nil {
		s.logger.Error("failed to save plan", "error", err, "plan", req.ID)
		http.Error(w, "Failed to save plan", http.StatusInternalServerError)
		return
	}
	s.refreshPlanGauge(r)

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":         req.ID,
		"iterations": resp.Iterations,
	})
}

// GetPlan handles GET /v1/plans/{id}.
func (s *Server) GetPlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	plan, err := s.store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			http.Error(w, "Plan not found", http.StatusNotFound)
			return
		}
		s.logger.Error("failed to load plan", "error", err, "plan", id)
		http.Error(w, "Failed to load plan", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// DeletePlan handles DELETE /v1/plans/{id}.
func (s *Server) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.store.Delete(r.Context(), id); err != nil {
		s.logger.Error("failed to delete plan", "error", err, "plan", id)
		http.Error(w, "Failed to delete plan", http.StatusInternalServerError)
		return
	}
	s.refreshPlanGauge(r)
	w.WriteHeader(http.StatusNoContent)
}

// ListPlans handles GET /v1/plans.
func (s *Server) ListPlans(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("failed to list plans", "error", err)
		http.Error(w, "Failed to list plans", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"plans": ids})
}

// Graph handles POST /v1/graph: render the model as a Mermaid diagram,
// optionally overlaying the computed policy.
func (s *Server) Graph(w http.ResponseWriter, r *http.Request) {
	var req GraphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	model := mapModel(req.States)

	var overlay *graph.PolicyOverlay
	if req.Discount != nil {
		eng, err := lattice.New("", *req.Discount, lattice.WithModel(model), lattice.WithLogger(s.logger))
		if err != nil {
			s.writeSolveError(w, err)
			return
		}
		if err := eng.Solve(req.Iterations); err != nil {
			s.writeSolveError(w, err)
			return
		}
		overlay = graph.OverlayFromSnapshot(eng.Snapshots()[eng.Iterations()-1])
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.GenerateMermaid(model, overlay))
}

// -- Helpers --

func (s *Server) solve(req SolveRequest) (*SolveResponse, error) {
	_, resp, err := s.buildAndSolve(req)
	return resp, err
}

func (s *Server) buildAndSolve(req SolveRequest) (*lattice.Engine, *SolveResponse, error) {
	start := time.Now()

	eng, err := lattice.New("", req.Discount,
		lattice.WithModel(mapModel(req.States)),
		lattice.WithLogger(s.logger),
	)
	if err != nil {
		return nil, nil, err
	}
	if err := eng.Solve(req.Iterations); err != nil {
		return nil, nil, err
	}

	s.metrics.SolveDuration.Observe(time.Since(start).Seconds())
	s.metrics.IterationsComputed.Add(float64(eng.Iterations()))

	return eng, &SolveResponse{
		Iterations: eng.Iterations(),
		Snapshots:  eng.Snapshots(),
		Rendered:   eng.RenderAll(),
	}, nil
}

func (s *Server) writeSolveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidDiscount),
		errors.Is(err, domain.ErrUnknownDestination),
		errors.Is(err, domain.ErrMalformedTriple):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		s.logger.Error("solve failed", "error", err)
		http.Error(w, fmt.Sprintf("Solve error: %v", err), http.StatusInternalServerError)
	}
}

func (s *Server) refreshPlanGauge(r *http.Request) {
	if ids, err := s.store.List(r.Context()); err == nil {
		s.metrics.PlansStored.Set(float64(len(ids)))
	}
}

func mapModel(states []StatePayload) *domain.Model {
	model := domain.NewModel()
	for _, p := range states {
		model.Add(&domain.StateModel{
			Name:    p.Name,
			Reward:  p.Reward,
			Actions: p.Actions,
		})
	}
	return model
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}
