package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-engine/lattice/pkg/adapters/memory"
	"github.com/lattice-engine/lattice/pkg/domain"
)

func newTestHandler() http.Handler {
	return NewHandler(memory.NewStore(), prometheus.NewRegistry(), nil)
}

func twoStateRequest(iterations int) SolveRequest {
	return SolveRequest{
		Discount:   0.9,
		Iterations: iterations,
		States: []StatePayload{
			{
				Name:   "S1",
				Reward: 0,
				Actions: []domain.Action{
					{Name: "a", Outcomes: []domain.Outcome{{To: "S1", Prob: 1}}},
					{Name: "b", Outcomes: []domain.Outcome{{To: "S2", Prob: 1}}},
				},
			},
			{Name: "S2", Reward: 10},
		},
	}
}

func postJSON(t *testing.T, handler http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestGetHealth(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest("GET", "/healthz", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.NotEmpty(t, resp["version"])
}

func TestSolve(t *testing.T) {
	rr := postJSON(t, newTestHandler(), "/v1/solve", twoStateRequest(2))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp SolveResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.Iterations)
	require.Len(t, resp.Snapshots, 2)
	assert.Equal(t, "b", resp.Snapshots[1]["S1"].Action)
	assert.InDelta(t, 9.0, resp.Snapshots[1]["S1"].Value, 1e-9)
	assert.Contains(t, resp.Rendered, "After iteration 2: (S1 b 9.0000) (S2 None 10.0000)")
}

func TestSolve_BadRequests(t *testing.T) {
	handler := newTestHandler()

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/v1/solve", bytes.NewReader([]byte("{not json")))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid discount", func(t *testing.T) {
		payload := twoStateRequest(2)
		payload.Discount = 1.5
		rr := postJSON(t, handler, "/v1/solve", payload)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown destination", func(t *testing.T) {
		payload := SolveRequest{
			Discount: 0.9,
			States: []StatePayload{{
				Name:    "S1",
				Actions: []domain.Action{{Name: "a", Outcomes: []domain.Outcome{{To: "ghost", Prob: 1}}}},
			}},
		}
		rr := postJSON(t, handler, "/v1/solve", payload)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "unknown destination state")
	})
}

func TestPlanLifecycle(t *testing.T) {
	handler := newTestHandler()

	// Create
	create := CreatePlanRequest{ID: "demo", SolveRequest: twoStateRequest(2)}
	rr := postJSON(t, handler, "/v1/plans", create)
	require.Equal(t, http.StatusCreated, rr.Code)

	// Get
	req := httptest.NewRequest("GET", "/v1/plans/demo", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var plan domain.Plan
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plan))
	assert.Equal(t, "demo", plan.ID)
	assert.Equal(t, 0.9, plan.Discount)
	assert.Equal(t, []string{"S1", "S2"}, plan.States)
	require.Len(t, plan.Snapshots, 2)

	// List
	req = httptest.NewRequest("GET", "/v1/plans", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "demo")

	// Delete
	req = httptest.NewRequest("DELETE", "/v1/plans/demo", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)

	// Gone
	req = httptest.NewRequest("GET", "/v1/plans/demo", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreatePlan_RequiresID(t *testing.T) {
	rr := postJSON(t, newTestHandler(), "/v1/plans", CreatePlanRequest{SolveRequest: twoStateRequest(1)})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGraph(t *testing.T) {
	handler := newTestHandler()

	t.Run("plain diagram", func(t *testing.T) {
		payload := GraphRequest{States: twoStateRequest(0).States}
		rr := postJSON(t, handler, "/v1/graph", payload)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "graph TD")
		assert.NotContains(t, rr.Body.String(), "==>")
	})

	t.Run("policy overlay", func(t *testing.T) {
		discount := 0.9
		payload := GraphRequest{
			States:     twoStateRequest(0).States,
			Discount:   &discount,
			Iterations: 2,
		}
		rr := postJSON(t, handler, "/v1/graph", payload)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "S1 == \"b p=1\" ==> S2")
	})
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestHandler()

	// Drive one solve so the counters move.
	postJSON(t, handler, "/v1/solve", twoStateRequest(2))

	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "lattice_iterations_computed_total")
	assert.Contains(t, rr.Body.String(), "lattice_solve_duration_seconds")
}
