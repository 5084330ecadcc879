package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"village-delivery-sim/internal/adapters/repositories"
	"village-delivery-sim/internal/api/dto"
	"village-delivery-sim/internal/domain"
	"village-delivery-sim/internal/platform/db"
	"village-delivery-sim/internal/village"

	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	m, err := village.Default()
	require.NoError(t, err)
	return newTestRouterFor(t, m)
}

func newTestRouterFor(t *testing.T, m *village.Map) http.Handler {
	t.Helper()

	conn, err := db.OpenSqlite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, repositories.InitSchema(conn))

	return NewRouter(m, repositories.NewSqliteRunRepository(conn), nil)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = do(t, h, http.MethodPost, "/health", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRoads(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/roads", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.RoadsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Locations, 11)
	require.Equal(t, []string{"Alice's House", "Marketplace"}, res.Roads["Post Office"])
	require.Equal(t, []string(village.MailRoute), res.MailRoute)
}

func TestRoute(t *testing.T) {
	h := newTestRouter(t)

	q := url.Values{"from": {"Post Office"}, "to": {"Grete's House"}}
	rec := do(t, h, http.MethodGet, "/route?"+q.Encode(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, 3, res.Steps)
	require.Equal(t, []string{"Marketplace", "Farm", "Grete's House"}, res.Route)

	q = url.Values{"from": {"Post Office"}, "to": {"Moon"}}
	rec = do(t, h, http.MethodGet, "/route?"+q.Encode(), "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/route", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSimulations(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/simulations", `{"robot": "goal", "seed": 7, "parcel_count": 4}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.SimulationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "goal", res.Robot)
	require.Equal(t, "Post Office", res.Start)
	require.Len(t, res.Parcels, 4)
	require.Len(t, res.Moves, res.Turns)

	rec = do(t, h, http.MethodPost, "/simulations", `{"robot": "teleporter"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/simulations", `{"robot": "goal", "start": "Moon"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/simulations", `{"unknown_field": 1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/simulations", `{} {}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/simulations", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestComparisons(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/comparisons", `{"robot_a": "route", "robot_b": "goal", "trials": 10, "seed": 5}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created dto.ComparisonResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, 10, created.Trials)
	require.Equal(t, 10000, created.MaxTurns, "server applies a default turn limit")

	rec = do(t, h, http.MethodGet, "/comparisons", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list dto.ListComparisonsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Comparisons, 1)
	require.Equal(t, created.ID, list.Comparisons[0].ID)

	rec = do(t, h, http.MethodPost, "/comparisons", `{"trials": -5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/comparisons?limit=0", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodDelete, "/comparisons", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRunsAreBoundedByDefault(t *testing.T) {
	// A mail route that never follows a road keeps the route robot in place.
	g, err := domain.BuildGraph([]string{"Post Office-Alice's House", "Alice's House-Cabin", "Alice's House-Farm"})
	require.NoError(t, err)
	h := newTestRouterFor(t, &village.Map{Graph: g, MailRoute: domain.Route{"Cabin"}})

	rec := do(t, h, http.MethodPost, "/simulations", `{"robot": "route", "seed": 7}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/simulations", `{"robot": "route", "seed": 7, "max_turns": 50}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/comparisons", `{"robot_a": "route", "robot_b": "goal", "trials": 1, "seed": 7}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/simulations", `{"robot": "goal", "seed": 7}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestMaxTurnsOutOfRange(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/simulations", `{"max_turns": -1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/comparisons", `{"max_turns": 100001}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
