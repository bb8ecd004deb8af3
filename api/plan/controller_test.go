package planapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beka-birhanu/vacuum-planner/api/identity"
	"github.com/beka-birhanu/vacuum-planner/infrastruture/codec"
	"github.com/beka-birhanu/vacuum-planner/infrastruture/logger"
	"github.com/beka-birhanu/vacuum-planner/infrastruture/repo"
	"github.com/beka-birhanu/vacuum-planner/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vacuum-planner/infrastruture/token"
	"github.com/beka-birhanu/vacuum-planner/planner"
	"github.com/beka-birhanu/vacuum-planner/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lineWorld = "3\n1\n@*_\n"

func setup(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("TEST", "", io.Discard)
	require.NoError(t, err)
	ps, err := service.NewPlanService(repo.NewMemoryRunRepo(), sortedstorage.NewMemorySortedQueue(10), log, nil)
	require.NoError(t, err)
	pc, err := NewPlanController(ps, log)
	require.NoError(t, err)

	ts := token.NewJwtService("secret", "vacuum-planner")
	bearer, err := ts.Issue("tester", time.Minute)
	require.NoError(t, err)

	engine := gin.New()
	pc.RegisterPublic(engine.Group("/api/v1"))
	protected := engine.Group("/api/v1")
	protected.Use(identity.Authorize(ts))
	pc.RegisterProtected(protected)
	return engine, bearer
}

func postPlan(t *testing.T, engine *gin.Engine, bearer string, body any, accept string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestPlanEndpoint(t *testing.T) {
	engine, bearer := setup(t)

	t.Run("Plans and stores a run", func(t *testing.T) {
		w := postPlan(t, engine, bearer, PlanRequest{World: lineWorld, Strategy: planner.UniformCostName}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var got RunResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.True(t, got.Solved)
		assert.Equal(t, []string{"E", "V"}, got.Plan)
		assert.Equal(t, 6, got.NodesGenerated)
		assert.Equal(t, 4, got.NodesExpanded)

		stored := get(engine, "/api/v1/runs/"+got.ID)
		require.Equal(t, http.StatusOK, stored.Code)
		var again RunResponse
		require.NoError(t, json.Unmarshal(stored.Body.Bytes(), &again))
		assert.Equal(t, got.ID, again.ID)
		assert.Equal(t, got.Plan, again.Plan)
	})

	t.Run("Protobuf response", func(t *testing.T) {
		w := postPlan(t, engine, bearer, PlanRequest{World: lineWorld, Strategy: planner.DepthFirstName}, "application/x-protobuf")
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/x-protobuf", w.Header().Get("Content-Type"))

		run, err := (&codec.Protobuf{}).UnmarshalRun(w.Body.Bytes())
		require.NoError(t, err)
		assert.Equal(t, []string{"E", "V"}, run.Plan)
		assert.Equal(t, planner.DepthFirstName, run.Strategy)
	})

	t.Run("Requires a token", func(t *testing.T) {
		w := postPlan(t, engine, "", PlanRequest{World: lineWorld, Strategy: planner.DepthFirstName}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Rejects bad requests", func(t *testing.T) {
		cases := map[string]struct {
			body   any
			status int
		}{
			"missing strategy": {PlanRequest{World: lineWorld}, http.StatusBadRequest},
			"malformed world":  {PlanRequest{World: "3\n1\n@x_\n", Strategy: planner.DepthFirstName}, http.StatusBadRequest},
			"unknown strategy": {PlanRequest{World: lineWorld, Strategy: "greedy"}, http.StatusUnprocessableEntity},
			"no start":         {PlanRequest{World: "3\n1\n_*_\n", Strategy: planner.DepthFirstName}, http.StatusUnprocessableEntity},
			"not an object":    {[]int{1, 2}, http.StatusBadRequest},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				w := postPlan(t, engine, bearer, tc.body, "")
				assert.Equal(t, tc.status, w.Code, w.Body.String())
			})
		}
	})
}

func TestRunEndpoint(t *testing.T) {
	engine, _ := setup(t)

	assert.Equal(t, http.StatusBadRequest, get(engine, "/api/v1/runs/not-a-uuid").Code)
	assert.Equal(t, http.StatusNotFound, get(engine, "/api/v1/runs/"+uuid.NewString()).Code)
}

func TestBoardEndpoint(t *testing.T) {
	engine, bearer := setup(t)
	world := "3\n3\n*@_\n_#_\n__*\n"

	var worldID string
	for _, strategy := range planner.Names() {
		w := postPlan(t, engine, bearer, PlanRequest{World: world, Strategy: strategy}, "")
		require.Equal(t, http.StatusCreated, w.Code)
		var got RunResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		worldID = got.WorldID
	}

	w := get(engine, "/api/v1/worlds/"+worldID+"/board")
	require.Equal(t, http.StatusOK, w.Code)
	var board BoardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	assert.Equal(t, worldID, board.WorldID)
	require.Len(t, board.Runs, len(planner.Names()))
	assert.Len(t, board.Runs[0].Plan, 7)

	w = get(engine, "/api/v1/worlds/"+worldID+"/board?n=1")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	assert.Len(t, board.Runs, 1)

	assert.Equal(t, http.StatusBadRequest, get(engine, "/api/v1/worlds/"+worldID+"/board?n=zero").Code)

	w = get(engine, "/api/v1/worlds/unknown/board")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	assert.Empty(t, board.Runs)
}
