package planapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/beka-birhanu/vacuum-planner/api/identity"
	dmn "github.com/beka-birhanu/vacuum-planner/domain"
	"github.com/beka-birhanu/vacuum-planner/infrastruture/codec"
	"github.com/beka-birhanu/vacuum-planner/planner"
	"github.com/beka-birhanu/vacuum-planner/service/i"
	"github.com/beka-birhanu/vacuum-planner/world"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlanController serves searches and their recorded runs.
type PlanController struct {
	planService i.Planner
	protobuf    i.Encoder
	logger      i.Logger
}

// NewPlanController initializes a PlanController.
func NewPlanController(ps i.Planner, logger i.Logger) (*PlanController, error) {
	if ps == nil || logger == nil {
		return nil, errors.New("plan controller needs a planner and a logger")
	}
	return &PlanController{
		planService: ps,
		protobuf:    &codec.Protobuf{},
		logger:      logger,
	}, nil
}

// RegisterPublic registers public routes.
func (pc *PlanController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/runs/:ID", pc.run)
	route.GET("/worlds/:worldID/board", pc.board)
}

// RegisterProtected registers protected routes.
func (pc *PlanController) RegisterProtected(route *gin.RouterGroup) {
	route.POST("/plans", pc.plan)
}

// plan parses the submitted world and runs one search over it.
func (pc *PlanController) plan(ctx *gin.Context) {
	var request PlanRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := world.Parse(strings.NewReader(request.World))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, err := pc.planService.Plan(ctx.Request.Context(), w, request.Strategy)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	pc.logger.Debug("Plan served to " + ctx.GetString(identity.ContextSubject))

	if strings.Contains(ctx.GetHeader("Accept"), pc.protobuf.ContentType()) {
		body, err := pc.protobuf.MarshalRun(run)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.Data(http.StatusCreated, pc.protobuf.ContentType(), body)
		return
	}
	ctx.JSON(http.StatusCreated, toRunResponse(run))
}

// run returns a recorded run by ID.
func (pc *PlanController) run(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid run ID"})
		return
	}

	run, err := pc.planService.Run(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, toRunResponse(run))
}

// board returns the best runs for a world, shortest plan first.
func (pc *PlanController) board(ctx *gin.Context) {
	worldID := ctx.Param("worldID")

	var n int64
	if raw := ctx.Query("n"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "n must be a positive integer"})
			return
		}
		n = parsed
	}

	runs, err := pc.planService.Board(ctx.Request.Context(), worldID, n)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	response := &BoardResponse{WorldID: worldID, Runs: make([]*RunResponse, 0, len(runs))}
	for _, run := range runs {
		response.Runs = append(response.Runs, toRunResponse(run))
	}
	ctx.JSON(http.StatusOK, response)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dmn.ErrRunNotFound):
		return http.StatusNotFound
	case errors.Is(err, planner.ErrUnknownStrategy),
		errors.Is(err, planner.ErrNoStart),
		errors.Is(err, planner.ErrBlockedStart):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
