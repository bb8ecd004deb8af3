package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vacuum-planner/domain"
	"github.com/beka-birhanu/vacuum-planner/infrastruture/metrics"
	"github.com/beka-birhanu/vacuum-planner/planner"
	"github.com/beka-birhanu/vacuum-planner/service/i"
	"github.com/beka-birhanu/vacuum-planner/world"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPrefix   = "vacuum"
	defaultBoardLen = 10
	boardKeyFmt     = "%s:board:world_%s"

	// planLengthWeight keeps plan length the dominant term of a board score;
	// expanded nodes only break ties.
	planLengthWeight = 1e9
)

var (
	ErrNilWorld    = errors.New("world is required")
	ErrInvalidPlan = errors.New("plan does not clean the world")
)

type Options struct {
	Prefix   string
	BoardLen int64
	Verify   bool // Replay every solved plan before recording it.
}

type PlanService struct {
	runRepo i.RunRepo
	board   i.SortedQueue
	logger  i.Logger
	opts    *Options
	now     func() time.Time
}

var _ i.Planner = &PlanService{}

func NewPlanService(runRepo i.RunRepo, board i.SortedQueue, logger i.Logger, opts *Options) (*PlanService, error) {
	if runRepo == nil || board == nil || logger == nil {
		return nil, errors.New("plan service needs a run repo, a board and a logger")
	}

	if opts == nil {
		opts = &Options{
			Prefix:   defaultPrefix,
			BoardLen: defaultBoardLen,
			Verify:   true,
		}
	}

	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}

	if opts.BoardLen <= 0 {
		opts.BoardLen = defaultBoardLen
	}

	return &PlanService{
		runRepo: runRepo,
		board:   board,
		logger:  logger,
		opts:    opts,
		now:     time.Now,
	}, nil
}

// Plan implements i.Planner.
func (ps *PlanService) Plan(ctx context.Context, w *world.World, strategyName string) (*dmn.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNilWorld
	}

	strategy, err := planner.ByName(strategyName)
	if err != nil {
		return nil, err
	}

	start, err := planner.Initial(w)
	if err != nil {
		return nil, err
	}

	worldID := w.ID()
	ps.logger.Debug(fmt.Sprintf("Searching: World=%s Strategy=%s Dirty=%d", worldID, strategyName, len(w.Dirty)))

	began := ps.now()
	result := strategy(w.Grid, start)
	elapsed := ps.now().Sub(began)

	if result.Solved && ps.opts.Verify {
		if err := verify(w.Grid, start, result.Plan); err != nil {
			ps.logger.Error(fmt.Sprintf("Rejected plan: World=%s Strategy=%s: %s", worldID, strategyName, err))
			return nil, err
		}
	}

	metrics.ObserveSearch(strategyName, result.Solved, result.NodesGenerated, result.NodesExpanded, len(result.Plan), elapsed)

	run := &dmn.Run{
		ID:             uuid.New(),
		WorldID:        worldID,
		Strategy:       strategyName,
		Solved:         result.Solved,
		Plan:           planner.Tokens(result.Plan),
		NodesGenerated: result.NodesGenerated,
		NodesExpanded:  result.NodesExpanded,
		Duration:       elapsed,
		CreatedAt:      began.UTC(),
	}

	ps.logger.Info(fmt.Sprintf("Search finished: ID=%s World=%s Strategy=%s Solved=%t Length=%d Generated=%d Expanded=%d",
		run.ID, worldID, strategyName, run.Solved, len(run.Plan), run.NodesGenerated, run.NodesExpanded))

	if err := ps.runRepo.Save(ctx, run); err != nil {
		ps.logger.Error(fmt.Sprintf("Failed to save run: %s", err))
		return nil, err
	}

	if run.Solved {
		if err := ps.board.Enqueue(ctx, ps.boardKey(worldID), score(run), run.ID.String()); err != nil {
			ps.logger.Warning(fmt.Sprintf("Failed to post run to board: ID=%s: %s", run.ID, err))
		}
	}

	return run, nil
}

// Compare implements i.Planner. Strategies run concurrently and the runs come
// back in the order they were asked for. No strategies means all of them.
func (ps *PlanService) Compare(ctx context.Context, w *world.World, strategies ...string) ([]*dmn.Run, error) {
	if len(strategies) == 0 {
		strategies = planner.Names()
	}

	runs := make([]*dmn.Run, len(strategies))
	g, gctx := errgroup.WithContext(ctx)
	for idx, name := range strategies {
		g.Go(func() error {
			run, err := ps.Plan(gctx, w, name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			runs[idx] = run
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return runs, nil
}

// Run implements i.Planner.
func (ps *PlanService) Run(ctx context.Context, id uuid.UUID) (*dmn.Run, error) {
	return ps.runRepo.ByID(ctx, id)
}

// Board implements i.Planner.
func (ps *PlanService) Board(ctx context.Context, worldID string, n int64) ([]*dmn.Run, error) {
	if n <= 0 || n > ps.opts.BoardLen {
		n = ps.opts.BoardLen
	}

	members, err := ps.board.Tops(ctx, ps.boardKey(worldID), n)
	if err != nil {
		return nil, err
	}

	runs := make([]*dmn.Run, 0, len(members))
	for _, raw := range members {
		id, err := uuid.Parse(raw)
		if err != nil {
			ps.logger.Warning(fmt.Sprintf("Non-UUID value on board: %s", raw))
			continue
		}

		run, err := ps.runRepo.ByID(ctx, id)
		if errors.Is(err, dmn.ErrRunNotFound) {
			ps.logger.Warning(fmt.Sprintf("Board references a missing run: ID=%s", id))
			continue
		}
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func (ps *PlanService) boardKey(worldID string) string {
	return fmt.Sprintf(boardKeyFmt, ps.opts.Prefix, worldID)
}

func score(run *dmn.Run) float64 {
	return float64(len(run.Plan))*planLengthWeight + float64(run.NodesExpanded)
}

func verify(grid *world.Grid, start planner.State, plan []planner.Action) error {
	end, err := planner.Replay(grid, start, plan)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	if !end.Goal() {
		return fmt.Errorf("%d cells left dirty: %w", end.Dirty().Len(), ErrInvalidPlan)
	}
	return nil
}
