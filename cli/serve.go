package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/vacuum-planner/api"
	api_i "github.com/beka-birhanu/vacuum-planner/api/i"
	"github.com/beka-birhanu/vacuum-planner/api/identity"
	planapi "github.com/beka-birhanu/vacuum-planner/api/plan"
	"github.com/beka-birhanu/vacuum-planner/config"
	"github.com/beka-birhanu/vacuum-planner/infrastruture/metrics"
	"github.com/beka-birhanu/vacuum-planner/infrastruture/repo"
	"github.com/beka-birhanu/vacuum-planner/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vacuum-planner/infrastruture/token"
	"github.com/beka-birhanu/vacuum-planner/service"
	"github.com/beka-birhanu/vacuum-planner/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const runsCollection = "runs"

var (
	ErrMissingSecret = errors.New("JWT_SECRET must be set")
)

// newServeCmd creates the serve command.
func (a *App) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the planning HTTP API",
		Long: `Serve the planning API on HOST_IP:REST_PORT.

Runs are stored in MongoDB when DB_HOST is set and the per-world leaderboards
in Redis when REDIS_ADDR is set; otherwise both live in memory. POST routes
require a bearer token (see "vacuum token").`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd.Context())
		},
	}
}

// runServe wires the stores, service and router, then blocks until ctx ends.
func (a *App) runServe(ctx context.Context) error {
	if a.cfg.JWTSecret == "" {
		return ErrMissingSecret
	}
	gin.SetMode(a.cfg.GinMode)

	appLogger, err := a.newLogger("APP", config.ColorGreen)
	if err != nil {
		return err
	}

	runRepo, closeRepo, err := a.initRunRepo(ctx, appLogger)
	if err != nil {
		return err
	}
	defer closeRepo()

	board, closeBoard, err := a.initBoard(ctx, appLogger)
	if err != nil {
		return err
	}
	defer closeBoard()

	plannerLogger, err := a.newLogger("PLANNER", config.ColorCyan)
	if err != nil {
		return err
	}
	planService, err := service.NewPlanService(runRepo, board, plannerLogger, &service.Options{
		BoardLen: int64(a.cfg.BoardSize),
		Verify:   true,
	})
	if err != nil {
		return fmt.Errorf("creating plan service: %w", err)
	}
	appLogger.Info("Plan service initialized")

	apiLogger, err := a.newLogger("API", config.ColorBlue)
	if err != nil {
		return err
	}
	planController, err := planapi.NewPlanController(planService, apiLogger)
	if err != nil {
		return fmt.Errorf("creating plan controller: %w", err)
	}

	jwtTokenizer := token.NewJwtService(a.cfg.JWTSecret, a.cfg.JWTIssuer)
	router := api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", a.cfg.HostIP, a.cfg.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{planController},
		AuthorizationMiddleware: identity.Authorize(jwtTokenizer),
		MetricsHandler:          metrics.Handler(),
	})
	appLogger.Info(fmt.Sprintf("Serving on %s:%d", a.cfg.HostIP, a.cfg.RESTPort))

	if err := router.Serve(ctx); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	appLogger.Info("Server stopped")
	return nil
}

func (a *App) initRunRepo(ctx context.Context, appLogger i.Logger) (i.RunRepo, func(), error) {
	if a.cfg.DBHost == "" {
		appLogger.Warning("DB_HOST not set, keeping runs in memory")
		return repo.NewMemoryRunRepo(), func() {}, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(a.cfg.MongoURI()))
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}
	disconnect := func() { _ = client.Disconnect(context.Background()) }

	if err := client.Ping(ctx, nil); err != nil {
		disconnect()
		return nil, nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}
	appLogger.Info("Connected to MongoDB")

	runRepo := repo.NewRunRepo(client, a.cfg.DBName, runsCollection)
	if err := runRepo.EnsureIndexes(ctx); err != nil {
		disconnect()
		return nil, nil, fmt.Errorf("creating run indexes: %w", err)
	}
	return runRepo, disconnect, nil
}

func (a *App) initBoard(ctx context.Context, appLogger i.Logger) (i.SortedQueue, func(), error) {
	if a.cfg.RedisAddr == "" {
		appLogger.Warning("REDIS_ADDR not set, keeping leaderboards in memory")
		return sortedstorage.NewMemorySortedQueue(int64(a.cfg.BoardSize)), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.RedisAddr,
		Password: a.cfg.RedisPassword,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping failed: %w", err)
	}
	appLogger.Info("Connected to Redis")

	board := sortedstorage.NewRedisSortedQueue(client, a.cfg.BoardTTLSeconds, int64(a.cfg.BoardSize))
	return board, func() { _ = client.Close() }, nil
}
