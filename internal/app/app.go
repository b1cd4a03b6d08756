package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/riskibarqy/football-manager/internal/config"
	repocache "github.com/riskibarqy/football-manager/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-manager/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-manager/internal/metrics"
	basecache "github.com/riskibarqy/football-manager/internal/platform/cache"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/riskibarqy/football-manager/internal/usecase"
)

// App holds the use cases shared by the HTTP server and the CLI.
type App struct {
	Players   *usecase.PlayerService
	Matches   *usecase.MatchService
	Goals     *usecase.GoalService
	TopScores *usecase.TopScoreService
	Reconcile *usecase.ReconcileService

	Metrics  metrics.Metrics
	Registry *prometheus.Registry

	closers []func() error
}

// New opens the configured store and wires every use case over it.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	a := &App{Metrics: metrics.Nop{}}
	if repos.close != nil {
		a.closers = append(a.closers, repos.close)
	}
	if cfg.MetricsEnabled {
		a.Registry = prometheus.NewRegistry()
		a.Metrics = metrics.NewService(a.Registry)
	}

	topScorers := repos.topScorers
	var invalidator usecase.LeaderboardInvalidator
	if cfg.CacheEnabled {
		cached := repocache.NewTopScorersRepository(repos.topScorers, basecache.NewStore(cfg.CacheTTL))
		topScorers = cached
		invalidator = cached
	}

	a.Players = usecase.NewPlayerService(repos.players, repos.tx, a.Metrics, logger)
	a.Matches = usecase.NewMatchService(repos.matches, logger)
	a.Goals = usecase.NewGoalService(repos.goals, repos.players, repos.tx, invalidator, a.Metrics, logger)
	a.TopScores = usecase.NewTopScoreService(topScorers, cfg.LeaderboardLimit, a.Metrics)
	a.Reconcile = usecase.NewReconcileService(repos.players, repos.goals, cfg.ReconcileWorkers, a.Metrics, logger)

	logger.Info("application wired",
		"store_driver", cfg.StoreDriver,
		"cache_enabled", cfg.CacheEnabled,
		"metrics_enabled", cfg.MetricsEnabled,
	)
	return a, nil
}

// Close releases the store. Safe to call more than once.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func NewHTTPServer(cfg config.Config, a *App, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(a.Players, a.Matches, a.Goals, a.TopScores, a.Reconcile, logger)

	opts := httpapi.RouterOptions{
		Metrics:            a.Metrics,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if a.Registry != nil {
		opts.MetricsHandler = metrics.NewHandler(a.Registry)
	}

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, opts),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
