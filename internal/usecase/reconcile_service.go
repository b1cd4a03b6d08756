package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-manager/internal/domain/goal"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/metrics"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

const defaultReconcileWorkers = 8

// Mismatch is a player whose cached total differs from the ledger sum.
type Mismatch struct {
	PlayerID   int64
	PlayerName string
	Cached     int64
	Ledger     int64
}

type ReconcileReport struct {
	Checked    int
	Mismatches []Mismatch
}

// ReconcileService compares each player's cached total_goals with the goal ledger. It never writes.
type ReconcileService struct {
	playerRepo player.Repository
	goalRepo   goal.Repository
	workers    int
	metrics    metrics.Metrics
	logger     *logging.Logger
}

func NewReconcileService(
	playerRepo player.Repository,
	goalRepo goal.Repository,
	workers int,
	recorder metrics.Metrics,
	logger *logging.Logger,
) *ReconcileService {
	if workers <= 0 {
		workers = defaultReconcileWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ReconcileService{
		playerRepo: playerRepo,
		goalRepo:   goalRepo,
		workers:    workers,
		metrics:    metrics.OrNop(recorder),
		logger:     logger,
	}
}

func (s *ReconcileService) Reconcile(ctx context.Context) (ReconcileReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReconcileService.Reconcile")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return ReconcileReport{}, markStoreError(fmt.Errorf("list players: %w", err))
	}

	report := ReconcileReport{Mismatches: []Mismatch{}}
	if len(players) == 0 {
		s.metrics.SetReconcileMismatches(0)
		return report, nil
	}

	pool, err := ants.NewPool(min(s.workers, len(players)))
	if err != nil {
		return ReconcileReport{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu       sync.Mutex
		firstErr error
		workers  sync.WaitGroup
	)
	for _, p := range players {
		workers.Add(1)
		submitErr := pool.Submit(func() {
			defer workers.Done()

			sum, err := s.goalRepo.SumByPlayer(ctx, p.ID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("sum goals player=%d: %w", p.ID, err)
				}
				return
			}
			report.Checked++
			if sum != p.TotalGoals {
				report.Mismatches = append(report.Mismatches, Mismatch{
					PlayerID:   p.ID,
					PlayerName: p.Name,
					Cached:     p.TotalGoals,
					Ledger:     sum,
				})
			}
		})
		if submitErr != nil {
			workers.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("submit reconcile task: %w", submitErr)
			}
			mu.Unlock()
			break
		}
	}
	workers.Wait()

	if firstErr != nil {
		return ReconcileReport{}, markStoreError(firstErr)
	}

	sort.Slice(report.Mismatches, func(i, j int) bool {
		return report.Mismatches[i].PlayerID < report.Mismatches[j].PlayerID
	})

	s.metrics.SetReconcileMismatches(len(report.Mismatches))
	if len(report.Mismatches) > 0 {
		s.logger.WarnContext(ctx, "goal totals out of sync with ledger",
			"checked", report.Checked,
			"mismatches", len(report.Mismatches),
		)
	} else {
		s.logger.InfoContext(ctx, "goal totals reconciled", "checked", report.Checked)
	}
	return report, nil
}
