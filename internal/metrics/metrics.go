package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is what use cases and the HTTP layer record against.
type Metrics interface {
	IncPlayersRegistered()
	AddGoalsRecorded(quantity int)
	IncLeaderboardQuery(period string)
	IncOperationFailure(operation, reason string)
	SetReconcileMismatches(count int)
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
}

var _ Metrics = (*Service)(nil)

type Service struct {
	PlayersRegistered   prometheus.Counter
	GoalsRecorded       prometheus.Counter
	GoalEntries         prometheus.Counter
	LeaderboardQueries  *prometheus.CounterVec
	OperationFailures   *prometheus.CounterVec
	ReconcileMismatches prometheus.Gauge
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewService creates the collectors and registers them, plus Go runtime and process collectors, on reg.
func NewService(reg prometheus.Registerer) *Service {
	s := &Service{
		PlayersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "football_players_registered_total",
			Help: "Players successfully registered.",
		}),
		GoalsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "football_goals_recorded_total",
			Help: "Sum of goal quantities committed to the ledger.",
		}),
		GoalEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "football_goal_entries_total",
			Help: "Goal ledger rows committed.",
		}),
		LeaderboardQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "football_leaderboard_queries_total",
			Help: "Leaderboard queries served, by period.",
		}, []string{"period"}),
		OperationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "football_operation_failures_total",
			Help: "Failed use case operations, by operation and reason.",
		}, []string{"operation", "reason"}),
		ReconcileMismatches: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "football_reconcile_mismatches",
			Help: "Players whose cached total differed from the ledger in the last reconciliation.",
		}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "football_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		s.PlayersRegistered,
		s.GoalsRecorded,
		s.GoalEntries,
		s.LeaderboardQueries,
		s.OperationFailures,
		s.ReconcileMismatches,
		s.HTTPRequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return s
}

// NewHandler exposes the registry in the Prometheus text format.
func NewHandler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func (s *Service) IncPlayersRegistered() {
	s.PlayersRegistered.Inc()
}

func (s *Service) AddGoalsRecorded(quantity int) {
	s.GoalEntries.Inc()
	if quantity > 0 {
		s.GoalsRecorded.Add(float64(quantity))
	}
}

func (s *Service) IncLeaderboardQuery(period string) {
	s.LeaderboardQueries.WithLabelValues(period).Inc()
}

func (s *Service) IncOperationFailure(operation, reason string) {
	s.OperationFailures.WithLabelValues(operation, reason).Inc()
}

func (s *Service) SetReconcileMismatches(count int) {
	s.ReconcileMismatches.Set(float64(count))
}

func (s *Service) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	s.HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Nop discards everything. Used by the CLI and tests.
type Nop struct{}

var _ Metrics = Nop{}

func (Nop) IncPlayersRegistered()                                 {}
func (Nop) AddGoalsRecorded(int)                                  {}
func (Nop) IncLeaderboardQuery(string)                            {}
func (Nop) IncOperationFailure(string, string)                    {}
func (Nop) SetReconcileMismatches(int)                            {}
func (Nop) ObserveHTTPRequest(string, string, int, time.Duration) {}

// OrNop returns m, or Nop when m is nil.
func OrNop(m Metrics) Metrics {
	if m == nil {
		return Nop{}
	}
	return m
}
