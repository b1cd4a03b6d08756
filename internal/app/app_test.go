package app

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/football-manager/internal/config"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/riskibarqy/football-manager/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		StoreDriver:        config.StoreDriverMemory,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		LeaderboardLimit:   10,
		ReconcileWorkers:   2,
		MetricsEnabled:     true,
		CORSAllowedOrigins: []string{"*"},
	}
}

func TestNew_MemoryStoreWiresCachedLeaderboard(t *testing.T) {
	a, err := New(t.Context(), memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	p, err := a.Players.Register(t.Context(), usecase.RegisterPlayerInput{Name: "Ana", Position: "Atacante"})
	require.NoError(t, err)

	day := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	_, err = a.Goals.AddGoal(t.Context(), usecase.AddGoalInput{PlayerID: p.ID, Quantity: 1, Date: day})
	require.NoError(t, err)

	first, err := a.TopScores.TopScorersForMonth(t.Context(), 3, 2024)
	require.NoError(t, err)
	require.Len(t, first, 1)

	_, err = a.Goals.AddGoal(t.Context(), usecase.AddGoalInput{PlayerID: p.ID, Quantity: 4, Date: day})
	require.NoError(t, err)

	second, err := a.TopScores.TopScorersForMonth(t.Context(), 3, 2024)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, int64(5), second[0].TotalGoals)

	report, err := a.Reconcile.Reconcile(t.Context())
	require.NoError(t, err)
	assert.Empty(t, report.Mismatches)
}

func TestNew_UnsupportedDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.StoreDriver = "sqlite"

	_, err := New(t.Context(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNewHTTPServer_ServesRoutes(t *testing.T) {
	cfg := memoryConfig()
	a, err := New(t.Context(), cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	srv, err := NewHTTPServer(cfg, a, logging.NewNop())
	require.NoError(t, err)

	form := url.Values{"name": {"Ana"}, "position": {"Atacante"}}
	req := httptest.NewRequest(http.MethodPost, "/adicionar_jogador", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "football_players_registered_total 1")
}

func TestNewHTTPServer_MetricsDisabled(t *testing.T) {
	cfg := memoryConfig()
	cfg.MetricsEnabled = false
	a, err := New(t.Context(), cfg, logging.NewNop())
	require.NoError(t, err)

	srv, err := NewHTTPServer(cfg, a, logging.NewNop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := memoryConfig()
	a, err := New(t.Context(), cfg, logging.NewNop())
	require.NoError(t, err)

	cfg.HTTPAddr = ""
	_, err = NewHTTPServer(cfg, a, logging.NewNop())
	require.Error(t, err)
}
