package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/riskibarqy/football-manager/internal/usecase"
)

type Handler struct {
	playerService    *usecase.PlayerService
	matchService     *usecase.MatchService
	goalService      *usecase.GoalService
	topScoreService  *usecase.TopScoreService
	reconcileService *usecase.ReconcileService
	logger           *logging.Logger
	validator        *validator.Validate
	now              func() time.Time
}

func NewHandler(
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	goalService *usecase.GoalService,
	topScoreService *usecase.TopScoreService,
	reconcileService *usecase.ReconcileService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:    playerService,
		matchService:     matchService,
		goalService:      goalService,
		topScoreService:  topScoreService,
		reconcileService: reconcileService,
		logger:           logger,
		validator:        validator.New(),
		now:              time.Now,
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// parseForm reads url-encoded bodies and query values into r.Form.
func parseForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: parse form: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// formValue returns the first non-empty value among keys. The Portuguese names
// are the field names of the league's original HTML forms.
func formValue(r *http.Request, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(r.Form.Get(key)); v != "" {
			return v
		}
	}
	return ""
}

func parseInt(field, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, field)
	}
	return v, nil
}

func parseID(field, raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, field)
	}
	return v, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	v, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", usecase.ErrInvalidInput)
	}
	return v, nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Index")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, indexDTO{
		Flash: strings.TrimSpace(r.URL.Query().Get("flash")),
		Links: []linkDTO{
			{Rel: "addPlayer", Method: http.MethodPost, Href: "/adicionar_jogador"},
			{Rel: "addGoal", Method: http.MethodPost, Href: "/adicionar_gol"},
			{Rel: "addMatch", Method: http.MethodPost, Href: "/adicionar_jogo"},
			{Rel: "monthlyTopScorers", Method: http.MethodPost, Href: "/top_goleadores"},
			{Rel: "annualTopScorers", Method: http.MethodPost, Href: "/top_goleadores_anual"},
			{Rel: "reconcile", Method: http.MethodGet, Href: "/reconciliacao"},
		},
	})
}
