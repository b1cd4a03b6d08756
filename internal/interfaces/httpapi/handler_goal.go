package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-manager/internal/usecase"
)

type addGoalRequest struct {
	PlayerID string `validate:"required,number"`
	Quantity string `validate:"required,numeric"`
	MatchID  string `validate:"omitempty,number"`
	Date     string `validate:"omitempty,datetime=2006-01-02"`
}

// GoalForm lists the players and matches a goal entry can reference.
func (h *Handler) GoalForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GoalForm")
	defer span.End()

	players, err := h.playerService.ListAll(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	matches, err := h.matchService.ListAll(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := goalFormDTO{
		Players: make([]playerDTO, 0, len(players)),
		Matches: make([]matchDTO, 0, len(matches)),
	}
	for _, p := range players {
		out.Players = append(out.Players, playerToDTO(p))
	}
	for _, m := range matches {
		out.Matches = append(out.Matches, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) AddGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddGoal")
	defer span.End()

	if err := parseForm(r); err != nil {
		writeError(ctx, w, err)
		return
	}

	req := addGoalRequest{
		PlayerID: formValue(r, "player_id", "jogador"),
		Quantity: formValue(r, "quantity", "quantidade"),
		MatchID:  formValue(r, "match_id", "jogo"),
		Date:     formValue(r, "date", "data"),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.goalService.AddGoal(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "add goal failed", "player_id", input.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeCreated(ctx, w, r, "Gol registrado com sucesso!", goalToDTO(created))
}

func (req addGoalRequest) toInput() (usecase.AddGoalInput, error) {
	playerID, err := parseID("player_id", req.PlayerID)
	if err != nil {
		return usecase.AddGoalInput{}, err
	}
	quantity, err := parseInt("quantity", req.Quantity)
	if err != nil {
		return usecase.AddGoalInput{}, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return usecase.AddGoalInput{}, err
	}

	input := usecase.AddGoalInput{
		PlayerID: playerID,
		Quantity: quantity,
		Date:     date,
	}
	if req.MatchID != "" {
		matchID, err := parseID("match_id", req.MatchID)
		if err != nil {
			return usecase.AddGoalInput{}, err
		}
		input.MatchID = &matchID
	}
	return input, nil
}
