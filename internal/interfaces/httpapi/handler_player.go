package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/usecase"
)

type registerPlayerRequest struct {
	Name     string `validate:"required,max=100"`
	Position string `validate:"required,max=50"`
}

func (h *Handler) PlayerForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayerForm")
	defer span.End()

	positions := make([]string, 0, len(player.KnownPositions))
	for _, p := range player.KnownPositions {
		positions = append(positions, string(p))
	}

	writeSuccess(ctx, w, http.StatusOK, playerFormDTO{
		Fields:    []string{"name", "position"},
		Positions: positions,
	})
}

func (h *Handler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterPlayer")
	defer span.End()

	if err := parseForm(r); err != nil {
		writeError(ctx, w, err)
		return
	}

	req := registerPlayerRequest{
		Name:     formValue(r, "name", "nome"),
		Position: formValue(r, "position", "posicao"),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.Register(ctx, usecase.RegisterPlayerInput{
		Name:     req.Name,
		Position: req.Position,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register player failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeCreated(ctx, w, r, "Jogador adicionado com sucesso!", playerToDTO(created))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := parseID("playerID", strings.TrimSpace(r.PathValue("playerID")))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.GetByID(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	goals, err := h.goalService.ListByPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player goals failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := playerDetailDTO{
		Player: playerToDTO(item),
		Goals:  make([]goalDTO, 0, len(goals)),
	}
	for _, g := range goals {
		out.Goals = append(out.Goals, goalToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
