package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-manager/internal/usecase"
)

type recordMatchRequest struct {
	Team1  string `validate:"required,max=100"`
	Team2  string `validate:"required,max=100"`
	Winner string `validate:"omitempty,max=100"`
	Date   string `validate:"omitempty,datetime=2006-01-02"`
}

func (h *Handler) RecordMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatch")
	defer span.End()

	if err := parseForm(r); err != nil {
		writeError(ctx, w, err)
		return
	}

	req := recordMatchRequest{
		Team1:  formValue(r, "team1", "time1"),
		Team2:  formValue(r, "team2", "time2"),
		Winner: formValue(r, "winner", "vencedor"),
		Date:   formValue(r, "date", "data"),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.RecordMatch(ctx, usecase.RecordMatchInput{
		Team1:  req.Team1,
		Team2:  req.Team2,
		Winner: req.Winner,
		Date:   date,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record match failed", "team1", req.Team1, "team2", req.Team2, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeCreated(ctx, w, r, "Jogo registrado com sucesso!", matchToDTO(created))
}
