package httpapi

import "net/http"

type monthlyTopScorersRequest struct {
	Month string `validate:"required,number"`
	Year  string `validate:"required,number"`
}

type annualTopScorersRequest struct {
	Year string `validate:"required,number"`
}

// TopScorersForm mirrors the empty leaderboard page: only the current year is known.
func (h *Handler) TopScorersForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopScorersForm")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, topScorersFormDTO{CurrentYear: h.now().Year()})
}

func (h *Handler) TopScorersForMonth(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopScorersForMonth")
	defer span.End()

	if err := parseForm(r); err != nil {
		writeError(ctx, w, err)
		return
	}

	req := monthlyTopScorersRequest{
		Month: formValue(r, "month", "mes"),
		Year:  formValue(r, "year", "ano"),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	month, err := parseInt("month", req.Month)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	year, err := parseInt("year", req.Year)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.topScoreService.TopScorersForMonth(ctx, month, year)
	if err != nil {
		h.logger.WarnContext(ctx, "monthly top scorers failed", "month", month, "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, topScorersDTO{
		Month:       month,
		Year:        year,
		CurrentYear: h.now().Year(),
		Items:       topScorersToDTO(items),
	})
}

func (h *Handler) TopScorersForYear(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopScorersForYear")
	defer span.End()

	if err := parseForm(r); err != nil {
		writeError(ctx, w, err)
		return
	}

	req := annualTopScorersRequest{Year: formValue(r, "year", "ano")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	year, err := parseInt("year", req.Year)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.topScoreService.TopScorersForYear(ctx, year)
	if err != nil {
		h.logger.WarnContext(ctx, "annual top scorers failed", "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, topScorersDTO{
		Year:        year,
		CurrentYear: h.now().Year(),
		Items:       topScorersToDTO(items),
	})
}
