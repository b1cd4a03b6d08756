package httpapi

import "net/http"

func (h *Handler) Reconcile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Reconcile")
	defer span.End()

	report, err := h.reconcileService.Reconcile(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "reconcile goal totals failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reconcileToDTO(report))
}
