package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsHandler http.Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.Index)

	mux.HandleFunc("GET /adicionar_jogador", handler.PlayerForm)
	mux.HandleFunc("POST /adicionar_jogador", handler.RegisterPlayer)
	mux.HandleFunc("GET /jogadores/{playerID}", handler.GetPlayer)

	mux.HandleFunc("GET /adicionar_gol", handler.GoalForm)
	mux.HandleFunc("POST /adicionar_gol", handler.AddGoal)

	mux.HandleFunc("POST /adicionar_jogo", handler.RecordMatch)

	mux.HandleFunc("GET /top_goleadores", handler.TopScorersForm)
	mux.HandleFunc("POST /top_goleadores", handler.TopScorersForMonth)
	mux.HandleFunc("GET /top_goleadores_anual", handler.TopScorersForm)
	mux.HandleFunc("POST /top_goleadores_anual", handler.TopScorersForYear)

	mux.HandleFunc("GET /reconciliacao", handler.Reconcile)
}
