package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-manager/internal/metrics"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

// RouterOptions carries the optional surfaces of the router.
type RouterOptions struct {
	Metrics            metrics.Metrics
	MetricsHandler     http.Handler
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.MetricsHandler, opts.SwaggerEnabled)
	registerLeagueRoutes(mux, handler)

	return RequestTracing(
		RequestID(
			RequestLogging(logger,
				CORS(opts.CORSAllowedOrigins,
					recoverPanic(logger,
						RequestMetrics(opts.Metrics, mux))))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
