package middlewares

import (
	"net/http"

	"github.com/babylonchain/bridge-pool-service/internal/observability/tracing"
)

const traceIdHeader = "X-Trace-Id"

// TracingMiddleware continues the caller's trace, or starts a new one, and
// echoes the trace id back in the response headers.
func TracingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := tracing.ContinueTrace(r.Context(), r.Header.Get(traceIdHeader))
		w.Header().Set(traceIdHeader, tracing.TraceID(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
