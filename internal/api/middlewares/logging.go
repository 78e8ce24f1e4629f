package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/rs/zerolog/log"

	"github.com/babylonchain/bridge-pool-service/internal/observability/tracing"
)

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/swagger/") {
			next.ServeHTTP(w, r)
			return
		}

		startTime := time.Now()
		logger := log.With().Str("method", r.Method).Str("path", r.URL.Path).Logger()

		// Attach traceId into each log within the request chain
		if traceId := tracing.TraceID(r.Context()); traceId != "" {
			logger = logger.With().Str("traceId", traceId).Logger()
		}

		logger.Debug().Msg("request received")
		r = r.WithContext(logger.WithContext(r.Context()))

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		logEvent := logger.Info()
		if tracingInfo := r.Context().Value(tracing.TracingInfoKey); tracingInfo != nil {
			logEvent = logEvent.Interface("tracingInfo", tracingInfo)
		}
		logEvent.
			Int("status", ww.Status()).
			Int64("requestDuration", time.Since(startTime).Milliseconds()).
			Msg("Request completed")
	})
}
