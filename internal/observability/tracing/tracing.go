package tracing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type TracingContextKey string

const TracingInfoKey = TracingContextKey("requestTracingInfo")
const TraceIdKey = TracingContextKey("requestTraceId")

type SpanDetail struct {
	Name     string
	Duration int64
}

type TracingInfo struct {
	SpanDetails []SpanDetail
}

func (t *TracingInfo) addSpanDetail(detail SpanDetail) {
	t.SpanDetails = append(t.SpanDetails, detail)
}

// AttachTracingIntoContext gives ctx a fresh trace id and an empty span list.
func AttachTracingIntoContext(ctx context.Context) context.Context {
	return ContinueTrace(ctx, "")
}

// ContinueTrace reuses the trace id of an upstream caller when it is a valid
// uuid, so a relayed request can be followed across both sides.
func ContinueTrace(ctx context.Context, traceID string) context.Context {
	if _, err := uuid.Parse(traceID); err != nil {
		traceID = uuid.NewString()
	}
	ctx = context.WithValue(ctx, TraceIdKey, traceID)
	return context.WithValue(ctx, TracingInfoKey, &TracingInfo{})
}

func TraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIdKey).(string)
	return traceID
}

func WrapWithSpan[Result any](ctx context.Context, name string, next func() (Result, error)) (Result, error) {
	tracingInfo, ok := ctx.Value(TracingInfoKey).(*TracingInfo)
	if !ok {
		log.Ctx(ctx).Error().Msg("TracingInfo not found in the request chain")
	}

	startTime := time.Now()
	defer func() {
		if tracingInfo != nil {
			duration := time.Since(startTime).Milliseconds()
			tracingInfo.addSpanDetail(SpanDetail{Name: name, Duration: duration})
		}
	}()

	return next()
}
