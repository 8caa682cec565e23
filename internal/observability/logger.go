package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Logger is the process-wide logger. It defaults to a no-op logger so
// packages and tests can log before InitLogger runs.
var Logger = zap.NewNop()

// InitLogger installs the production JSON logger, or the console
// development logger when development is set.
func InitLogger(development bool) error {
	var (
		l   *zap.Logger
		err error
	)

	if development {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	Logger = l
	return nil
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns a child logger enriched with trace_id and span_id
// fields from the active OTel span in ctx.
//
// ctx itself is attached as zap.Any("context", ctx). The otelzap bridge picks
// up any field holding a context.Context and passes it to log.Logger.Emit, so
// exported OTLP records carry the native TraceID/SpanID. Without it the bridge
// emits with context.Background() and log-to-trace correlation breaks.
//
// trace_id / span_id strings keep stdout JSON greppable.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
