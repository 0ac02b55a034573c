package requestctx

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ctxKey string

const correlationIDKey ctxKey = "correlation_id"

// WithCorrelationID returns a new context with the provided correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationID fetches the correlation ID from the context, if any.
func CorrelationID(ctx context.Context) string {
	v := ctx.Value(correlationIDKey)
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// Logger returns the global logger annotated with the request's correlation id.
func Logger(ctx context.Context) *zerolog.Logger {
	l := log.Logger
	if cid := CorrelationID(ctx); cid != "" {
		l = l.With().Str("correlation_id", cid).Logger()
	}
	return &l
}
