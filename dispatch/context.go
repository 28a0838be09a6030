package dispatch

import "context"

// ctxKeyTrace is the context key for the trace id of the message being
// delivered.
type ctxKeyTrace struct{}

// ContextWithTraceID attaches a trace id to ctx.
func ContextWithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyTrace{}, id)
}

// TraceIDFromContext returns the trace id the Router attached to the context
// passed to deliver.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKeyTrace{}).(string)
	return id, ok
}
