package core

import "context"

type requestContextKey string

const (
	requestIDKey requestContextKey = "request_id"
	actorIDKey   requestContextKey = "actor_id"
)

// WithRequestID stores the request identifier in the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request identifier, or "" when absent
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithActorID stores the authenticated user ID in the context
func WithActorID(ctx context.Context, userID uint64) context.Context {
	return context.WithValue(ctx, actorIDKey, userID)
}

// ActorIDFromContext returns the authenticated user ID
func ActorIDFromContext(ctx context.Context) (uint64, bool) {
	if ctx == nil {
		return 0, false
	}
	id, ok := ctx.Value(actorIDKey).(uint64)
	return id, ok
}
