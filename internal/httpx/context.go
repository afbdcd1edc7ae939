package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	roleKey      contextKey = "role"
	requestIDKey contextKey = "requestID"
)

// RoleFrom retrieves the requester role from the request context.
// Empty when no valid token accompanied the request.
func RoleFrom(r *http.Request) string {
	if v, ok := r.Context().Value(roleKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithRole returns a new context carrying the requester role.
func ContextWithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RequestIDFrom retrieves the request id from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithRequestID returns a new context carrying the request id.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
