package middleware

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	ctxEmail      contextKey = "email"
	ctxResourceID contextKey = "resource_id"
)

// EmailFromContext returns the authenticated principal's email, if any.
func EmailFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxEmail).(string); ok {
		return v
	}
	return ""
}

// WithEmail injects the principal email into the context.
func WithEmail(ctx context.Context, email string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxEmail, email)
}

// ResourceIDFromContext returns the validated path resource id, if any.
func ResourceIDFromContext(ctx context.Context) uuid.UUID {
	if ctx == nil {
		return uuid.Nil
	}
	if v, ok := ctx.Value(ctxResourceID).(uuid.UUID); ok {
		return v
	}
	return uuid.Nil
}

// WithResourceID injects a validated resource id into the context.
func WithResourceID(ctx context.Context, id uuid.UUID) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxResourceID, id)
}
