// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyLookup ctxKey = "lookup"

// WithRequest annotates context with common request scoped ids
// lookup is the github login the request is aggregating, when known
func WithRequest(ctx context.Context, reqID, lookup string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if lookup != "" {
		ctx = context.WithValue(ctx, keyLookup, lookup)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// Lookup returns the github login on the context if present
func Lookup(ctx context.Context) string {
	if v, ok := ctx.Value(keyLookup).(string); ok {
		return v
	}
	return ""
}
