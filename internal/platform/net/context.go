// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyOperation ctxKey = "operation"

// WithRequest annotates context with the request id
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// WithOperation annotates context with the operation path of the matched
// route, the "<METHOD> <routerPath>" pair, before the handler runs
func WithOperation(ctx context.Context, op string) context.Context {
	if op != "" {
		ctx = context.WithValue(ctx, keyOperation, op)
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

// Operation returns the operation path on the context if present
// the route template spelling, never the literal request URL
func Operation(ctx context.Context) string {
	if v, ok := ctx.Value(keyOperation).(string); ok {
		return v
	}
	return ""
}
