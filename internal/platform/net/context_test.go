package net_test

import (
	"context"
	"testing"

	pnet "waypost/internal/platform/net"
)

func TestWithRequest_And_RequestID(t *testing.T) {
	base := context.Background()

	t.Run("sets request id", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "req-123")

		if got := pnet.RequestID(ctx); got != "req-123" {
			t.Fatalf("RequestID got %q want %q", got, "req-123")
		}
	})

	t.Run("empty id returns same ctx and empty getter", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "")

		// should be the same reference since nothing was set
		if ctx != base {
			t.Fatalf("expected ctx to be unchanged when id empty")
		}
		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
	})
}

func TestWithOperation_And_Operation(t *testing.T) {
	base := context.Background()

	t.Run("sets operation path", func(t *testing.T) {
		ctx := pnet.WithOperation(base, "GET /notes/{id}")

		if got := pnet.Operation(ctx); got != "GET /notes/{id}" {
			t.Fatalf("Operation got %q want %q", got, "GET /notes/{id}")
		}
	})

	t.Run("absent operation reads empty", func(t *testing.T) {
		if got := pnet.Operation(base); got != "" {
			t.Fatalf("Operation got %q want empty", got)
		}
	})

	t.Run("empty operation returns same ctx", func(t *testing.T) {
		ctx := pnet.WithOperation(base, "")
		if ctx != base {
			t.Fatalf("expected ctx to be unchanged when operation empty")
		}
	})
}
