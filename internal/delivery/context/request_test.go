package context

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRequest(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := WithRequest(context.Background(), "req-1", fallback)

	assert.Equal(t, "req-1", RequestID(ctx))
	assert.NotSame(t, fallback, Logger(ctx, fallback))
}

func TestOutsideRequest(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Empty(t, RequestID(context.Background()))
	assert.Same(t, fallback, Logger(context.Background(), fallback))
}
