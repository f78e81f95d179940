package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_WritesLevelsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	ctx := context.Background()

	log.Debug(ctx, "d", "k", "v")
	log.Info(ctx, "i")
	log.Warn(ctx, "w")
	log.Error(ctx, "e")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "k=v")
}

func TestSlogLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{})))

	child := log.With("service", "once")
	child.Info(context.Background(), "hello")

	assert.Contains(t, buf.String(), "service=once")
}

func TestNewNop_DiscardsEverything(t *testing.T) {
	log := NewNop()
	require.NotNil(t, log)
	// must not panic
	log.Info(context.Background(), "ignored", "k", "v")
	log.With("a", 1).Error(context.Background(), "ignored")
}
