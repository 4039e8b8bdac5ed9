package nearpair

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.WithName("a.csv").WithCount(3).Info("loaded")
	assert.Contains(t, buf.String(), "name=a.csv")
	assert.Contains(t, buf.String(), "count=3")
}

func TestLogger_LogExport(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, nil))
	ctx := context.Background()

	l.LogExport(ctx, "data.csv", 7, nil)
	assert.Contains(t, buf.String(), "msg=\"table exported\"")
	assert.Contains(t, buf.String(), "rows=7")

	buf.Reset()
	l.LogExport(ctx, "data.csv", 7, errors.New("disk full"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=\"disk full\"")
}

func TestLogger_DebugFilteredAtInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	l.LogSolve(context.Background(), 10, 1.5, nil)
	assert.Empty(t, buf.String())
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestWithLogger_Nil(t *testing.T) {
	o := applyOptions([]Option{WithLogger(nil), WithMetricsCollector(nil), nil})
	assert.NotNil(t, o.logger)
	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
}
