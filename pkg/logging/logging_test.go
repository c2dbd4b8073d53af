package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	log := Logger(&buf, false, slog.LevelInfo)

	log.Info("hello", "key", "value")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "key=value")
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := Logger(&buf, false, slog.LevelWarn)

	log.Info("dropped")
	log.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := Logger(&buf, true, slog.LevelInfo)

	log.Info("hello", "key", "value")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "value", rec["key"])
}

func TestAppendCtx(t *testing.T) {
	var buf bytes.Buffer
	log := Logger(&buf, true, slog.LevelInfo)

	ctx := AppendCtx(context.Background(), slog.Group("app",
		slog.String("name", "qoictl"),
		slog.String("git", "abc123"),
	))
	log.InfoContext(ctx, "decoded")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	app, ok := rec["app"].(map[string]any)
	require.True(t, ok, "group attrs should be attached from context")
	assert.Equal(t, "qoictl", app["name"])
	assert.Equal(t, "abc123", app["git"])
}

func TestAppendCtx_SiblingsIsolated(t *testing.T) {
	base := AppendCtx(context.Background(), slog.String("a", "1"))
	c1 := AppendCtx(base, slog.String("b", "2"))
	c2 := AppendCtx(base, slog.String("c", "3"))

	var buf bytes.Buffer
	log := Logger(&buf, true, slog.LevelInfo)
	log.InfoContext(c1, "one")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "2", rec["b"])
	assert.NotContains(t, rec, "c")

	buf.Reset()
	log.InfoContext(c2, "two")
	rec = map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "3", rec["c"])
	assert.NotContains(t, rec, "b")
}
