package bitmap

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Helpers(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.LogChainGrowth(4)
	l.LogTurnOff("ab", nil)
	l.LogTurnOff("ab", errors.New("boom"))
	l.LogBatchQuery(context.Background(), 10, 3, nil)

	out := buf.String()
	assert.Contains(t, out, `"msg":"chain grown"`)
	assert.Contains(t, out, `"bitmap_count":4`)
	assert.Contains(t, out, `"msg":"turn off completed"`)
	assert.Contains(t, out, `"msg":"turn off failed"`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"hits":3`)
}

func TestLogger_OmitsKeys(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cb, err := New(WithLogger(l))
	assert.NoError(t, err)

	assert.NoError(t, cb.TurnOn("secret"))
	assert.Error(t, cb.TurnOn("secret\x00"))
	assert.Error(t, cb.TurnOff("password\x01"))

	out := buf.String()
	assert.Contains(t, out, `"key_len":6`)
	assert.Contains(t, out, `"key_len":7`)
	assert.Contains(t, out, `"key_len":9`)
	assert.Contains(t, out, `"msg":"turn on failed"`)
	assert.Contains(t, out, `"msg":"turn off failed"`)
	assert.NotContains(t, out, "secret")
	assert.NotContains(t, out, "password")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	assert.NotPanics(t, func() { l.LogTurnOn("ab", errors.New("boom")) })
}
