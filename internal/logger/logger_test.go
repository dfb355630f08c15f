package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesWarnAndError(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "test")

	log.Warn("window width %v", 30.0)
	log.Error("poll failed for %s", "cpu2")

	output := buf.String()
	assert.Contains(t, output, "window width 30")
	assert.Contains(t, output, "poll failed for cpu2")
	assert.Contains(t, output, "test", "component name should be attached")
}

func TestNewSuppressesInfoByDefault(t *testing.T) {
	t.Setenv("GSYS_DEBUG", "")

	var buf bytes.Buffer
	log := New(&buf, "test")

	log.Debug("debug message")
	log.Info("info message")

	assert.Empty(t, buf.String(), "debug/info should be suppressed without GSYS_DEBUG")
}

func TestNewDebugEnv(t *testing.T) {
	t.Setenv("GSYS_DEBUG", "1")

	var buf bytes.Buffer
	log := New(&buf, "test")

	log.Debug("tick %d", 7)

	assert.Contains(t, buf.String(), "tick 7")
}

func TestNoopDiscards(t *testing.T) {
	log := Noop()

	// Should not panic
	log.Debug("a")
	log.Info("b")
	log.Warn("c")
	log.Error("d")
}

func TestBufferLoggerCaptures(t *testing.T) {
	log := NewBufferLogger()

	log.Info("sampled %d cores", 8)
	log.Error("probe %s failed", "memory")

	require.Len(t, log.Messages, 2)
	assert.Equal(t, "info", log.Messages[0].Level)
	assert.Equal(t, "sampled 8 cores", log.Messages[0].Message)
	assert.True(t, log.HasMessage("error", "memory"))
	assert.False(t, log.HasMessage("warn", "memory"))
}
