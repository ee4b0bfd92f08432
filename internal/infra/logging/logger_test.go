package logging

import (
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/willflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	logger.now = func() time.Time { return time.Date(2024, 3, 4, 21, 5, 0, 0, time.UTC) }
	defer func() { _ = logger.Close() }()

	logger.Info("rollover", "closed 2024-03-04")

	content, err := os.ReadFile(domain.LogPath(dataDir))
	require.NoError(t, err)
	assert.Equal(t, "[2024-03-04 21:05:00] [INFO] [rollover] closed 2024-03-04\n", string(content))
}

func TestLogger_LevelFilter(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Debug("store", "debug message")
	logger.Info("store", "info message")
	logger.Warn("store", "warn message")
	logger.Error("store", "error message")

	content, err := os.ReadFile(domain.LogPath(dataDir))
	require.NoError(t, err)
	s := string(content)
	assert.NotContains(t, s, "debug message")
	assert.NotContains(t, s, "info message")
	assert.Contains(t, s, "[WARN] [store] warn message")
	assert.Contains(t, s, "[ERROR] [store] error message")
	assert.Equal(t, 2, strings.Count(s, "\n"))
}

func TestLogger_Disabled(t *testing.T) {
	logger := New("", slog.LevelDebug)

	logger.Info("store", "nowhere")

	assert.NoError(t, logger.Close())
}

func TestLogger_Appends(t *testing.T) {
	dataDir := t.TempDir()

	first := New(dataDir, slog.LevelInfo)
	first.Info("a", "one")
	require.NoError(t, first.Close())

	second := New(dataDir, slog.LevelInfo)
	second.Info("b", "two")
	require.NoError(t, second.Close())

	content, err := os.ReadFile(domain.LogPath(dataDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[a] one")
	assert.Contains(t, string(content), "[b] two")
}
