package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("ORGANIZER_STATE_DIR", "")
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity, io.Discard)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "organizer", "organizer.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestSetupLogger_ConsoleWriter(t *testing.T) {
	t.Setenv("ORGANIZER_STATE_DIR", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	var console bytes.Buffer
	SetupLogger(0, &console)
	log.Warn().Msg("category folder blocked")

	assert.Contains(t, console.String(), "category folder blocked")
	assert.Contains(t, console.String(), "WRN")

	data, err := os.ReadFile(filepath.Join(os.Getenv("ORGANIZER_STATE_DIR"), "organizer.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "category folder blocked")
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("ORGANIZER_STATE_DIR", "")

	t.Run("with ORGANIZER_STATE_DIR", func(t *testing.T) {
		t.Setenv("ORGANIZER_STATE_DIR", "/override")
		assert.Equal(t, filepath.Join("/override", "organizer.log"), getLogFilePath())
	})

	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		assert.Equal(t, filepath.Join("/custom/state", "organizer", "organizer.log"), getLogFilePath())
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "")
		got := getLogFilePath()
		assert.True(t, filepath.IsAbs(got))
		assert.Contains(t, filepath.ToSlash(got), ".local/state/organizer/organizer.log")
	})
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("relocator")
	logger.Info().Msg("moved")

	assert.Contains(t, buf.String(), `"component":"relocator"`)
	assert.Contains(t, buf.String(), "moved")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = zerolog.New(&buf)

	logger := WithFields(map[string]interface{}{"category": "Imagens", "count": 3})
	logger.Info().Msg("fields")

	assert.Contains(t, buf.String(), `"category":"Imagens"`)
	assert.Contains(t, buf.String(), `"count":3`)
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = zerolog.New(&buf)

	LogCommand("vim", []string{"/tmp/config.toml"})

	out := buf.String()
	assert.Contains(t, out, "vim")
	assert.Contains(t, out, "/tmp/config.toml")
	assert.Contains(t, out, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "organize")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "duration")
}

func TestSetupLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "organizer.log")
	f, err := setupLogFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	_, err = setupLogFile(filepath.Join(blocker, "organizer.log"))
	assert.Error(t, err)
}

func TestMust_NoError(t *testing.T) {
	assert.NotPanics(t, func() {
		Must(nil, "this should not exit")
	})
}
