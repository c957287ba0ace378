package logd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyLogWriterDefaultsToStderr(t *testing.T) {
	writer, ok := NewPrettyLogWriter().(*prettyLogWriter)

	require.True(t, ok)
	assert.Same(t, os.Stderr, writer.out)
}

func TestDefaultLogLevel(t *testing.T) {
	logLevel, err := readLogLevelFromEnv()
	require.NoError(t, err)
	assert.Equal(t, InfoLevel, logLevel)
}

func TestLogLevelFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnv, "debug")

	logLevel, err := readLogLevelFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DebugLevel, logLevel)
}

func TestLogLevelFromEnvUnknownValue(t *testing.T) {
	t.Setenv(LogLevelEnv, "unknown")

	logLevel, err := readLogLevelFromEnv()
	require.Error(t, err)
	assert.Equal(t, InfoLevel, logLevel)
}

func TestLogger(t *testing.T) {
	t.Run("log level Info", func(t *testing.T) {
		logBuffer := bytes.Buffer{}
		log := Logger{newZapLogger(NewPrettyLogWriter(WithWriter(&logBuffer)), InfoLevel)}

		log.Info("Info message")
		log.Debug("Debug message")

		assert.Contains(t, logBuffer.String(), "Info message")
		assert.NotContains(t, logBuffer.String(), "Debug message")
		assert.NotContains(t, logBuffer.String(), "dpanic")
	})
	t.Run("log level Debug", func(t *testing.T) {
		logBuffer := bytes.Buffer{}
		log := Logger{newZapLogger(NewPrettyLogWriter(WithWriter(&logBuffer)), DebugLevel)}

		log.Info("Info message")
		log.Debug("Debug message")

		assert.Contains(t, logBuffer.String(), "Info message")
		assert.Contains(t, logBuffer.String(), "Debug message")
		assert.NotContains(t, logBuffer.String(), "dpanic")
	})
	t.Run("wrapped error keeps a single stacktrace", func(t *testing.T) {
		logBuffer := bytes.Buffer{}
		log := Logger{newZapLogger(NewPrettyLogWriter(WithWriter(&logBuffer)), InfoLevel)}

		log.Error(assert.AnError, "something failed")

		assert.Contains(t, logBuffer.String(), "something failed")
		assert.NotContains(t, logBuffer.String(), errorVerboseKey)
	})
}
