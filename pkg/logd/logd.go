package logd

import (
	"os"
	"sync"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

const (
	LogLevelEnv = "LOG_LEVEL"

	stacktraceKey = "stacktrace"
)

// Logger wraps logr.Logger to add a Debug level, everything else is passed through.
type Logger struct {
	logr.Logger
}

func (l Logger) Debug(message string, keysAndValues ...any) {
	l.V(int(DebugLevel)).Info(message, keysAndValues...)
}

func (l Logger) WithName(name string) Logger {
	return Logger{l.Logger.WithName(name)}
}

var (
	baseLogger     Logger
	baseLoggerOnce sync.Once
)

// Get returns the process-wide base logger, derived loggers should be created via WithName.
// Creating a full zap logger is rather expensive, deriving from the base one is cheap.
func Get() Logger {
	baseLoggerOnce.Do(func() {
		logLevel, err := readLogLevelFromEnv()
		baseLogger = Logger{newZapLogger(NewPrettyLogWriter(), logLevel)}

		if err != nil {
			baseLogger.Error(err, "failed to read log level, falling back to default", "default", logLevel.String())
		}
	})

	return baseLogger
}

func LogBaseLoggerSettings() {
	logLevel, _ := readLogLevelFromEnv()
	Get().Info("logging configured", "logLevel", logLevel.String())
}

type LogLevel int

const (
	InfoLevel LogLevel = iota
	DebugLevel
	TraceLevel
)

func (level LogLevel) String() string {
	switch level {
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	case TraceLevel:
		return "trace"
	}

	return "unknown"
}

func readLogLevelFromEnv() (LogLevel, error) {
	switch raw := os.Getenv(LogLevelEnv); raw {
	case "", "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "trace":
		return TraceLevel, nil
	default:
		return InfoLevel, errors.Errorf("unknown log level %s", raw)
	}
}
