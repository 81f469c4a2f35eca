package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger. Timestamps are wall-clock with
// centiseconds, e.g. "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}

// stopwatch logs a step together with its elapsed time.
type stopwatch struct {
	logger  *log.Logger
	started time.Time
}

func startStopwatch(l *log.Logger) stopwatch {
	return stopwatch{logger: l, started: time.Now()}
}

// lap logs msg at info with keyvals and a "took" field.
func (s stopwatch) lap(msg string, keyvals ...any) {
	took := time.Since(s.started).Round(time.Millisecond)
	s.logger.Info(msg, append(keyvals, "took", took)...)
}

type loggerCtxKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

// loggerFromContext returns the logger set by the root command. Outside a
// command it falls back to log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	l, ok := ctx.Value(loggerCtxKey{}).(*log.Logger)
	if !ok {
		return log.Default()
	}
	return l
}
