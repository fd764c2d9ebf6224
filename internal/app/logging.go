package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	"github.com/oklahomer/go-kasumi/logger"
)

// NewLogger creates a colorized slog.Logger writing to w at the given level.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.RFC1123Z,
	})), nil
}

// SetupLogging makes l the default slog logger and routes go-kasumi's logging,
// which go-sarah and the interaction adapter use, through it.
func SetupLogging(l *slog.Logger) {
	slog.SetDefault(l)
	logger.SetLogger(&kasumiLogger{logger: l})
}

// kasumiLogger adapts slog.Logger to go-kasumi's logger.Logger.
type kasumiLogger struct {
	logger *slog.Logger
}

var _ logger.Logger = (*kasumiLogger)(nil)

func (l *kasumiLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *kasumiLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *kasumiLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *kasumiLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *kasumiLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *kasumiLogger) Warnf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *kasumiLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

func (l *kasumiLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}
