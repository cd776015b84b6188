package observability

import "go.uber.org/zap"

// Logger wraps zap so internal packages log through one surface.
type Logger struct {
	l *zap.Logger
}

func NewLogger() *Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return &Logger{l: l}
}

// NewNopLogger returns a logger that discards everything. Used in tests.
func NewNopLogger() *Logger {
	return &Logger{l: zap.NewNop()}
}

func (lg *Logger) Info(msg string, fields ...zap.Field) {
	lg.l.Info(msg, fields...)
}

func (lg *Logger) Warn(msg string, fields ...zap.Field) {
	lg.l.Warn(msg, fields...)
}

func (lg *Logger) Error(msg string, fields ...zap.Field) {
	lg.l.Error(msg, fields...)
}

func (lg *Logger) Sync() error {
	return lg.l.Sync()
}
