package logger

import (
	"go.uber.org/zap"
)

// New builds the process logger: JSON output in production, console output otherwise.
func New(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// Close flushes buffered entries. Sync errors on stdout/stderr are expected on some platforms and ignored.
func Close(l *zap.Logger) {
	_ = l.Sync()
}
