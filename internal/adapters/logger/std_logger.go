package logger

import (
	"os"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_string_toolkit/internal/ports"
)

// StdLogger adapts the l.Logger to the ports.Logger interface.
type StdLogger struct {
	logger l.Logger
}

// NewStdLogger creates a new standard logger adapter with default configuration.
func NewStdLogger() (ports.Logger, error) {
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      os.Stdout,
		JsonFormat:  false,
		AsyncWrite:  true,
		BufferSize:  256 * 1024,      // 256KB buffer
		MaxFileSize: 5 * 1024 * 1024, // 5MB max file size
		MaxBackups:  3,
		AddSource:   true,
	})
	if err != nil {
		return nil, err
	}
	return &StdLogger{logger: logger}, nil
}

// NewCustomStdLogger creates a new standard logger with custom configuration.
func NewCustomStdLogger(config l.Config) (ports.Logger, error) {
	logger, err := l.NewStandardFactory().CreateLogger(config)
	if err != nil {
		return nil, err
	}
	return &StdLogger{logger: logger}, nil
}

// FromExisting creates a new StdLogger from an existing l.Logger.
func FromExisting(logger l.Logger) ports.Logger {
	return &StdLogger{logger: logger}
}

// Debug logs a debug message.
func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	s.logger.Debug(msg, keysAndValues...)
}

// Info logs an info message.
func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, keysAndValues...)
}

// Close closes the logger.
func (s *StdLogger) Close() error {
	return s.logger.Close()
}

// NopLogger discards every message. It backs the zero-configuration
// convenience API and keeps tests quiet.
type NopLogger struct{}

// NewNopLogger creates a logger that discards everything.
func NewNopLogger() ports.Logger {
	return NopLogger{}
}

// Debug is a no-op.
func (NopLogger) Debug(string, ...interface{}) {}

// Info is a no-op.
func (NopLogger) Info(string, ...interface{}) {}

// Warn is a no-op.
func (NopLogger) Warn(string, ...interface{}) {}

// Error is a no-op.
func (NopLogger) Error(string, ...interface{}) {}

// Close is a no-op.
func (NopLogger) Close() error { return nil }
