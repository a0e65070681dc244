package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel selects the verbosity of the application logger.
type LogLevel int

const (
	// LogLevelNormal logs informational messages and above.
	LogLevelNormal LogLevel = iota
	// LogLevelDebug additionally logs debug messages.
	LogLevelDebug
	// LogLevelQuiet logs errors only.
	LogLevelQuiet
)

// NewApplicationLogger constructs a zap logger configured for human-readable console output.
func NewApplicationLogger() (*zap.Logger, error) {
	return NewLeveledLogger(LogLevelNormal)
}

// NewLeveledLogger constructs the console logger at the requested verbosity.
func NewLeveledLogger(level LogLevel) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.LevelKey = ""
	config.EncoderConfig.NameKey = ""
	config.EncoderConfig.CallerKey = ""
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = ""
	switch level {
	case LogLevelDebug:
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		config.EncoderConfig.LevelKey = "level"
	case LogLevelQuiet:
		config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	}
	return config.Build()
}
