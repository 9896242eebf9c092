package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ProgressLogger logs the main steps of stylesheet and declaration processing.
var ProgressLogger = New("cssom.progress", zapcore.InfoLevel)

// WarningLogger emits a warning for each non fatal error, like
// unsupported properties or values dropped while parsing a declaration block.
var WarningLogger = New("cssom.warning", zapcore.WarnLevel)

// New returns a sugared logger writing human readable lines to stdout.
func New(name string, level zapcore.Level) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(os.Stdout), level)
	return zap.New(core).Named(name).Sugar()
}

// Redirect sends the output of both package loggers to `core`,
// and returns a function restoring the previous loggers.
func Redirect(core zapcore.Core) (restore func()) {
	progress, warning := ProgressLogger, WarningLogger
	ProgressLogger = zap.New(core).Named("cssom.progress").Sugar()
	WarningLogger = zap.New(core).Named("cssom.warning").Sugar()
	return func() {
		ProgressLogger, WarningLogger = progress, warning
	}
}
