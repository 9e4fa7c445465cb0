package http

import (
	"github.com/fivetwenty-io/termii/pkg/termii"
)

// safeLogger keeps a misbehaving logger from affecting a call.
type safeLogger struct {
	logger termii.Logger
}

func (l *safeLogger) Log(msg string, fields map[string]interface{}) {
	defer recoverLogPanic()

	l.logger.Log(msg, fields)
}

func (l *safeLogger) Error(msg string, fields map[string]interface{}) {
	defer recoverLogPanic()

	l.logger.Error(msg, fields)
}

func (l *safeLogger) Warn(msg string, fields map[string]interface{}) {
	defer recoverLogPanic()

	l.logger.Warn(msg, fields)
}

func (l *safeLogger) Debug(msg string, fields map[string]interface{}) {
	defer recoverLogPanic()

	l.logger.Debug(msg, fields)
}

func (l *safeLogger) Verbose(msg string, fields map[string]interface{}) {
	defer recoverLogPanic()

	l.logger.Verbose(msg, fields)
}

func recoverLogPanic() {
	_ = recover()
}
