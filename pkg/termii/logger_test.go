package termii_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fivetwenty-io/termii/pkg/termii"
)

func TestZapLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := termii.NewZapLogger(zap.New(core))

	logger.Log("log", nil)
	logger.Error("error", nil)
	logger.Warn("warn", nil)
	logger.Debug("debug", nil)
	logger.Verbose("verbose", nil)

	entries := logs.All()
	require.Len(t, entries, 5)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.DebugLevel, entries[3].Level)
	assert.Equal(t, zapcore.DebugLevel, entries[4].Level)
	assert.Equal(t, "verbose", entries[4].Message)
}

func TestZapLogger_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := termii.NewZapLogger(zap.New(core))

	logger.Error("[Termii-SDK] Error on POST https://api.ng.termii.com/api/sms/send", map[string]interface{}{
		"context":  "Termii-SDK",
		"attempts": 3,
		"error":    errors.New("connection refused"),
	})

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "Termii-SDK", fields["context"])
	assert.EqualValues(t, 3, fields["attempts"])
	assert.Equal(t, "connection refused", fields["error"])
}

func TestNewZapLogger_Nil(t *testing.T) {
	logger := termii.NewZapLogger(nil)

	assert.NotPanics(t, func() {
		logger.Log("message", map[string]interface{}{"key": "value"})
	})
}

func TestNopLogger(t *testing.T) {
	var logger termii.Logger = termii.NopLogger{}

	assert.NotPanics(t, func() {
		logger.Log("message", nil)
		logger.Error("message", nil)
		logger.Warn("message", nil)
		logger.Debug("message", nil)
		logger.Verbose("message", nil)
	})
}
