//go:build unit

package zaplogger_test

import (
	"testing"

	"github.com/hugolhafner/go-produce/logger"
	"github.com/hugolhafner/go-produce/plugins/zaplogger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(t *testing.T) (logger.Logger, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	return zaplogger.New(zap.New(core)), logs
}

func TestNew_FieldsAndLevels(t *testing.T) {
	t.Parallel()

	l, logs := newObserved(t)

	l.Warn("record rejected", "topic", "orders", "partition", int32(-5))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, "record rejected", entries[0].Message)

	fields := entries[0].ContextMap()
	require.Equal(t, "orders", fields["topic"])
	require.EqualValues(t, -5, fields["partition"])
}

func TestNew_SkipsMalformedKeys(t *testing.T) {
	t.Parallel()

	l, logs := newObserved(t)

	// non-string key and a trailing dangling key are both dropped
	l.Info("sent", 42, "ignored", "topic", "orders", "dangling")

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	require.Equal(t, map[string]any{"topic": "orders"}, fields)
}

func TestNew_LevelMapping(t *testing.T) {
	t.Parallel()

	l, logs := newObserved(t)

	l.Debug("d")
	l.Info("i")
	l.Error("e")

	entries := logs.All()
	require.Len(t, entries, 3)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, zapcore.InfoLevel, entries[1].Level)
	require.Equal(t, zapcore.ErrorLevel, entries[2].Level)

	require.Equal(t, logger.DebugLevel, l.Level())
}
