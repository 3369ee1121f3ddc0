package zaplogger

import (
	"github.com/hugolhafner/go-produce/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ logger.Base = (*zapBase)(nil)

type zapBase struct {
	l *zap.Logger
}

// New adapts a zap.Logger to the logger.Logger interface.
func New(l *zap.Logger) logger.Logger {
	return logger.Wrap(&zapBase{l: l})
}

func (z *zapBase) Level() logger.Level {
	return fromZapLevel(z.l.Level())
}

func (z *zapBase) Log(level logger.Level, msg string, kv ...any) {
	fields := make([]zap.Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, zap.Any(key, kv[i+1]))
	}

	z.l.Log(toZapLevel(level), msg, fields...)
}

func toZapLevel(level logger.Level) zapcore.Level {
	switch level {
	case logger.DebugLevel:
		return zap.DebugLevel
	case logger.WarnLevel:
		return zap.WarnLevel
	case logger.ErrorLevel:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func fromZapLevel(level zapcore.Level) logger.Level {
	switch level {
	case zap.DebugLevel:
		return logger.DebugLevel
	case zap.WarnLevel:
		return logger.WarnLevel
	case zap.ErrorLevel, zap.DPanicLevel, zap.PanicLevel, zap.FatalLevel:
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}
