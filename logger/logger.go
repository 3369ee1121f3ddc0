package logger

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "unknown"
	}
}

// Base is the minimal surface a logging backend must provide; kv is a
// flat list of alternating keys and values.
type Base interface {
	Level() Level
	Log(level Level, msg string, kv ...any)
}

type Logger interface {
	Base
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

// Wrap lifts a Base into a full Logger by deriving the leveled
// convenience methods.
func Wrap(b Base) Logger {
	return &levelWrapper{b}
}

type levelWrapper struct {
	Base
}

func (w *levelWrapper) Debug(msg string, kv ...any) {
	w.Log(DebugLevel, msg, kv...)
}

func (w *levelWrapper) Info(msg string, kv ...any) {
	w.Log(InfoLevel, msg, kv...)
}

func (w *levelWrapper) Warn(msg string, kv ...any) {
	w.Log(WarnLevel, msg, kv...)
}

func (w *levelWrapper) Error(msg string, kv ...any) {
	w.Log(ErrorLevel, msg, kv...)
}

type noop struct{}

func (noop) Level() Level {
	return InfoLevel
}

func (noop) Log(level Level, msg string, kv ...any) {
}

// NewNoop returns a Logger that discards everything. It is the default
// wherever a logger is optional.
func NewNoop() Logger {
	return Wrap(noop{})
}
