package logging

import (
	"time"

	"github.com/rs/zerolog"
)

// LogEvent provides a fluent interface for structured logging with
// type-safe field methods. It wraps zerolog.Event; all methods are safe
// on a suppressed event.
type LogEvent interface {
	Str(key, val string) LogEvent
	Strs(key string, vals []string) LogEvent
	Int(key string, val int) LogEvent
	Int64(key string, val int64) LogEvent
	Uint64(key string, val uint64) LogEvent
	Float64(key string, val float64) LogEvent
	Bool(key string, val bool) LogEvent
	Time(key string, val time.Time) LogEvent
	Dur(key string, val time.Duration) LogEvent
	Err(err error) LogEvent
	AnErr(key string, err error) LogEvent
	Bytes(key string, val []byte) LogEvent
	Hex(key string, val []byte) LogEvent
	Interface(key string, val interface{}) LogEvent
	Msg(msg string)
	Msgf(format string, v ...interface{})
	Send()
}

// logEvent implements LogEvent by wrapping zerolog.Event. A nil event is
// the suppressed case.
type logEvent struct {
	event *zerolog.Event
}

func newLogEvent(e *zerolog.Event) LogEvent {
	return &logEvent{event: e}
}

func (e *logEvent) Str(key, val string) LogEvent {
	if e.event != nil {
		e.event.Str(key, val)
	}
	return e
}

func (e *logEvent) Strs(key string, vals []string) LogEvent {
	if e.event != nil {
		e.event.Strs(key, vals)
	}
	return e
}

func (e *logEvent) Int(key string, val int) LogEvent {
	if e.event != nil {
		e.event.Int(key, val)
	}
	return e
}

func (e *logEvent) Int64(key string, val int64) LogEvent {
	if e.event != nil {
		e.event.Int64(key, val)
	}
	return e
}

func (e *logEvent) Uint64(key string, val uint64) LogEvent {
	if e.event != nil {
		e.event.Uint64(key, val)
	}
	return e
}

func (e *logEvent) Float64(key string, val float64) LogEvent {
	if e.event != nil {
		e.event.Float64(key, val)
	}
	return e
}

func (e *logEvent) Bool(key string, val bool) LogEvent {
	if e.event != nil {
		e.event.Bool(key, val)
	}
	return e
}

func (e *logEvent) Time(key string, val time.Time) LogEvent {
	if e.event != nil {
		e.event.Time(key, val)
	}
	return e
}

func (e *logEvent) Dur(key string, val time.Duration) LogEvent {
	if e.event != nil {
		e.event.Dur(key, val)
	}
	return e
}

func (e *logEvent) Err(err error) LogEvent {
	if e.event != nil {
		e.event.Err(err)
	}
	return e
}

func (e *logEvent) AnErr(key string, err error) LogEvent {
	if e.event != nil {
		e.event.AnErr(key, err)
	}
	return e
}

func (e *logEvent) Bytes(key string, val []byte) LogEvent {
	if e.event != nil {
		e.event.Bytes(key, val)
	}
	return e
}

func (e *logEvent) Hex(key string, val []byte) LogEvent {
	if e.event != nil {
		e.event.Hex(key, val)
	}
	return e
}

func (e *logEvent) Interface(key string, val interface{}) LogEvent {
	if e.event != nil {
		e.event.Interface(key, val)
	}
	return e
}

func (e *logEvent) Msg(msg string) {
	if e.event != nil {
		e.event.Msg(msg)
	}
}

func (e *logEvent) Msgf(format string, v ...interface{}) {
	if e.event != nil {
		e.event.Msgf(format, v...)
	}
}

func (e *logEvent) Send() {
	if e.event != nil {
		e.event.Send()
	}
}

// moduleLogger implements Logger. Records carry the module name and are
// filtered by that module's effective level, resolved per event against
// the live configuration.
type moduleLogger struct {
	svc  *Service
	name string
}

func (m *moduleLogger) Name() string {
	if m == nil {
		return emptyString
	}
	return m.name
}

// event resolves the module's effective level and returns a suppressed
// event when the record does not pass it.
func (m *moduleLogger) event(level zerolog.Level) LogEvent {
	if m == nil || m.svc == nil || !m.svc.isInitialized.Load() {
		return newLogEvent(nil)
	}
	cfg := m.svc.cfg.Load()
	if cfg == nil {
		return newLogEvent(nil)
	}

	effective := cfg.levelFor(m.name)
	if effective == zerolog.Disabled || level < effective {
		return newLogEvent(nil)
	}

	scoped := cfg.root.Level(effective)
	return newLogEvent(scoped.WithLevel(level).Str("module", m.name))
}

func (m *moduleLogger) TraceWith() LogEvent { return m.event(zerolog.TraceLevel) }
func (m *moduleLogger) DebugWith() LogEvent { return m.event(zerolog.DebugLevel) }
func (m *moduleLogger) InfoWith() LogEvent  { return m.event(zerolog.InfoLevel) }
func (m *moduleLogger) WarnWith() LogEvent  { return m.event(zerolog.WarnLevel) }
func (m *moduleLogger) ErrorWith() LogEvent { return m.event(zerolog.ErrorLevel) }
