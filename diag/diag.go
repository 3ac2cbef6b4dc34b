// Package diag is a small tag-and-level logger for driver diagnostics.
//
// Levels are ordered Off < Global < Error < Info. A Logger at level L emits
// every record whose level is <= L, except Global records, which are always
// emitted regardless of the configured level (including Off).
//
// Output is line-oriented text, one record per line:
//
//	DRV8704 - INFO: CTRL register, ISGAIN subregister, 20 write success
//
// The package avoids fmt so it can run on TinyGo targets over a UART.
package diag

import (
	"io"
	"strings"
	"sync"
)

// Level selects which records a Logger emits.
type Level uint8

const (
	Off Level = iota
	Global
	Error
	Info
)

func (l Level) String() string {
	switch l {
	case Global:
		return "global"
	case Error:
		return "error"
	case Info:
		return "info"
	default:
		return "off"
	}
}

// ParseLevel maps "global", "error" and "info" (case-insensitive) to their
// levels. Anything else is Off.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global":
		return Global
	case "error":
		return Error
	case "info":
		return Info
	default:
		return Off
	}
}

// Recorder is the sink consumed by drivers. Implementations must not block
// for long and must not fail the caller.
type Recorder interface {
	Record(lvl Level, tag string, fields ...string)
}

// Enabled reports whether a record at lvl passes a sink configured at cfg.
func Enabled(cfg, lvl Level) bool {
	if lvl == Global {
		return true
	}
	return lvl != Off && lvl <= cfg
}

// Logger writes records to an io.Writer.
type Logger struct {
	mu  sync.Mutex
	w   io.Writer
	lvl Level
	buf []byte
}

// New returns a Logger writing to w at level lvl.
func New(w io.Writer, lvl Level) *Logger {
	return &Logger{w: w, lvl: lvl, buf: make([]byte, 0, 96)}
}

func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lvl
}

// SetLevel changes the level and announces it with a Global record.
func (l *Logger) SetLevel(tag string, lvl Level) {
	l.mu.Lock()
	l.lvl = lvl
	l.mu.Unlock()
	l.Record(Global, tag, "Log level set:", lvl.String())
}

func (l *Logger) Record(lvl Level, tag string, fields ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !Enabled(l.lvl, lvl) {
		return
	}
	b := l.buf[:0]
	b = append(b, tag...)
	b = append(b, " - "...)
	b = append(b, label(lvl)...)
	b = append(b, ':')
	for _, f := range fields {
		b = append(b, ' ')
		b = append(b, f...)
	}
	b = append(b, '\n')
	l.buf = b
	_, _ = l.w.Write(b)
}

func label(lvl Level) string {
	switch lvl {
	case Info:
		return "INFO"
	case Error:
		return "ERROR"
	default:
		return "GLOBAL"
	}
}

// SetOutcome records the result of a register write and returns ok.
func SetOutcome(rec Recorder, tag, reg, field, setting string, ok bool) bool {
	if ok {
		rec.Record(Info, tag, reg, "register,", field, "subregister,", setting, "write success")
	} else {
		rec.Record(Error, tag, reg, "register,", field, "subregister,", setting, "write fail")
	}
	return ok
}

// Discard drops every record.
var Discard Recorder = discard{}

type discard struct{}

func (discard) Record(Level, string, ...string) {}
