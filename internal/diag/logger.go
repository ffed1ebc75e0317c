// Package diag routes compiler diagnostics and debug output.
//
// Diagnostics go through a Logger. The default Logger is backed by
// log/slog with a Handler that prints one line per record, prefixing
// warnings and errors and coloring lines with lipgloss styles.
package diag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Logger receives formatted diagnostics.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Options configures New.
type Options struct {
	Debug bool // emit Debugf output
	Color bool // style lines by level
}

// New returns a Logger that writes to w.
func New(w io.Writer, opts Options) Logger {
	level := LevelInfo
	if opts.Debug {
		level = LevelDebug
	}
	h := NewHandler(w, &HandlerOptions{Level: level.slog(), Color: opts.Color})
	return FromSlog(slog.New(h))
}

// FromSlog adapts l to the Logger interface.
func FromSlog(l *slog.Logger) Logger {
	return &slogLogger{l: l}
}

type slogLogger struct {
	l *slog.Logger
}

func (s *slogLogger) logf(level slog.Level, format string, args []interface{}) {
	ctx := context.Background()
	if !s.l.Enabled(ctx, level) {
		return
	}
	s.l.Log(ctx, level, fmt.Sprintf(format, args...))
}

func (s *slogLogger) Debugf(format string, args ...interface{}) {
	s.logf(slog.LevelDebug, format, args)
}

func (s *slogLogger) Infof(format string, args ...interface{}) {
	s.logf(slog.LevelInfo, format, args)
}

func (s *slogLogger) Warnf(format string, args ...interface{}) {
	s.logf(slog.LevelWarn, format, args)
}

func (s *slogLogger) Errorf(format string, args ...interface{}) {
	s.logf(slog.LevelError, format, args)
}

// Discard is a Logger that drops everything.
var Discard Logger = discard{}

type discard struct{}

func (discard) Debugf(string, ...interface{}) {}
func (discard) Infof(string, ...interface{})  {}
func (discard) Warnf(string, ...interface{})  {}
func (discard) Errorf(string, ...interface{}) {}

// Entry is a message kept by a Recorder.
type Entry struct {
	Level Level
	Msg   string
}

// Recorder is a Logger that keeps every message. It is safe for
// concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) add(level Level, format string, args []interface{}) {
	r.mu.Lock()
	r.entries = append(r.entries, Entry{Level: level, Msg: fmt.Sprintf(format, args...)})
	r.mu.Unlock()
}

func (r *Recorder) Debugf(format string, args ...interface{}) { r.add(LevelDebug, format, args) }
func (r *Recorder) Infof(format string, args ...interface{})  { r.add(LevelInfo, format, args) }
func (r *Recorder) Warnf(format string, args ...interface{})  { r.add(LevelWarn, format, args) }
func (r *Recorder) Errorf(format string, args ...interface{}) { r.add(LevelError, format, args) }

// Entries returns a copy of the recorded messages.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Messages returns the recorded messages of the given level.
func (r *Recorder) Messages(level Level) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var msgs []string
	for _, e := range r.entries {
		if e.Level == level {
			msgs = append(msgs, e.Msg)
		}
	}
	return msgs
}

// Reset drops all recorded messages.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}
