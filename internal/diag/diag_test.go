package diag

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{})

	log.Debugf("hidden %d", 1)
	log.Infof("SCOPE: %s", "ROOT")
	log.Warnf("variable %s shadows", "a")
	log.Errorf("undeclared variable %s used on line %d", "b", 3)

	want := "SCOPE: ROOT\n" +
		"Warning: variable a shadows\n" +
		"Error: undeclared variable b used on line 3\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Debug: true})
	log.Debugf("tree %s", "(+ 1 2)")

	if got := buf.String(); got != "tree (+ 1 2)\n" {
		t.Errorf("output = %q", got)
	}
}

func TestLoggerColor(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Color: true})
	log.Errorf("boom")

	if !strings.Contains(buf.String(), "Error: boom") {
		t.Errorf("output = %q", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Errorf("output not newline terminated: %q", buf.String())
	}
}

func TestHandlerAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, nil)).With("file", "a.cal").WithGroup("check")
	l.Warn("shadowed", "line", 3)

	want := "Warning: shadowed file=a.cal check.line=3\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, &HandlerOptions{Level: slog.LevelError}))
	l.Warn("dropped")
	l.Error("kept")

	if got := buf.String(); got != "Error: kept\n" {
		t.Errorf("output = %q", got)
	}
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want Level
	}{
		{slog.LevelDebug, LevelDebug},
		{slog.LevelDebug + 2, LevelDebug},
		{slog.LevelInfo, LevelInfo},
		{slog.LevelWarn, LevelWarn},
		{slog.LevelError, LevelError},
		{slog.LevelError + 4, LevelError},
	}
	for _, tt := range tests {
		if got := levelOf(tt.in); got != tt.want {
			t.Errorf("levelOf(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if tt.want.slog() > tt.in {
			t.Errorf("%v.slog() = %v above %v", tt.want, tt.want.slog(), tt.in)
		}
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Debugf("d")
	r.Infof("i")
	r.Warnf("w %d", 1)
	r.Errorf("e %d", 1)
	r.Errorf("e %d", 2)

	if n := len(r.Entries()); n != 5 {
		t.Errorf("Entries() len = %d, want 5", n)
	}
	errs := r.Messages(LevelError)
	if len(errs) != 2 || errs[0] != "e 1" || errs[1] != "e 2" {
		t.Errorf("Messages(LevelError) = %v", errs)
	}
	if w := r.Messages(LevelWarn); len(w) != 1 || w[0] != "w 1" {
		t.Errorf("Messages(LevelWarn) = %v", w)
	}

	r.Reset()
	if n := len(r.Entries()); n != 0 {
		t.Errorf("Entries() after Reset = %d", n)
	}
}

func TestRecorderConcurrent(t *testing.T) {
	var r Recorder
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Infof("worker %d", i)
		}(i)
	}
	wg.Wait()

	if n := len(r.Messages(LevelInfo)); n != 8 {
		t.Errorf("got %d messages, want 8", n)
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic.
	Discard.Debugf("x")
	Discard.Infof("x")
	Discard.Warnf("x")
	Discard.Errorf("x")
}
