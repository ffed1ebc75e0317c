package passes

import (
	"bytes"
	"strings"
	"testing"

	"github.com/you-not-fish/calvin/internal/syntax"
)

func parse(t *testing.T, src string) *syntax.File {
	t.Helper()
	p := syntax.NewParser("test.cal", strings.NewReader(src), nil)
	f := p.Parse()
	if err := p.FirstError(); err != nil {
		t.Fatalf("syntax error: %v", err)
	}
	return f
}

func TestRunEmpty(t *testing.T) {
	f := parse(t, "let a = 1;")

	err := Run(f, nil, Config{})
	if err != nil {
		t.Fatalf("Run with no passes: %v", err)
	}
}

func TestRunSinglePass(t *testing.T) {
	f := parse(t, "let a = 1;")

	called := false
	passes := []Pass{
		{Name: "test", Fn: func(*syntax.File) { called = true }},
	}

	err := Run(f, passes, Config{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !called {
		t.Error("pass was not called")
	}
}

func TestRunMultiplePasses(t *testing.T) {
	f := parse(t, "let a = 1;")

	var order []string
	passes := []Pass{
		{Name: "first", Fn: func(*syntax.File) { order = append(order, "first") }},
		{Name: "second", Fn: func(*syntax.File) { order = append(order, "second") }},
	}

	err := Run(f, passes, Config{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("pass order = %v, want [first second]", order)
	}
}

func TestRunReorderWithVerify(t *testing.T) {
	f := parse(t, "let a = 1 * 2 + 3; b = 1 - 2 - 3;")

	var rotations int
	err := Run(f, []Pass{ReorderPass(&rotations)}, Config{Verify: true})
	if err != nil {
		t.Fatalf("Run with verify: %v", err)
	}
	if rotations != 2 {
		t.Errorf("rotations = %d, want 2", rotations)
	}
}

func TestRunVerifyAfterFails(t *testing.T) {
	f := parse(t, "let a = 1 * 2 + 3;")

	noop := Pass{
		Name:  "noop",
		Fn:    func(*syntax.File) {},
		After: syntax.VerifyPrecedence,
	}
	err := Run(f, []Pass{noop}, Config{Verify: true})
	if err == nil {
		t.Fatal("expected verification error")
	}
	if !strings.HasPrefix(err.Error(), "verify after noop: precedence verification failed") {
		t.Errorf("unexpected error: %v", err)
	}

	if err := Run(f, []Pass{noop}, Config{}); err != nil {
		t.Errorf("verification ran without Verify: %v", err)
	}
}

func TestRunVerifyBeforeFails(t *testing.T) {
	f := parse(t, "let a = 1 * 2 + 3;")
	Reorder(f)

	// A reordered tree is no longer flat.
	err := Run(f, []Pass{ReorderPass(nil)}, Config{Verify: true})
	if err == nil || !strings.HasPrefix(err.Error(), "verify before reorder: flat shape") {
		t.Errorf("err = %v", err)
	}
}

func TestRunDump(t *testing.T) {
	f := parse(t, "let a = 1 * 2 + 3;")

	var buf bytes.Buffer
	err := Run(f, []Pass{ReorderPass(nil)}, Config{DumpBefore: "*", DumpAfter: "reorder", Out: &buf})
	if err != nil {
		t.Fatal(err)
	}

	want := `--- before reorder (test.cal) ---
(let a (* 1 (+ 2 3)))
--- after reorder (test.cal) ---
(let a (+ (* 1 2) 3))
`
	if got := buf.String(); got != want {
		t.Errorf("dump mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunDumpFileFilter(t *testing.T) {
	f := parse(t, "let a = 1;")

	var buf bytes.Buffer
	cfg := Config{DumpBefore: "*", DumpFile: "other.cal", Out: &buf}
	if err := Run(f, []Pass{ReorderPass(nil)}, cfg); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected dump for filtered file:\n%s", buf.String())
	}
}
