package passes

import (
	"testing"

	"github.com/you-not-fish/calvin/internal/syntax"
)

func TestReorder(t *testing.T) {
	tests := []struct {
		src       string
		want      string
		rotations int
	}{
		{"let a = 1 * 2 + 3;", "(let a (+ (* 1 2) 3))", 1},
		{"let a = 1 + 2 * 3;", "(let a (+ 1 (* 2 3)))", 0},
		{"1 - 2 - 3 - 4;", "(- (- (- 1 2) 3) 4)", 3},
		{"1 - 2 - 3;", "(- (- 1 2) 3)", 1},
		{"1 + 2 * 3 - 4;", "(- (+ 1 (* 2 3)) 4)", 2},
		{"1 * 2 + 3 * 4;", "(+ (* 1 2) (* 3 4))", 1},
		{"a < b == c < d;", "(== (< a b) (< c d))", 1},
		{"a and b or c;", "(or (and a b) c)", 1},
		{"a ?? b | c;", "(?? a (| b c))", 0},
		{"1 << 2 + 3;", "(<< 1 (+ 2 3))", 0},
		{"a + b++;", "(+ a (b ++))", 0},
		{"not a * b + c;", "(+ (* (not a) b) c)", 1},

		// assignment never rotates
		{"a = b = 1 * 2 + 3;", "(= a (= b (+ (* 1 2) 3)))", 1},
		{"x += 1 * 2 + 3;", "(+= x (+ (* 1 2) 3))", 1},
		{"a * b = c;", "(* a (= b c))", 0},

		// independent groups
		{"(1 + 2 * 3 - 4) * 5;", "(* (- (+ 1 (* 2 3)) 4) 5)", 2},
		{"f[1 * 2 + 3 : 4 - 5 - 6];", "f[(+ (* 1 2) 3):(- (- 4 5) 6)]", 2},
		{"let l = [1 * 2 + 3, 4 - 5 - 6];", "(let l [(+ (* 1 2) 3) (- (- 4 5) 6)])", 2},
		{"not (a * b + c);", "(not (+ (* a b) c))", 1},

		// statements
		{"{ a = 1 * 2 + 3; }", "{(= a (+ (* 1 2) 3))}", 1},
		{
			"if (1 * 2 + 3) { return 4 - 5 - 6; } elif (let b = 7 * 8 + 9) {} else { x = 1 * 2 + 3; }",
			"(if (+ (* 1 2) 3) {(return (- (- 4 5) 6))} elif (let b (+ (* 7 8) 9)) {} else {(= x (+ (* 1 2) 3))})",
			4,
		},
		{
			"do { a = 1 - 2 - 3; } while (a * 2 + 1 < 9) {} finally { b = 1 * 2 + 3; }",
			"(do {(= a (- (- 1 2) 3))} while (< (+ (* a 2) 1) 9) {} finally {(= b (+ (* 1 2) 3))})",
			5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			f := parse(t, tt.src)
			n := Reorder(f)
			if got := syntax.Sexpr(f); got != tt.want {
				t.Errorf("Sexpr = %s, want %s", got, tt.want)
			}
			if n != tt.rotations {
				t.Errorf("rotations = %d, want %d", n, tt.rotations)
			}
			if err := syntax.VerifyPrecedence(f); err != nil {
				t.Errorf("VerifyPrecedence: %v", err)
			}
		})
	}
}

func TestReorderIdempotent(t *testing.T) {
	f := parse(t, "let a = 1 + 2 * 3 - 4 << 5; b = [x - y - z];")
	first := Reorder(f)
	if first == 0 {
		t.Fatal("expected rotations on first run")
	}
	want := syntax.Sexpr(f)

	if n := Reorder(f); n != 0 {
		t.Errorf("second run rotated %d times", n)
	}
	if got := syntax.Sexpr(f); got != want {
		t.Errorf("second run changed tree\ngot:  %s\nwant: %s", got, want)
	}
}

// TestReorderKeepsLeaves checks that rotation only re-parents: every
// operand and operator of the source survives in order.
func TestReorderKeepsLeaves(t *testing.T) {
	src := "let r = a * b + c - d / e % f << g < h == i & j ^ k | l ?? m and n;"

	leaves := func(f *syntax.File) []string {
		var out []string
		syntax.Inspect(f, func(n syntax.Node) bool {
			if nv, ok := n.(*syntax.NameValue); ok {
				out = append(out, nv.Name.Lit)
			}
			return true
		})
		return out
	}

	f := parse(t, src)
	before := leaves(f)
	Reorder(f)
	after := leaves(f)

	if len(before) != len(after) {
		t.Fatalf("leaf count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("leaf %d = %s, want %s", i, after[i], before[i])
		}
	}
	if err := syntax.VerifyPrecedence(f); err != nil {
		t.Error(err)
	}
}

func TestReorderPositions(t *testing.T) {
	f := parse(t, "x = 1 * 2 + 3;")
	Reorder(f)

	assign := f.Stmts[0].(*syntax.ExprStmt).X
	sum := assign.Y
	if got := sum.Pos().String(); got != "test.cal:1:5" {
		t.Errorf("sum pos = %s, want test.cal:1:5", got)
	}
	prod := sum.X.(*syntax.Expression)
	if got := prod.Pos().String(); got != "test.cal:1:5" {
		t.Errorf("product pos = %s, want test.cal:1:5", got)
	}
	if got := prod.Y.Pos().String(); got != "test.cal:1:9" {
		t.Errorf("product right operand pos = %s, want test.cal:1:9", got)
	}
	if err := syntax.VerifyPrecedence(f); err != nil {
		t.Error(err)
	}
}
