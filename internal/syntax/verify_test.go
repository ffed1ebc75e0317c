package syntax

import (
	"strings"
	"testing"
)

func exprOf(t *testing.T, src string) *Expression {
	t.Helper()
	f := parseFile(t, src)
	s, ok := f.Stmts[0].(*ExprStmt)
	if !ok {
		t.Fatalf("first statement is %T, want *ExprStmt", f.Stmts[0])
	}
	return s.X
}

// regroup turns the flat (op1 a (op2 b c)) into ((op1 a b) op2 c).
func regroup(x *Expression) *Expression {
	y := x.Y
	inner := &Expression{X: x.X, Op: x.Op, Y: &Expression{X: y.X}}
	return &Expression{X: inner, Op: y.Op, Y: y.Y}
}

func TestVerifyFlat(t *testing.T) {
	for _, src := range []string{
		"a = 1 * 2 + 3 - 4;",
		"x++;",
		"f[1:2] ?? (a or b) and not c;",
	} {
		if err := VerifyFlat(exprOf(t, src)); err != nil {
			t.Errorf("%s: %v", src, err)
		}
	}

	err := VerifyFlat(regroup(exprOf(t, "1 * 2 + 3;")))
	if err == nil {
		t.Fatal("expected error for grouped left operand")
	}
	if !strings.Contains(err.Error(), "flat shape verification failed") ||
		!strings.Contains(err.Error(), "left operand is *syntax.Expression") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestVerifyFlatOperatorWithoutOperand(t *testing.T) {
	x := exprOf(t, "a + b;")
	x.Y = nil
	err := VerifyFlat(x)
	if err == nil || !strings.Contains(err.Error(), "must be set together") {
		t.Errorf("err = %v", err)
	}
}

func TestVerifyPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		x       func(t *testing.T) *Expression
		wantErr string
	}{
		{"single", func(t *testing.T) *Expression { return exprOf(t, "1 + 2;") }, ""},
		{"flat_tighter_right", func(t *testing.T) *Expression { return exprOf(t, "1 + 2 * 3;") }, ""},
		{"flat_looser_right", func(t *testing.T) *Expression { return exprOf(t, "1 * 2 + 3;") },
			"* has right operand + of no tighter precedence"},
		{"flat_equal_right", func(t *testing.T) *Expression { return exprOf(t, "1 - 2 - 3;") },
			"- has right operand - of no tighter precedence"},
		{"grouped", func(t *testing.T) *Expression { return regroup(exprOf(t, "1 * 2 + 3;")) }, ""},
		{"grouped_equal", func(t *testing.T) *Expression { return regroup(exprOf(t, "1 - 2 - 3;")) }, ""},
		{"grouped_looser_left", func(t *testing.T) *Expression { return regroup(exprOf(t, "1 + 2 * 3;")) },
			"* has left operand + of looser precedence"},
		{"assignment_exempt", func(t *testing.T) *Expression { return exprOf(t, "a = b = 1 + 2;") }, ""},
		{"parens", func(t *testing.T) *Expression { return exprOf(t, "(1 + 2) * 3;") }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPrecedence(tt.x(t))
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}
