package syntax

import "testing"

func TestPosString(t *testing.T) {
	tests := []struct {
		name    string
		pos     Pos
		wantStr string
	}{
		{"with filename", NewPos("test.cal", 10, 5), "test.cal:10:5"},
		{"without filename", NewPos("", 10, 5), "10:5"},
		{"line 1 col 1", NewPos("main.cal", 1, 1), "main.cal:1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.wantStr {
				t.Errorf("Pos.String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPosIsValid(t *testing.T) {
	if (Pos{}).IsValid() {
		t.Error("zero Pos should be invalid")
	}
	if !NewPos("", 1, 1).IsValid() {
		t.Error("1:1 should be valid")
	}
}

func TestPosBefore(t *testing.T) {
	tests := []struct {
		p, q Pos
		want bool
	}{
		{NewPos("", 1, 1), NewPos("", 1, 2), true},
		{NewPos("", 1, 9), NewPos("", 2, 1), true},
		{NewPos("", 2, 1), NewPos("", 1, 9), false},
		{NewPos("", 3, 3), NewPos("", 3, 3), false},
	}
	for _, tt := range tests {
		if got := tt.p.Before(tt.q); got != tt.want {
			t.Errorf("%s.Before(%s) = %v, want %v", tt.p, tt.q, got, tt.want)
		}
	}
}

func TestPosOffset(t *testing.T) {
	toks := Tokenize("", "let  a")
	if got := toks[1].Pos.Offset(); got != 5 {
		t.Errorf("offset of a = %d, want 5", got)
	}
}
