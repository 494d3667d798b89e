package numfmt_test

import (
	"errors"
	"testing"

	"github.com/TsubasaBE/go-cellfmt/numfmt"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		v         float64
		wantIdx   int
		wantMinus bool
	}{
		{"one section positive", "0", 5, 0, false},
		{"one section negative", "0", -5, 0, true},
		{"one section zero", "0", 0, 0, false},
		{"two sections zero goes first", "0;(0)", 0, 0, false},
		{"two sections negative", "0;(0)", -5, 1, false},
		{"three sections positive", "0;(0);-", 5, 0, false},
		{"three sections negative", "0;(0);-", -5, 1, false},
		{"three sections zero", "0;(0);-", 0, 2, false},
		{"four sections zero", "0;(0);-;@", 0, 2, false},
		{"condition first", "[>5]0;[>3]0;0", 6, 0, false},
		{"condition second", "[>5]0;[>3]0;0", 4, 1, false},
		{"condition else", "[>5]0;[>3]0;0", 3, 2, false},
		{"condition else negative", "[>5]0;[>3]0;0", -3, 2, true},
		{"unconditional second is else", "[>5]0;0;0", 1, 1, false},
		{"explicit sign suppresses minus", "[<0](0);[>=0]0", -3, 0, false},
		{"quoted dash keeps minus", `[<0]"N-A "0;[>=0]0`, -5, 0, true},
		{"escaped paren keeps minus", `[<0]\(0\);[>=0]0`, -5, 0, true},
		{"condition equal", "[=1]\"one\";[<>1]0", 1, 0, false},
		{"condition not equal", "[=1]\"one\";[<>1]0", 2, 1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			idx, minus, err := numfmt.MustParse(tc.code).Select(tc.v)
			if err != nil {
				t.Fatalf("Select(%v): %v", tc.v, err)
			}
			if idx != tc.wantIdx || minus != tc.wantMinus {
				t.Errorf("Select(%v) = (%d, %v), want (%d, %v)", tc.v, idx, minus, tc.wantIdx, tc.wantMinus)
			}
		})
	}
}

func TestSelectNoMatch(t *testing.T) {
	for _, code := range []string{"[>5]0", "[>5]0;[>3]0"} {
		pf := numfmt.MustParse(code)
		if _, _, err := pf.Select(1); !errors.Is(err, numfmt.ErrNoMatchingSection) {
			t.Errorf("Select(1) on %q error = %v, want ErrNoMatchingSection", code, err)
		}
		if got := pf.Render(numfmt.Number(1), numfmt.RenderContext{}); got != "###########" {
			t.Errorf("Render(1) on %q = %q, want 11 '#'", code, got)
		}
	}
}

func TestConditionMatch(t *testing.T) {
	tests := []struct {
		op   numfmt.CompareOp
		v    float64
		want bool
	}{
		{numfmt.OpLT, 1, true},
		{numfmt.OpLT, 2, false},
		{numfmt.OpLE, 2, true},
		{numfmt.OpEQ, 2, true},
		{numfmt.OpNE, 2, false},
		{numfmt.OpGT, 3, true},
		{numfmt.OpGE, 2, true},
		{numfmt.OpGE, 1, false},
	}
	for _, tc := range tests {
		c := numfmt.Condition{Op: tc.op, Value: 2}
		if got := c.Match(tc.v); got != tc.want {
			t.Errorf("[%s2].Match(%v) = %v, want %v", tc.op, tc.v, got, tc.want)
		}
	}
}

func TestRenderQuotedSignText(t *testing.T) {
	tests := []struct {
		code string
		v    float64
		want string
	}{
		{`[<0]"N-A "0;[>=0]0`, -5, "-N-A 5"},
		{`[<0]"(x) "0;[>=0]0`, -5, "-(x) 5"},
		{`[<0]\(0\);[>=0]0`, -5, "-(5)"},
		{`[<0](0);[>=0]0`, -5, "(5)"},
	}
	for _, tc := range tests {
		got := numfmt.MustParse(tc.code).Render(numfmt.Number(tc.v), numfmt.RenderContext{})
		if got != tc.want {
			t.Errorf("Render(%v) on %q = %q, want %q", tc.v, tc.code, got, tc.want)
		}
	}
}
