package numtext_test

import (
	"errors"
	"math"
	"testing"

	"github.com/TsubasaBE/go-cellfmt/numtext"
)

func TestSerialize(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		sep  rune
		want string
	}{
		{"integer", 42, '.', "42"},
		{"fraction", 3.14, '.', "3.14"},
		{"fifteen digits", 0.1 + 0.2, '.', "0.3"},
		{"negative", -42503.1234, '.', "-42503.1234"},
		{"large uses exponent", 1e20, '.', "1e+20"},
		{"small uses exponent", 0.00001, '.', "1e-05"},
		{"small stays fixed", 0.0001, '.', "0.0001"},
		{"comma separator", 3.5, ',', "3,5"},
		{"zero", 0, ',', "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := numtext.SerializeSep(tc.v, tc.sep)
			if got != tc.want {
				t.Errorf("SerializeSep(%v, %q) = %q, want %q", tc.v, tc.sep, got, tc.want)
			}
		})
	}
}

func TestLegacy(t *testing.T) {
	if got := numtext.Legacy(3.14); got != "3.140000" {
		t.Errorf("Legacy(3.14) = %q, want %q", got, "3.140000")
	}
	if got := numtext.LegacySep(-0.5, ','); got != "-0,500000" {
		t.Errorf("LegacySep(-0.5, ',') = %q, want %q", got, "-0,500000")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		sep     rune
		want    float64
		wantErr bool
	}{
		{name: "dot", s: "3.14", sep: '.', want: 3.14},
		{name: "comma", s: "3,14", sep: ',', want: 3.14},
		{name: "exponent", s: "1e+20", sep: '.', want: 1e20},
		{name: "padded", s: "  7 ", sep: '.', want: 7},
		{name: "empty", s: "", sep: '.', wantErr: true},
		{name: "garbage", s: "abc", sep: '.', wantErr: true},
		{name: "dot under comma locale", s: "3.14", sep: ',', wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := numtext.Parse(tc.s, tc.sep)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tc.s, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): unexpected error: %v", tc.s, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.s, got, tc.want)
			}
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := numtext.Parse("1.2.3", '.')
	if !errors.Is(err, numtext.ErrSyntax) {
		t.Errorf("Parse(1.2.3) error = %v, want ErrSyntax", err)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 3.14159, 42503.1234, 1e-7, 123456789012345} {
		s := numtext.SerializeSep(v, ',')
		got, err := numtext.Parse(s, ',')
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if math.Abs(got-v) > math.Abs(v)*1e-14 {
			t.Errorf("round trip %v -> %q -> %v", v, s, got)
		}
	}
}

func TestDigits(t *testing.T) {
	tests := []struct {
		v        float64
		frac     int
		wantInt  string
		wantFrac string
	}{
		{3.14159, 2, "3", "14"},
		{2.5, 0, "3", ""},
		{-2.5, 0, "3", ""},
		{0.125, 2, "0", "13"},
		{2.675, 2, "2", "68"},
		{9.999, 2, "10", "00"},
		{0.0004, 3, "0", "000"},
		{0.0005, 3, "0", "001"},
		{42503.1234, 0, "42503", ""},
		{1e20, 1, "100000000000000000000", "0"},
		{0, 3, "0", "000"},
		{6.3, 2, "6", "30"},
	}
	for _, tc := range tests {
		gotInt, gotFrac := numtext.Digits(tc.v, tc.frac)
		if gotInt != tc.wantInt || gotFrac != tc.wantFrac {
			t.Errorf("Digits(%v, %d) = (%q, %q), want (%q, %q)",
				tc.v, tc.frac, gotInt, gotFrac, tc.wantInt, tc.wantFrac)
		}
	}
}
