package numfmt_test

import (
	"testing"
	"time"

	"github.com/TsubasaBE/go-cellfmt/numfmt"
)

func TestFormatValueGeneral(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"nil", nil, ""},
		{"bool true", true, "TRUE"},
		{"bool false", false, "FALSE"},
		{"string passthrough", "hello", "hello"},
		{"integer float", float64(42), "42"},
		{"fractional float", float64(3.14), "3.14"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"uint8", uint8(255), "255"},
		{"float32", float32(0.5), "0.5"},
		{"unsupported type", struct{ A int }{1}, "{1}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := numfmt.FormatValue(tc.v, 0, "", false)
			if got != tc.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tc.v, got, tc.want)
			}
		})
	}
}

// TestFormatValueDecimal covers decimal precision formatting.
func TestFormatValueDecimal(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		fmtStr string
		want   string
	}{
		{"0.00 with 303.6", 303.6, "0.00", "303.60"},
		{"0.00 with zero", 0.0, "0.00", "0.00"},
		{"0.## trims trailing zero", 1.5, "0.##", "1.5"},
		{"0 integer only", 42.9, "0", "43"},
		{"half away from zero", 2.675, "0.00", "2.68"},
		{"negative half away from zero", -2.5, "0", "-3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := numfmt.FormatValue(tc.v, 164, tc.fmtStr, false)
			if got != tc.want {
				t.Errorf("FormatValue(%v, %q) = %q, want %q", tc.v, tc.fmtStr, got, tc.want)
			}
		})
	}
}

// TestFormatValueLiteralPrefix covers literal prefix + number.
func TestFormatValueLiteralPrefix(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		fmtStr string
		want   string
	}{
		{"E prefix", 40013205, `"E"0`, "E40013205"},
		{"unit suffix kg", 18000, `0" kg"`, "18000 kg"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := numfmt.FormatValue(tc.v, 164, tc.fmtStr, false)
			if got != tc.want {
				t.Errorf("FormatValue(%v, %q) = %q, want %q", tc.v, tc.fmtStr, got, tc.want)
			}
		})
	}
}

// TestFormatValuePercent covers percent scaling.
func TestFormatValuePercent(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		fmtStr string
		want   string
	}{
		{"0% with 0.75", 0.75, "0%", "75%"},
		{"0.00% with 0.1234", 0.1234, "0.00%", "12.34%"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := numfmt.FormatValue(tc.v, 164, tc.fmtStr, false)
			if got != tc.want {
				t.Errorf("FormatValue(%v, %q) = %q, want %q", tc.v, tc.fmtStr, got, tc.want)
			}
		})
	}
}

// TestFormatValueBuiltinDate covers builtin date 14 (mm-dd-yy).
func TestFormatValueBuiltinDate(t *testing.T) {
	// Serial 45412 = 2024-04-30 (1900 system).
	got := numfmt.FormatValue(float64(45412), 14, "", false)
	want := "04-30-24"
	if got != want {
		t.Errorf("FormatValue(45412, 14) = %q, want %q", got, want)
	}
}

// TestFormatValueElapsed covers the builtin elapsed format [h]:mm:ss.
func TestFormatValueElapsed(t *testing.T) {
	// 6.5 hours.
	serial := 6.5 / 24.0
	got := numfmt.FormatValue(serial, 46, "", false)
	want := "6:30:00"
	if got != want {
		t.Errorf("FormatValue(elapsed) = %q, want %q", got, want)
	}
}

// TestFormatValueDateLong covers DDDD DD/MM/YYYY.
func TestFormatValueDateLong(t *testing.T) {
	// Serial 45285 = 2023-12-25 (Monday).
	got := numfmt.FormatValue(float64(45285), 164, "DDDD DD/MM/YYYY", false)
	want := "Monday 25/12/2023"
	if got != want {
		t.Errorf("FormatValue(45285, DDDD DD/MM/YYYY) = %q, want %q", got, want)
	}
}

// TestFormatValueNegativeSections covers positive/negative sections.
func TestFormatValueNegativeSections(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		fmtStr string
		want   string
	}{
		{"positive section", 42.5, "0.00;(0.00)", "42.50"},
		{"negative section parentheses", -42.5, "0.00;(0.00)", "(42.50)"},
		{"zero falls to positive section (2-section)", 0.0, "0.00;(0.00)", "0.00"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := numfmt.FormatValue(tc.v, 164, tc.fmtStr, false)
			if got != tc.want {
				t.Errorf("FormatValue(%v, %q) = %q, want %q", tc.v, tc.fmtStr, got, tc.want)
			}
		})
	}
}

// TestFormatValueFallback verifies that FormatValue never drops a numeric
// value: codes that do not parse and templates with no output fall back to
// General.
func TestFormatValueFallback(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		fmtID  int
		fmtStr string
		want   string
	}{
		{"colour-only format", 42.5, 164, "[Red]", "42.5"},
		{"colour and day", 45285, 164, "[Red]D", "25"},
		{"unparseable code", 42.5, 164, "[Redd]0", "42.5"},
		{"unknown builtin id", 42.5, 163, "", "42.5"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := numfmt.FormatValue(tc.v, tc.fmtID, tc.fmtStr, false)
			if got != tc.want {
				t.Errorf("FormatValue(%v, %d, %q) = %q, want %q", tc.v, tc.fmtID, tc.fmtStr, got, tc.want)
			}
		})
	}
}

func TestFormatValueDate1904(t *testing.T) {
	// 1904-system serial 39813 = 2013-01-01.
	got := numfmt.FormatValue(float64(39813), 164, "yyyy-mm-dd", true)
	if got != "2013-01-01" {
		t.Errorf("FormatValue(39813, 1904) = %q, want %q", got, "2013-01-01")
	}
}

func TestFormatValueTimeTypes(t *testing.T) {
	tm := time.Date(2023, 12, 25, 18, 30, 0, 0, time.UTC)
	if got := numfmt.FormatValue(tm, 22, "", false); got != "12/25/23 18:30" {
		t.Errorf("FormatValue(time, 22) = %q, want %q", got, "12/25/23 18:30")
	}
	d := 90 * time.Minute
	if got := numfmt.FormatValue(d, 46, "", false); got != "1:30:00" {
		t.Errorf("FormatValue(duration, 46) = %q, want %q", got, "1:30:00")
	}
}

func TestFormatValueTextSection(t *testing.T) {
	got := numfmt.FormatValue("abc", 164, `0;-0;0;"[["@"]]"`, false)
	if got != "[[abc]]" {
		t.Errorf("FormatValue(text) = %q, want %q", got, "[[abc]]")
	}
}
