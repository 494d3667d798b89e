package cellfmt_test

import (
	"errors"
	"math"
	"testing"
	"time"

	cellfmt "github.com/TsubasaBE/go-cellfmt"
	"github.com/TsubasaBE/go-cellfmt/numfmt"
	"github.com/TsubasaBE/go-cellfmt/serialdate"
)

// ── ConvertDate ───────────────────────────────────────────────────────────────

func TestConvertDate(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		want    time.Time
		wantErr bool
	}{
		{
			name:  "serial 0 gives 1900-01-01",
			input: 0,
			want:  time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "serial 0 with time component",
			input: 0.5,
			want:  time.Date(1900, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "serial 1 gives 1900-01-01 (base+1 day)",
			input: 1,
			want:  time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "serial 60 gives 1900-03-01 (phantom leap day)",
			input: 60,
			want:  time.Date(1900, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "serial 61 compensates for Lotus leap-year bug",
			input: 61,
			want:  time.Date(1900, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "41235.45578",
			input: 41235.45578,
			want:  time.Date(2012, 11, 22, 10, 56, 19, 0, time.UTC),
		},
		{
			name:  "last second rounds into next day",
			input: 45412.9999999,
			want:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "NaN returns error", input: math.NaN(), wantErr: true},
		{name: "negative serial returns error", input: -1, wantErr: true},
		{name: "serial past 9999-12-31 returns error", input: 3_000_000, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cellfmt.ConvertDate(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil (result=%v)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ConvertDate(%v) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

// ── ConvertDateEx ─────────────────────────────────────────────────────────────

func TestConvertDateEx(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		date1904 bool
		want     time.Time
		wantErr  bool
	}{
		{
			name:  "1900: serial 0 gives 1900-01-01",
			input: 0,
			want:  time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "1900: 41235.45578",
			input: 41235.45578,
			want:  time.Date(2012, 11, 22, 10, 56, 19, 0, time.UTC),
		},
		{
			name:     "1904: serial 0 gives 1904-01-01",
			input:    0,
			date1904: true,
			want:     time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "1904: serial 0 with time component",
			input:    0.5,
			date1904: true,
			want:     time.Date(1904, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "1904: serial 1 gives 1904-01-02",
			input:    1,
			date1904: true,
			want:     time.Date(1904, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "1904: serial 365 gives 1904-12-31",
			input:    365,
			date1904: true,
			want:     time.Date(1904, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			// 39813 + 1462 = 41275, which is 2013-01-01 in the 1900 system.
			name:     "1904: serial 39813 gives 2013-01-01",
			input:    39813,
			date1904: true,
			want:     time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "1904: NaN returns error", input: math.NaN(), date1904: true, wantErr: true},
		{name: "1904: +Inf returns error", input: math.Inf(1), date1904: true, wantErr: true},
		{name: "1904: negative serial returns error", input: -1, date1904: true, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cellfmt.ConvertDateEx(tc.input, tc.date1904)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil (result=%v)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ConvertDateEx(%v, %v) = %v, want %v", tc.input, tc.date1904, got, tc.want)
			}
		})
	}
}

func TestConvertDateExErrorKinds(t *testing.T) {
	if _, err := cellfmt.ConvertDateEx(-1, false); !errors.Is(err, serialdate.ErrNegativeSerial) {
		t.Errorf("ConvertDateEx(-1) error = %v, want ErrNegativeSerial", err)
	}
	if _, err := cellfmt.ConvertDateEx(math.NaN(), false); !errors.Is(err, serialdate.ErrSerialRange) {
		t.Errorf("ConvertDateEx(NaN) error = %v, want ErrSerialRange", err)
	}
}

// ── IsDateFormat ──────────────────────────────────────────────────────────────

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		name      string
		id        int
		formatStr string
		want      bool
	}{
		// ── built-in date IDs ─────────────────────────────────────────────────
		{name: "built-in 14 (mm-dd-yy)", id: 14, want: true},
		{name: "built-in 15", id: 15, want: true},
		{name: "built-in 16", id: 16, want: true},
		{name: "built-in 17", id: 17, want: true},
		{name: "built-in 22 (m/d/yy h:mm)", id: 22, want: true},
		{name: "built-in 27", id: 27, want: true},
		{name: "built-in 36", id: 36, want: true},
		{name: "built-in 45", id: 45, want: true},
		{name: "built-in 46", id: 46, want: true},
		{name: "built-in 47", id: 47, want: true},
		{name: "built-in 50", id: 50, want: true},
		{name: "built-in 58", id: 58, want: true},
		// ── built-in non-date IDs ─────────────────────────────────────────────
		{name: "built-in 0 (General)", id: 0, want: false},
		{name: "built-in 1 (0)", id: 1, want: false},
		{name: "built-in 4 (#,##0.00)", id: 4, want: false},
		{name: "built-in 11 (0.00E+00)", id: 11, want: false},
		{name: "built-in 49 (@)", id: 49, want: false},
		{name: "boundary 13", id: 13, want: false},
		{name: "time-only 18", id: 18, want: false},
		{name: "time-only 21", id: 21, want: false},
		{name: "boundary 23", id: 23, want: false},
		{name: "boundary 163", id: 163, want: false},
		{name: "builtin id ignores format string", id: 1, formatStr: "yyyy", want: false},
		// ── custom format IDs (>= 164) ────────────────────────────────────────
		{name: "custom yyyy-mm-dd", id: 164, formatStr: "yyyy-mm-dd", want: true},
		{name: "custom dd/mm/yyyy hh:mm", id: 165, formatStr: "dd/mm/yyyy hh:mm", want: true},
		{name: "custom numeric 0.00", id: 166, formatStr: "0.00", want: false},
		{name: "custom text @", id: 167, formatStr: "@", want: false},
		{name: "custom quoted d", id: 168, formatStr: `"date"0.00`, want: false},
		{name: "custom bracketed y", id: 169, formatStr: `[$-409]0.00`, want: false},
		{name: "custom YYYY", id: 170, formatStr: "YYYY", want: true},
		{name: "custom MM", id: 171, formatStr: "MM", want: true},
		{name: "custom DD", id: 172, formatStr: "DD", want: true},
		{name: "custom HH", id: 173, formatStr: "HH:MM", want: true},
		{name: "custom elapsed", id: 174, formatStr: "[h]:mm", want: true},
		{name: "custom empty", id: 175, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := cellfmt.IsDateFormat(tc.id, tc.formatStr)
			if got != tc.want {
				t.Errorf("IsDateFormat(%d, %q) = %v, want %v", tc.id, tc.formatStr, got, tc.want)
			}
		})
	}
}

// ── Format ────────────────────────────────────────────────────────────────────

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		v        any
		id       int
		fmtStr   string
		date1904 bool
		want     string
	}{
		{"general float", 42503.1234, 0, "", false, "42503.1234"},
		{"builtin thousands", 42503.1234, 4, "", false, "42,503.12"},
		{"builtin date", 45412.0, 14, "", false, "04-30-24"},
		{"builtin date 1904", 43950.0, 14, "", true, "04-30-24"},
		{"custom negative section", -3.5, 164, "0.0;[Red](0.0)", false, "(3.5)"},
		{"custom overrides builtin id", 0.25, 9, "0.0%", false, "25.0%"},
		{"string", "abc", 4, "", false, "abc"},
		{"bool", true, 4, "", false, "TRUE"},
		{"nil", nil, 4, "", false, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := cellfmt.Format(tc.v, tc.id, tc.fmtStr, tc.date1904)
			if got != tc.want {
				t.Errorf("Format(%v, %d, %q) = %q, want %q", tc.v, tc.id, tc.fmtStr, got, tc.want)
			}
		})
	}
}

func TestFormatBuiltin(t *testing.T) {
	got, err := cellfmt.FormatBuiltin(0.5, 9, false)
	if err != nil {
		t.Fatalf("FormatBuiltin(0.5, 9): %v", err)
	}
	if got != "50%" {
		t.Errorf("FormatBuiltin(0.5, 9) = %q, want %q", got, "50%")
	}
	for _, id := range []int{23, 27, 50} {
		if _, err := cellfmt.FormatBuiltin(1, id, false); !errors.Is(err, numfmt.ErrUnknownBuiltin) {
			t.Errorf("FormatBuiltin(1, %d) error = %v, want ErrUnknownBuiltin", id, err)
		}
	}
}
