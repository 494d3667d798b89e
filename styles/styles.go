// Package styles holds the builtin number-format table and the small
// XF-index → number-format indirection a host workbook uses to find the
// format code of a cell.  It has no dependency on the rendering engine so
// that both the engine and hosts can import it.
package styles

import (
	"github.com/TsubasaBE/go-cellfmt/internal/dateformat"
)

// FirstCustomID is the first numFmtId available to custom formats.  IDs
// below it are reserved for builtin formats.
const FirstCustomID = 164

// Format codes of the builtin table.
const (
	General        = "General"
	Text           = "@"
	Number         = "0"
	Number00       = "0.00"
	NumberComma    = "#,##0"
	NumberComma00  = "#,##0.00"
	Percentage     = "0%"
	Percentage00   = "0.00%"
	Scientific     = "0.00E+00"
	FractionOne    = "# ?/?"
	FractionTwo    = "# ??/??"
	DateMMDDYY     = "mm-dd-yy"
	DateDMMMYY     = "d-mmm-yy"
	DateDMMM       = "d-mmm"
	DateMMMYY      = "mmm-yy"
	TimeHMMAMPM    = "h:mm AM/PM"
	TimeHMMSSAMPM  = "h:mm:ss AM/PM"
	TimeHMM        = "h:mm"
	TimeHMMSS      = "h:mm:ss"
	DateTimeMDYHMM = "m/d/yy h:mm"
	TimeMMSS       = "mm:ss"
	ElapsedHMMSS   = "[h]:mm:ss"
	TimeMMSS0      = "mm:ss.0"
)

// Common format codes outside the builtin table.  Files that use them carry
// the code in a custom format record.
const (
	DateYYYYMMDD2     = "yyyy-mm-dd"
	DateYYMMDD        = "yy-mm-dd"
	DateDDMMYY        = "dd/mm/yy"
	DateDMYSlash      = "d/m/y"
	DateDMYMinus      = "d-m-y"
	DateDMMinus       = "d-m"
	DateMYMinus       = "m-y"
	DateDateTime      = "yyyy-mm-dd h:mm:ss"
	DateTimedelta     = "[hh]:mm:ss"
	NumberCommaDash   = "#,##0.00_-"
	CurrencyUSDSimple = `"$"#,##0.00_-`
	CurrencyEURSimple = `[$€-407]#,##0.00_-`
)

// BuiltInNumFmt maps builtin numFmtId values to their format codes as
// defined by ECMA-376 §18.8.30.  IDs 5–8 use the en-US currency symbol.
// The locale-specific IDs 23–36 and 50 upward have no fixed code and are
// not builtin here; files that use them carry their own format record.
var BuiltInNumFmt = map[int]string{
	0:  General,
	1:  Number,
	2:  Number00,
	3:  NumberComma,
	4:  NumberComma00,
	5:  `$#,##0_);($#,##0)`,
	6:  `$#,##0_);[Red]($#,##0)`,
	7:  `$#,##0.00_);($#,##0.00)`,
	8:  `$#,##0.00_);[Red]($#,##0.00)`,
	9:  Percentage,
	10: Percentage00,
	11: Scientific,
	12: FractionOne,
	13: FractionTwo,
	14: DateMMDDYY,
	15: DateDMMMYY,
	16: DateDMMM,
	17: DateMMMYY,
	18: TimeHMMAMPM,
	19: TimeHMMSSAMPM,
	20: TimeHMM,
	21: TimeHMMSS,
	22: DateTimeMDYHMM,
	37: `#,##0_);(#,##0)`,
	38: `#,##0_);[Red](#,##0)`,
	39: `#,##0.00_);(#,##0.00)`,
	40: `#,##0.00_);[Red](#,##0.00)`,
	41: `_(* #,##0_);_(* \(#,##0\);_(* "-"_);_(@_)`,
	42: `_("$"* #,##0_);_("$"* \(#,##0\);_("$"* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* \(#,##0.00\);_(* "-"??_);_(@_)`,
	44: `_("$"* #,##0.00_);_("$"* \(#,##0.00\);_("$"* "-"??_);_(@_)`,
	45: TimeMMSS,
	46: ElapsedHMMSS,
	47: TimeMMSS0,
	48: "##0.0E+0",
	49: Text,
}

// BuiltIn returns the format code of builtin id.
func BuiltIn(id int) (string, bool) {
	s, ok := BuiltInNumFmt[id]
	return s, ok
}

// IsBuiltIn reports whether id names a builtin format.
func IsBuiltIn(id int) bool {
	_, ok := BuiltInNumFmt[id]
	return ok
}

// BuiltInID returns the smallest builtin id whose code is exactly code.
func BuiltInID(code string) (int, bool) {
	best := -1
	for id, s := range BuiltInNumFmt {
		if s == code && (best < 0 || id < best) {
			best = id
		}
	}
	return best, best >= 0
}

// Resolve returns the effective format code for a numFmtId and optional
// custom code: the custom code when non-empty, the builtin code when id is
// known, otherwise "General".
func Resolve(id int, custom string) string {
	if custom != "" {
		return custom
	}
	if s, ok := BuiltInNumFmt[id]; ok {
		return s
	}
	return General
}

// XFStyle holds the number-format part of one XF (cell-format) record.
type XFStyle struct {
	// NumFmtID is the numFmtId stored in the XF record.  Values below
	// FirstCustomID are builtin formats.
	NumFmtID int
	// FormatStr is the custom format code for NumFmtID, or "" for builtin
	// IDs without an override.
	FormatStr string
}

// Code returns the effective format code of the style.
func (x XFStyle) Code() string {
	return Resolve(x.NumFmtID, x.FormatStr)
}

// StyleTable maps XF index → XFStyle.  The slice index is the 0-based XF
// index stored in cell records.
type StyleTable []XFStyle

// IsDate reports whether the XF at index s has a date, time or elapsed-time
// number format.  It returns false when s is out of range.
//
// Time-only builtin IDs 18–21 count as dates here because their values are
// serials that need calendar conversion for display.
func (st StyleTable) IsDate(s int) bool {
	if s < 0 || s >= len(st) {
		return false
	}
	return IsDateFormatID(st[s].NumFmtID, st[s].FormatStr)
}

// FmtStr returns the effective format code for style index s, or
// "General" when s is out of range.
func (st StyleTable) FmtStr(s int) string {
	if s < 0 || s >= len(st) {
		return General
	}
	return st[s].Code()
}

// IsDateFormatID reports whether the given numFmtId and custom code form a
// date or time format.  Builtin IDs are classified by number; a custom
// code, including an override of a builtin ID, is scanned for date/time
// tokens.
func IsDateFormatID(id int, custom string) bool {
	if custom == "" {
		return dateformat.IsBuiltInDateID(id)
	}
	return dateformat.ScanFormatStr(custom)
}
