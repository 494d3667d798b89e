// Package cellfmt renders spreadsheet cell values the way a spreadsheet
// application displays them, driven by number-format codes such as
// "#,##0.00" or "yyyy-mm-dd hh:mm".  No cgo is required.
//
// # Quick start
//
//	s := cellfmt.Format(42503.1234, 4, "", false)   // "42,503.12"
//	s  = cellfmt.Format(45412.0, 14, "", false)     // "04-30-24"
//	s  = cellfmt.Format(-3.5, 164, "0.0;[Red](0.0)", false) // "(3.5)"
//
// Format takes the numFmtId and optional custom code exactly as a workbook
// stores them in its XF records, so hosts that read .xlsx or .xlsb files
// can pass them through unchanged.  Parsed codes are cached process-wide.
//
// # Engine
//
// The [numfmt] package exposes the parser and renderer directly: parse a
// code once with [numfmt.Parse] and render any number of values with
// [numfmt.ParsedFormat.Render].  Parse errors are [*numfmt.ParseError]
// values that carry the section and offset of the problem.
//
// # Dates
//
// Spreadsheets store dates as serial day numbers.  [ConvertDateEx] turns a
// serial into a [time.Time] for either date system; [ConvertDate] assumes
// the 1900 system.  The [serialdate] package holds the lower-level
// conversions.
//
// # Format detection
//
// [IsDateFormat] reports whether a numFmtId and optional custom code
// describe a date or datetime format, without rendering anything.
package cellfmt

import (
	"fmt"
	"time"

	"github.com/TsubasaBE/go-cellfmt/internal/dateformat"
	"github.com/TsubasaBE/go-cellfmt/numfmt"
	"github.com/TsubasaBE/go-cellfmt/serialdate"
	"github.com/TsubasaBE/go-cellfmt/styles"
)

// Version is the current version of the go-cellfmt library.
const Version = "0.1.0"

// Format renders the cell value v with numFmtID and the custom code
// fmtStr.  Pass "" as fmtStr for builtin IDs without an override.  Codes
// that do not parse render as General.  See [numfmt.FormatValue] for the
// accepted value types.
func Format(v any, numFmtID int, fmtStr string, date1904 bool) string {
	return numfmt.FormatValue(v, numFmtID, fmtStr, date1904)
}

// FormatBuiltin renders v with builtin numFmtId id.  It returns an error
// wrapping [numfmt.ErrUnknownBuiltin] for IDs outside the builtin table.
func FormatBuiltin(v float64, id int, date1904 bool) (string, error) {
	pf, err := numfmt.DefaultCache().Builtin(id)
	if err != nil {
		return "", err
	}
	return pf.Render(numfmt.Number(v), numfmt.RenderContext{Epoch: serialdate.EpochFor(date1904)}), nil
}

// ConvertDate converts a 1900-system date serial to a [time.Time].
//
// Serial 0 is midnight on 1900-01-01 and serial 60, the phantom
// 1900-02-29, yields 1900-03-01.  The time of day is rounded to whole
// seconds.
func ConvertDate(date float64) (time.Time, error) {
	return ConvertDateEx(date, false)
}

// ConvertDateEx converts a date serial to a [time.Time] in the date system
// selected by date1904.  In the 1904 system serial 0 is 1904-01-01 and no
// leap-day correction applies.
func ConvertDateEx(date float64, date1904 bool) (time.Time, error) {
	t, err := serialdate.ToTime(date, serialdate.EpochFor(date1904))
	if err != nil {
		return time.Time{}, fmt.Errorf("cellfmt: ConvertDateEx: %w", err)
	}
	return t, nil
}

// IsDateFormat reports whether a number-format ID (and optional custom format
// string) represents a date or datetime format.
//
// For builtin IDs (id < 164) formatStr is ignored and the following are
// recognised:
//
//	14–17, 22, 27–36, 45–47, 50–58
//
// Builtin time-only IDs 18–21 are excluded; they carry no calendar date.
// Use [styles.IsDateFormatID] to include them.
//
// For custom IDs the unquoted part of formatStr is scanned for date, time
// and elapsed-time tokens.
func IsDateFormat(id int, formatStr string) bool {
	if id < styles.FirstCustomID {
		return dateformat.IsBuiltInDateID(id) && (id < 18 || id > 21)
	}
	return dateformat.ScanFormatStr(formatStr)
}
