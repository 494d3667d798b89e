// Package numfmt parses spreadsheet number-format codes and renders cell
// values with them.
//
// A code such as "#,##0.00;[Red](#,##0.00)" is parsed once by [Parse] into
// an immutable [ParsedFormat] of up to four sections (positive, negative,
// zero, text).  [ParsedFormat.Render] picks the section for a [Value] and
// fills its template.  Parsing is strict: codes the engine cannot render
// are rejected with a [*ParseError].
//
// Hosts that hold a numFmtId and an optional custom code use [FormatValue],
// which resolves builtin IDs through the styles package, caches parses in
// [DefaultCache], and falls back to General for codes that do not parse.
package numfmt

import (
	"fmt"
	"time"
)

var generalFormat = MustParse("General")

// FormatValue renders a raw cell value v using the given number format.
//
//   - numFmtID is the numFmtId from the XF record (0 = General).
//   - fmtStr is the custom format code for that ID; pass "" for builtin
//     IDs that have no custom override.
//   - date1904 selects the 1904 date system.
//
// The dynamic type of v may be nil, string, bool, any integer or float
// type, time.Time or time.Duration.  Any other type falls back to
// fmt.Sprint.
func FormatValue(v any, numFmtID int, fmtStr string, date1904 bool) string {
	return defaultCache.Format(v, numFmtID, fmtStr, date1904)
}

// valueOf converts a host value.  ok is false for nil and unsupported
// types.
func valueOf(v any) (Value, bool) {
	switch x := v.(type) {
	case string:
		return Text(x), true
	case bool:
		return Bool(x), true
	case float64:
		return Number(x), true
	case float32:
		return Number(float64(x)), true
	case int:
		return Number(float64(x)), true
	case int8:
		return Number(float64(x)), true
	case int16:
		return Number(float64(x)), true
	case int32:
		return Number(float64(x)), true
	case int64:
		return Number(float64(x)), true
	case uint:
		return Number(float64(x)), true
	case uint8:
		return Number(float64(x)), true
	case uint16:
		return Number(float64(x)), true
	case uint32:
		return Number(float64(x)), true
	case uint64:
		return Number(float64(x)), true
	case time.Time:
		return Time(x), true
	case time.Duration:
		return Duration(x), true
	}
	return Value{}, false
}

func fallbackString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
