// Package dateformat classifies number-format codes as date/time formats
// without fully validating them.
//
// The strict parser in numfmt rejects codes it cannot render, but hosts
// still need to know whether a cell carrying such a code holds a date
// serial (for example codes with [DBNum1] switches or era letters written
// by East-Asian locales).  The classification here runs the permissive
// tokenizer from github.com/xuri/nfp and looks for date/time tokens.
package dateformat

import (
	"strings"

	"github.com/xuri/nfp"
)

// IsBuiltInDateID reports whether id is a builtin numFmtId that represents
// a date, datetime, time or elapsed-time format.
//
//	14–22   date and time formats (18–21 are time-only)
//	27–36   locale-specific CJK date formats
//	45–47   elapsed-time / seconds formats
//	50–58   locale-specific CJK date formats (variant set)
func IsBuiltInDateID(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// ScanFormatStr reports whether any section of code contains a date, time
// or elapsed-time token.  Quoted literals, escaped characters, colors,
// conditions and locale tags never count.
func ScanFormatStr(code string) bool {
	return len(DateTokens(code)) > 0
}

// DateTokens returns the upper-cased date/time tokens nfp finds in code, in
// order of appearance across all sections.  AM/PM markers are included;
// elapsed tokens are returned with their brackets.
func DateTokens(code string) []string {
	if strings.TrimSpace(code) == "" {
		return nil
	}
	p := nfp.NumberFormatParser()
	var out []string
	for _, sec := range p.Parse(code) {
		for _, tok := range sec.Items {
			switch tok.TType {
			case nfp.TokenTypeDateTimes:
				out = append(out, strings.ToUpper(tok.TValue))
			case nfp.TokenTypeElapsedDateTimes:
				out = append(out, "["+strings.ToUpper(tok.TValue)+"]")
			}
		}
	}
	return out
}
