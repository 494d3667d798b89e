package numfmt

import (
	"math"
	"strings"
	"time"

	"github.com/TsubasaBE/go-cellfmt/serialdate"
)

// fillWidth is the number of times a *c fill character is repeated.  The
// engine has no column width to fill.
const fillWidth = 10

// overflow is shown for values no section can display.
var overflow = strings.Repeat("#", 11)

// numError is shown for NaN and infinities.
const numError = "#NUM!"

type valueKind uint8

const (
	kindNumber valueKind = iota
	kindText
	kindBool
	kindTime
	kindDuration
)

// Value is a cell value to render.  Build one with Number, Text, Bool,
// Time or Duration; the zero Value is the number 0.
type Value struct {
	kind valueKind
	num  float64
	text string
	b    bool
	t    time.Time
	d    time.Duration
}

// Number is a numeric cell value or date serial.
func Number(v float64) Value { return Value{kind: kindNumber, num: v} }

// Text is a string cell value.
func Text(s string) Value { return Value{kind: kindText, text: s} }

// Bool is a boolean cell value.
func Bool(b bool) Value { return Value{kind: kindBool, b: b} }

// Time is a date/time given by calendar fields; it renders as the serial
// of t in the epoch of the render context.
func Time(t time.Time) Value { return Value{kind: kindTime, t: t} }

// Duration is an elapsed time; it renders as fractional days.
func Duration(d time.Duration) Value { return Value{kind: kindDuration, d: d} }

// Float returns the numeric value of v in epoch e, or false for text and
// booleans.
func (v Value) Float(e serialdate.Epoch) (float64, bool) {
	switch v.kind {
	case kindNumber:
		return v.num, true
	case kindTime:
		return serialdate.FromTime(v.t, e), true
	case kindDuration:
		return serialdate.FromDuration(v.d), true
	}
	return 0, false
}

// RenderContext carries the per-call settings of Render.  Zero separator
// runes select '.' and ','.
type RenderContext struct {
	Epoch     serialdate.Epoch
	Decimal   rune
	Thousands rune
}

func (c RenderContext) decimal() rune {
	if c.Decimal == 0 {
		return '.'
	}
	return c.Decimal
}

func (c RenderContext) thousands() rune {
	if c.Thousands == 0 {
		return ','
	}
	return c.Thousands
}

// Render formats v with pf using the given epoch and decimal separator.
func Render(pf *ParsedFormat, v Value, epoch serialdate.Epoch, decimal rune) string {
	return pf.Render(v, RenderContext{Epoch: epoch, Decimal: decimal})
}

// Render formats v.  It always returns a string: values no section can
// show render as eleven '#'.
func (pf *ParsedFormat) Render(v Value, ctx RenderContext) string {
	switch v.kind {
	case kindBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	case kindText:
		sec := pf.textSection()
		if sec == nil {
			return v.text
		}
		return renderText(sec, v.text)
	}
	n, _ := v.Float(ctx.Epoch)
	return pf.renderNumber(n, ctx)
}

func (pf *ParsedFormat) renderNumber(v float64, ctx RenderContext) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return numError
	}
	idx, minus, err := pf.Select(v)
	if err != nil {
		return overflow
	}
	sec := &pf.sections[idx]
	if len(sec.Tokens) == 0 {
		if len(pf.sections) == 1 {
			return formatGeneral(v, ctx.decimal())
		}
		return ""
	}
	if sec.dateTime {
		return formatDateTime(sec, v, ctx)
	}
	s := formatNumber(sec, math.Abs(v), ctx)
	if minus {
		return "-" + s
	}
	return s
}

// renderText fills a text section: @ and General print the text.
// A section made only of fills, spaces and numeric placeholders shows the
// text unchanged.
func renderText(sec *Section, text string) string {
	var b strings.Builder
	shown := false
	for _, t := range sec.Tokens {
		switch t.Kind {
		case KindLiteral:
			b.WriteString(t.Text)
			shown = true
		case KindTextValue, KindGeneral:
			b.WriteString(text)
			shown = true
		case KindSpace:
			b.WriteByte(' ')
		case KindFill:
			writeFill(&b, t.Char)
		}
	}
	if len(sec.Tokens) > 0 && !shown {
		return text
	}
	return b.String()
}

func writeFill(b *strings.Builder, c rune) {
	for range fillWidth {
		b.WriteRune(c)
	}
}
