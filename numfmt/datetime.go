package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/TsubasaBE/go-cellfmt/serialdate"
)

// maxSubDigits is the finest sub-second resolution the renderer computes.
// Longer runs are padded with zeros.
const maxSubDigits = 3

// clock is a serial split into the parts date/time tokens print.
type clock struct {
	day      int   // serial day number
	secOfDay int64 // seconds since midnight
	total    int64 // seconds since the epoch, for elapsed fields
	sub      int64 // sub-second ticks
	subLen   int   // digits in sub
}

func splitSerial(v float64, subDigits int) clock {
	n := min(subDigits, maxSubDigits)
	unit := int64(math.Pow10(n))
	ticks := int64(math.Round(v * 86400 * float64(unit)))
	perDay := 86400 * unit
	c := clock{day: int(ticks / perDay), subLen: n}
	rem := ticks % perDay
	c.secOfDay = rem / unit
	c.sub = rem % unit
	c.total = ticks / unit
	return c
}

// formatDateTime renders serial v with a date/time section.  Negative and
// out-of-range serials show as eleven '#'.
func formatDateTime(sec *Section, v float64, ctx RenderContext) string {
	if v < 0 {
		return overflow
	}
	c := splitSerial(v, sec.subDigits)
	date, err := serialdate.DateFromSerial(c.day, ctx.Epoch)
	if err != nil {
		return overflow
	}
	hour := int(c.secOfDay / 3600)
	minute := int(c.secOfDay / 60 % 60)
	second := int(c.secOfDay % 60)

	var b strings.Builder
	for _, t := range sec.Tokens {
		switch t.Kind {
		case KindLiteral:
			b.WriteString(t.Text)
		case KindDateTime:
			switch t.Field {
			case FieldYear:
				if t.Width == 2 {
					fmt.Fprintf(&b, "%02d", date.Year%100)
				} else {
					fmt.Fprintf(&b, "%04d", date.Year)
				}
			case FieldMonth:
				b.WriteString(monthName(date.Month, t.Width))
			case FieldDay:
				pad(&b, date.Day, t.Width)
			case FieldWeekday:
				name := serialdate.Weekday(c.day, ctx.Epoch).String()
				if t.Width == 3 {
					name = name[:3]
				}
				b.WriteString(name)
			case FieldHour:
				h := hour
				if sec.ampm {
					h %= 12
					if h == 0 {
						h = 12
					}
				}
				pad(&b, h, t.Width)
			case FieldMinute:
				pad(&b, minute, t.Width)
			case FieldSecond:
				pad(&b, second, t.Width)
			}
		case KindElapsed:
			switch t.Field {
			case FieldHour:
				pad64(&b, c.total/3600, t.Width)
			case FieldMinute:
				pad64(&b, c.total/60, t.Width)
			case FieldSecond:
				pad64(&b, c.total, t.Width)
			}
		case KindAmPm:
			b.WriteString(ampm(t, hour))
		case KindDecimalPoint:
			b.WriteRune(ctx.decimal())
		case KindDigitRun:
			b.WriteString(subsecond(c, len(t.Pattern)))
		case KindPercent:
			b.WriteByte('%')
		case KindGeneral, KindTextValue:
			b.WriteString(formatGeneral(v, ctx.decimal()))
		case KindSpace:
			b.WriteByte(' ')
		case KindFill:
			writeFill(&b, t.Char)
		}
	}
	return b.String()
}

func pad(b *strings.Builder, v, width int) {
	pad64(b, int64(v), width)
}

func pad64(b *strings.Builder, v int64, width int) {
	s := strconv.FormatInt(v, 10)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

// monthName prints month m (1–12) for a code of width letters: m, mm,
// mmm (abbreviation), mmmm (full name) or mmmmm (first letter).
func monthName(m, width int) string {
	name := time.Month(m).String()
	switch width {
	case 1:
		return strconv.Itoa(m)
	case 2:
		return fmt.Sprintf("%02d", m)
	case 3:
		return name[:3]
	case 5:
		return name[:1]
	}
	return name
}

// ampm prints AM/PM as "AM" or "PM"; A/P keeps the letter case of the code.
func ampm(t Token, hour int) string {
	pm := hour >= 12
	if t.Width == 5 {
		if pm {
			return "PM"
		}
		return "AM"
	}
	if pm {
		return t.Text[2:3]
	}
	return t.Text[:1]
}

// subsecond prints the first n digits of the sub-second part.
func subsecond(c clock, n int) string {
	s := ""
	if c.subLen > 0 {
		s = fmt.Sprintf("%0*d", c.subLen, c.sub)
	}
	if len(s) > n {
		return s[:n]
	}
	return s + strings.Repeat("0", n-len(s))
}
