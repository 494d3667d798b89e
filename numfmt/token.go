package numfmt

import (
	"fmt"

	"golang.org/x/text/language"
)

// Kind identifies the variant held by a [Token].
type Kind uint8

const (
	// KindLiteral is verbatim text: quoted strings, escaped characters,
	// unquoted punctuation and locale currency symbols.
	KindLiteral Kind = iota
	// KindGeneral is the General keyword.
	KindGeneral
	// KindTextValue is the @ placeholder.
	KindTextValue
	// KindDigitRun is a run of 0 # ? placeholders.
	KindDigitRun
	// KindDecimalPoint is an unquoted '.'.
	KindDecimalPoint
	// KindPercent is '%'.
	KindPercent
	// KindExponent is E+ or E-.
	KindExponent
	// KindDateTime is a calendar or clock field.
	KindDateTime
	// KindElapsed is a bracketed elapsed-time field such as [h].
	KindElapsed
	// KindAmPm is AM/PM or A/P.
	KindAmPm
	// KindFill is *c.
	KindFill
	// KindSpace is _c.
	KindSpace
)

var kindNames = [...]string{
	KindLiteral:      "Literal",
	KindGeneral:      "General",
	KindTextValue:    "TextValue",
	KindDigitRun:     "DigitRun",
	KindDecimalPoint: "DecimalPoint",
	KindPercent:      "Percent",
	KindExponent:     "Exponent",
	KindDateTime:     "DateTime",
	KindElapsed:      "Elapsed",
	KindAmPm:         "AmPm",
	KindFill:         "Fill",
	KindSpace:        "Space",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Role is the job a digit run plays in its section.  Roles are assigned
// after the whole section has been read.
type Role uint8

const (
	RoleInteger Role = iota
	RoleFraction
	RoleExponent
	RoleNumerator
	RoleDenominator
	// RoleSubsecond marks the digits after "ss." in a time section.
	RoleSubsecond
)

// Field is the calendar or clock component a date/time token prints.
type Field uint8

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldWeekday
	FieldHour
	FieldMinute
	FieldSecond
)

// Token is one element of a section template.  Only the fields relevant to
// Kind are set.
type Token struct {
	Kind Kind

	// Text is the literal text (KindLiteral) or the AM/PM marker as written
	// in the code (KindAmPm).
	Text string

	// Pattern holds the placeholder characters of a digit run with the
	// grouping commas removed.
	Pattern string
	// Grouping is set when a comma appeared between two placeholders.
	Grouping bool
	// Scale counts the commas directly after the run; each divides the
	// value by 1000.
	Scale int
	Role  Role

	// Field and Width describe KindDateTime and KindElapsed tokens.  Width
	// is the number of letters (1–5 for months, 1–4 for days and weekdays,
	// 2 or 4 for years, 1–2 otherwise).
	Field Field
	Width int

	// Sign is '+' or '-' for KindExponent.
	Sign byte

	// Char is the repeated character of KindFill and the width character
	// of KindSpace.
	Char rune
}

// CompareOp is the comparator of a section condition.
type CompareOp string

const (
	OpLT CompareOp = "<"
	OpLE CompareOp = "<="
	OpEQ CompareOp = "="
	OpNE CompareOp = "<>"
	OpGT CompareOp = ">"
	OpGE CompareOp = ">="
)

// Condition is a bracketed comparison such as [>=100].
type Condition struct {
	Op    CompareOp
	Value float64
}

// Match reports whether v satisfies the condition.
func (c Condition) Match(v float64) bool {
	switch c.Op {
	case OpLT:
		return v < c.Value
	case OpLE:
		return v <= c.Value
	case OpEQ:
		return v == c.Value
	case OpNE:
		return v != c.Value
	case OpGT:
		return v > c.Value
	case OpGE:
		return v >= c.Value
	}
	return false
}

// Color is a section color tag.  Index is the palette index: 1–8 for the
// named colors in the order Black, White, Red, Green, Blue, Yellow,
// Magenta, Cyan, or N for [ColorN].
type Color struct {
	Name  string
	Index int
}

// Locale is a [$sym-hex] tag.
type Locale struct {
	// Symbol is the currency or text emitted where the tag appears.
	Symbol string
	// LCID is the low 16 bits of the hex part.
	LCID uint16
	// Ext is the upper 16 bits (calendar and numeral-system selectors).
	Ext uint16
	// Tag is the language of LCID, or language.Und for the system tags.
	// The renderer does not read it; hosts use it to pick collation or
	// translations for the cell.
	Tag language.Tag
}

// Section is one ';'-separated part of a format code.
type Section struct {
	Tokens    []Token
	Condition *Condition
	Color     *Color
	Locale    *Locale
	// HasExplicitSign is set when the template prints its own sign: an
	// unquoted '-', '+' or '('.  Quoted text and escapes do not count.
	HasExplicitSign bool

	dateTime  bool
	ampm      bool
	fraction  bool
	sci       bool
	subDigits int
}

// IsDateTime reports whether the section renders a date, time or elapsed
// time.
func (s *Section) IsDateTime() bool { return s.dateTime }

// IsText reports whether the section has an @ placeholder and no numeric
// placeholders.
func (s *Section) IsText() bool {
	if s.dateTime {
		return false
	}
	text := false
	for _, t := range s.Tokens {
		switch t.Kind {
		case KindTextValue:
			text = true
		case KindDigitRun, KindGeneral:
			return false
		}
	}
	return text
}

// IsGeneral reports whether the section is the bare General keyword,
// possibly surrounded by literals.
func (s *Section) IsGeneral() bool {
	general := false
	for _, t := range s.Tokens {
		switch t.Kind {
		case KindGeneral:
			general = true
		case KindDigitRun, KindDateTime, KindElapsed, KindTextValue:
			return false
		}
	}
	return general
}
