package numfmt

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a [ParseError].
type ErrorKind uint8

const (
	// MalformedBracket: unterminated or empty brackets, a bad condition
	// number, or a duplicate or misplaced color, condition or locale tag.
	MalformedBracket ErrorKind = iota + 1
	// TooManySections: more than four sections.
	TooManySections
	// InvalidConditionPlacement: conditions on sections that cannot carry
	// them.
	InvalidConditionPlacement
	// UnknownColorName: a bracket body that is no color, condition, locale
	// tag or elapsed field.
	UnknownColorName
	// InvalidLocaleTag: a [$...] tag without a valid hex locale.
	InvalidLocaleTag
	// UnsupportedToken: anything the grammar does not accept.
	UnsupportedToken
)

// Sentinels matched by errors.Is against a *ParseError of the same kind.
var (
	ErrMalformedBracket          = errors.New("numfmt: malformed bracket")
	ErrTooManySections           = errors.New("numfmt: too many sections")
	ErrInvalidConditionPlacement = errors.New("numfmt: invalid condition placement")
	ErrUnknownColorName          = errors.New("numfmt: unknown color name")
	ErrInvalidLocaleTag          = errors.New("numfmt: invalid locale tag")
	ErrUnsupportedToken          = errors.New("numfmt: unsupported token")

	// ErrNoMatchingSection is returned by ParsedFormat.Select when a
	// conditional format has no section for the value.
	ErrNoMatchingSection = errors.New("numfmt: no matching section")
	// ErrUnknownBuiltin is returned for numFmtIds outside the builtin table.
	ErrUnknownBuiltin = errors.New("numfmt: unknown builtin format id")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case MalformedBracket:
		return ErrMalformedBracket
	case TooManySections:
		return ErrTooManySections
	case InvalidConditionPlacement:
		return ErrInvalidConditionPlacement
	case UnknownColorName:
		return ErrUnknownColorName
	case InvalidLocaleTag:
		return ErrInvalidLocaleTag
	case UnsupportedToken:
		return ErrUnsupportedToken
	}
	return nil
}

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case MalformedBracket:
		return "MalformedBracket"
	case TooManySections:
		return "TooManySections"
	case InvalidConditionPlacement:
		return "InvalidConditionPlacement"
	case UnknownColorName:
		return "UnknownColorName"
	case InvalidLocaleTag:
		return "InvalidLocaleTag"
	case UnsupportedToken:
		return "UnsupportedToken"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// ParseError describes why a format code was rejected.
type ParseError struct {
	Kind ErrorKind
	// Code is the complete format code.
	Code string
	// Section is the 0-based section index, or -1 for whole-code errors.
	Section int
	// Offset is the rune offset into Code where the problem starts.
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Section < 0 {
		return fmt.Sprintf("numfmt: %q: %s", e.Code, e.Msg)
	}
	return fmt.Sprintf("numfmt: %q: section %d, offset %d: %s", e.Code, e.Section, e.Offset, e.Msg)
}

// Unwrap returns the sentinel of e.Kind.
func (e *ParseError) Unwrap() error { return e.Kind.sentinel() }
