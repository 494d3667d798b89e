package numfmt

import (
	"fmt"

	"github.com/TsubasaBE/go-cellfmt/styles"
)

// ParsedFormat is the validated, immutable form of a format code.  It is
// safe for concurrent use.
type ParsedFormat struct {
	code        string
	sections    []Section
	derived     bool
	conditional bool
}

// Parse validates code and splits it into sections.  Errors are
// *ParseError values; no partial result is returned.
func Parse(code string) (*ParsedFormat, error) {
	if code == "" {
		return nil, &ParseError{Kind: UnsupportedToken, Code: code, Section: -1, Msg: "empty format code"}
	}
	raws := splitSections(code)
	if len(raws) > maxSections {
		return nil, &ParseError{
			Kind:    TooManySections,
			Code:    code,
			Section: -1,
			Offset:  raws[maxSections].base,
			Msg:     fmt.Sprintf("%d sections, at most %d allowed", len(raws), maxSections),
		}
	}

	pf := &ParsedFormat{code: code, sections: make([]Section, 0, len(raws))}
	for i, raw := range raws {
		sec, err := lexSection(code, i, raw)
		if err != nil {
			return nil, err
		}
		if err := resolve(code, i, raw.base, &sec); err != nil {
			return nil, err
		}
		pf.sections = append(pf.sections, sec)
	}
	if err := checkConditions(code, pf.sections, raws); err != nil {
		return nil, err
	}
	pf.conditional = pf.sections[0].Condition != nil
	pf.derived = len(pf.sections) == 1 && !pf.conditional
	return pf, nil
}

// MustParse is like Parse but panics on error.  It is meant for package
// level format variables.
func MustParse(code string) *ParsedFormat {
	pf, err := Parse(code)
	if err != nil {
		panic(err)
	}
	return pf
}

// ParseBuiltin parses the format code of builtin numFmtId id.
func ParseBuiltin(id int) (*ParsedFormat, error) {
	code, ok := styles.BuiltIn(id)
	if !ok {
		return nil, fmt.Errorf("numfmt: id %d: %w", id, ErrUnknownBuiltin)
	}
	return Parse(code)
}

func checkConditions(code string, secs []Section, raws []rawSection) error {
	cond := func(i int) bool { return secs[i].Condition != nil }
	bad := func(i int, msg string) error {
		return &ParseError{Kind: InvalidConditionPlacement, Code: code, Section: i, Offset: raws[i].base, Msg: msg}
	}
	n := len(secs)
	switch {
	case n == 2 && cond(0) && !cond(1):
		return bad(1, "first two sections must both be conditional")
	case n >= 3 && cond(2):
		return bad(2, "third section cannot be conditional")
	case n == 4 && cond(0):
		return bad(3, "text section not allowed after conditional sections")
	case n == 4 && cond(3):
		return bad(3, "text section cannot be conditional")
	}
	return nil
}

// Code returns the format code as given to Parse.
func (pf *ParsedFormat) Code() string { return pf.code }

// NumSections returns the number of sections written in the code.
func (pf *ParsedFormat) NumSections() int { return len(pf.sections) }

// Sections returns a copy of the written sections.
func (pf *ParsedFormat) Sections() []Section {
	out := make([]Section, len(pf.sections))
	copy(out, pf.sections)
	return out
}

// Section returns the section used for slot i (0 positive, 1 negative,
// 2 zero, 3 text).  Derived formats answer slots 1 and 2 with section 0.
// ok is false for slots the code does not define.
func (pf *ParsedFormat) Section(i int) (sec *Section, ok bool) {
	switch {
	case i >= 0 && i < len(pf.sections):
		return &pf.sections[i], true
	case pf.derived && (i == 1 || i == 2):
		return &pf.sections[0], true
	}
	return nil, false
}

// Derived reports whether the negative and zero sections reuse the single
// unconditional section of the code.
func (pf *ParsedFormat) Derived() bool { return pf.derived }

// Conditional reports whether the first section carries a condition.
func (pf *ParsedFormat) Conditional() bool { return pf.conditional }

// IsDateTime reports whether the first section is a date/time template.
func (pf *ParsedFormat) IsDateTime() bool { return pf.sections[0].dateTime }
