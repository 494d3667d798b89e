package numfmt

import "strings"

// resolve is the second pass over a lexed section.  It settles the
// context-dependent meaning of tokens: minutes versus months, the role of
// every digit run, and whether the section is a date/time template.
func resolve(code string, index, base int, sec *Section) error {
	fail := func(msg string) error {
		return &ParseError{Kind: UnsupportedToken, Code: code, Section: index, Offset: base, Msg: msg}
	}
	for _, t := range sec.Tokens {
		switch t.Kind {
		case KindDateTime, KindElapsed:
			sec.dateTime = true
		case KindAmPm:
			sec.dateTime = true
			sec.ampm = true
		}
	}
	if sec.dateTime {
		resolveMinutes(sec.Tokens)
		return resolveDate(sec, fail)
	}
	return resolveNumber(sec, fail)
}

// nearestClock returns the index of the closest date/time field from i in
// direction dir, or -1.
func nearestClock(toks []Token, i, dir int) int {
	for j := i + dir; j >= 0 && j < len(toks); j += dir {
		if k := toks[j].Kind; k == KindDateTime || k == KindElapsed {
			return j
		}
	}
	return -1
}

// resolveMinutes turns m and mm into minutes when they follow an hour or
// precede a second.
func resolveMinutes(toks []Token) {
	for i := range toks {
		t := &toks[i]
		if t.Kind != KindDateTime || t.Field != FieldMonth || t.Width > 2 {
			continue
		}
		if p := nearestClock(toks, i, -1); p >= 0 && toks[p].Field == FieldHour {
			t.Field = FieldMinute
			continue
		}
		if n := nearestClock(toks, i, 1); n >= 0 && toks[n].Field == FieldSecond {
			t.Field = FieldMinute
		}
	}
}

func resolveDate(sec *Section, fail func(string) error) error {
	toks := sec.Tokens
	for i := 0; i < len(toks); i++ {
		t := &toks[i]
		switch t.Kind {
		case KindDecimalPoint:
			p := nearestClock(toks, i, -1)
			if i+1 < len(toks) && toks[i+1].Kind == KindDigitRun && p >= 0 && toks[p].Field == FieldSecond {
				run := &toks[i+1]
				run.Role = RoleSubsecond
				sec.subDigits = max(sec.subDigits, len(run.Pattern))
				i++
				continue
			}
			*t = Token{Kind: KindLiteral, Text: "."}
		case KindDigitRun:
			return fail("digit placeholders in a date/time section")
		case KindExponent:
			return fail("exponent in a date/time section")
		}
	}
	return nil
}

func resolveNumber(sec *Section, fail func(string) error) error {
	toks := sec.Tokens

	// A run, a "/" literal and another run form a fraction.
	for i := range toks {
		if toks[i].Kind != KindDigitRun {
			continue
		}
		var between strings.Builder
		j := i + 1
		for j < len(toks) && toks[j].Kind == KindLiteral {
			between.WriteString(toks[j].Text)
			j++
		}
		if j > i+1 && j < len(toks) && toks[j].Kind == KindDigitRun && strings.TrimSpace(between.String()) == "/" {
			toks[i].Role = RoleNumerator
			toks[j].Role = RoleDenominator
			sec.fraction = true
			break
		}
	}

	seenPoint, seenExp := false, false
	for i := range toks {
		t := &toks[i]
		switch t.Kind {
		case KindDecimalPoint:
			if seenExp {
				return fail("decimal point after exponent")
			}
			if seenPoint {
				*t = Token{Kind: KindLiteral, Text: "."}
				continue
			}
			seenPoint = true
		case KindExponent:
			if seenExp {
				return fail("second exponent")
			}
			if i+1 >= len(toks) || toks[i+1].Kind != KindDigitRun {
				return fail("exponent without digits")
			}
			seenExp = true
			sec.sci = true
		case KindDigitRun:
			switch {
			case t.Role == RoleNumerator || t.Role == RoleDenominator:
			case seenExp:
				t.Role = RoleExponent
			case seenPoint:
				t.Role = RoleFraction
			default:
				t.Role = RoleInteger
			}
		}
	}
	if sec.fraction && sec.sci {
		return fail("fraction with exponent")
	}
	return nil
}
