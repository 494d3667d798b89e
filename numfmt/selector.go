package numfmt

// Select picks the section that renders the number v.  When minus is true
// the renderer prints the magnitude of v behind a '-'; otherwise it prints
// the magnitude alone.
//
// Formats whose first section has a condition try the conditions in order;
// an unconditional second section is the else branch and a third section
// always is.  ErrNoMatchingSection is returned when nothing applies.
// Other formats select by sign: one section takes every value, two split
// at zero (zero goes first), three or four split into positive, negative
// and zero.
func (pf *ParsedFormat) Select(v float64) (idx int, minus bool, err error) {
	secs := pf.sections
	if pf.conditional {
		idx = -1
		switch {
		case secs[0].Condition.Match(v):
			idx = 0
		case len(secs) == 1:
		case secs[1].Condition == nil || secs[1].Condition.Match(v):
			idx = 1
		case len(secs) == 2:
		default:
			idx = 2
		}
		if idx < 0 {
			return -1, false, ErrNoMatchingSection
		}
		return idx, v < 0 && !secs[idx].HasExplicitSign, nil
	}

	switch len(secs) {
	case 1:
		return 0, v < 0, nil
	case 2:
		if v >= 0 {
			return 0, false, nil
		}
		return 1, false, nil
	}
	switch {
	case v > 0:
		return 0, false, nil
	case v < 0:
		return 1, false, nil
	}
	return 2, false, nil
}

// textSection returns the section that renders text values, or nil when
// text passes through unchanged.
func (pf *ParsedFormat) textSection() *Section {
	switch {
	case len(pf.sections) == 4:
		return &pf.sections[3]
	case len(pf.sections) == 1 && pf.sections[0].IsText():
		return &pf.sections[0]
	}
	return nil
}
