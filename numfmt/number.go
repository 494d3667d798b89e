package numfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/TsubasaBE/go-cellfmt/numtext"
)

// runs collects the digit runs of a numeric section by role.
type runs struct {
	integer  []int // token indices, whole part for fractions, mantissa for scientific
	fraction []int
	exponent int
	num, den int
}

func collectRuns(sec *Section) runs {
	r := runs{exponent: -1, num: -1, den: -1}
	for i, t := range sec.Tokens {
		if t.Kind != KindDigitRun {
			continue
		}
		switch t.Role {
		case RoleInteger:
			if r.num < 0 {
				r.integer = append(r.integer, i)
			}
		case RoleFraction:
			r.fraction = append(r.fraction, i)
		case RoleExponent:
			r.exponent = i
		case RoleNumerator:
			r.num = i
		case RoleDenominator:
			r.den = i
		}
	}
	return r
}

func (r runs) patterns(sec *Section, idx []int) []string {
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = sec.Tokens[i].Pattern
	}
	return out
}

// formatNumber renders v >= 0 with a numeric section.
func formatNumber(sec *Section, v float64, ctx RenderContext) string {
	for _, t := range sec.Tokens {
		switch t.Kind {
		case KindPercent:
			v *= 100
		case KindDigitRun:
			for range t.Scale {
				v /= 1000
			}
		}
	}

	r := collectRuns(sec)
	out := make(map[int]string)
	skip := make(map[int]bool)
	switch {
	case sec.fraction:
		fillFraction(sec, r, v, ctx, out, skip)
	case sec.sci:
		fillScientific(sec, r, v, ctx, out)
	default:
		fillFixed(sec, r, v, ctx, out)
	}

	var b strings.Builder
	for i, t := range sec.Tokens {
		if skip[i] {
			continue
		}
		switch t.Kind {
		case KindLiteral:
			b.WriteString(t.Text)
		case KindDigitRun, KindExponent:
			b.WriteString(out[i])
		case KindDecimalPoint:
			b.WriteString(out[i])
			b.WriteRune(ctx.decimal())
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

// fillFixed renders plain integer and decimal runs.
func fillFixed(sec *Section, r runs, v float64, ctx RenderContext, out map[int]string) {
	fracPats := r.patterns(sec, r.fraction)
	ip, fp := numtext.Digits(v, len(strings.Join(fracPats, "")))
	if len(r.integer) == 0 && len(r.fraction) == 0 {
		return
	}
	if ip == "0" {
		ip = ""
	}
	if len(r.integer) == 0 {
		// Integer digits still show in front of the decimal point.
		for i, t := range sec.Tokens {
			if t.Kind == KindDecimalPoint || (t.Kind == KindDigitRun && t.Role == RoleFraction) {
				out[i] = ip
				break
			}
		}
	} else {
		fillInteger(sec, r.integer, ip, ctx, out)
	}
	for k, s := range fractionDigits(fp, fracPats) {
		out[r.fraction[k]] = s
	}
}

// fillInteger spreads the integer digits ip over the runs idx, right to
// left; leftover leading digits go to the first run.
func fillInteger(sec *Section, idx []int, ip string, ctx RenderContext, out map[int]string) {
	rest := ip
	for k := len(idx) - 1; k >= 0; k-- {
		t := sec.Tokens[idx[k]]
		var d string
		switch {
		case k == 0:
			d, rest = rest, ""
		case len(rest) > len(t.Pattern):
			d, rest = rest[len(rest)-len(t.Pattern):], rest[:len(rest)-len(t.Pattern)]
		default:
			d, rest = rest, ""
		}
		s := padLeft(t.Pattern, d)
		if t.Grouping {
			s = group(s, ctx.thousands())
		}
		out[idx[k]] = s
	}
}

// padLeft right-aligns digits d in pattern: unused '0' positions print
// '0', '?' positions print a space and '#' positions nothing.  Digits that
// do not fit are all kept.
func padLeft(pattern, d string) string {
	if len(d) >= len(pattern) {
		return d
	}
	var b strings.Builder
	for _, c := range pattern[:len(pattern)-len(d)] {
		switch c {
		case '0':
			b.WriteByte('0')
		case '?':
			b.WriteByte(' ')
		}
	}
	b.WriteString(d)
	return b.String()
}

// group inserts sep between groups of three digits, counting from the
// right.  Padding spaces are never separated.
func group(s string, sep rune) string {
	var b strings.Builder
	n := len(s)
	for i := 0; i < n; i++ {
		b.WriteByte(s[i])
		left := n - i - 1
		if left > 0 && left%3 == 0 && s[i] != ' ' {
			b.WriteRune(sep)
		}
	}
	return b.String()
}

// fractionDigits lays the rounded decimals fp over the fraction runs:
// trailing zeros vanish under '#' and turn into spaces under '?'.
func fractionDigits(fp string, pats []string) []string {
	pattern := strings.Join(pats, "")
	cells := make([]string, len(fp))
	for i := range fp {
		cells[i] = fp[i : i+1]
	}
	for i := len(fp) - 1; i >= 0 && fp[i] == '0' && pattern[i] != '0'; i-- {
		if pattern[i] == '#' {
			cells[i] = ""
		} else {
			cells[i] = " "
		}
	}
	out := make([]string, len(pats))
	pos := 0
	for k, p := range pats {
		out[k] = strings.Join(cells[pos:pos+len(p)], "")
		pos += len(p)
	}
	return out
}

// fillScientific renders mantissa and exponent.  With a '#' in the
// integer part the exponent is a multiple of the integer width; otherwise
// the mantissa has exactly that many integer digits.
func fillScientific(sec *Section, r runs, v float64, ctx RenderContext, out map[int]string) {
	intPat := strings.Join(r.patterns(sec, r.integer), "")
	fracPats := r.patterns(sec, r.fraction)
	fracLen := len(strings.Join(fracPats, ""))
	k := len(intPat)
	eng := strings.ContainsRune(intPat, '#')

	exp := 0
	ip, fp := "0", strings.Repeat("0", fracLen)
	if v != 0 {
		l := int(math.Floor(math.Log10(v)))
		switch {
		case eng:
			exp = floorDiv(l, k) * k
		case k == 0:
			exp = l + 1
		default:
			exp = l - (k - 1)
		}
		ip, fp = numtext.Digits(scale10(v, -exp), fracLen)
		for range 3 {
			step := mantissaOverflow(ip, k, eng)
			if step == 0 {
				break
			}
			exp += step
			ip, fp = numtext.Digits(scale10(v, -exp), fracLen)
		}
	}
	if ip == "0" {
		ip = ""
	}
	fillInteger(sec, r.integer, ip, ctx, out)
	for j, s := range fractionDigits(fp, fracPats) {
		out[r.fraction[j]] = s
	}

	for i, t := range sec.Tokens {
		if t.Kind == KindExponent {
			sign := ""
			switch {
			case exp < 0:
				sign = "-"
			case t.Sign == '+':
				sign = "+"
			}
			out[i] = "E" + sign
		}
	}
	if r.exponent >= 0 {
		e := exp
		if e < 0 {
			e = -e
		}
		out[r.exponent] = padLeft(sec.Tokens[r.exponent].Pattern, strconv.Itoa(e))
	}
}

// mantissaOverflow returns how far the exponent must move when rounding
// pushed the mantissa past its integer width, or 0.
func mantissaOverflow(ip string, k int, eng bool) int {
	switch {
	case eng && len(ip) > k:
		return k
	case k > 0 && len(ip) > k:
		return 1
	case k == 0 && ip != "0":
		return 1
	}
	return 0
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// scale10 returns v * 10^e.
func scale10(v float64, e int) float64 {
	if e >= 0 {
		return v * math.Pow10(e)
	}
	return v / math.Pow10(-e)
}

// maxFractionDigits caps the denominator width the renderer searches; a
// float64 holds no more significant digits than this.
const maxFractionDigits = 15

// fillFraction renders whole part, numerator and denominator.  The
// denominator is the one up to the width of its run that comes closest to
// the fractional part; ties keep the smaller denominator.
func fillFraction(sec *Section, r runs, v float64, ctx RenderContext, out map[int]string, skip map[int]bool) {
	hasWhole := len(r.integer) > 0
	whole := math.Floor(v)

	denPat := sec.Tokens[r.den].Pattern
	maxDen := int64(math.Pow10(min(len(denPat), maxFractionDigits))) - 1
	n, den := closestFraction(v-whole, maxDen)
	var num float64
	switch {
	case !hasWhole:
		num = whole*float64(den) + float64(n)
	case n == den:
		whole++
	default:
		num = float64(n)
	}

	if num == 0 {
		// Drop the fraction together with the literals around its slash.
		from := r.num
		if hasWhole {
			from = r.integer[len(r.integer)-1] + 1
		} else {
			out[r.num] = "0"
			from = r.num + 1
		}
		for i := from; i <= r.den; i++ {
			skip[i] = true
		}
	} else {
		out[r.num] = padLeft(sec.Tokens[r.num].Pattern, strconv.FormatFloat(num, 'f', 0, 64))
		out[r.den] = padRight(denPat, strconv.FormatInt(den, 10))
	}

	if hasWhole {
		ws := strconv.FormatFloat(whole, 'f', 0, 64)
		if ws == "0" {
			ws = ""
			if num == 0 {
				ws = "0"
			}
		}
		fillInteger(sec, r.integer, ws, ctx, out)
	}
}

// closestFraction returns the fraction n/d nearest to x in [0, 1) with
// d <= maxDen, preferring the smaller denominator on ties.  It walks the
// continued fraction of x and compares the last convergent that fits with
// the largest semiconvergent that fits; one of the two is the answer.
func closestFraction(x float64, maxDen int64) (n, d int64) {
	p0, q0, p1, q1 := int64(0), int64(1), int64(1), int64(0)
	rest := x
	for range 64 {
		a := math.Floor(rest)
		if float64(q0)+a*float64(q1) > float64(maxDen) {
			break
		}
		ai := int64(a)
		p0, q0, p1, q1 = p1, q1, p0+ai*p1, q0+ai*q1
		f := rest - a
		if f == 0 {
			break
		}
		rest = 1 / f
	}
	k := (maxDen - q0) / q1
	sn, sd := p0+k*p1, q0+k*q1
	cErr := math.Abs(x - float64(p1)/float64(q1))
	sErr := math.Abs(x - float64(sn)/float64(sd))
	if sErr < cErr || (sErr == cErr && sd < q1) {
		return sn, sd
	}
	return p1, q1
}

// padRight left-aligns d in pattern; unused '?' positions print a space.
func padRight(pattern, d string) string {
	if len(d) >= len(pattern) {
		return d
	}
	return d + strings.Map(func(c rune) rune {
		if c == '?' {
			return ' '
		}
		return -1
	}, pattern[len(d):])
}
