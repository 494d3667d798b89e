// Package numtext converts float64 values to and from decimal text without
// depending on the process locale.
//
// Two textual forms are supported: the storage form, which keeps 15
// significant digits in %g style (the precision spreadsheet applications
// persist), and the legacy form with exactly six decimal places.  Callers
// pass the decimal separator explicitly; the codec never consults the
// environment.
//
// [Digits] exposes the same 15-digit decimal expansion to the number-format
// renderer, rounded half away from zero at a requested number of places.
package numtext

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SignificantDigits is the precision of the storage form.
const SignificantDigits = 15

// LegacyDecimals is the number of decimal places in the legacy form.
const LegacyDecimals = 6

// ErrSyntax is returned by [Parse] for text that is not a decimal number.
var ErrSyntax = errors.New("numtext: invalid number syntax")

// Serialize returns v in the storage form with '.' as decimal separator.
func Serialize(v float64) string {
	return SerializeSep(v, '.')
}

// SerializeSep returns v with 15 significant digits in %g style, using sep
// as the decimal separator.  Trailing fractional zeros are dropped and the
// exponent form is used for exponents below -4 or at least 15.
func SerializeSep(v float64, sep rune) string {
	s := strconv.FormatFloat(v, 'g', SignificantDigits, 64)
	return withSep(s, sep)
}

// Legacy returns v with exactly six decimal places and '.' as separator.
func Legacy(v float64) string {
	return LegacySep(v, '.')
}

// LegacySep returns v with exactly six decimal places, using sep as the
// decimal separator.
func LegacySep(v float64, sep rune) string {
	s := strconv.FormatFloat(v, 'f', LegacyDecimals, 64)
	return withSep(s, sep)
}

// Parse converts s back to a float64.  sep is the decimal separator used in
// s; surrounding spaces are ignored.
func Parse(s string, sep rune) (float64, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, fmt.Errorf("numtext: Parse %q: %w", s, ErrSyntax)
	}
	if sep != '.' && sep != 0 {
		if strings.ContainsRune(t, '.') {
			return 0, fmt.Errorf("numtext: Parse %q: %w", s, ErrSyntax)
		}
		t = strings.Replace(t, string(sep), ".", 1)
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, fmt.Errorf("numtext: Parse %q: %w", s, numErr.Err)
		}
		return 0, fmt.Errorf("numtext: Parse %q: %w", s, ErrSyntax)
	}
	return v, nil
}

func withSep(s string, sep rune) string {
	if sep == '.' || sep == 0 {
		return s
	}
	return strings.Replace(s, ".", string(sep), 1)
}

// Digits returns the decimal digits of |v| split at the decimal point, with
// the fraction rounded half away from zero to exactly frac places.
//
// The expansion starts from the 15-significant-digit form, so values such as
// 2.675 (stored as 2.67499999...) round the way a spreadsheet shows them.
// intPart never has leading zeros and is "0" when the integer part is zero;
// fracPart always has length frac.  Non-finite input yields ("0", zeros).
func Digits(v float64, frac int) (intPart, fracPart string) {
	if frac < 0 {
		frac = 0
	}
	v = math.Abs(v)
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0", strings.Repeat("0", frac)
	}

	// d.dddddddddddddde±XX
	e := strconv.FormatFloat(v, 'e', SignificantDigits-1, 64)
	mant, expStr, _ := strings.Cut(e, "e")
	exp, _ := strconv.Atoi(expStr)
	digits := strings.Replace(mant, ".", "", 1)

	// point is the number of digits left of the decimal point.
	point := exp + 1
	var ip, fp string
	switch {
	case point <= 0:
		ip = ""
		fp = strings.Repeat("0", -point) + digits
	case point >= len(digits):
		ip = digits + strings.Repeat("0", point-len(digits))
		fp = ""
	default:
		ip = digits[:point]
		fp = digits[point:]
	}

	if len(fp) > frac {
		roundUp := fp[frac] >= '5'
		fp = fp[:frac]
		if roundUp {
			ip, fp = increment(ip, fp)
		}
	}
	for len(fp) < frac {
		fp += "0"
	}

	ip = strings.TrimLeft(ip, "0")
	if ip == "" {
		ip = "0"
	}
	return ip, fp
}

// increment adds one unit in the last place of ip.fp, carrying into ip.
func increment(ip, fp string) (string, string) {
	b := []byte(ip + fp)
	i := len(b) - 1
	for ; i >= 0; i-- {
		if b[i] == '9' {
			b[i] = '0'
			continue
		}
		b[i]++
		break
	}
	if i < 0 {
		b = append([]byte{'1'}, b...)
	}
	n := len(b) - len(fp)
	return string(b[:n]), string(b[n:])
}
