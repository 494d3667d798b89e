package numfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/TsubasaBE/go-cellfmt/numtext"
)

// generalWidth is the number of characters, sign excluded, General may use.
const generalWidth = 11

// formatGeneral renders v the way the General format does: fixed notation
// with as many decimals as fit in generalWidth characters, or d.ddddE+XX
// when the magnitude is at least 1e11 or below 1e-9.  Trailing zeros are
// trimmed.
func formatGeneral(v float64, decimal rune) string {
	if v == 0 {
		return "0"
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return numError
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	if v < 1e11 && v >= 1e-9 {
		if s, ok := generalFixed(v, decimal); ok {
			return sign + s
		}
	}
	return sign + generalScientific(v, decimal)
}

func generalFixed(v float64, decimal rune) (string, bool) {
	intDigits := 1
	if v >= 1 {
		intDigits = len(strconv.FormatFloat(math.Floor(v), 'f', 0, 64))
	}
	ip, fp := numtext.Digits(v, max(generalWidth-1-intDigits, 0))
	if len(ip) > generalWidth {
		return "", false
	}
	fp = strings.TrimRight(fp, "0")
	if fp == "" {
		if ip == "0" {
			// Every significant digit was rounded away.
			return "", false
		}
		return ip, true
	}
	return ip + string(decimal) + fp, true
}

func generalScientific(v float64, decimal rune) string {
	exp := int(math.Floor(math.Log10(v)))
	digits := 5
	if exp >= 100 || exp <= -100 {
		digits = 4
	}
	ip, fp := numtext.Digits(scale10(v, -exp), digits)
	if len(ip) > 1 {
		exp++
		ip, fp = numtext.Digits(scale10(v, -exp), digits)
	} else if ip == "0" {
		exp--
		ip, fp = numtext.Digits(scale10(v, -exp), digits)
	}
	var b strings.Builder
	b.WriteString(ip)
	if fp = strings.TrimRight(fp, "0"); fp != "" {
		b.WriteRune(decimal)
		b.WriteString(fp)
	}
	b.WriteByte('E')
	if exp < 0 {
		b.WriteByte('-')
		exp = -exp
	} else {
		b.WriteByte('+')
	}
	if exp < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}
