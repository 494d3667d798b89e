package numfmt

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/TsubasaBE/go-cellfmt/internal/lcid"
)

// maxSections is the number of sections a format code may have.
const maxSections = 4

// rawSection is the text of one section and its rune offset in the code.
type rawSection struct {
	src  []rune
	base int
}

// splitSections splits code on ';' outside quotes, brackets and escapes.
// Unterminated quotes and brackets run to the end of the code; the lexer
// reports them.
func splitSections(code string) []rawSection {
	src := []rune(code)
	var out []rawSection
	start := 0
	inQuote, inBracket := false, false
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case inQuote:
			if c == '\\' && i+1 < len(src) && src[i+1] == '"' {
				i++
			} else if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '\\':
			i++
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == ';':
			out = append(out, rawSection{src: src[start:i], base: start})
			start = i + 1
		}
	}
	return append(out, rawSection{src: src[start:], base: start})
}

// colorNames in palette order; Index = position + 1.
var colorNames = [...]string{"Black", "White", "Red", "Green", "Blue", "Yellow", "Magenta", "Cyan"}

// literalChars are printed as-is without quoting.
const literalChars = "$-+/():!^&'~{}<>= ,"

// lexer is the first pass: it turns one raw section into tokens and
// bracket attributes without looking at token context.
type lexer struct {
	code    string
	index   int
	src     []rune
	base    int
	pos     int
	sec     Section
	started bool
}

func lexSection(code string, index int, raw rawSection) (Section, error) {
	l := &lexer{code: code, index: index, src: raw.src, base: raw.base}
	if err := l.run(); err != nil {
		return Section{}, err
	}
	return l.sec, nil
}

func (l *lexer) fail(kind ErrorKind, at int, msg string) error {
	return &ParseError{Kind: kind, Code: l.code, Section: l.index, Offset: l.base + at, Msg: msg}
}

func (l *lexer) emit(t Token) {
	l.started = true
	l.sec.Tokens = append(l.sec.Tokens, t)
}

func (l *lexer) literal(s string) { l.emit(Token{Kind: KindLiteral, Text: s}) }

// peek returns the rune at pos+n, or 0 past the end.
func (l *lexer) peek(n int) rune {
	if l.pos+n < len(l.src) {
		return l.src[l.pos+n]
	}
	return 0
}

// hasPrefixFold reports whether the input at pos starts with s, ignoring
// case.
func (l *lexer) hasPrefixFold(s string) bool {
	r := []rune(s)
	if l.pos+len(r) > len(l.src) {
		return false
	}
	return strings.EqualFold(string(l.src[l.pos:l.pos+len(r)]), s)
}

func (l *lexer) run() error {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '[':
			if err := l.bracket(); err != nil {
				return err
			}
		case c == '"':
			if err := l.quoted(); err != nil {
				return err
			}
		case c == '\\' || c == '_' || c == '*':
			arg := l.peek(1)
			if l.pos+1 >= len(l.src) {
				return l.fail(UnsupportedToken, l.pos, "missing character after "+string(c))
			}
			switch c {
			case '\\':
				l.literal(string(arg))
			case '_':
				l.emit(Token{Kind: KindSpace, Char: arg})
			default:
				l.emit(Token{Kind: KindFill, Char: arg})
			}
			l.pos += 2
		case c == '@':
			l.emit(Token{Kind: KindTextValue})
			l.pos++
		case c == '%':
			l.emit(Token{Kind: KindPercent})
			l.pos++
		case c == '.':
			l.emit(Token{Kind: KindDecimalPoint})
			l.pos++
		case c == '0' || c == '#' || c == '?':
			l.digitRun()
		case c == 'E' || c == 'e':
			if s := l.peek(1); s == '+' || s == '-' {
				l.emit(Token{Kind: KindExponent, Sign: byte(s)})
				l.pos += 2
				continue
			}
			return l.fail(UnsupportedToken, l.pos, "E must be followed by + or -")
		case c == 'G' || c == 'g':
			if !l.hasPrefixFold("General") {
				return l.fail(UnsupportedToken, l.pos, "unexpected "+strconv.QuoteRune(c))
			}
			l.emit(Token{Kind: KindGeneral})
			l.pos += len("General")
		case c == 'A' || c == 'a':
			switch {
			case l.hasPrefixFold("AM/PM"):
				l.emit(Token{Kind: KindAmPm, Text: string(l.src[l.pos : l.pos+5]), Width: 5})
				l.pos += 5
			case l.hasPrefixFold("A/P"):
				l.emit(Token{Kind: KindAmPm, Text: string(l.src[l.pos : l.pos+3]), Width: 3})
				l.pos += 3
			default:
				return l.fail(UnsupportedToken, l.pos, "unexpected "+strconv.QuoteRune(c))
			}
		case strings.ContainsRune("ymdhs", unicode.ToLower(c)):
			if err := l.dateRun(); err != nil {
				return err
			}
		case strings.ContainsRune(literalChars, c):
			if c == '-' || c == '+' || c == '(' {
				l.sec.HasExplicitSign = true
			}
			l.literal(string(c))
			l.pos++
		default:
			return l.fail(UnsupportedToken, l.pos, "unexpected "+strconv.QuoteRune(c))
		}
	}
	return nil
}

// quoted reads "..." starting at the opening quote.
func (l *lexer) quoted() error {
	start := l.pos
	var b strings.Builder
	for i := l.pos + 1; i < len(l.src); i++ {
		c := l.src[i]
		if c == '\\' && i+1 < len(l.src) && l.src[i+1] == '"' {
			b.WriteRune('"')
			i++
			continue
		}
		if c == '"' {
			l.literal(b.String())
			l.pos = i + 1
			return nil
		}
		b.WriteRune(c)
	}
	return l.fail(UnsupportedToken, start, "unterminated quoted text")
}

// digitRun reads placeholders and the commas between and after them.
func (l *lexer) digitRun() {
	t := Token{Kind: KindDigitRun}
	var pat strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '0' || c == '#' || c == '?' {
			pat.WriteRune(c)
			l.pos++
			continue
		}
		if c != ',' {
			break
		}
		n := 0
		for l.pos+n < len(l.src) && l.src[l.pos+n] == ',' {
			n++
		}
		if next := l.peek(n); next == '0' || next == '#' || next == '?' {
			t.Grouping = true
			l.pos += n
			continue
		}
		t.Scale = n
		l.pos += n
		break
	}
	t.Pattern = pat.String()
	l.emit(t)
}

// dateRun reads a run of one date letter in any case.
func (l *lexer) dateRun() error {
	start := l.pos
	letter := unicode.ToLower(l.src[l.pos])
	n := 0
	for l.pos < len(l.src) && unicode.ToLower(l.src[l.pos]) == letter {
		n++
		l.pos++
	}
	t := Token{Kind: KindDateTime, Width: n}
	switch letter {
	case 'y':
		t.Field, t.Width = FieldYear, 4
		if n <= 2 {
			t.Width = 2
		}
	case 'm':
		if n > 5 {
			return l.fail(UnsupportedToken, start, "month code longer than mmmmm")
		}
		t.Field = FieldMonth
	case 'd':
		switch {
		case n >= 4:
			t.Field, t.Width = FieldWeekday, 4
		case n == 3:
			t.Field = FieldWeekday
		default:
			t.Field = FieldDay
		}
	case 'h':
		t.Field, t.Width = FieldHour, min(n, 2)
	case 's':
		t.Field, t.Width = FieldSecond, min(n, 2)
	}
	l.emit(t)
	return nil
}

// bracket classifies [...] starting at the opening bracket.
func (l *lexer) bracket() error {
	start := l.pos
	end := -1
	for i := l.pos + 1; i < len(l.src); i++ {
		if l.src[i] == ']' {
			end = i
			break
		}
	}
	if end < 0 {
		return l.fail(MalformedBracket, start, "unterminated [")
	}
	body := string(l.src[start+1 : end])
	l.pos = end + 1
	if body == "" {
		return l.fail(MalformedBracket, start, "empty []")
	}

	switch body[0] {
	case '<', '>', '=':
		return l.condition(start, body)
	case '$':
		return l.locale(start, body[1:])
	}

	switch strings.ToLower(body) {
	case "h", "hh":
		l.emit(Token{Kind: KindElapsed, Field: FieldHour, Width: len(body)})
		return nil
	case "m", "mm":
		l.emit(Token{Kind: KindElapsed, Field: FieldMinute, Width: len(body)})
		return nil
	case "s", "ss":
		l.emit(Token{Kind: KindElapsed, Field: FieldSecond, Width: len(body)})
		return nil
	}

	col, ok := parseColor(body)
	if !ok {
		return l.fail(UnknownColorName, start, "unknown color "+strconv.Quote(body))
	}
	if l.sec.Color != nil {
		return l.fail(MalformedBracket, start, "second color")
	}
	if l.started {
		return l.fail(MalformedBracket, start, "color must come first")
	}
	l.sec.Color = &col
	return nil
}

func parseColor(body string) (Color, bool) {
	for i, name := range colorNames {
		if strings.EqualFold(body, name) {
			return Color{Name: name, Index: i + 1}, true
		}
	}
	if len(body) > 5 && strings.EqualFold(body[:5], "Color") {
		n, err := strconv.Atoi(body[5:])
		if err == nil && n >= 1 && n <= 56 {
			return Color{Name: "Color" + strconv.Itoa(n), Index: n}, true
		}
	}
	return Color{}, false
}

func (l *lexer) condition(start int, body string) error {
	if l.sec.Condition != nil {
		return l.fail(MalformedBracket, start, "second condition")
	}
	var op CompareOp
	for _, cand := range []CompareOp{OpLE, OpGE, OpNE, OpLT, OpGT, OpEQ} {
		if strings.HasPrefix(body, string(cand)) {
			op = cand
			break
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(body[len(op):]), 64)
	if err != nil {
		return l.fail(MalformedBracket, start, "bad condition value "+strconv.Quote(body))
	}
	l.sec.Condition = &Condition{Op: op, Value: v}
	l.started = true
	return nil
}

// locale handles the part of [$sym-hex] after the '$'.  The symbol may
// itself contain '-', so the last hyphen separates it from the hex.
func (l *lexer) locale(start int, rest string) error {
	if l.sec.Locale != nil {
		return l.fail(MalformedBracket, start, "second locale tag")
	}
	i := strings.LastIndexByte(rest, '-')
	if i < 0 {
		return l.fail(InvalidLocaleTag, start, "locale tag without -hex part")
	}
	sym, hex := rest[:i], rest[i+1:]
	id, ext, ok := lcid.ParseHex(hex)
	if !ok {
		return l.fail(InvalidLocaleTag, start, "bad locale id "+strconv.Quote(hex))
	}
	tag, _ := lcid.Lookup(id)
	l.sec.Locale = &Locale{Symbol: sym, LCID: id, Ext: ext, Tag: tag}
	l.started = true
	if sym != "" {
		l.literal(sym)
	}
	return nil
}
