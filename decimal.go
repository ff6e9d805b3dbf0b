package textscan

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// decimalParser is the string-building NumberParser flavor: instead of
// accumulating a machine mantissa it collects the token text and hands it to
// apd for arbitrary-precision decimal parsing. Radix prefixes are rejected so
// a leading zero simply reads as a decimal digit.
type decimalParser struct {
	b         strings.Builder
	digits    int
	dotSeen   bool
	inExp     bool
	expDigits int
	special   string
	failed    bool
}

func (p *decimalParser) Sign(c rune) bool {
	p.b.WriteRune(c)
	return true
}

func (p *decimalParser) Radix(probed int, symbol rune) int { return 0 }

func (p *decimalParser) Digit(value int, c rune) bool {
	if p.special != "" {
		p.failed = true
	}
	if p.inExp {
		p.expDigits++
	} else {
		p.digits++
	}
	p.b.WriteRune(c)
	return true
}

func (p *decimalParser) Dot() bool {
	if p.dotSeen || p.inExp {
		p.failed = true
	}
	p.dotSeen = true
	p.b.WriteRune('.')
	return true
}

func (p *decimalParser) Exponent(symbol, sign rune) bool {
	if p.inExp || p.digits == 0 {
		return false
	}
	p.inExp = true
	p.b.WriteRune(symbol)
	if sign != NoChar {
		p.b.WriteRune(sign)
	}
	return true
}

func (p *decimalParser) SpecialFor(c rune) string {
	if p.special != "" || p.digits > 0 || p.dotSeen {
		return ""
	}
	switch c {
	case 'N':
		return "NaN"
	case 'I':
		return "Infinity"
	}
	return ""
}

func (p *decimalParser) SpecialAccepted(s string) {
	p.special = s
	p.b.WriteString(s)
}

func (p *decimalParser) asDecimal() (*apd.Decimal, error) {
	text := p.b.String()
	if p.failed || (p.special == "" && p.digits == 0) || (p.inExp && p.expDigits == 0) {
		return nil, &NumberFormatError{Text: text, Radix: 10}
	}
	d, _, err := apd.NewFromString(text)
	if err != nil {
		return nil, &NumberFormatError{Text: text, Radix: 10}
	}
	return d, nil
}

// ReadDecimal reads a decimal number token of arbitrary precision. Unlike
// ReadDouble it never rounds: the digits are handed verbatim to an
// arbitrary-precision decimal. Radix prefixes are not recognized.
func (s *Scanner) ReadDecimal() (*apd.Decimal, error) {
	if s.closed {
		return nil, ErrClosed
	}
	var p decimalParser
	s.ReadNumber(&p)
	d, err := p.asDecimal()
	if err != nil {
		s.emit(SeverityError, err.Error())
		return nil, err
	}
	return d, nil
}
