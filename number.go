package textscan

// NumberParser receives the tokens of a numeric literal as ReadNumber
// discovers them and decides, token by token, whether the scan continues.
// Every callback that returns false (or, for Radix and SpecialFor, zero and
// "") leaves the rejected characters in the stream.
type NumberParser interface {
	// Sign is offered a leading '+' or '-'.
	Sign(c rune) bool
	// Radix is offered a probed radix prefix: 16 for 0x/0X, 2 for 0b/0B, 8
	// for a leading zero followed by a digit. It returns the radix to apply,
	// or 0 to reject the prefix. The octal symbol is the first real digit and
	// stays in the stream either way.
	Radix(probed int, symbol rune) int
	// Digit is offered a digit and its value. Digits are probed under
	// max(radix, 10) so that a parser for a small radix sees the whole
	// malformed token (e.g. "0b1012") instead of stopping mid-number.
	Digit(value int, c rune) bool
	// Dot is offered a '.'.
	Dot() bool
	// Exponent is offered the exponent symbol ('e'/'E' under radix 10,
	// 'p'/'P' otherwise) together with an optional sign, or NoChar.
	Exponent(symbol, sign rune) bool
	// SpecialFor returns the completion expected at c ("NaN", "Infinity",
	// "_", a type suffix), or "" when c cannot start a special token. The
	// completion is matched atomically and case-sensitively against the
	// stream; on a match SpecialAccepted is invoked.
	SpecialFor(c rune) string
	SpecialAccepted(s string)
}

// RadixMode decides which numeric prefixes the typed readers recognize.
type RadixMode int

const (
	// RadixAll accepts 0x/0X, 0b/0B and leading-zero octal.
	RadixAll RadixMode = iota
	// RadixOnly10 rejects every prefix; all input parses as decimal.
	RadixOnly10
	// RadixNoOctal rejects leading-zero octal ("010" stays 10) while still
	// accepting 0x and 0b.
	RadixNoOctal
)

// ReadNumber reads at most one number token at the cursor, delegating every
// decision to the parser. When the first offered token is rejected nothing is
// consumed at all.
func (s *Scanner) ReadNumber(p NumberParser) {
	c := s.Peek()
	if c == '+' || c == '-' {
		if !p.Sign(c) {
			return
		}
		s.Next()
		c = s.Peek()
	}
	radix := 10
	if c == '0' {
		probed, symbol := 0, NoChar
		switch next := s.PeekAt(1); {
		case next == 'x' || next == 'X':
			probed, symbol = 16, next
		case next == 'b' || next == 'B':
			probed, symbol = 2, next
		case next >= '0' && next <= '9':
			probed, symbol = 8, next
		}
		if probed != 0 {
			if r := p.Radix(probed, symbol); r != 0 {
				radix = r
				s.Next()
				if probed != 8 {
					s.Next()
				}
			}
		}
	}
	digitRadix := radix
	if digitRadix < 10 {
		digitRadix = 10
	}
	for {
		c = s.Peek()
		if v := digitValue(c, digitRadix); v >= 0 {
			if !p.Digit(v, c) {
				return
			}
			s.Next()
			continue
		}
		if c == '.' {
			if !p.Dot() {
				return
			}
			s.Next()
			continue
		}
		if isExponentSymbol(c, radix) {
			sign := NoChar
			if next := s.PeekAt(1); next == '+' || next == '-' {
				sign = next
			}
			if !p.Exponent(c, sign) {
				return
			}
			s.Next()
			if sign != NoChar {
				s.Next()
			}
			continue
		}
		if c == EOS {
			return
		}
		expect := p.SpecialFor(c)
		if expect == "" || !s.Expect(expect, false) {
			return
		}
		p.SpecialAccepted(expect)
	}
}

func isExponentSymbol(c rune, radix int) bool {
	if radix == 10 {
		return c == 'e' || c == 'E'
	}
	return c == 'p' || c == 'P'
}

func digitValue(c rune, radix int) int {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return -1
	}
	if v >= radix {
		return -1
	}
	return v
}

// ReadDigit consumes a single digit under the given radix and returns its
// value, or -1 without consuming anything.
func (s *Scanner) ReadDigit(radix int) int {
	if radix < 2 || radix > 36 {
		configPanic("ReadDigit", "radix %d out of range 2..36", radix)
	}
	v := digitValue(s.Peek(), radix)
	if v >= 0 {
		s.Next()
	}
	return v
}

// ReadInteger reads a number token and converts it to int32.
func (s *Scanner) ReadInteger(mode RadixMode) (int32, error) {
	if s.closed {
		return 0, ErrClosed
	}
	p := newNumberAccumulator(kindInt32, mode)
	s.ReadNumber(p)
	v, err := p.asInt64()
	if err != nil {
		s.emit(SeverityError, err.Error())
		return 0, err
	}
	return int32(v), nil
}

// ReadLong reads a number token and converts it to int64.
func (s *Scanner) ReadLong(mode RadixMode) (int64, error) {
	if s.closed {
		return 0, ErrClosed
	}
	p := newNumberAccumulator(kindInt64, mode)
	s.ReadNumber(p)
	v, err := p.asInt64()
	if err != nil {
		s.emit(SeverityError, err.Error())
		return 0, err
	}
	return v, nil
}

// ReadDouble reads a number token and converts it to float64. Besides plain
// decimal notation this accepts NaN, Infinity, and radix-prefixed mantissas
// with a binary 'p' exponent (hex floats).
func (s *Scanner) ReadDouble(mode RadixMode) (float64, error) {
	if s.closed {
		return 0, ErrClosed
	}
	p := newNumberAccumulator(kindFloat64, mode)
	s.ReadNumber(p)
	v, err := p.asFloat64()
	if err != nil {
		s.emit(SeverityError, err.Error())
		return 0, err
	}
	return v, nil
}

// ReadFloat reads a number token and converts it to float32.
func (s *Scanner) ReadFloat(mode RadixMode) (float32, error) {
	v, err := s.ReadDouble(mode)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}

// ReadNumberLiteral reads a number token with language-style type suffixes:
// l/L selects int64, f/F float32, d/D float64. Without a suffix the value is
// an int64 unless a dot, an exponent or a special token makes it a float64.
func (s *Scanner) ReadNumberLiteral() (any, error) {
	if s.closed {
		return nil, ErrClosed
	}
	p := newNumberAccumulator(kindAuto, RadixAll)
	s.ReadNumber(p)
	v, err := p.asLiteral()
	if err != nil {
		s.emit(SeverityError, err.Error())
		return nil, err
	}
	return v, nil
}
