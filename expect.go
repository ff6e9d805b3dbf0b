package textscan

import (
	"fmt"
	"unicode"
)

func foldEqual(a, b rune, ignoreCase bool) bool {
	if a == b {
		return true
	}
	return ignoreCase && unicode.ToLower(a) == unicode.ToLower(b)
}

// Expect consumes the given string if the stream starts with it. Atomic: on
// mismatch nothing is consumed. Requires lookahead of len(s).
func (s *Scanner) Expect(str string, ignoreCase bool) bool {
	return s.ExpectAt(str, ignoreCase, false, 0)
}

// ExpectAt matches str against the stream starting k characters ahead of the
// cursor. With lookahead=true the state is left untouched on a match;
// otherwise the cursor advances past the match, consuming the k skipped
// characters as well. Atomic either way: a mismatch never consumes.
func (s *Scanner) ExpectAt(str string, ignoreCase bool, lookahead bool, k int) bool {
	if k < 0 {
		configPanic("ExpectAt", "negative offset %d", k)
	}
	chars := []rune(str)
	s.requireLookahead("ExpectAt", k+len(chars))
	for i, want := range chars {
		if !foldEqual(s.PeekAt(k+i), want, ignoreCase) {
			return false
		}
	}
	if !lookahead {
		s.Skip(k + len(chars))
	}
	return true
}

// ExpectUnsafe consumes the longest common prefix of the stream and str and
// reports whether the whole string matched. Unlike Expect it leaves the
// cursor after the matched prefix on a mismatch; only use it when partial
// consumption is acceptable. Needs no lookahead, so str may be longer than
// the buffer capacity.
func (s *Scanner) ExpectUnsafe(str string, ignoreCase bool) bool {
	for _, want := range str {
		if !foldEqual(s.Peek(), want, ignoreCase) {
			return false
		}
		s.Next()
	}
	return true
}

// ExpectOne consumes the next character if it equals c.
func (s *Scanner) ExpectOne(c rune) bool {
	if s.Peek() != c || c == EOS {
		return false
	}
	s.Next()
	return true
}

// ExpectFilter consumes the next character if the filter accepts it.
func (s *Scanner) ExpectFilter(f Filter) bool {
	r := s.Peek()
	if r == EOS || !f.Accept(r) {
		return false
	}
	s.Next()
	return true
}

// Require is Expect with teeth: a mismatch emits an ERROR message and returns
// it, without consuming anything.
func (s *Scanner) Require(str string, ignoreCase bool) error {
	if s.closed {
		return ErrClosed
	}
	if s.Expect(str, ignoreCase) {
		return nil
	}
	found := s.PeekString(len([]rune(str)))
	msg := fmt.Sprintf("expecting %q but found %q", str, found)
	s.emit(SeverityError, msg)
	return &Error{Pos: s.Pos(), Message: msg}
}

// SkipWhile consumes characters equal to c and returns the count.
func (s *Scanner) SkipWhile(c rune) int {
	count := 0
	for s.Peek() == c && c != EOS {
		s.Next()
		count++
	}
	return count
}

// SkipWhileFilter consumes characters accepted by the filter, up to max
// (max < 0 means unbounded), and returns the count.
func (s *Scanner) SkipWhileFilter(f Filter, max int) int {
	count := 0
	for max < 0 || count < max {
		r := s.Peek()
		if r == EOS || !f.Accept(r) {
			break
		}
		s.Next()
		count++
	}
	return count
}

// ReadWhile consumes characters accepted by the filter, up to max (max < 0
// means unbounded), and returns them. If fewer than min characters matched,
// the matched prefix stays consumed and an error describing the shortfall is
// returned along with it.
func (s *Scanner) ReadWhile(f Filter, min, max int) (string, error) {
	if min < 0 {
		configPanic("ReadWhile", "negative min %d", min)
	}
	if max >= 0 && max < min {
		configPanic("ReadWhile", "max %d below min %d", max, min)
	}
	if s.closed {
		return "", ErrClosed
	}
	s.scratch.Reset()
	count := 0
	for max < 0 || count < max {
		r := s.Peek()
		if r == EOS || !f.Accept(r) {
			break
		}
		s.scratch.WriteRune(s.Next())
		count++
	}
	text := s.scratch.String()
	if count < min {
		msg := fmt.Sprintf("required at least %d character(s) matching %s but found only %d", min, f.Description(), count)
		s.emit(SeverityError, msg)
		return text, &Error{Pos: s.Pos(), Message: msg}
	}
	return text, nil
}

// SkipUntil consumes characters until stop is found (consuming it too) and
// reports whether it was.
func (s *Scanner) SkipUntil(stop rune) bool {
	for {
		r := s.Next()
		if r == EOS {
			return false
		}
		if r == stop {
			return true
		}
	}
}

// SkipUntilEscaped is SkipUntil with an escape character: the character after
// escape never stops the scan. When escape equals stop, a doubled occurrence
// reads as an escaped literal and a lone occurrence terminates the scan.
func (s *Scanner) SkipUntilEscaped(stop, escape rune) bool {
	for {
		r := s.Next()
		if r == EOS {
			return false
		}
		if r == escape && escape != NoChar {
			if escape == stop {
				if s.Peek() == stop {
					s.Next()
					continue
				}
				return true
			}
			if s.Next() == EOS {
				return false
			}
			continue
		}
		if r == stop {
			return true
		}
	}
}

// SkipOver scans forward until sub appears, consuming it, and returns true.
// The scan stops early, returning false, when the stop filter accepts a
// character (left unconsumed) or at EOT. Matching is accelerated on the first
// character of sub; the remainder is confirmed with lookahead.
func (s *Scanner) SkipOver(sub string, ignoreCase bool, stop Filter) bool {
	chars := []rune(sub)
	if len(chars) == 0 {
		return true
	}
	s.requireLookahead("SkipOver", len(chars))
	first := chars[0]
	for {
		r := s.Peek()
		if r == EOS {
			return false
		}
		if stop != nil && stop.Accept(r) {
			return false
		}
		if foldEqual(r, first, ignoreCase) && s.Expect(sub, ignoreCase) {
			return true
		}
		s.Next()
	}
}
