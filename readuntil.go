package textscan

import (
	"fmt"
	"strings"
)

// ReadUntil consumes characters until stop is found and returns the text
// before it. The stop character is consumed but not part of the result. At
// EOT the accumulated text is returned when acceptEOT is true; otherwise the
// scan yields no result (ok=false).
func (s *Scanner) ReadUntil(stop rune, acceptEOT bool) (string, bool) {
	s.scratch.Reset()
	for {
		r := s.Next()
		if r == EOS {
			return s.untilEOT(acceptEOT)
		}
		if r == stop {
			return s.scratch.String(), true
		}
		s.scratch.WriteRune(r)
	}
}

// ReadUntilEscaped is ReadUntil with an escape character: the character after
// escape is taken literally and never stops the scan; the escape itself is
// dropped from the result. When escape equals stop, a doubled occurrence
// yields one literal stop character and a lone occurrence terminates the scan.
func (s *Scanner) ReadUntilEscaped(stop, escape rune, acceptEOT bool) (string, bool) {
	s.scratch.Reset()
	for {
		r := s.Next()
		if r == EOS {
			return s.untilEOT(acceptEOT)
		}
		if r == escape && escape != NoChar {
			if escape == stop {
				if s.Peek() == stop {
					s.scratch.WriteRune(s.Next())
					continue
				}
				return s.scratch.String(), true
			}
			next := s.Next()
			if next == EOS {
				return s.untilEOT(acceptEOT)
			}
			s.scratch.WriteRune(next)
			continue
		}
		if r == stop {
			return s.scratch.String(), true
		}
		s.scratch.WriteRune(r)
	}
}

// ReadUntilStop consumes characters until either the filter accepts one or
// stopStr fully matches; both kinds of stop are consumed and excluded from
// the result. With trim=true the result is stripped of surrounding spaces and
// of leading '*' decoration, which makes the reader directly useful for
// doc-comment style blocks.
func (s *Scanner) ReadUntilStop(f Filter, stopStr string, ignoreCase bool, trim bool, acceptEOT bool) (string, bool) {
	stopChars := []rune(stopStr)
	if len(stopChars) > 0 {
		s.requireLookahead("ReadUntilStop", len(stopChars))
	}
	s.scratch.Reset()
	for {
		r := s.Peek()
		if r == EOS {
			text, ok := s.untilEOT(acceptEOT)
			if ok && trim {
				text = trimDecorated(text)
			}
			return text, ok
		}
		if len(stopChars) > 0 && foldEqual(r, stopChars[0], ignoreCase) && s.Expect(stopStr, ignoreCase) {
			break
		}
		if f != nil && f.Accept(r) {
			s.Next()
			break
		}
		s.scratch.WriteRune(s.Next())
	}
	text := s.scratch.String()
	if trim {
		text = trimDecorated(text)
	}
	return text, true
}

func (s *Scanner) untilEOT(acceptEOT bool) (string, bool) {
	if acceptEOT {
		return s.scratch.String(), true
	}
	return "", false
}

// trimDecorated strips surrounding spaces plus the leading '*' decoration of
// doc-comment lines.
func trimDecorated(text string) string {
	text = strings.TrimLeft(text, " *")
	return strings.TrimRight(text, " ")
}

// states of the syntax-driven scan
type syntaxState int

const (
	stScan syntaxState = iota
	stEscape
	stQuote
	stQuoteEscape
	stLazyQuote
	stEntity
)

// ReadUntilSyntax consumes characters until stop is found outside any
// quotation, applying the quoting, escaping and entity rules of syn. The stop
// character is consumed and excluded from the result. Surrounding quote
// characters are removed from the output; escaped characters and resolved
// entities are substituted in. An entity resolution failure aborts the scan
// with an error.
func (s *Scanner) ReadUntilSyntax(stop rune, syn *Syntax, acceptEOT bool) (string, bool, error) {
	return s.readUntilSyntax(func(r rune) bool { return r == stop }, syn, acceptEOT)
}

// ReadUntilFilterSyntax is ReadUntilSyntax with a filter deciding which
// characters stop the scan.
func (s *Scanner) ReadUntilFilterSyntax(f Filter, syn *Syntax, acceptEOT bool) (string, bool, error) {
	return s.readUntilSyntax(f.Accept, syn, acceptEOT)
}

func (s *Scanner) readUntilSyntax(isStop func(rune) bool, syn *Syntax, acceptEOT bool) (string, bool, error) {
	if s.closed {
		return "", false, ErrClosed
	}
	s.scratch.Reset()
	out := &s.scratch
	var entity strings.Builder
	var frame quoteFrame
	state := stScan

	for {
		r := s.Next()
		if r == EOS {
			return s.syntaxEOT(state, frame, &entity, syn, acceptEOT)
		}
	process:
		switch state {
		case stScan:
			switch {
			case isStop(r):
				return out.String(), true, nil
			case syn.Escape != NoChar && r == syn.Escape:
				state = stEscape
			case syn.EntityStart != NoChar && r == syn.EntityStart:
				entity.Reset()
				state = stEntity
			default:
				if f, ok := syn.frameFor(r); ok {
					frame = f
					if frame.lazy {
						state = stLazyQuote
					} else {
						state = stQuote
					}
					break
				}
				out.WriteRune(r)
			}

		case stEscape:
			// the current character is taken literally, stop or not
			out.WriteRune(r)
			state = stScan

		case stLazyQuote:
			// the previous character was a lazy quote; doubled means a
			// literal quote outside any quotation, anything else means a
			// quotation was opened and r is its first character
			if r == frame.end {
				out.WriteRune(frame.end)
				state = stScan
				break
			}
			state = stQuote
			goto process

		case stQuote:
			// the plain escape is disabled inside quotations
			switch r {
			case frame.escape:
				state = stQuoteEscape
			case frame.end:
				state = stScan
			default:
				out.WriteRune(r)
			}

		case stQuoteEscape:
			if r == frame.end {
				// escaped literal end character, still quoted
				out.WriteRune(frame.end)
				state = stQuote
				break
			}
			if frame.escape == frame.end {
				// the escape was really the closing quote; r is plain text
				state = stScan
				goto process
			}
			// the escape turned out to be a regular character
			out.WriteRune(frame.escape)
			state = stQuote
			goto process

		case stEntity:
			if r == syn.EntityEnd {
				name := entity.String()
				if syn.ResolveEntity == nil {
					err := &Error{Pos: s.Pos(), Message: fmt.Sprintf("unknown entity %q", name)}
					s.emit(SeverityError, err.Message)
					return out.String(), false, err
				}
				text, err := syn.ResolveEntity(name)
				if err != nil {
					s.emit(SeverityError, err.Error())
					return out.String(), false, &Error{Pos: s.Pos(), Message: err.Error()}
				}
				out.WriteString(text)
				state = stScan
				break
			}
			entity.WriteRune(r)
		}
	}
}

// syntaxEOT finishes a syntax-driven scan that ran out of input.
func (s *Scanner) syntaxEOT(state syntaxState, frame quoteFrame, entity *strings.Builder, syn *Syntax, acceptEOT bool) (string, bool, error) {
	switch state {
	case stLazyQuote:
		// isolated quote character at the very end
		s.scratch.WriteRune(frame.end)
	case stQuote:
		s.emit(SeverityWarning, "unterminated quotation")
	case stQuoteEscape:
		if frame.escape != frame.end {
			s.scratch.WriteRune(frame.escape)
			s.emit(SeverityWarning, "unterminated quotation")
		}
		// with escape == end the pending escape closed the quotation
	case stEntity:
		// keep the unterminated entity as literal text
		s.emit(SeverityWarning, "unterminated entity")
		s.scratch.WriteRune(syn.EntityStart)
		s.scratch.WriteString(entity.String())
	}
	text, ok := s.untilEOT(acceptEOT)
	return text, ok, nil
}
