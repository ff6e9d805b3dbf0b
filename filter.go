package textscan

import (
	"strings"

	"github.com/smasher164/xid"
)

// Filter is a predicate over a single codepoint. The description shows up in
// error messages ("required at least 1 character(s) matching a digit ..."), so keep
// it short and human.
type Filter interface {
	Accept(r rune) bool
	Description() string
}

type filterFunc struct {
	desc string
	fn   func(rune) bool
}

func (f filterFunc) Accept(r rune) bool  { return f.fn(r) }
func (f filterFunc) Description() string { return f.desc }

// NewFilter wraps a plain predicate function as a Filter.
func NewFilter(desc string, fn func(rune) bool) Filter {
	return filterFunc{desc: desc, fn: fn}
}

var (
	// Digit accepts the latin digits '0'..'9'.
	Digit = NewFilter("a digit", func(r rune) bool { return r >= '0' && r <= '9' })

	// Letter accepts the latin letters a-z and A-Z.
	Letter = NewFilter("a latin letter", func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})

	// Whitespace accepts space, tab, newline and carriage return.
	Whitespace = NewFilter("whitespace", func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	// Newline accepts '\n' only; '\r' is handled by ReadLine/SkipNewLine.
	Newline = NewFilter("a newline", func(r rune) bool { return r == '\n' })

	// OctalDigit accepts '0'..'7'.
	OctalDigit = NewFilter("an octal digit", func(r rune) bool { return r >= '0' && r <= '7' })

	// HexDigit accepts '0'..'9', 'a'..'f' and 'A'..'F'.
	HexDigit = NewFilter("a hex digit", func(r rune) bool {
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	})

	// Any accepts every codepoint.
	Any = NewFilter("any character", func(r rune) bool { return true })

	// SingleQuote accepts the single quote character.
	SingleQuote = NewFilter("a single quote", func(r rune) bool { return r == '\'' })

	// IdentifierStart accepts codepoints that may start a Unicode identifier,
	// plus '_'.
	IdentifierStart = NewFilter("an identifier start", func(r rune) bool {
		return xid.Start(r) || r == '_'
	})

	// IdentifierPart accepts codepoints that may continue a Unicode identifier.
	IdentifierPart = NewFilter("an identifier character", func(r rune) bool {
		return xid.Continue(r)
	})
)

// AnyOf accepts exactly the runes contained in set.
func AnyOf(set string) Filter {
	return NewFilter("one of "+quoteSet(set), func(r rune) bool {
		return strings.ContainsRune(set, r)
	})
}

// Not inverts a filter.
func Not(f Filter) Filter {
	return NewFilter("not "+f.Description(), func(r rune) bool { return !f.Accept(r) })
}

func quoteSet(set string) string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(set)
	b.WriteByte('"')
	return b.String()
}
