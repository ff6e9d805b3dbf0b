package textscan

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// NoChar disables a syntax slot.
const NoChar rune = 0

// Syntax configures how ReadUntilSyntax treats quotes, escapes and entities.
// A zero Syntax scans plain text. The value is treated as immutable while a
// scan is running.
//
// The lazy flags only apply when the corresponding start, end and escape
// characters are all the same (SQL-style quoting): a doubled quote character
// outside a quotation is then kept as one literal quote instead of reading as
// an empty quotation. A single quote character followed by anything else
// still opens a quotation; one at the very end of the input stays literal.
type Syntax struct {
	Escape rune

	QuoteStart      rune
	QuoteEnd        rune
	QuoteEscape     rune
	QuoteEscapeLazy bool

	AltQuoteStart      rune
	AltQuoteEnd        rune
	AltQuoteEscape     rune
	AltQuoteEscapeLazy bool

	EntityStart rune
	EntityEnd   rune

	// ResolveEntity maps the text between EntityStart and EntityEnd
	// (exclusive) to its replacement. Returning an error aborts the scan.
	ResolveEntity func(name string) (string, error)
}

// EntityMap returns a resolver backed by a fixed table; unknown names fail.
func EntityMap(entities map[string]string) func(string) (string, error) {
	return func(name string) (string, error) {
		if text, ok := entities[name]; ok {
			return text, nil
		}
		return "", fmt.Errorf("unknown entity %q", name)
	}
}

// SyntaxConfig is the YAML-friendly mirror of Syntax; every character slot is
// a (possibly empty) string holding a single character. Used by the CLI's
// textscan.yaml but exported since config files are a reasonable way to ship
// syntax definitions around.
type SyntaxConfig struct {
	Escape string `yaml:"escape"`

	Quote        string `yaml:"quote"`
	QuoteEnd     string `yaml:"quoteEnd"`
	QuoteEscape  string `yaml:"quoteEscape"`
	QuoteLazy    bool   `yaml:"quoteLazy"`
	AltQuote     string `yaml:"altQuote"`
	AltQuoteEnd  string `yaml:"altQuoteEnd"`
	AltQuoteEsc  string `yaml:"altQuoteEscape"`
	AltQuoteLazy bool   `yaml:"altQuoteLazy"`
	EntityStart  string `yaml:"entityStart"`
	EntityEnd    string `yaml:"entityEnd"`

	Entities map[string]string `yaml:"entities"`
}

// ParseSyntaxConfig unmarshals a YAML document into a SyntaxConfig.
func ParseSyntaxConfig(doc []byte) (SyntaxConfig, error) {
	var cfg SyntaxConfig
	if err := yaml.Unmarshal(doc, &cfg); err != nil {
		return SyntaxConfig{}, err
	}
	return cfg, nil
}

// Syntax converts the config into a usable Syntax value. Quote ends default
// to their start characters, and quote escapes default to the end characters,
// which gives SQL-style doubling with just `quote: "'"`.
func (c SyntaxConfig) Syntax() (Syntax, error) {
	var syn Syntax
	var err error
	set := func(slot *rune, value, name string) {
		if err != nil || value == "" {
			return
		}
		r, size := utf8.DecodeRuneInString(value)
		if size != len(value) || r == utf8.RuneError {
			err = fmt.Errorf("syntax config: %s must be a single character, got %q", name, value)
			return
		}
		*slot = r
	}
	set(&syn.Escape, c.Escape, "escape")
	set(&syn.QuoteStart, c.Quote, "quote")
	set(&syn.QuoteEnd, c.QuoteEnd, "quoteEnd")
	set(&syn.QuoteEscape, c.QuoteEscape, "quoteEscape")
	set(&syn.AltQuoteStart, c.AltQuote, "altQuote")
	set(&syn.AltQuoteEnd, c.AltQuoteEnd, "altQuoteEnd")
	set(&syn.AltQuoteEscape, c.AltQuoteEsc, "altQuoteEscape")
	set(&syn.EntityStart, c.EntityStart, "entityStart")
	set(&syn.EntityEnd, c.EntityEnd, "entityEnd")
	if err != nil {
		return Syntax{}, err
	}
	if syn.QuoteStart != NoChar {
		if syn.QuoteEnd == NoChar {
			syn.QuoteEnd = syn.QuoteStart
		}
		if syn.QuoteEscape == NoChar {
			syn.QuoteEscape = syn.QuoteEnd
		}
	}
	if syn.AltQuoteStart != NoChar {
		if syn.AltQuoteEnd == NoChar {
			syn.AltQuoteEnd = syn.AltQuoteStart
		}
		if syn.AltQuoteEscape == NoChar {
			syn.AltQuoteEscape = syn.AltQuoteEnd
		}
	}
	syn.QuoteEscapeLazy = c.QuoteLazy
	syn.AltQuoteEscapeLazy = c.AltQuoteLazy
	if len(c.Entities) > 0 {
		syn.ResolveEntity = EntityMap(c.Entities)
	}
	return syn, nil
}

// quote frame used by the ReadUntilSyntax state machine; collapses the main
// and alt quote triples into one shape.
type quoteFrame struct {
	end    rune
	escape rune
	lazy   bool
}

func (s *Syntax) frameFor(start rune) (quoteFrame, bool) {
	if start != NoChar && start == s.QuoteStart {
		return quoteFrame{end: s.QuoteEnd, escape: s.QuoteEscape, lazy: s.quoteLazy()}, true
	}
	if start != NoChar && start == s.AltQuoteStart {
		return quoteFrame{end: s.AltQuoteEnd, escape: s.AltQuoteEscape, lazy: s.altQuoteLazy()}, true
	}
	return quoteFrame{}, false
}

// the lazy flag only has meaning when start == end == escape
func (s *Syntax) quoteLazy() bool {
	return s.QuoteEscapeLazy && s.QuoteStart == s.QuoteEnd && s.QuoteEnd == s.QuoteEscape
}

func (s *Syntax) altQuoteLazy() bool {
	return s.AltQuoteEscapeLazy && s.AltQuoteStart == s.AltQuoteEnd && s.AltQuoteEnd == s.AltQuoteEscape
}
