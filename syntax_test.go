package textscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntaxConfig(t *testing.T) {
	doc := `
escape: "\\"
quote: '"'
quoteEscape: "$"
altQuote: "'"
altQuoteLazy: true
entityStart: "&"
entityEnd: ";"
entities:
  lt: "<"
  gt: ">"
`
	cfg, err := ParseSyntaxConfig([]byte(doc))
	require.NoError(t, err)
	syn, err := cfg.Syntax()
	require.NoError(t, err)

	assert.Equal(t, '\\', syn.Escape)
	assert.Equal(t, '"', syn.QuoteStart)
	// end defaults to start, escape was given explicitly
	assert.Equal(t, '"', syn.QuoteEnd)
	assert.Equal(t, '$', syn.QuoteEscape)
	// the alt triple collapses to SQL-style doubling
	assert.Equal(t, '\'', syn.AltQuoteStart)
	assert.Equal(t, '\'', syn.AltQuoteEnd)
	assert.Equal(t, '\'', syn.AltQuoteEscape)
	assert.True(t, syn.AltQuoteEscapeLazy)

	text, err := syn.ResolveEntity("lt")
	require.NoError(t, err)
	assert.Equal(t, "<", text)
	_, err = syn.ResolveEntity("nope")
	require.Error(t, err)
}

func TestSyntaxConfigRejectsMultiChar(t *testing.T) {
	cfg := SyntaxConfig{Quote: "<<"}
	_, err := cfg.Syntax()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single character")
}

func TestLazyFlagRequiresCollapsedTriple(t *testing.T) {
	// lazy only means something when start, end and escape are all the same
	syn := &Syntax{QuoteStart: '"', QuoteEnd: '"', QuoteEscape: '$', QuoteEscapeLazy: true}
	frame, ok := syn.frameFor('"')
	require.True(t, ok)
	assert.False(t, frame.lazy)

	syn = &Syntax{QuoteStart: '\'', QuoteEnd: '\'', QuoteEscape: '\'', QuoteEscapeLazy: true}
	frame, ok = syn.frameFor('\'')
	require.True(t, ok)
	assert.True(t, frame.lazy)
}
