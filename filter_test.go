package textscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinFilters(t *testing.T) {
	test := func(f Filter, accepted, rejected string) func(*testing.T) {
		return func(t *testing.T) {
			for _, r := range accepted {
				assert.True(t, f.Accept(r), "%s should accept %q", f.Description(), r)
			}
			for _, r := range rejected {
				assert.False(t, f.Accept(r), "%s should reject %q", f.Description(), r)
			}
		}
	}

	t.Run("", test(Digit, "0159", "a -"))
	t.Run("", test(Letter, "azAZ", "0 é"))
	t.Run("", test(Whitespace, " \t\n\r", "a0"))
	t.Run("", test(Newline, "\n", "\r a"))
	t.Run("", test(OctalDigit, "07", "89a"))
	t.Run("", test(HexDigit, "09afAF", "gG "))
	t.Run("", test(Any, "a0 \n\x00é", ""))
	t.Run("", test(SingleQuote, "'", `"a`))
	t.Run("", test(IdentifierStart, "aZé_", "0 -"))
	t.Run("", test(IdentifierPart, "aZ0é", " -"))
	t.Run("", test(AnyOf(";,"), ";,", "a "))
	t.Run("", test(Not(Digit), "a -", "05"))
}

func TestFilterDescriptions(t *testing.T) {
	assert.Equal(t, "a digit", Digit.Description())
	assert.Equal(t, `one of ";,"`, AnyOf(";,").Description())
	assert.Equal(t, "not a digit", Not(Digit).Description())
}
