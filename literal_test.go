package textscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadStringLiteral(t *testing.T) {
	test := func(input, expected string) func(*testing.T) {
		return func(t *testing.T) {
			eachScanner(t, input, func(t *testing.T, s *Scanner) {
				text, err := s.ReadStringLiteral(Strict)
				require.NoError(t, err)
				assert.Equal(t, expected, text)
			})
		}
	}

	t.Run("", test(`""`, ""))
	t.Run("", test(`"plain"`, "plain"))
	t.Run("", test(`"a\tb\nc"`, "a\tb\nc"))
	t.Run("", test(`"\b\f\r\\\'\""`, "\b\f\r\\'\""))
	t.Run("", test(`"\0"`, "\x00"))
	t.Run("", test(`"\101\60"`, "A0"))
	t.Run("", test(`"\u0041\uu0042"`, "AB"))
	// surrogate pairs collapse into one codepoint
	t.Run("", test(`"\uD834\uDD1E"`, "\U0001D11E"))
}

// scenario: octal forms, collapsed u's and escaped quotes in one literal
func TestReadStringLiteralMixedEscapes(t *testing.T) {
	input := "\"Hi \\\"\\176\\477\\579\\u2022\\uuuuu2211\\\"\\n\""
	eachScanner(t, input, func(t *testing.T, s *Scanner) {
		text, err := s.ReadStringLiteral(Strict)
		require.NoError(t, err)
		assert.Equal(t, "Hi \"~'7/9\u2022\u2211\"\n", text)
		assert.Equal(t, 39, s.Position())
	})
}

func TestReadStringLiteralErrors(t *testing.T) {
	eachScanner(t, `"broken\q"`, func(t *testing.T, s *Scanner) {
		_, err := s.ReadStringLiteral(Strict)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `illegal escape sequence '\q'`)
	})
	eachScanner(t, `"unterminated`, func(t *testing.T, s *Scanner) {
		_, err := s.ReadStringLiteral(Strict)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unterminated string literal")
	})
	eachScanner(t, `no quote`, func(t *testing.T, s *Scanner) {
		_, err := s.ReadStringLiteral(Strict)
		require.Error(t, err)
		assert.Equal(t, 0, s.Position())
	})
	eachScanner(t, `"bad\u00ZZ"`, func(t *testing.T, s *Scanner) {
		_, err := s.ReadStringLiteral(Strict)
		require.Error(t, err)
	})
}

func TestReadStringLiteralTolerant(t *testing.T) {
	eachScanner(t, `"broken\q end"`, func(t *testing.T, s *Scanner) {
		var msgs []Message
		s.SetMessageHandler(CollectMessages(&msgs))
		text, err := s.ReadStringLiteral(Tolerant)
		require.NoError(t, err)
		assert.Equal(t, "broken? end", text)
		require.Len(t, msgs, 1)
		assert.Equal(t, SeverityWarning, msgs[0].Severity)
	})
	eachScanner(t, `"open end`, func(t *testing.T, s *Scanner) {
		var msgs []Message
		s.SetMessageHandler(CollectMessages(&msgs))
		text, err := s.ReadStringLiteral(Tolerant)
		require.NoError(t, err)
		assert.Equal(t, "open end", text)
		require.Len(t, msgs, 1)
	})
}

func TestReadCharLiteral(t *testing.T) {
	test := func(input string, expected rune) func(*testing.T) {
		return func(t *testing.T) {
			eachScanner(t, input, func(t *testing.T, s *Scanner) {
				c, err := s.ReadCharLiteral(Strict)
				require.NoError(t, err)
				assert.Equal(t, expected, c)
			})
		}
	}

	t.Run("", test(`'a'`, 'a'))
	t.Run("", test(`'\n'`, '\n'))
	t.Run("", test(`'\''`, '\''))
	t.Run("", test(`'\101'`, 'A'))
	t.Run("", test(`'\377'`, 0xFF))
	t.Run("", test(`'\u2022'`, '\u2022'))
}

func TestReadCharLiteralErrors(t *testing.T) {
	eachScanner(t, `''`, func(t *testing.T, s *Scanner) {
		_, err := s.ReadCharLiteral(Strict)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty character literal")
	})
	eachScanner(t, `'ab'`, func(t *testing.T, s *Scanner) {
		_, err := s.ReadCharLiteral(Strict)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unterminated character literal")
	})
	// \477 would exceed 255, so only two octal digits belong to the escape
	eachScanner(t, `'\477'`, func(t *testing.T, s *Scanner) {
		_, err := s.ReadCharLiteral(Strict)
		require.Error(t, err) // the trailing 7 makes it multi-character
	})
	eachScanner(t, `'x`, func(t *testing.T, s *Scanner) {
		var msgs []Message
		s.SetMessageHandler(CollectMessages(&msgs))
		c, err := s.ReadCharLiteral(Tolerant)
		require.NoError(t, err)
		assert.Equal(t, '?', c)
		require.Len(t, msgs, 1)
	})
}
