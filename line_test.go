package textscan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenario: every terminator flavor, empty lines, and a terminator-less tail
func TestReadLine(t *testing.T) {
	input := "  ab c \ndef\r ghi\r\nj k l\n \r \n  \r\n   end"
	eachScanner(t, input, func(t *testing.T, s *Scanner) {
		var lines []string
		for {
			line, ok := s.ReadLine(true)
			if !ok {
				break
			}
			lines = append(lines, line)
		}
		assert.Equal(t, []string{"ab c", "def", "ghi", "j k l", "", "", "", "end"}, lines)
	})
}

func TestReadLineNoTrim(t *testing.T) {
	eachScanner(t, "  a \r\nb", func(t *testing.T, s *Scanner) {
		line, ok := s.ReadLine(false)
		require.True(t, ok)
		assert.Equal(t, "  a ", line)
		line, ok = s.ReadLine(false)
		require.True(t, ok)
		assert.Equal(t, "b", line)
		_, ok = s.ReadLine(false)
		assert.False(t, ok)
	})
}

func TestReadLineEmptyLines(t *testing.T) {
	eachScanner(t, "\n\n", func(t *testing.T, s *Scanner) {
		line, ok := s.ReadLine(false)
		require.True(t, ok)
		assert.Equal(t, "", line)
		line, ok = s.ReadLine(false)
		require.True(t, ok)
		assert.Equal(t, "", line)
		_, ok = s.ReadLine(false)
		assert.False(t, ok)
	})
}

// joining the lines with \n reproduces the input with terminators normalized
func TestReadLineJoinInvariant(t *testing.T) {
	input := "one\rtwo\r\nthree\nfour"
	eachScanner(t, input, func(t *testing.T, s *Scanner) {
		var lines []string
		for {
			line, ok := s.ReadLine(false)
			if !ok {
				break
			}
			lines = append(lines, line)
		}
		assert.Equal(t, "one\ntwo\nthree\nfour", strings.Join(lines, "\n"))
	})
}
