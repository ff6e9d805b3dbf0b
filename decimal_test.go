package textscan

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDecimal(t *testing.T) {
	test := func(input, expected, rest string) func(*testing.T) {
		return func(t *testing.T) {
			eachScanner(t, input, func(t *testing.T, s *Scanner) {
				d, err := s.ReadDecimal()
				require.NoError(t, err)
				assert.Equal(t, expected, d.Text('G'))
				assert.Equal(t, rest, s.Read(100))
			})
		}
	}

	t.Run("", test("0", "0", ""))
	t.Run("", test("-12.75", "-12.75", ""))
	t.Run("", test("1e400", "1E+400", "")) // beyond float64 range
	t.Run("", test("3.14159265358979323846264338327950288", "3.14159265358979323846264338327950288", ""))
	t.Run("", test("2.5e-7xyz", "2.5E-7", "xyz"))
	// no radix prefixes: a leading zero is just a digit
	t.Run("", test("010", "10", ""))
	t.Run("", test("0x10", "0", "x10"))
}

func TestReadDecimalSpecials(t *testing.T) {
	eachScanner(t, "-Infinity", func(t *testing.T, s *Scanner) {
		d, err := s.ReadDecimal()
		require.NoError(t, err)
		assert.Equal(t, apd.Infinite, d.Form)
		assert.True(t, d.Negative)
	})
	eachScanner(t, "NaN", func(t *testing.T, s *Scanner) {
		d, err := s.ReadDecimal()
		require.NoError(t, err)
		assert.Contains(t, d.String(), "NaN")
	})
}

func TestReadDecimalErrors(t *testing.T) {
	eachScanner(t, "abc", func(t *testing.T, s *Scanner) {
		_, err := s.ReadDecimal()
		require.Error(t, err)
		assert.Equal(t, `For input string: ""`, err.Error())
		assert.Equal(t, 0, s.Position())
	})
	eachScanner(t, "1e", func(t *testing.T, s *Scanner) {
		_, err := s.ReadDecimal()
		require.Error(t, err)
		assert.Equal(t, `For input string: "1e"`, err.Error())
	})
	eachScanner(t, "1.2.3", func(t *testing.T, s *Scanner) {
		_, err := s.ReadDecimal()
		require.Error(t, err)
	})
}
