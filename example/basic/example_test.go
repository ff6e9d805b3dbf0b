//go:build examples
// +build examples

package example

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecords(t *testing.T) {
	records, err := Records()
	require.NoError(t, err)
	rows := records["data.csv"]
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"id", "name", "comment"}, rows[0])
	assert.Equal(t, []string{"1", "Ada, Countess", `said "hi"`}, rows[1])
}
