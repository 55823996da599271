// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package ts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	assert.Equal(t, Layout(time.RFC3339), ParseLayout("RFC3339"))
	assert.Equal(t, Layout("2006"), ParseLayout("2006"))
}

func TestLayoutWidth(t *testing.T) {
	assert.Equal(t, 12, ParseLayout("Default").Width())
	assert.Equal(t, 10, ParseLayout("DateOnly").Width())
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, len(NamedLayouts))
	assert.Equal(t, "DateOnly", names[0])
	assert.IsIncreasing(t, names)
}

func TestParseLocation(t *testing.T) {
	_, err := ParseLocation("")
	assert.ErrorIs(t, err, ErrEmptyLocation)

	loc, err := ParseLocation("UTC")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = ParseLocation("-8")
	require.NoError(t, err)
	_, offset := time.Date(2020, time.January, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, -8*60*60, offset)

	_, err = ParseLocation("Not/AZone")
	assert.Error(t, err)
}
