// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package filespec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	set, err := ParseList("*.jpg,*.wmv")
	require.NoError(t, err)
	assert.Equal(t, []string{"*.jpg", "*.wmv"}, set.Patterns())
}

func TestParseListQuoted(t *testing.T) {
	set, err := ParseList(`"a,b",c`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a,b", "c"}, set.Patterns())
	assert.True(t, set.Match("A,B"))

	set, err = ParseList(`"a" , b`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, set.Patterns())
}

func TestParseListEmptySegments(t *testing.T) {
	set, err := ParseList("a, b ,,c,")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, set.Patterns())

	set, err = ParseList("")
	require.NoError(t, err)
	assert.NotNil(t, set)
	assert.Len(t, set, 0)
}

func TestParseListErrors(t *testing.T) {
	_, err := ParseList(`"abc`)
	assert.ErrorIs(t, err, ErrUnterminatedQuote)

	_, err = ParseList(`a,"`)
	assert.ErrorIs(t, err, ErrUnterminatedQuote)

	_, err = ParseList(`"abc"d,e`)
	assert.ErrorIs(t, err, ErrUnexpectedCharacter)
}
