// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	assert.NoError(t, Check("a", "b"))
	assert.NoError(t, Check("a/c", "b/c"))
	assert.NoError(t, Check("a/c/d", "a/c/e"))
	assert.NoError(t, Check("/a/src", "/a/src2"))
	assert.Error(t, Check("a/b", "a"))
	assert.Error(t, Check("a", "a/b"))
	assert.Error(t, Check("a", "a/b/c"))
	assert.Error(t, Check("a/b", "a/b/c"))
	assert.Error(t, Check("a/b/c", "a/b"))
	assert.Error(t, Check("a/b/c", "a"))
	assert.Error(t, Check("/a/b", "/a/b/"))
	assert.Error(t, Check("/a/./b", "/a/b/c/.."))
	assert.True(t, errors.Is(Check("/", "/a"), ErrNested))
	assert.True(t, errors.Is(Check("/a", "/a"), ErrPrecondition))
}

func TestCheckCaseInsensitive(t *testing.T) {
	caseInsensitive := caseInsensitivePaths
	t.Cleanup(func() {
		caseInsensitivePaths = caseInsensitive
	})

	caseInsensitivePaths = true
	assert.Error(t, Check("/Data", "/data/sub"))
	assert.Error(t, Check("/DATA/Sub", "/data"))
	assert.Error(t, Check("/Data", "/data"))
	assert.NoError(t, Check("/Data", "/data2"))

	caseInsensitivePaths = false
	assert.NoError(t, Check("/Data", "/data/sub"))
	assert.NoError(t, Check("/Data", "/data"))
}
