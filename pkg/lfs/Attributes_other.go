// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

//go:build !windows

package lfs

import (
	"os"
	"strings"
)

// isHidden returns true for dot files.
func isHidden(fi os.FileInfo) bool {
	return strings.HasPrefix(fi.Name(), ".")
}

// setHidden is a no-op, since a name alone decides if a file is hidden.
func setHidden(path string, hidden bool) error {
	return nil
}
