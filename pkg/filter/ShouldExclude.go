// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package filter

import (
	"github.com/navwar/treesync/pkg/filespec"
)

// ShouldExclude returns true if the name should be excluded.
//
// If an exclude set is given, the name is excluded when it matches any filespec in it,
// and the include set is never consulted.
// Otherwise, if an include set is given, the name is excluded when it matches none of its filespecs.
// If neither set is given, nothing is excluded.
func ShouldExclude(exclude filespec.Set, include filespec.Set, name string) bool {
	if exclude != nil {
		return exclude.Match(name)
	}
	if include != nil {
		return !include.Match(name)
	}
	return false
}
