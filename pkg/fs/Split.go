// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"os"
)

// Split splits the path using the path separator for the local operating system.
// An absolute path starts with a "/" element.  Empty elements are dropped.
func Split(p string) []string {
	dirs := []string{}
	if len(p) > 0 && os.IsPathSeparator(p[0]) {
		dirs = append(dirs, "/")
	}
	d := []byte{}
	for i := 0; i < len(p); i++ {
		if os.IsPathSeparator(p[i]) {
			if len(d) > 0 {
				dirs = append(dirs, string(d))
			}
			d = []byte{}
			continue
		}
		d = append(d, p[i])
	}
	if len(d) > 0 {
		dirs = append(dirs, string(d))
	}
	return dirs
}
