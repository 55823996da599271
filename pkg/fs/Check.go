// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// caseInsensitivePaths is true where the file system ignores case in names.
var caseInsensitivePaths = runtime.GOOS == "windows"

func sameElement(a string, b string) bool {
	if caseInsensitivePaths {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// Check returns an error if the source and destination are the same path or one contains the other.
// Both paths should be absolute.
func Check(source string, destination string) error {
	sourceDirectories := Split(filepath.Clean(source))
	destinationDirectories := Split(filepath.Clean(destination))
	i := 0
	for ; i < len(sourceDirectories) && i < len(destinationDirectories); i++ {
		if !sameElement(sourceDirectories[i], destinationDirectories[i]) {
			return nil
		}
	}
	if len(sourceDirectories)-i > 0 {
		return fmt.Errorf("%w: destination %q is a parent of source %q", ErrNested, destination, source)
	} else if len(destinationDirectories)-i > 0 {
		return fmt.Errorf("%w: source %q is a parent of destination %q", ErrNested, source, destination)
	}
	return fmt.Errorf("%w: source and destination are the same directory %q", ErrNested, source)
}
