// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

//go:build windows

package lfs

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

// isHidden returns true if the hidden attribute is set.
// Entries that do not come from the operating system fall back to dot files.
func isHidden(fi os.FileInfo) bool {
	if data, ok := fi.Sys().(*syscall.Win32FileAttributeData); ok {
		return data.FileAttributes&windows.FILE_ATTRIBUTE_HIDDEN != 0
	}
	return strings.HasPrefix(fi.Name(), ".")
}

func setHidden(path string, hidden bool) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("error converting path %q: %w", path, err)
	}
	attributes, err := windows.GetFileAttributes(p)
	if err != nil {
		return fmt.Errorf("error getting attributes of %q: %w", path, err)
	}
	if hidden {
		attributes |= windows.FILE_ATTRIBUTE_HIDDEN
	} else {
		attributes &^= windows.FILE_ATTRIBUTE_HIDDEN
	}
	return windows.SetFileAttributes(p, attributes)
}
