// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

import (
	"os"

	"github.com/navwar/treesync/pkg/fs"
)

// NewLocalDirectoryEntry converts the file info returned by afero.
// The symlink flag records whether the entry was reached through a symbolic link.
func NewLocalDirectoryEntry(fi os.FileInfo, symlink bool) *fs.DirectoryEntry {
	return fs.NewDirectoryEntry(
		fi.Name(),
		fi.IsDir(),
		fi.ModTime(),
		fi.Size(),
		fs.Attributes{
			Mode:   fi.Mode().Perm(),
			Hidden: isHidden(fi),
		},
		symlink,
	)
}
