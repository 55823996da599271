// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"encoding/json"
	"fmt"
	"time"
)

type DirectoryEntry struct {
	name       string
	dir        bool
	modTime    time.Time
	size       int64
	attributes Attributes
	symlink    bool
}

func (de *DirectoryEntry) Attributes() Attributes {
	return de.attributes
}

func (de *DirectoryEntry) IsDir() bool {
	return de.dir
}

func (de *DirectoryEntry) IsSymlink() bool {
	return de.symlink
}

func (de *DirectoryEntry) Name() string {
	return de.name
}

func (de *DirectoryEntry) ModTime() time.Time {
	return de.modTime
}

func (de *DirectoryEntry) Size() int64 {
	return de.size
}

func (de *DirectoryEntry) String() string {
	return de.name
}

func (de *DirectoryEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"dir":      de.dir,
		"hidden":   de.attributes.Hidden,
		"mode":     fmt.Sprintf("%04o", uint32(de.attributes.Mode.Perm())),
		"modTime":  de.modTime,
		"name":     de.name,
		"readOnly": de.attributes.ReadOnly(),
		"size":     de.size,
		"symlink":  de.symlink,
	})
}

func NewDirectoryEntry(name string, dir bool, modTime time.Time, size int64, attributes Attributes, symlink bool) *DirectoryEntry {
	return &DirectoryEntry{
		name:       name,
		dir:        dir,
		modTime:    modTime,
		size:       size,
		attributes: attributes,
		symlink:    symlink,
	}
}
