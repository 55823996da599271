// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"github.com/navwar/treesync/pkg/filespec"
)

// Config controls a synchronization.
// A nil filespec set means the option was not given.
type Config struct {
	Quiet                 bool
	ExcludeHidden         bool
	DeleteFromDestination bool
	ExcludeFiles          filespec.Set
	IncludeFiles          filespec.Set
	ExcludeDirectories    filespec.Set
	IncludeDirectories    filespec.Set
	// DeleteExcludeFiles are files kept in the destination even if they are not in the source.
	DeleteExcludeFiles filespec.Set
	// DeleteExcludeDirectories are directories kept in the destination even if they are not in the source.
	DeleteExcludeDirectories filespec.Set
}

// IsFiltered returns true if listing the source requires filtering.
func (c *Config) IsFiltered() bool {
	if c == nil {
		return false
	}
	return c.ExcludeHidden ||
		c.ExcludeFiles != nil ||
		c.IncludeFiles != nil ||
		c.ExcludeDirectories != nil ||
		c.IncludeDirectories != nil
}

// Validate returns an error if the configuration is inconsistent.
func (c *Config) Validate() error {
	if c.IncludeFiles != nil && c.ExcludeFiles != nil {
		return ErrIncludeExcludeFiles
	}
	if c.IncludeDirectories != nil && c.ExcludeDirectories != nil {
		return ErrIncludeExcludeDirectories
	}
	if (c.DeleteExcludeFiles != nil || c.DeleteExcludeDirectories != nil) && !c.DeleteFromDestination {
		return ErrDeleteExcludeWithoutDelete
	}
	return nil
}
