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

// Attributes are the file attributes that are compared and propagated when synchronizing.
type Attributes struct {
	Mode   os.FileMode // permission bits
	Hidden bool
}

// ReadOnly returns true if the owner cannot write to the entry.
func (a Attributes) ReadOnly() bool {
	return a.Mode.Perm()&0200 == 0
}

// Writable returns a copy of the attributes with the read-only flag cleared.
func (a Attributes) Writable() Attributes {
	a.Mode |= 0200
	return a
}

// Flags returns "r" for read-only and "h" for hidden, using "-" for unset flags.
func (a Attributes) Flags() string {
	flags := []byte("--")
	if a.ReadOnly() {
		flags[0] = 'r'
	}
	if a.Hidden {
		flags[1] = 'h'
	}
	return string(flags)
}

func (a Attributes) String() string {
	return a.Flags() + " " + a.Mode.Perm().String()
}
