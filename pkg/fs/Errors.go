// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"errors"
	"fmt"
)

// ErrPrecondition is wrapped by every error returned before a synchronization modifies anything.
var ErrPrecondition = errors.New("precondition failed")

var (
	ErrIncludeExcludeFiles        = fmt.Errorf("%w: include and exclude file filespecs cannot be combined", ErrPrecondition)
	ErrIncludeExcludeDirectories  = fmt.Errorf("%w: include and exclude directory filespecs cannot be combined", ErrPrecondition)
	ErrDeleteExcludeWithoutDelete = fmt.Errorf("%w: exclude-from-deletion filespecs require deletion enabled", ErrPrecondition)
	ErrNested                     = fmt.Errorf("%w: source and destination cannot contain each other", ErrPrecondition)
	ErrSourceNotExist             = fmt.Errorf("%w: source directory does not exist", ErrPrecondition)
	ErrSourceNotDirectory         = fmt.Errorf("%w: source is not a directory", ErrPrecondition)
)
