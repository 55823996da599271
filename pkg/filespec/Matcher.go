// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package filespec

import (
	"regexp"
)

// Matcher is a compiled filespec.
type Matcher struct {
	pattern string
	regexp  *regexp.Regexp
}

// Match returns true if the whole name matches the filespec, ignoring case.
func (m *Matcher) Match(name string) bool {
	return m.regexp.MatchString(name)
}

// Pattern returns the trimmed filespec the matcher was compiled from.
func (m *Matcher) Pattern() string {
	return m.pattern
}

func (m *Matcher) String() string {
	return m.pattern
}

func (m *Matcher) MarshalText() ([]byte, error) {
	return []byte(m.pattern), nil
}
