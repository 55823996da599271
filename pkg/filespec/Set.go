// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package filespec

import (
	"strings"
)

// Set is an ordered list of matchers.
// A nil Set means no filespecs were given, which is different from an empty Set.
type Set []*Matcher

// Match returns true if any matcher in the set matches the name.
func (s Set) Match(name string) bool {
	for _, m := range s {
		if m.Match(name) {
			return true
		}
	}
	return false
}

// Patterns returns the filespecs in the set.
func (s Set) Patterns() []string {
	patterns := make([]string, 0, len(s))
	for _, m := range s {
		patterns = append(patterns, m.Pattern())
	}
	return patterns
}

func (s Set) String() string {
	return strings.Join(s.Patterns(), ",")
}
