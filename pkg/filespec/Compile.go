// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package filespec

import (
	"regexp"
	"strings"
)

// Compile converts a filespec into a Matcher.
//
// "*" matches zero or more characters and "?" matches zero or one character.
// Every other character, including ".", matches itself.
// Matching is anchored to the whole name and is case-insensitive.
// Any string is accepted.
func Compile(pattern string) *Matcher {
	p := strings.TrimSpace(pattern)
	expr := regexp.QuoteMeta(p)
	expr = strings.ReplaceAll(expr, `\*`, ".*")
	expr = strings.ReplaceAll(expr, `\?`, ".?")
	return &Matcher{
		pattern: p,
		regexp:  regexp.MustCompile("(?i)^" + expr + "$"),
	}
}

// CompileAll compiles each filespec, preserving order.
func CompileAll(patterns ...string) Set {
	set := make(Set, 0, len(patterns))
	for _, pattern := range patterns {
		set = append(set, Compile(pattern))
	}
	return set
}
