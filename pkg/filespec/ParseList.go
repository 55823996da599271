// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package filespec

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnterminatedQuote   = errors.New("unterminated quote")
	ErrUnexpectedCharacter = errors.New("unexpected character after closing quote")
)

// ParseList parses a comma-separated list of filespecs.
// A filespec may be wrapped in double quotes so that it can contain commas.
// Empty filespecs are skipped.
func ParseList(s string) (Set, error) {
	set := Set{}
	pos := 0
	for pos < len(s) {
		for pos < len(s) && s[pos] == ' ' {
			pos++
		}
		if pos == len(s) {
			break
		}
		pattern := ""
		if s[pos] == '"' {
			end := strings.IndexByte(s[pos+1:], '"')
			if end == -1 {
				return nil, fmt.Errorf("error parsing filespec list %q at position %d: %w", s, pos, ErrUnterminatedQuote)
			}
			pattern = s[pos+1 : pos+1+end]
			pos += end + 2
			for pos < len(s) && s[pos] == ' ' {
				pos++
			}
			if pos < len(s) && s[pos] != ',' {
				return nil, fmt.Errorf("error parsing filespec list %q at position %d: %w", s, pos, ErrUnexpectedCharacter)
			}
		} else {
			end := strings.IndexByte(s[pos:], ',')
			if end == -1 {
				end = len(s) - pos
			}
			pattern = s[pos : pos+end]
			pos += end
		}
		// skip the comma
		pos++
		if len(strings.TrimSpace(pattern)) > 0 {
			set = append(set, Compile(pattern))
		}
	}
	return set, nil
}
