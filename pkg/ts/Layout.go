// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package ts

import (
	"sort"
	"time"
)

// Layout is the text representation of a reference time, as used by the time package.
type Layout string

func (l Layout) Format(t time.Time) string {
	return t.Format(string(l))
}

// Width returns the number of characters in a formatted timestamp, which is used to align columns.
func (l Layout) Width() int {
	return len(l.Format(time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)))
}

// NamedLayouts are the layouts that can be referenced by name.
var NamedLayouts = map[string]Layout{
	"Kitchen":     time.Kitchen,
	"RFC3339":     time.RFC3339,
	"RFC3339Nano": time.RFC3339Nano,
	"DateTime":    time.DateTime,
	"DateOnly":    time.DateOnly,
	"TimeOnly":    time.TimeOnly,
	"Default":     "Jan 02 15:04",
	"Full":        "Jan 02 15:04:05 2006",
}

// Names returns the names of the named layouts in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(NamedLayouts))
	for name := range NamedLayouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseLayout returns the named layout, or the input itself if no layout has that name.
func ParseLayout(layout string) Layout {
	if format, ok := NamedLayouts[layout]; ok {
		return format
	}
	return Layout(layout)
}
