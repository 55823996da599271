// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package ts

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var ErrEmptyLocation = errors.New("cannot parse location from empty string")

// ParseLocation returns the location for "Local", "UTC", a whole number of hours offset from UTC, or an IANA time zone name.
func ParseLocation(location string) (*time.Location, error) {
	switch location {
	case "":
		return nil, ErrEmptyLocation
	case "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	if hours, err := strconv.Atoi(location); err == nil {
		return time.FixedZone("UTC"+location, hours*60*60), nil
	}
	loc, err := time.LoadLocation(location)
	if err != nil {
		return nil, fmt.Errorf("error loading location %q: %w", location, err)
	}
	return loc, nil
}
