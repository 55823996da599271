// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"fmt"
)

type Logger interface {
	Log(msg string, fields ...map[string]interface{}) error
}

// progress writes a human-readable progress line unless the configuration is quiet.
func progress(logger Logger, config *Config, format string, a ...interface{}) {
	if logger == nil || config.Quiet {
		return
	}
	_ = logger.Log(fmt.Sprintf(format, a...))
}
