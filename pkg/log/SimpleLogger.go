// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package log

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
)

// SimpleLogger writes one line per message.
// Text lines are the message followed by the fields as sorted key=value pairs.
// JSON lines carry the timestamp in "ts" and the message in "msg".
type SimpleLogger struct {
	mutex  *sync.Mutex
	writer io.Writer
	closer io.Closer
	format string
	now    func() time.Time
}

// Close closes the underlying file, if the logger owns one.
func (s *SimpleLogger) Close() error {
	if s.closer == nil {
		return nil
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	err := s.closer.Close()
	s.closer = nil
	return err
}

func (s *SimpleLogger) Format() string {
	return s.format
}

func (s *SimpleLogger) Log(msg string, fields ...map[string]interface{}) error {
	merged := map[string]interface{}{}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}

	var line []byte
	switch s.format {
	case FormatJSONL:
		merged["ts"] = s.now().Format(time.RFC3339Nano)
		merged["msg"] = msg
		b, err := json.Marshal(merged)
		if err != nil {
			return fmt.Errorf("error marshaling log message %q: %w", msg, err)
		}
		line = append(b, '\n')
	default:
		keys := make([]string, 0, len(merged))
		for k := range merged {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var sb strings.Builder
		sb.WriteString(msg)
		for _, k := range keys {
			sb.WriteString(" ")
			sb.WriteString(k)
			sb.WriteString("=")
			sb.WriteString(formatValue(merged[k]))
		}
		sb.WriteString("\n")
		line = []byte(sb.String())
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	_, err := s.writer.Write(line)
	if err != nil {
		return fmt.Errorf("error writing log message %q: %w", msg, err)
	}
	return nil
}

func formatValue(v interface{}) string {
	str := fmt.Sprint(v)
	if strings.ContainsAny(str, " \t\n\"=") {
		return fmt.Sprintf("%q", str)
	}
	return str
}

// NewSimpleLogger returns a logger writing text lines.
func NewSimpleLogger(w io.Writer) *SimpleLogger {
	return NewSimpleLoggerWithFormat(w, FormatText)
}

func NewSimpleLoggerWithFormat(w io.Writer, format string) *SimpleLogger {
	return &SimpleLogger{
		mutex:  &sync.Mutex{},
		writer: w,
		format: format,
		now:    time.Now,
	}
}

// NewFileLogger returns a logger that owns w and closes it on Close.
func NewFileLogger(w io.WriteCloser, format string) *SimpleLogger {
	s := NewSimpleLoggerWithFormat(w, format)
	s.closer = w
	return s
}
