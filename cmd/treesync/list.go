// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/navwar/treesync/pkg/fs"
	"github.com/navwar/treesync/pkg/ts"
)

type listInput struct {
	FileSystem            fs.FileSystem
	Config                *fs.Config
	Format                string
	TimeLayout            ts.Layout
	TimeZone              *time.Location
	HumanReadableFileSize bool
	Writer                io.Writer
}

// list writes the subdirectories and then the files of the root directory that the filters select.
func list(ctx context.Context, input *listInput) error {
	results := &fs.Results{}

	directories, err := fs.ListDirectories(ctx, input.FileSystem, "/", input.Config, results)
	if err != nil {
		return fmt.Errorf("error listing directories: %w", err)
	}

	files, err := fs.ListFiles(ctx, input.FileSystem, "/", input.Config, results)
	if err != nil {
		return fmt.Errorf("error listing files: %w", err)
	}

	directoryEntries := make([]fs.FileInfo, 0, len(directories)+len(files))
	directoryEntries = append(directoryEntries, directories...)
	directoryEntries = append(directoryEntries, files...)

	switch input.Format {
	case "jsonl":
		encoder := json.NewEncoder(input.Writer)
		for _, de := range directoryEntries {
			m := map[string]any{
				"name":       de.Name(),
				"attributes": de.Attributes().Flags(),
				"mode":       fmt.Sprintf("%04o", uint32(de.Attributes().Mode.Perm())),
				"mod_time":   input.TimeLayout.Format(de.ModTime().In(input.TimeZone)),
			}
			if de.IsDir() {
				m["type"] = "dir"
			} else {
				m["type"] = "file"
				if input.HumanReadableFileSize {
					m["size"] = strings.TrimSpace(formatHumanReadableFileSize(de.Size()))
				} else {
					m["size"] = de.Size()
				}
			}
			if de.IsSymlink() {
				m["symlink"] = true
			}
			if err := encoder.Encode(m); err != nil {
				return fmt.Errorf("error encoding directory entry %q: %w", de.Name(), err)
			}
		}
	default:
		sizes := make([]string, 0, len(directoryEntries))
		sizeWidth := len("size")
		for _, de := range directoryEntries {
			size := "-"
			if !de.IsDir() {
				if input.HumanReadableFileSize {
					size = formatHumanReadableFileSize(de.Size())
				} else {
					size = fmt.Sprintf("%d", de.Size())
				}
			}
			if len(size) > sizeWidth {
				sizeWidth = len(size)
			}
			sizes = append(sizes, size)
		}
		timeWidth := input.TimeLayout.Width()

		_, _ = fmt.Fprintf(input.Writer, "%s %-4s %*s %*s %s\n", "type", "attr", sizeWidth, "size", timeWidth, "modified", "name")
		for i, de := range directoryEntries {
			fileType := "file"
			if de.IsDir() {
				fileType = " dir"
			}
			name := de.Name()
			if de.IsSymlink() {
				name += "@"
			}
			_, _ = fmt.Fprintf(input.Writer, "%s %-4s %*s %*s %s\n",
				fileType,
				de.Attributes().Flags(),
				sizeWidth,
				sizes[i],
				timeWidth,
				input.TimeLayout.Format(de.ModTime().In(input.TimeZone)),
				name)
		}
		if input.Config.IsFiltered() {
			_, _ = fmt.Fprintf(input.Writer, "%d file(s) ignored, %d directories ignored\n", results.FilesIgnored, results.DirectoriesIgnored)
		}
	}

	return nil
}
