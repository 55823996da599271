// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"
	"fmt"

	"github.com/navwar/treesync/pkg/filter"
)

// ListFiles returns the files in the directory, excluding subdirectories.
// If the config is nil or not filtered, then every file is returned.
// Otherwise, hidden files (if excluded) and files rejected by the file filespecs are dropped,
// and each dropped file is counted as ignored.
func ListFiles(ctx context.Context, fileSystem FileSystem, directory string, config *Config, results *Results) ([]FileInfo, error) {
	directoryEntries, err := fileSystem.ReadDir(ctx, directory)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %q: %w", FullPath(fileSystem, directory), err)
	}
	filtered := config.IsFiltered()
	files := make([]FileInfo, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		if directoryEntry.IsDir() {
			continue
		}
		if filtered {
			if (config.ExcludeHidden && directoryEntry.Attributes().Hidden) ||
				filter.ShouldExclude(config.ExcludeFiles, config.IncludeFiles, directoryEntry.Name()) {
				if results != nil {
					results.FilesIgnored++
				}
				continue
			}
		}
		files = append(files, directoryEntry)
	}
	return files, nil
}
