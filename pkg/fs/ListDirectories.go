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

// ListDirectories returns the immediate subdirectories of the directory.
// Filtering follows the same rules as ListFiles, using the directory filespecs.
func ListDirectories(ctx context.Context, fileSystem FileSystem, directory string, config *Config, results *Results) ([]FileInfo, error) {
	directoryEntries, err := fileSystem.ReadDir(ctx, directory)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %q: %w", FullPath(fileSystem, directory), err)
	}
	filtered := config.IsFiltered()
	directories := make([]FileInfo, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		if !directoryEntry.IsDir() {
			continue
		}
		if filtered {
			if (config.ExcludeHidden && directoryEntry.Attributes().Hidden) ||
				filter.ShouldExclude(config.ExcludeDirectories, config.IncludeDirectories, directoryEntry.Name()) {
				if results != nil {
					results.DirectoriesIgnored++
				}
				continue
			}
		}
		directories = append(directories, directoryEntry)
	}
	return directories, nil
}
