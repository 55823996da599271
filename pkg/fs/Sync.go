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
)

// Sync synchronizes the destination directory tree with the source directory tree.
//
// The configuration and paths are checked before anything is modified.
// The first error while synchronizing stops the whole synchronization.
// The returned results are never nil and count everything done before an error.
func Sync(ctx context.Context, input *SyncInput) (*Results, error) {
	results := &Results{}

	config := input.Config
	if config == nil {
		config = &Config{}
	}

	if err := config.Validate(); err != nil {
		return results, err
	}

	sourcePath := FullPath(input.SourceFileSystem, input.Source)
	destinationPath := FullPath(input.DestinationFileSystem, input.Destination)

	// check for cycle errors
	if err := Check(sourcePath, destinationPath); err != nil {
		return results, err
	}

	sourceFileInfo, err := input.SourceFileSystem.Stat(ctx, input.Source)
	if err != nil {
		if input.SourceFileSystem.IsNotExist(err) {
			return results, fmt.Errorf("%w: %q", ErrSourceNotExist, sourcePath)
		}
		return results, fmt.Errorf("error stating source %q: %w", sourcePath, err)
	}

	if !sourceFileInfo.IsDir() {
		return results, fmt.Errorf("%w: %q", ErrSourceNotDirectory, sourcePath)
	}

	err = SyncDirectory(ctx, &SyncDirectoryInput{
		SourceDirectory:       input.Source,
		SourceFileSystem:      input.SourceFileSystem,
		DestinationDirectory:  input.Destination,
		DestinationFileSystem: input.DestinationFileSystem,
		Config:                config,
		Logger:                input.Logger,
	}, results)
	if err != nil {
		return results, fmt.Errorf(
			"error syncing source directory %q to destination directory %q: %w",
			sourcePath,
			destinationPath,
			err,
		)
	}

	return results, nil
}
