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

// SyncDirectory synchronizes one destination directory with one source directory,
// then recurses into every selected source subdirectory.
// Counts are added to results as each step completes.
func SyncDirectory(ctx context.Context, input *SyncDirectoryInput, results *Results) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := input.Config
	sourceFileSystem := input.SourceFileSystem
	destinationFileSystem := input.DestinationFileSystem

	// create destination directory if it doesn't exist
	if _, err := destinationFileSystem.Stat(ctx, input.DestinationDirectory); err != nil {
		if !destinationFileSystem.IsNotExist(err) {
			return fmt.Errorf("error stating destination directory %q: %w", FullPath(destinationFileSystem, input.DestinationDirectory), err)
		}
		progress(input.Logger, config, "Creating directory: %s", FullPath(destinationFileSystem, input.DestinationDirectory))
		if err := destinationFileSystem.MkdirAll(ctx, input.DestinationDirectory, 0755); err != nil {
			return fmt.Errorf("error creating directory %q: %w", FullPath(destinationFileSystem, input.DestinationDirectory), err)
		}
		results.DirectoriesCreated++
	}

	// the destination is never filtered, so that everything missing from the source is a candidate for deletion
	sourceFiles, err := ListFiles(ctx, sourceFileSystem, input.SourceDirectory, config, results)
	if err != nil {
		return err
	}
	destinationFiles, err := ListFiles(ctx, destinationFileSystem, input.DestinationDirectory, nil, results)
	if err != nil {
		return err
	}

	sourceFilesByName := make(map[string]FileInfo, len(sourceFiles))
	for _, sourceFile := range sourceFiles {
		sourceFilesByName[sourceFile.Name()] = sourceFile
	}
	destinationFilesByName := make(map[string]FileInfo, len(destinationFiles))
	for _, destinationFile := range destinationFiles {
		destinationFilesByName[destinationFile.Name()] = destinationFile
	}

	// copy every selected source file that is missing or different in the destination
	for _, sourceFile := range sourceFiles {
		destinationFile := destinationFilesByName[sourceFile.Name()]
		if UpToDate(sourceFile, destinationFile) {
			results.FilesUpToDate++
			continue
		}
		sourceName := sourceFileSystem.Join(input.SourceDirectory, sourceFile.Name())
		destinationName := destinationFileSystem.Join(input.DestinationDirectory, sourceFile.Name())
		progress(input.Logger, config, "Copying: %s -> %s", FullPath(sourceFileSystem, sourceName), FullPath(destinationFileSystem, destinationName))
		err := Copy(ctx, &CopyInput{
			SourceName:            sourceName,
			SourceFileInfo:        sourceFile,
			SourceFileSystem:      sourceFileSystem,
			DestinationName:       destinationName,
			DestinationFileInfo:   destinationFile,
			DestinationFileSystem: destinationFileSystem,
		})
		if err != nil {
			return fmt.Errorf(
				"error copying file from %q to %q: %w",
				FullPath(sourceFileSystem, sourceName),
				FullPath(destinationFileSystem, destinationName),
				err,
			)
		}
		results.FilesCopied++
	}

	// delete extra files in destination
	if config.DeleteFromDestination {
		for _, destinationFile := range destinationFiles {
			if _, ok := sourceFilesByName[destinationFile.Name()]; ok {
				continue
			}
			if filter.ShouldExclude(config.DeleteExcludeFiles, nil, destinationFile.Name()) {
				continue
			}
			destinationName := destinationFileSystem.Join(input.DestinationDirectory, destinationFile.Name())
			progress(input.Logger, config, "Deleting: %s", FullPath(destinationFileSystem, destinationName))
			// the attributes of a link belong to its target
			if !destinationFile.IsSymlink() {
				if err := ClearReadOnly(ctx, destinationFileSystem, destinationName, destinationFile); err != nil {
					return err
				}
			}
			if err := destinationFileSystem.Remove(ctx, destinationName); err != nil {
				return fmt.Errorf("error deleting file %q: %w", FullPath(destinationFileSystem, destinationName), err)
			}
			results.FilesDeleted++
		}
	}

	sourceDirectories, err := ListDirectories(ctx, sourceFileSystem, input.SourceDirectory, config, results)
	if err != nil {
		return err
	}
	destinationDirectories, err := ListDirectories(ctx, destinationFileSystem, input.DestinationDirectory, nil, results)
	if err != nil {
		return err
	}

	// recurse into every selected source subdirectory before deleting any destination subdirectory
	sourceDirectoriesByName := make(map[string]struct{}, len(sourceDirectories))
	for _, sourceDirectory := range sourceDirectories {
		sourceDirectoriesByName[sourceDirectory.Name()] = struct{}{}
		err := SyncDirectory(ctx, &SyncDirectoryInput{
			SourceDirectory:       sourceFileSystem.Join(input.SourceDirectory, sourceDirectory.Name()),
			SourceFileSystem:      sourceFileSystem,
			DestinationDirectory:  destinationFileSystem.Join(input.DestinationDirectory, sourceDirectory.Name()),
			DestinationFileSystem: destinationFileSystem,
			Config:                config,
			Logger:                input.Logger,
		}, results)
		if err != nil {
			return err
		}
	}

	// delete extra directories in destination
	if config.DeleteFromDestination {
		for _, destinationDirectory := range destinationDirectories {
			if _, ok := sourceDirectoriesByName[destinationDirectory.Name()]; ok {
				continue
			}
			if filter.ShouldExclude(config.DeleteExcludeDirectories, nil, destinationDirectory.Name()) {
				continue
			}
			destinationName := destinationFileSystem.Join(input.DestinationDirectory, destinationDirectory.Name())
			progress(input.Logger, config, "Deleting directory: %s", FullPath(destinationFileSystem, destinationName))
			// a link is removed without touching its target
			if destinationDirectory.IsSymlink() {
				err = destinationFileSystem.Remove(ctx, destinationName)
			} else {
				err = EraseTree(ctx, destinationFileSystem, destinationName)
			}
			if err != nil {
				return fmt.Errorf("error deleting directory %q: %w", FullPath(destinationFileSystem, destinationName), err)
			}
			results.DirectoriesDeleted++
		}
	}

	return nil
}
