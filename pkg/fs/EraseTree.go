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

// ClearReadOnly makes the entry writable if it is read-only.
func ClearReadOnly(ctx context.Context, fileSystem FileSystem, name string, fileInfo FileInfo) error {
	if !fileInfo.Attributes().ReadOnly() {
		return nil
	}
	if err := fileSystem.SetAttributes(ctx, name, fileInfo.Attributes().Writable()); err != nil {
		return fmt.Errorf("error clearing read-only attribute of %q: %w", FullPath(fileSystem, name), err)
	}
	return nil
}

// EraseTree removes the directory and everything below it.
// The read-only attribute is first cleared from the directory and every entry below it,
// since removal fails on read-only entries on common file systems.
// Symbolic links are removed but never followed.
func EraseTree(ctx context.Context, fileSystem FileSystem, directory string) error {
	directoryInfo, err := fileSystem.Stat(ctx, directory)
	if err != nil {
		return fmt.Errorf("error stating directory %q: %w", FullPath(fileSystem, directory), err)
	}
	if err := clearReadOnlyTree(ctx, fileSystem, directory, directoryInfo); err != nil {
		return err
	}
	if err := fileSystem.RemoveAll(ctx, directory); err != nil {
		return fmt.Errorf("error removing directory %q: %w", FullPath(fileSystem, directory), err)
	}
	return nil
}

func clearReadOnlyTree(ctx context.Context, fileSystem FileSystem, directory string, directoryInfo FileInfo) error {
	if err := ClearReadOnly(ctx, fileSystem, directory, directoryInfo); err != nil {
		return err
	}
	directoryEntries, err := fileSystem.ReadDir(ctx, directory)
	if err != nil {
		return fmt.Errorf("error reading directory %q: %w", FullPath(fileSystem, directory), err)
	}
	for _, directoryEntry := range directoryEntries {
		if directoryEntry.IsSymlink() {
			continue
		}
		name := fileSystem.Join(directory, directoryEntry.Name())
		if directoryEntry.IsDir() {
			if err := clearReadOnlyTree(ctx, fileSystem, name, directoryEntry); err != nil {
				return err
			}
			continue
		}
		if err := ClearReadOnly(ctx, fileSystem, name, directoryEntry); err != nil {
			return err
		}
	}
	return nil
}
