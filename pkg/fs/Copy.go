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
	"io"
	"os"
	"time"
)

// Copy overwrites the destination file with the contents of the source file,
// then sets the modification time and attributes of the destination to those of the source.
func Copy(ctx context.Context, input *CopyInput) error {
	// a link is replaced, never written through
	destinationSymlink := input.DestinationFileInfo != nil && input.DestinationFileInfo.IsSymlink()

	// make sure destination is not read-only
	if input.DestinationFileInfo != nil && !destinationSymlink {
		if err := ClearReadOnly(ctx, input.DestinationFileSystem, input.DestinationName, input.DestinationFileInfo); err != nil {
			return err
		}
	}

	// open source file
	sourceFile, err := input.SourceFileSystem.Open(ctx, input.SourceName)
	if err != nil {
		return fmt.Errorf("error opening source file at %q: %w", input.SourceName, err)
	}

	// replace a link instead of writing to its target
	if destinationSymlink {
		if err := input.DestinationFileSystem.Remove(ctx, input.DestinationName); err != nil {
			_ = sourceFile.Close() // silently close source file
			return fmt.Errorf("error removing symbolic link at %q: %w", input.DestinationName, err)
		}
	}

	// open destination file
	destinationFile, err := input.DestinationFileSystem.OpenFile(ctx, input.DestinationName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		_ = sourceFile.Close() // silently close source file
		return fmt.Errorf("error creating destination file at %q: %w", input.DestinationName, err)
	}

	// copy bytes from source to destination
	_, err = io.Copy(destinationFile, sourceFile)
	if err != nil {
		_ = sourceFile.Close()      // silently close source file
		_ = destinationFile.Close() // silently close destination file
		return fmt.Errorf("error copying from %q to %q: %w", input.SourceName, input.DestinationName, err)
	}

	err = sourceFile.Close()
	if err != nil {
		_ = destinationFile.Close() // silently close destination file
		return fmt.Errorf("error closing source file after copying: %w", err)
	}

	err = destinationFile.Close()
	if err != nil {
		return fmt.Errorf("error closing destination file after copying: %w", err)
	}

	// preserve modification time
	err = input.DestinationFileSystem.Chtimes(ctx, input.DestinationName, time.Now(), input.SourceFileInfo.ModTime())
	if err != nil {
		return fmt.Errorf("error changing timestamps for destination after copying: %w", err)
	}

	// attributes are set last since the source may be read-only
	err = input.DestinationFileSystem.SetAttributes(ctx, input.DestinationName, input.SourceFileInfo.Attributes())
	if err != nil {
		return fmt.Errorf("error setting attributes for destination after copying: %w", err)
	}

	return nil
}
