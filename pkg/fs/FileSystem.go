// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"
	"os"
	"time"
)

// FileSystem is the set of operations the synchronizer needs from a directory tree.
// Names are relative to the root of the file system.
type FileSystem interface {
	Chtimes(ctx context.Context, name string, atime time.Time, mtime time.Time) error
	IsNotExist(err error) bool
	Join(name ...string) string
	MkdirAll(ctx context.Context, name string, mode os.FileMode) error
	Open(ctx context.Context, name string) (File, error)
	OpenFile(ctx context.Context, name string, flag int, perm os.FileMode) (File, error)
	// ReadDir returns the immediate children of the directory.
	ReadDir(ctx context.Context, name string) ([]FileInfo, error)
	Remove(ctx context.Context, name string) error
	RemoveAll(ctx context.Context, name string) error
	// Root returns the absolute path of the root of the file system.
	Root() string
	SetAttributes(ctx context.Context, name string, attributes Attributes) error
	Stat(ctx context.Context, name string) (FileInfo, error)
}

// FullPath returns the name joined to the root of the file system.
func FullPath(fileSystem FileSystem, name string) string {
	return fileSystem.Join(fileSystem.Root(), name)
}
