// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/navwar/treesync/pkg/fs"
)

type LocalFileSystem struct {
	fs     afero.Fs
	root   string
	native bool // backed by the operating system
}

func (lfs *LocalFileSystem) Chtimes(ctx context.Context, name string, atime time.Time, mtime time.Time) error {
	return lfs.fs.Chtimes(name, atime, mtime)
}

func (lfs *LocalFileSystem) IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

func (lfs *LocalFileSystem) Join(name ...string) string {
	return filepath.Join(name...)
}

func (lfs *LocalFileSystem) MkdirAll(ctx context.Context, name string, mode os.FileMode) error {
	return lfs.fs.MkdirAll(name, mode)
}

func (lfs *LocalFileSystem) Open(ctx context.Context, name string) (fs.File, error) {
	f, err := lfs.fs.Open(name)
	if err != nil {
		return nil, err
	}
	return NewLocalFile(f), nil
}

func (lfs *LocalFileSystem) OpenFile(ctx context.Context, name string, flag int, perm os.FileMode) (fs.File, error) {
	f, err := lfs.fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return NewLocalFile(f), nil
}

// ReadDir returns the immediate children of the directory sorted by name.
// Symbolic links are followed, unless the target does not exist.
func (lfs *LocalFileSystem) ReadDir(ctx context.Context, name string) ([]fs.FileInfo, error) {
	readDirOutput, err := afero.ReadDir(lfs.fs, name)
	if err != nil {
		return nil, err
	}
	directoryEntries := make([]fs.FileInfo, 0, len(readDirOutput))
	for _, fi := range readDirOutput {
		if fi.Mode()&os.ModeSymlink != 0 {
			target, statError := lfs.fs.Stat(filepath.Join(name, fi.Name()))
			if statError == nil {
				directoryEntries = append(directoryEntries, NewLocalDirectoryEntry(renamedFileInfo{FileInfo: target, name: fi.Name()}, true))
				continue
			}
			directoryEntries = append(directoryEntries, NewLocalDirectoryEntry(fi, true))
			continue
		}
		directoryEntries = append(directoryEntries, NewLocalDirectoryEntry(fi, false))
	}
	return directoryEntries, nil
}

func (lfs *LocalFileSystem) Remove(ctx context.Context, name string) error {
	return lfs.fs.Remove(name)
}

func (lfs *LocalFileSystem) RemoveAll(ctx context.Context, name string) error {
	return lfs.fs.RemoveAll(name)
}

func (lfs *LocalFileSystem) Root() string {
	return lfs.root
}

func (lfs *LocalFileSystem) SetAttributes(ctx context.Context, name string, attributes fs.Attributes) error {
	if err := lfs.fs.Chmod(name, attributes.Mode.Perm()); err != nil {
		return err
	}
	if lfs.native {
		if err := setHidden(filepath.Join(lfs.root, name), attributes.Hidden); err != nil {
			return fmt.Errorf("error setting hidden attribute of %q: %w", name, err)
		}
	}
	return nil
}

func (lfs *LocalFileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	fi, err := lfs.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	return NewLocalDirectoryEntry(fi, false), nil
}

// renamedFileInfo keeps the name of a link while reporting its target.
type renamedFileInfo struct {
	os.FileInfo
	name string
}

func (fi renamedFileInfo) Name() string {
	return fi.name
}

func newLocalFileSystem(base afero.Fs, rootPath string, native bool) *LocalFileSystem {
	root := filepath.Clean(rootPath)
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &LocalFileSystem{
		fs:     afero.NewBasePathFs(base, root),
		root:   root,
		native: native,
	}
}

// NewLocalFileSystem returns a file system rooted at the given directory of the operating system.
func NewLocalFileSystem(rootPath string) *LocalFileSystem {
	return newLocalFileSystem(afero.NewOsFs(), rootPath, true)
}

// NewReadOnlyLocalFileSystem returns a file system rooted at the given directory that refuses every modification.
func NewReadOnlyLocalFileSystem(rootPath string) *LocalFileSystem {
	return newLocalFileSystem(afero.NewReadOnlyFs(afero.NewOsFs()), rootPath, true)
}

// NewFileSystem returns a file system rooted at the given directory of any afero file system,
// such as afero.NewMemMapFs() in tests.
func NewFileSystem(base afero.Fs, rootPath string) *LocalFileSystem {
	return newLocalFileSystem(base, rootPath, false)
}
