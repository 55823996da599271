// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/navwar/treesync/pkg/fs"
	"github.com/navwar/treesync/pkg/lfs"
)

const (
	sourceRoot      = "/src"
	destinationRoot = "/dst"
	copyPrefix      = "*c|"
)

// recorder keeps every message passed to the logger.
type recorder struct {
	lines []string
}

func (r *recorder) Log(msg string, fields ...map[string]interface{}) error {
	r.lines = append(r.lines, msg)
	return nil
}

// failingFileSystem fails the operation on the named entry.
type failingFileSystem struct {
	fs.FileSystem
	openFile  string
	mkdirAll  string
	remove    string
	removeAll string
}

var errDeviceNotReady = errors.New("device not ready")

func (f *failingFileSystem) OpenFile(ctx context.Context, name string, flag int, perm os.FileMode) (fs.File, error) {
	if name == f.openFile {
		return nil, errDeviceNotReady
	}
	return f.FileSystem.OpenFile(ctx, name, flag, perm)
}

func (f *failingFileSystem) MkdirAll(ctx context.Context, name string, mode os.FileMode) error {
	if name == f.mkdirAll {
		return errDeviceNotReady
	}
	return f.FileSystem.MkdirAll(ctx, name, mode)
}

func (f *failingFileSystem) Remove(ctx context.Context, name string) error {
	if name == f.remove {
		return errDeviceNotReady
	}
	return f.FileSystem.Remove(ctx, name)
}

func (f *failingFileSystem) RemoveAll(ctx context.Context, name string) error {
	if name == f.removeAll {
		return errDeviceNotReady
	}
	return f.FileSystem.RemoveAll(ctx, name)
}

// newTree creates the directories and files below the root of the in-memory file system.
// Every file contains its own name.
func newTree(t *testing.T, mem afero.Fs, root string, directories []string, files []string) {
	t.Helper()
	require.NoError(t, mem.MkdirAll(root, 0755))
	for _, d := range directories {
		require.NoError(t, mem.MkdirAll(filepath.Join(root, d), 0755))
	}
	for _, f := range files {
		require.NoError(t, afero.WriteFile(mem, filepath.Join(root, f), []byte(f), 0644))
	}
}

// newDestinationTree creates the destination tree.
// A file prefixed with "*c|" is an exact copy of the source file, anything else has different contents.
func newDestinationTree(t *testing.T, mem afero.Fs, directories []string, files []string) {
	t.Helper()
	require.NoError(t, mem.MkdirAll(destinationRoot, 0755))
	for _, d := range directories {
		require.NoError(t, mem.MkdirAll(filepath.Join(destinationRoot, d), 0755))
	}
	for _, f := range files {
		if name := strings.TrimPrefix(f, copyPrefix); name != f {
			copyFile(t, mem, filepath.Join(sourceRoot, name), filepath.Join(destinationRoot, name))
			continue
		}
		require.NoError(t, afero.WriteFile(mem, filepath.Join(destinationRoot, f), []byte("destination "+f), 0644))
	}
}

func copyFile(t *testing.T, mem afero.Fs, source string, destination string) {
	t.Helper()
	data, err := afero.ReadFile(mem, source)
	require.NoError(t, err)
	fi, err := mem.Stat(source)
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(mem, destination, data, fi.Mode().Perm()))
	require.NoError(t, mem.Chtimes(destination, fi.ModTime(), fi.ModTime()))
}

func newSyncInput(mem afero.Fs, config *fs.Config, logger fs.Logger) *fs.SyncInput {
	return &fs.SyncInput{
		Source:                "/",
		SourceFileSystem:      lfs.NewFileSystem(mem, sourceRoot),
		Destination:           "/",
		DestinationFileSystem: lfs.NewFileSystem(mem, destinationRoot),
		Config:                config,
		Logger:                logger,
	}
}

func exists(t *testing.T, mem afero.Fs, name string) bool {
	t.Helper()
	ok, err := afero.Exists(mem, name)
	require.NoError(t, err)
	return ok
}
