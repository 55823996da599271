// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

type SyncInput struct {
	Source                string // directory relative to the root of the source file system
	SourceFileSystem      FileSystem
	Destination           string // directory relative to the root of the destination file system
	DestinationFileSystem FileSystem
	Config                *Config
	Logger                Logger
}
