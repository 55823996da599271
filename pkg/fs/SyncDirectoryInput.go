// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

type SyncDirectoryInput struct {
	SourceDirectory       string
	SourceFileSystem      FileSystem
	DestinationDirectory  string
	DestinationFileSystem FileSystem
	Config                *Config
	Logger                Logger
}
