// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

// UpToDate returns true if the destination has the same size, modification time, and attributes as the source.
func UpToDate(source FileInfo, destination FileInfo) bool {
	if destination == nil {
		return false
	}
	return source.Size() == destination.Size() &&
		source.ModTime().Equal(destination.ModTime()) &&
		source.Attributes() == destination.Attributes()
}
