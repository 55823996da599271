// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"fmt"
)

// Results counts what a synchronization did.
type Results struct {
	FilesCopied        int `json:"files_copied" yaml:"files_copied"`
	FilesUpToDate      int `json:"files_up_to_date" yaml:"files_up_to_date"`
	FilesDeleted       int `json:"files_deleted" yaml:"files_deleted"`
	FilesIgnored       int `json:"files_ignored" yaml:"files_ignored"`
	DirectoriesCreated int `json:"directories_created" yaml:"directories_created"`
	DirectoriesDeleted int `json:"directories_deleted" yaml:"directories_deleted"`
	DirectoriesIgnored int `json:"directories_ignored" yaml:"directories_ignored"`
}

func (r *Results) String() string {
	return fmt.Sprintf(
		"%d file(s) copied, %d file(s) up to date, %d file(s) deleted, %d file(s) ignored, %d directories created, %d directories deleted, %d directories ignored",
		r.FilesCopied,
		r.FilesUpToDate,
		r.FilesDeleted,
		r.FilesIgnored,
		r.DirectoriesCreated,
		r.DirectoriesDeleted,
		r.DirectoriesIgnored,
	)
}
