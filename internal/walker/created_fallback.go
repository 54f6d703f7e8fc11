//go:build !linux

package walker

import (
	"os"
	"time"
)

// createdTime falls back to the modification time on platforms where a
// reliable, cgo-free birth time is not available through os.FileInfo.
func createdTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
