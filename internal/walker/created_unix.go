//go:build linux

package walker

import (
	"os"
	"syscall"
	"time"
)

// createdTime returns the closest stand-in for the file's birth time that
// this platform exposes: the inode change time (ctime). Linux's Stat_t carries only ctime (last metadata change, not creation) in
// the general case; it is the closest portable stand-in for the original
// implementation's std::fs::Metadata::created() and is what this target
// platform actually has available without cgo or statx.
func createdTime(info os.FileInfo) time.Time {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
}
