//go:build unix

package fsinfo

import (
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

func ownerID(info fs.FileInfo) (uint32, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}
	return st.Uid, true
}

// IsMount reports whether path is a directory on a different device than
// its parent, or the root itself.
func IsMount(path string) bool {
	info, err := os.Lstat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	parent, err := os.Lstat(filepath.Dir(path))
	if err != nil {
		return false
	}
	st, ok1 := info.Sys().(*syscall.Stat_t)
	pst, ok2 := parent.Sys().(*syscall.Stat_t)
	if !ok1 || !ok2 {
		return false
	}
	if st.Dev != pst.Dev {
		return true
	}
	return st.Ino == pst.Ino
}
