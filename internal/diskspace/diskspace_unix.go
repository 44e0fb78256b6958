//go:build unix

package diskspace

import "golang.org/x/sys/unix"

// Available returns the bytes available to unprivileged users on the
// filesystem containing dir.
func Available(dir string) (int64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(dir, &st); err != nil {
		return 0, err
	}
	return int64(st.Bavail) * int64(st.Bsize), nil
}
