//go:build !unix

package fsinfo

import "io/fs"

func ownerID(fs.FileInfo) (uint32, bool) { return 0, false }

// IsMount is not implemented on this platform.
func IsMount(string) bool { return false }
