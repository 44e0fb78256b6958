// Package fsinfo answers the platform-specific questions the status bar and
// the mounts popup ask about files: who owns them and where mounts are.
package fsinfo

import (
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strconv"
)

// MountBases are the directories scanned for mount points.
var MountBases = []string{"/mnt", "/media"}

// Owner returns the user name owning info, its numeric uid when the name
// cannot be resolved, or "" when the platform does not expose ownership.
func Owner(info fs.FileInfo) string {
	uid, ok := ownerID(info)
	if !ok {
		return ""
	}
	id := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(id); err == nil {
		return u.Username
	}
	return id
}

// Mounts lists mount points found directly under each of bases.
func Mounts(bases []string) []string {
	var found []string
	for _, base := range bases {
		entries, err := os.ReadDir(base)
		if err != nil {
			continue
		}
		for _, e := range entries {
			full := filepath.Join(base, e.Name())
			if IsMount(full) {
				found = append(found, full)
			}
		}
	}
	sort.Strings(found)
	return found
}
