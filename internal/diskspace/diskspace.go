// Package diskspace checks free space on the filesystem a file will land on.
package diskspace

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

// InsufficientSpaceError reports that a destination cannot hold the data.
type InsufficientSpaceError struct {
	Path           string
	RequiredBytes  int64
	AvailableBytes int64
}

func (e *InsufficientSpaceError) Error() string {
	return fmt.Sprintf("insufficient disk space for %s: need %s, have %s",
		e.Path, humanize.IBytes(uint64(e.RequiredBytes)), humanize.IBytes(uint64(e.AvailableBytes)))
}

// Check returns an *InsufficientSpaceError when the filesystem holding dir
// has fewer than required bytes available to unprivileged users. When the
// filesystem cannot be queried the check passes and the write is left to
// fail on its own.
func Check(dir string, required int64) error {
	if required <= 0 {
		return nil
	}
	available, err := Available(dir)
	if err != nil {
		return nil
	}
	if available < required {
		return &InsufficientSpaceError{Path: dir, RequiredBytes: required, AvailableBytes: available}
	}
	return nil
}

// IsInsufficientSpace reports whether err is, or wraps, an
// *InsufficientSpaceError.
func IsInsufficientSpace(err error) bool {
	var target *InsufficientSpaceError
	return errors.As(err, &target)
}
