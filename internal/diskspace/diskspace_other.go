//go:build !unix

package diskspace

import "errors"

// Available is not implemented on this platform.
func Available(dir string) (int64, error) {
	return 0, errors.ErrUnsupported
}
