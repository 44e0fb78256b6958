// Package archive unpacks zip, tar.gz and tar.xz files next to themselves.
package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"golang.org/x/sync/errgroup"

	"zeta/internal/logging"
)

// ErrUnsafePath is returned for entries that would land outside the target.
var ErrUnsafePath = errors.New("entry escapes extraction directory")

// zipWorkers bounds concurrent zip entry writes.
const zipWorkers = 4

// Kind is an archive format.
type Kind int

const (
	None Kind = iota
	Zip
	TarGz
	TarXz
)

func (k Kind) String() string {
	switch k {
	case Zip:
		return "ZIP"
	case TarGz:
		return "TAR.GZ"
	case TarXz:
		return "TAR.XZ"
	}
	return "none"
}

// Hint is the message shown when the selection is not of kind k.
func (k Kind) Hint() string {
	switch k {
	case Zip:
		return "Select a .zip file first"
	case TarGz:
		return "Select a .tar.gz or .tgz file first"
	case TarXz:
		return "Select a .tar.xz file first"
	}
	return ""
}

// KindFor detects the format from a file name.
func KindFor(name string) Kind {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".zip"):
		return Zip
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		return TarGz
	case strings.HasSuffix(lower, ".tar.xz"):
		return TarXz
	}
	return None
}

// TargetName is the directory name an archive extracts into: the file name
// without its archive suffix.
func TargetName(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	if len(base) > 4 && strings.EqualFold(base[len(base)-4:], ".tar") {
		base = base[:len(base)-4]
	}
	return base
}

// Extract unpacks dir/filename into dir/TargetName(filename). The message is
// ready for the status line.
func Extract(kind Kind, dir, filename string) (bool, string) {
	src := filepath.Join(dir, filename)
	target := filepath.Join(dir, TargetName(filename))
	log := logging.L().With().Str("archive", src).Str("kind", kind.String()).Logger()

	err := extract(kind, src, target)
	if err != nil {
		log.Error().Err(err).Msg("extraction failed")
		return false, fmt.Sprintf("Extraction failed: %v", err)
	}
	log.Info().Str("target", target).Msg("extracted")
	return true, "Extracted to " + filepath.Base(target)
}

func extract(kind Kind, src, target string) error {
	if KindFor(src) != kind {
		return fmt.Errorf("%s is not a %s archive", filepath.Base(src), kind)
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return err
	}
	switch kind {
	case Zip:
		return extractZip(src, target)
	case TarGz, TarXz:
		return extractTar(kind, src, target)
	}
	return errors.ErrUnsupported
}

// safeJoin resolves name under root, rejecting paths that leave it.
func safeJoin(root, name string) (string, error) {
	p := filepath.Join(root, name)
	if !within(root, p) {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, name)
	}
	return p, nil
}

func within(root, p string) bool {
	return p == root || strings.HasPrefix(p, root+string(filepath.Separator))
}

func extractZip(src, target string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return err
	}
	defer r.Close()

	// lay out directories first so entry writes never race on MkdirAll
	var files []*zip.File
	paths := make(map[*zip.File]string, len(r.File))
	for _, f := range r.File {
		p, err := safeJoin(target, f.Name)
		if err != nil {
			return err
		}
		mode := f.Mode()
		switch {
		case mode.IsDir():
			err = os.MkdirAll(p, 0o755)
		case mode.IsRegular():
			err = os.MkdirAll(filepath.Dir(p), 0o755)
			files = append(files, f)
			paths[f] = p
		default:
			logging.L().Debug().Str("entry", f.Name).Msg("skipping special zip entry")
		}
		if err != nil {
			return err
		}
	}

	var eg errgroup.Group
	eg.SetLimit(zipWorkers)
	for _, f := range files {
		f := f
		eg.Go(func() error {
			rc, err := f.Open()
			if err != nil {
				return fmt.Errorf("%s: %w", f.Name, err)
			}
			defer rc.Close()
			return writeFile(paths[f], rc, f.Mode().Perm())
		})
	}
	return eg.Wait()
}

func extractTar(kind Kind, src, target string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader
	switch kind {
	case TarGz:
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer gzr.Close()
		r = gzr
	case TarXz:
		xzr, err := xz.NewReader(f)
		if err != nil {
			return err
		}
		r = xzr
	}

	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		p, err := safeJoin(target, hdr.Name)
		if err != nil {
			return err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			err = os.MkdirAll(p, 0o755)
		case tar.TypeReg:
			if err = os.MkdirAll(filepath.Dir(p), 0o755); err == nil {
				err = writeFile(p, tr, hdr.FileInfo().Mode().Perm())
			}
		case tar.TypeSymlink:
			err = symlink(target, p, hdr.Linkname)
		default:
			logging.L().Debug().Str("entry", hdr.Name).Msg("skipping special tar entry")
		}
		if err != nil {
			return err
		}
	}
}

func symlink(root, p, linkname string) error {
	resolved := filepath.Clean(linkname)
	if !filepath.IsAbs(linkname) {
		resolved = filepath.Join(filepath.Dir(p), linkname)
	}
	if !within(root, resolved) {
		return fmt.Errorf("%w: link %s -> %s", ErrUnsafePath, filepath.Base(p), linkname)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	return os.Symlink(linkname, p)
}

func writeFile(path string, r io.Reader, perm os.FileMode) error {
	if perm == 0 {
		perm = 0o644
	}
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
