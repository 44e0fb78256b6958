package pane

import (
	"io/fs"
	"os"
)

// FS is the slice of the filesystem a pane reads from.
type FS interface {
	ReadDir(dir string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
}

// LocalFS reads from the operating system.
type LocalFS struct{}

func (LocalFS) ReadDir(dir string) ([]fs.DirEntry, error) { return os.ReadDir(dir) }
func (LocalFS) Stat(name string) (fs.FileInfo, error)     { return os.Stat(name) }
