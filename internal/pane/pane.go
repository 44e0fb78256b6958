// Package pane holds the state of one directory view: its listing, cursor,
// scroll offset and text filter. Panes are not safe for concurrent use; the
// UI goroutine owns them.
package pane

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// PermissionDenied is the only entry of a directory that could not be read.
const PermissionDenied = "[Permission Denied]"

// Entry is one row of a listing.
type Entry struct {
	Name    string
	IsDir   bool
	IsLink  bool
	Size    int64
	Mode    fs.FileMode
	ModTime time.Time
}

// Pane is a navigable directory listing.
type Pane struct {
	fsys    FS
	path    string
	entries []Entry
	cursor  int
	scroll  int
	filter  string
	denied  bool
}

// New creates a pane at path reading from the local filesystem.
func New(path string) *Pane {
	return NewWithFS(path, LocalFS{})
}

// NewWithFS creates a pane at path reading from fsys.
func NewWithFS(path string, fsys FS) *Pane {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	p := &Pane{fsys: fsys, path: path}
	p.Relist()
	return p
}

func (p *Pane) Path() string     { return p.path }
func (p *Pane) Entries() []Entry { return p.entries }
func (p *Pane) Len() int         { return len(p.entries) }
func (p *Pane) Cursor() int      { return p.cursor }
func (p *Pane) Scroll() int      { return p.scroll }
func (p *Pane) Filter() string   { return p.filter }
func (p *Pane) Denied() bool     { return p.denied }
func (p *Pane) ResetScroll()     { p.scroll = 0 }

// Names returns the entry names in listing order.
func (p *Pane) Names() []string {
	names := make([]string, len(p.entries))
	for i, e := range p.entries {
		names[i] = e.Name
	}
	return names
}

// Relist rebuilds the listing from the filesystem. Read failures never reach
// the caller: the pane degrades to the PermissionDenied sentinel instead.
func (p *Pane) Relist() {
	dirEntries, err := p.fsys.ReadDir(p.path)
	if err != nil {
		p.entries = []Entry{{Name: PermissionDenied}}
		p.denied = true
		p.clamp()
		return
	}
	p.denied = false
	needle := strings.ToLower(p.filter)
	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if needle != "" && !strings.Contains(strings.ToLower(de.Name()), needle) {
			continue
		}
		entries = append(entries, p.describe(de))
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	p.entries = entries
	p.clamp()
}

func (p *Pane) describe(de fs.DirEntry) Entry {
	e := Entry{Name: de.Name(), IsDir: de.IsDir(), IsLink: de.Type()&fs.ModeSymlink != 0}
	if info, err := de.Info(); err == nil {
		e.Size = info.Size()
		e.Mode = info.Mode()
		e.ModTime = info.ModTime()
	}
	if e.IsLink {
		// directory-ness and size follow the link target
		if target, err := p.fsys.Stat(filepath.Join(p.path, e.Name)); err == nil {
			e.IsDir = target.IsDir()
			e.Size = target.Size()
		}
	}
	return e
}

// clamp restores cursor and scroll into range after the listing changed.
func (p *Pane) clamp() {
	n := len(p.entries)
	if n == 0 {
		p.cursor, p.scroll = 0, 0
		return
	}
	if p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.scroll > p.cursor {
		p.scroll = p.cursor
	}
	if p.scroll < 0 {
		p.scroll = 0
	}
}

// Move shifts the cursor by delta with wraparound and scrolls so the cursor
// stays inside a viewport of height rows.
func (p *Pane) Move(delta, height int) {
	n := len(p.entries)
	if n == 0 {
		return
	}
	p.cursor = ((p.cursor+delta)%n + n) % n
	p.ensureVisible(height)
}

func (p *Pane) ensureVisible(height int) {
	if height < 1 {
		height = 1
	}
	if p.cursor < p.scroll {
		p.scroll = p.cursor
	} else if p.cursor >= p.scroll+height {
		p.scroll = p.cursor - height + 1
	}
}

// Selected returns the entry under the cursor, or "" for an empty listing.
func (p *Pane) Selected() string {
	if e, ok := p.SelectedEntry(); ok {
		return e.Name
	}
	return ""
}

// SelectedEntry returns the entry under the cursor.
func (p *Pane) SelectedEntry() (Entry, bool) {
	if len(p.entries) == 0 || p.cursor >= len(p.entries) {
		return Entry{}, false
	}
	return p.entries[p.cursor], true
}

// Select moves the cursor onto the entry called name, if present.
func (p *Pane) Select(name string, height int) bool {
	for i, e := range p.entries {
		if e.Name == name {
			p.cursor = i
			p.ensureVisible(height)
			return true
		}
	}
	return false
}

// Target returns the full path of the selection when it is a real
// filesystem object, i.e. neither empty nor the sentinel.
func (p *Pane) Target() (string, bool) {
	e, ok := p.SelectedEntry()
	if !ok || p.denied || e.Name == PermissionDenied {
		return "", false
	}
	return filepath.Join(p.path, e.Name), true
}

// Enter descends into the selected directory. It reports whether the path
// changed.
func (p *Pane) Enter() bool {
	e, ok := p.SelectedEntry()
	if !ok || p.denied || !e.IsDir {
		return false
	}
	p.chdir(filepath.Join(p.path, e.Name))
	return true
}

// Up moves to the parent directory. At the filesystem root it does nothing.
func (p *Pane) Up() bool {
	parent := filepath.Dir(p.path)
	if parent == p.path {
		return false
	}
	p.chdir(parent)
	return true
}

// Chdir switches to dir regardless of the selection.
func (p *Pane) Chdir(dir string) {
	p.chdir(dir)
}

func (p *Pane) chdir(dir string) {
	p.path = dir
	p.cursor, p.scroll = 0, 0
	p.Relist()
}

// SetFilter replaces the filter, relists and moves the cursor to the top.
func (p *Pane) SetFilter(text string) {
	p.filter = text
	p.cursor, p.scroll = 0, 0
	p.Relist()
}
