package pane

import (
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkfiles(t *testing.T, dir string, files []string, dirs []string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, d), 0o755))
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte(f), 0o644))
	}
}

func TestRelistOrdersDirectoriesFirst(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a")
	mkfiles(t, dir, []string{"b.txt", "A.txt"}, []string{"z"})

	p := New(dir)

	assert.Equal(t, []string{"z", "A.txt", "b.txt"}, p.Names())
	assert.Equal(t, 0, p.Cursor())
	assert.Equal(t, "z", p.Selected())
}

func TestRelistOrderingProperty(t *testing.T) {
	dir := t.TempDir()
	mkfiles(t, dir,
		[]string{"zeta", "Alpha.go", "beta.md", "_x", "README", "c"},
		[]string{"src", "Docs", "bin", "a-dir"})

	entries := New(dir).Entries()
	require.Len(t, entries, 10)

	seenFile := false
	for _, e := range entries {
		if !e.IsDir {
			seenFile = true
			continue
		}
		assert.False(t, seenFile, "directory %q listed after a file", e.Name)
	}
	isSorted := func(group []Entry) bool {
		return sort.SliceIsSorted(group, func(i, j int) bool {
			return strings.ToLower(group[i].Name) < strings.ToLower(group[j].Name)
		})
	}
	assert.True(t, isSorted(entries[:4]))
	assert.True(t, isSorted(entries[4:]))
}

func TestSymlinkToDirectorySortsAsDirectory(t *testing.T) {
	dir := t.TempDir()
	mkfiles(t, dir, []string{"a.txt"}, []string{"real"})
	require.NoError(t, os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "b-link")))

	p := New(dir)

	require.Equal(t, []string{"b-link", "real", "a.txt"}, p.Names())
	assert.True(t, p.Entries()[0].IsLink)
	assert.True(t, p.Entries()[0].IsDir)
}

func TestEmptyDirectory(t *testing.T) {
	p := New(t.TempDir())

	assert.Equal(t, 0, p.Len())
	assert.Equal(t, "", p.Selected())
	p.Move(1, 10)
	assert.Equal(t, 0, p.Cursor())
	assert.Equal(t, 0, p.Scroll())
	assert.False(t, p.Enter())
	_, ok := p.Target()
	assert.False(t, ok)
}

func TestMoveWrapsAround(t *testing.T) {
	dir := t.TempDir()
	mkfiles(t, dir, []string{"a", "b", "c"}, nil)
	p := New(dir)

	p.Move(-1, 10)
	assert.Equal(t, 2, p.Cursor())
	p.Move(1, 10)
	assert.Equal(t, 0, p.Cursor())
}

func TestMoveFullCycleReturnsToStart(t *testing.T) {
	dir := t.TempDir()
	mkfiles(t, dir, []string{"1", "2", "3", "4", "5", "6", "7"}, nil)
	p := New(dir)

	for start := 0; start < p.Len(); start++ {
		for p.Cursor() != start {
			p.Move(1, 3)
		}
		for i := 0; i < p.Len(); i++ {
			p.Move(1, 3)
		}
		assert.Equal(t, start, p.Cursor())
	}
}

func TestMoveKeepsCursorVisible(t *testing.T) {
	dir := t.TempDir()
	var names []string
	for i := 0; i < 20; i++ {
		names = append(names, string(rune('a'+i)))
	}
	mkfiles(t, dir, names, nil)
	p := New(dir)
	const height = 5

	for i := 0; i < 45; i++ {
		p.Move(1, height)
		assert.LessOrEqual(t, p.Scroll(), p.Cursor())
		assert.Less(t, p.Cursor(), p.Scroll()+height)
	}
	for i := 0; i < 45; i++ {
		p.Move(-1, height)
		assert.LessOrEqual(t, p.Scroll(), p.Cursor())
		assert.Less(t, p.Cursor(), p.Scroll()+height)
	}
}

func TestEnterAndUp(t *testing.T) {
	root := t.TempDir()
	mkfiles(t, root, []string{"file.txt", "sub/inner.txt"}, []string{"sub"})
	p := New(root)
	p.Move(1, 10)
	require.Equal(t, "file.txt", p.Selected())

	assert.False(t, p.Enter(), "enter on a file is a no-op")
	assert.Equal(t, root, p.Path())

	p.Move(-1, 10)
	require.True(t, p.Enter())
	assert.Equal(t, filepath.Join(root, "sub"), p.Path())
	assert.Equal(t, []string{"inner.txt"}, p.Names())
	assert.Equal(t, 0, p.Cursor())

	require.True(t, p.Up())
	assert.Equal(t, root, p.Path())
	assert.Equal(t, 0, p.Cursor())
	assert.Equal(t, 0, p.Scroll())
}

func TestUpStopsAtRoot(t *testing.T) {
	p := New("/")
	assert.False(t, p.Up())
	assert.Equal(t, "/", p.Path())
}

func TestFilterIsCaseInsensitiveAndRestores(t *testing.T) {
	dir := t.TempDir()
	mkfiles(t, dir, []string{"Report.PDF", "notes.txt", "report-old.txt"}, []string{"Reports"})
	p := New(dir)
	full := p.Names()
	p.Move(2, 10)

	p.SetFilter("REPORT")
	assert.Equal(t, []string{"Reports", "report-old.txt", "Report.PDF"}, p.Names())
	assert.Equal(t, 0, p.Cursor())
	assert.Equal(t, "REPORT", p.Filter())

	p.SetFilter("nothing-matches")
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, "", p.Selected())

	p.SetFilter("")
	assert.Equal(t, full, p.Names())
	assert.Equal(t, 0, p.Cursor())
}

type failingFS struct {
	LocalFS
	deny string
}

func (f failingFS) ReadDir(dir string) ([]fs.DirEntry, error) {
	if dir == f.deny {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrPermission}
	}
	return f.LocalFS.ReadDir(dir)
}

func TestUnreadableDirectoryBecomesSentinel(t *testing.T) {
	root := t.TempDir()
	mkfiles(t, root, nil, []string{"locked"})
	locked := filepath.Join(root, "locked")
	p := NewWithFS(root, failingFS{deny: locked})

	require.True(t, p.Enter())

	assert.True(t, p.Denied())
	assert.Equal(t, []string{PermissionDenied}, p.Names())
	assert.Equal(t, PermissionDenied, p.Selected())
	_, ok := p.Target()
	assert.False(t, ok, "the sentinel is never an operation target")
	assert.False(t, p.Enter(), "the sentinel cannot be entered")

	require.True(t, p.Up())
	assert.False(t, p.Denied())
	assert.Equal(t, []string{"locked"}, p.Names())
}

func TestMissingDirectoryBecomesSentinel(t *testing.T) {
	p := New(filepath.Join(t.TempDir(), "gone"))
	assert.True(t, p.Denied())
	assert.Equal(t, []string{PermissionDenied}, p.Names())
}

func TestRelistClampsCursorWhenEntriesVanish(t *testing.T) {
	dir := t.TempDir()
	mkfiles(t, dir, []string{"a", "b", "c"}, nil)
	p := New(dir)
	p.Move(2, 10)

	require.NoError(t, os.Remove(filepath.Join(dir, "c")))
	p.Relist()

	assert.Equal(t, 1, p.Cursor())
	assert.Equal(t, "b", p.Selected())
}

func TestSelectByName(t *testing.T) {
	dir := t.TempDir()
	mkfiles(t, dir, []string{"a", "b", "c"}, nil)
	p := New(dir)

	assert.True(t, p.Select("c", 2))
	assert.Equal(t, 2, p.Cursor())
	assert.Equal(t, 1, p.Scroll())
	assert.False(t, p.Select("missing", 2))
}

func TestCursorStaysValidUnderRandomOperations(t *testing.T) {
	root := t.TempDir()
	mkfiles(t, root,
		[]string{"one.txt", "Two.txt", "three.md", "d1/x.txt", "d1/y.txt", "d2/deep/z"},
		[]string{"d1", "d2/deep", "empty"})
	p := NewWithFS(root, failingFS{deny: filepath.Join(root, "empty", "nope")})
	rng := rand.New(rand.NewSource(42))
	filters := []string{"", "t", "X", "d", "zz"}

	for i := 0; i < 2000; i++ {
		switch rng.Intn(5) {
		case 0:
			p.Move(rng.Intn(7)-3, 1+rng.Intn(6))
		case 1:
			p.Enter()
		case 2:
			p.Up()
			if !strings.HasPrefix(p.Path(), root) {
				p.Chdir(root)
			}
		case 3:
			p.SetFilter(filters[rng.Intn(len(filters))])
		case 4:
			p.Relist()
		}
		if p.Len() == 0 {
			require.Equal(t, 0, p.Cursor())
			require.Equal(t, "", p.Selected())
			continue
		}
		require.GreaterOrEqual(t, p.Cursor(), 0)
		require.Less(t, p.Cursor(), p.Len())
		require.LessOrEqual(t, p.Scroll(), p.Cursor())
	}
}

func TestAbsolutePath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	p := New(".")
	assert.Equal(t, wd, p.Path())
}
