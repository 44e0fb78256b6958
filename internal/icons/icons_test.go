package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attrs
		want  string
	}{
		{"src", Attrs{Dir: true}, Folder},
		{"src", Attrs{Dir: true, Open: true}, FolderOpen},
		{".git", Attrs{Dir: true}, Folder},
		{"[Permission Denied]", Attrs{Denied: true}, Lock},
		{"link.go", Attrs{Link: true}, Symlink},
		{".bashrc", Attrs{}, Hidden},
		{"run", Attrs{Executable: true}, Executable},
		{"main.go", Attrs{}, ""},
		{"MAIN.GO", Attrs{}, ""},
		{"Makefile", Attrs{}, ""},
		{"rules.mk", Attrs{}, ""},
		{"Dockerfile", Attrs{}, ""},
		{"photo.JPG", Attrs{}, ""},
		{"backup.tar.xz", Attrs{}, ""},
		{"CMakeLists.cmake", Attrs{}, "\U000f0537"},
		{"unknown.zzz", Attrs{}, Default},
		{"noext", Attrs{}, Default},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, For(tt.name, tt.attrs))
		})
	}
}

func TestForIsTotal(t *testing.T) {
	for _, name := range []string{"", ".", "a.", "x.py", "weird name with spaces"} {
		assert.NotEmpty(t, For(name, Attrs{}))
	}
}
