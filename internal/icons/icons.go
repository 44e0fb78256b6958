// Package icons picks a Nerd Font glyph for a directory entry.
package icons

import (
	"path/filepath"
	"strings"
)

// Attrs are the entry properties that override the name-based lookup, in
// order of precedence.
type Attrs struct {
	Dir        bool
	Open       bool // directory under the cursor
	Denied     bool
	Link       bool
	Hidden     bool
	Executable bool
}

const (
	FolderOpen = "\uf07c"
	Folder     = "\uf07b"
	Lock       = "\uf023"
	Symlink    = "\uf481"
	Hidden     = "\uf120"
	Executable = "\uf427"
	Default    = "\uf0f6"
)

var byName = map[string]string{
	"makefile":    "\ue779",
	"gnumakefile": "\ue779",
	"dockerfile":  "\uf308",
}

var byExt = map[string]string{
	".py":     "\ue606",
	".c":      "\ueac4",
	".h":      "\ueac4",
	".cpp":    "\ue61d",
	".hpp":    "\ue61d",
	".cc":     "\ue61d",
	".cxx":    "\ue61d",
	".cs":     "\ue61d",
	".rs":     "\ue798",
	".go":     "\ue627",
	".java":   "\ue738",
	".kt":     "\ue634",
	".swift":  "\ue755",
	".php":    "\ue608",
	".rb":     "\ue791",
	".lua":    "\ue620",
	".js":     "\ue781",
	".mjs":    "\ue781",
	".ts":     "\ue628",
	".tsx":    "\ue7ba",
	".html":   "\ue736",
	".css":    "\ue749",
	".scss":   "\ue74b",
	".less":   "\ue758",
	".svelte": "\ue697",
	".vue":    "\ufd42",

	".sql":     "\uf1c0",
	".db":      "\uf1c0",
	".sqlite":  "\uf1c0",
	".sqlite3": "\uf1c0",
	".json":    "\ue60b",
	".yaml":    "\ue615",
	".yml":     "\ue615",
	".ini":     "\ue615",
	".cfg":     "\ue615",
	".toml":    "\ue6b2",
	".mk":      "\ue779",
	".cmake":   "\U000f0537",
	".asm":     "\ue637",
	".s":       "\ue637",
	".sh":      "\ue795",
	".bash":    "\ue795",
	".zsh":     "\ue795",
	".tf":      "\ue681",
	".patch":   "\uf418",
	".diff":    "\uf440",

	".md":   "\ue609",
	".txt":  "\uf0f6",
	".pdf":  "\ueaeb",
	".doc":  "\uf1c2",
	".docx": "\uf1c2",
	".ppt":  "\uf1c4",
	".pptx": "\uf1c4",
	".xls":  "\uf1c3",
	".xlsx": "\uf1c3",
	".xml":  "\ue7a7",
}

func init() {
	group := func(glyph string, exts ...string) {
		for _, ext := range exts {
			byExt[ext] = glyph
		}
	}
	group("\uf03e", ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp")
	group("\uf880", ".mp4", ".mkv", ".avi", ".mov", ".flv")
	group("\uf001", ".mp3", ".wav", ".flac", ".ogg")
	group("\uf487", ".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz")
	group("\uf031", ".ttf", ".otf", ".woff", ".woff2")
}

// For returns the glyph for an entry called name. It never returns "".
func For(name string, a Attrs) string {
	switch {
	case a.Dir && a.Open:
		return FolderOpen
	case a.Dir:
		return Folder
	case a.Denied:
		return Lock
	case a.Link:
		return Symlink
	case a.Hidden || strings.HasPrefix(name, "."):
		return Hidden
	case a.Executable:
		return Executable
	}
	lower := strings.ToLower(name)
	if g, ok := byName[lower]; ok {
		return g
	}
	if g, ok := byExt[filepath.Ext(lower)]; ok {
		return g
	}
	return Default
}
