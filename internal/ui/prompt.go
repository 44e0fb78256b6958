package ui

import (
	"path/filepath"

	"zeta/internal/archive"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptDelete
	promptExtract
	promptRename
	promptNewFile
)

// prompt is the pending modal question and the target it applies to.
type prompt struct {
	kind    promptKind
	dir     string
	name    string
	isDir   bool
	archive archive.Kind
}

func (p prompt) path() string { return filepath.Join(p.dir, p.name) }

func (p prompt) title() string {
	switch p.kind {
	case promptDelete:
		return " Confirm Delete "
	case promptExtract:
		return " Extract " + p.archive.String() + " Archive "
	case promptRename:
		return " Rename File "
	case promptNewFile:
		return " Create New File "
	}
	return ""
}

// lines are the body of a confirmation prompt.
func (p prompt) lines() []string {
	switch p.kind {
	case promptDelete:
		return []string{
			"Delete '" + p.name + "'?",
			"This action cannot be undone!",
			"Press Y to confirm, any key to cancel",
		}
	case promptExtract:
		return []string{
			"File: " + p.name,
			"To: " + archive.TargetName(p.name),
			"Press Y to confirm, any key to cancel",
		}
	}
	return nil
}

// label introduces the text field of an input prompt.
func (p prompt) label() string {
	if p.kind == promptRename {
		return "New name: "
	}
	return "Enter new file name: "
}
