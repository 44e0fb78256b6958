package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

type mode int

const (
	normalMode mode = iota
	searchMode
	// transferMode is normalMode while a transfer runs. It is derived from
	// the session and never stored in Model.mode.
	transferMode
	confirmMode
	inputMode
	previewMode
	mountsMode
)

func (m mode) String() string {
	switch m {
	case normalMode:
		return "normal"
	case searchMode:
		return "search"
	case transferMode:
		return "transfer"
	case confirmMode:
		return "confirm"
	case inputMode:
		return "input"
	case previewMode:
		return "preview"
	case mountsMode:
		return "mounts"
	}
	return "unknown"
}

type keyMap struct {
	up          key.Binding
	down        key.Binding
	left        key.Binding
	right       key.Binding
	enter       key.Binding
	tab         key.Binding
	toggleRight key.Binding
	copy        key.Binding
	cut         key.Binding
	paste       key.Binding
	delete      key.Binding
	rename      key.Binding
	newFile     key.Binding
	extractZip  key.Binding
	extractGz   key.Binding
	extractXz   key.Binding
	search      key.Binding
	preview     key.Binding
	mounts      key.Binding
	quit        key.Binding
	cancel      key.Binding
	backspace   key.Binding
	confirm     key.Binding
	pageUp      key.Binding
	pageDown    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:          key.NewBinding(key.WithKeys("up")),
		down:        key.NewBinding(key.WithKeys("down")),
		left:        key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "up dir")),
		right:       key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "enter dir")),
		enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		tab:         key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch")),
		toggleRight: key.NewBinding(key.WithKeys("f4"), key.WithHelp("F4", "panel")),
		copy:        key.NewBinding(key.WithKeys("f6"), key.WithHelp("F6", "copy")),
		cut:         key.NewBinding(key.WithKeys("f7"), key.WithHelp("F7", "cut")),
		paste:       key.NewBinding(key.WithKeys("f8"), key.WithHelp("F8", "paste")),
		delete:      key.NewBinding(key.WithKeys("f5"), key.WithHelp("F5", "delete")),
		rename:      key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "rename")),
		newFile:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		extractZip:  key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "unzip")),
		extractGz:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "untar.gz")),
		extractXz:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "untar.xz")),
		search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		preview:     key.NewBinding(key.WithKeys("f3"), key.WithHelp("F3", "view")),
		mounts:      key.NewBinding(key.WithKeys("f11"), key.WithHelp("F11", "mounts")),
		quit:        key.NewBinding(key.WithKeys("f10", "q", "ctrl+c"), key.WithHelp("F10", "quit")),
		cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		backspace:   key.NewBinding(key.WithKeys("backspace")),
		confirm:     key.NewBinding(key.WithKeys("y", "Y")),
		pageUp:      key.NewBinding(key.WithKeys("pgup")),
		pageDown:    key.NewBinding(key.WithKeys("pgdown")),
	}
}

func helpString(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}

// footerBindings are listed in the function-key bar.
func (k keyMap) footerBindings() []key.Binding {
	return []key.Binding{k.preview, k.toggleRight, k.delete, k.copy, k.cut, k.paste, k.mounts, k.quit}
}
