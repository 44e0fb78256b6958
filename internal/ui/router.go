package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// action is what a key press means in the current mode.
type action int

const (
	actNone action = iota
	actUp
	actDown
	actLeave
	actEnterDir
	actOpen
	actSwitchPane
	actToggleRight
	actCopy
	actCut
	actPaste
	actDelete
	actRename
	actNewFile
	actExtractZip
	actExtractTarGz
	actExtractTarXz
	actPreview
	actMounts
	actQuit
	actCancelTransfer
	actBusy

	actSearchStart
	actSearchAppend
	actSearchBackspace
	actSearchCancel
	actSearchAccept

	actConfirm
	actDecline
	actSubmit
	actAbort
	actEdit

	actClose
	actScroll
)

type binding struct {
	keys key.Binding
	act  action
}

// refusedWhileBusy are the actions that change the listing a transfer may be
// writing into.
var refusedWhileBusy = map[action]bool{
	actDelete:       true,
	actRename:       true,
	actNewFile:      true,
	actExtractZip:   true,
	actExtractTarGz: true,
	actExtractTarXz: true,
}

func (k keyMap) normalTable() []binding {
	return []binding{
		{k.up, actUp},
		{k.down, actDown},
		{k.left, actLeave},
		{k.right, actEnterDir},
		{k.enter, actOpen},
		{k.tab, actSwitchPane},
		{k.toggleRight, actToggleRight},
		{k.copy, actCopy},
		{k.cut, actCut},
		{k.paste, actPaste},
		{k.delete, actDelete},
		{k.rename, actRename},
		{k.newFile, actNewFile},
		{k.extractZip, actExtractZip},
		{k.extractGz, actExtractTarGz},
		{k.extractXz, actExtractTarXz},
		{k.search, actSearchStart},
		{k.preview, actPreview},
		{k.mounts, actMounts},
		{k.quit, actQuit},
		{k.cancel, actCancelTransfer},
	}
}

// route maps a key in mode md to an action. It has no side effects.
func route(md mode, msg tea.KeyMsg, keys keyMap) action {
	switch md {
	case searchMode:
		return routeSearch(msg, keys)
	case confirmMode:
		if key.Matches(msg, keys.confirm) {
			return actConfirm
		}
		return actDecline
	case inputMode:
		switch {
		case key.Matches(msg, keys.enter):
			return actSubmit
		case key.Matches(msg, keys.cancel), msg.Type == tea.KeyCtrlC:
			return actAbort
		}
		return actEdit
	case previewMode:
		switch {
		case key.Matches(msg, keys.cancel, keys.preview), msg.String() == "q":
			return actClose
		case key.Matches(msg, keys.up, keys.down, keys.pageUp, keys.pageDown):
			return actScroll
		}
		return actNone
	case mountsMode:
		return actClose
	}

	act := actNone
	for _, b := range keys.normalTable() {
		if key.Matches(msg, b.keys) {
			act = b.act
			break
		}
	}
	if md == transferMode && refusedWhileBusy[act] {
		return actBusy
	}
	return act
}

func routeSearch(msg tea.KeyMsg, keys keyMap) action {
	switch {
	case key.Matches(msg, keys.cancel):
		return actSearchCancel
	case key.Matches(msg, keys.enter):
		return actSearchAccept
	case key.Matches(msg, keys.backspace):
		return actSearchBackspace
	case msg.Type == tea.KeyCtrlC:
		return actQuit
	}
	if searchText(msg) != "" {
		return actSearchAppend
	}
	return actNone
}

// searchText returns the printable ASCII typed by msg, or "" if any rune is
// outside 0x20-0x7E.
func searchText(msg tea.KeyMsg) string {
	var runes []rune
	switch msg.Type {
	case tea.KeyRunes:
		runes = msg.Runes
	case tea.KeySpace:
		runes = []rune{' '}
	default:
		return ""
	}
	if msg.Alt {
		return ""
	}
	for _, r := range runes {
		if r < 0x20 || r > 0x7e {
			return ""
		}
	}
	return string(runes)
}
