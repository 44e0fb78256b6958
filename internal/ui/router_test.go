package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runes(s string) tea.KeyMsg       { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }
func keyOf(kt tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: kt} }

func TestRouteNormal(t *testing.T) {
	keys := newKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want action
	}{
		{keyOf(tea.KeyUp), actUp},
		{keyOf(tea.KeyDown), actDown},
		{keyOf(tea.KeyLeft), actLeave},
		{keyOf(tea.KeyRight), actEnterDir},
		{keyOf(tea.KeyEnter), actOpen},
		{keyOf(tea.KeyTab), actSwitchPane},
		{keyOf(tea.KeyF3), actPreview},
		{keyOf(tea.KeyF4), actToggleRight},
		{keyOf(tea.KeyF5), actDelete},
		{keyOf(tea.KeyF6), actCopy},
		{keyOf(tea.KeyF7), actCut},
		{keyOf(tea.KeyF8), actPaste},
		{keyOf(tea.KeyF10), actQuit},
		{keyOf(tea.KeyF11), actMounts},
		{keyOf(tea.KeyCtrlC), actQuit},
		{keyOf(tea.KeyEsc), actCancelTransfer},
		{runes("q"), actQuit},
		{runes("r"), actRename},
		{runes("R"), actRename},
		{runes("n"), actNewFile},
		{runes("z"), actExtractZip},
		{runes("g"), actExtractTarGz},
		{runes("x"), actExtractTarXz},
		{runes("/"), actSearchStart},
		{runes("k"), actNone},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, route(normalMode, tt.msg, keys))
		})
	}
}

func TestRouteTransferRefusesListingChanges(t *testing.T) {
	keys := newKeyMap()
	for _, msg := range []tea.KeyMsg{keyOf(tea.KeyF5), runes("r"), runes("n"), runes("z"), runes("g"), runes("x")} {
		assert.Equal(t, actBusy, route(transferMode, msg, keys), msg.String())
	}
	assert.Equal(t, actDown, route(transferMode, keyOf(tea.KeyDown), keys))
	assert.Equal(t, actSwitchPane, route(transferMode, keyOf(tea.KeyTab), keys))
	assert.Equal(t, actPaste, route(transferMode, keyOf(tea.KeyF8), keys))
	assert.Equal(t, actCopy, route(transferMode, keyOf(tea.KeyF6), keys))
	assert.Equal(t, actCancelTransfer, route(transferMode, keyOf(tea.KeyEsc), keys))
	assert.Equal(t, actQuit, route(transferMode, runes("q"), keys))
	assert.Equal(t, actSearchStart, route(transferMode, runes("/"), keys))
}

func TestRouteSearch(t *testing.T) {
	keys := newKeyMap()
	assert.Equal(t, actSearchCancel, route(searchMode, keyOf(tea.KeyEsc), keys))
	assert.Equal(t, actSearchAccept, route(searchMode, keyOf(tea.KeyEnter), keys))
	assert.Equal(t, actSearchBackspace, route(searchMode, keyOf(tea.KeyBackspace), keys))
	assert.Equal(t, actQuit, route(searchMode, keyOf(tea.KeyCtrlC), keys))
	// letters that are bindings in normal mode are text here
	assert.Equal(t, actSearchAppend, route(searchMode, runes("q"), keys))
	assert.Equal(t, actSearchAppend, route(searchMode, runes("~"), keys))
	assert.Equal(t, actSearchAppend, route(searchMode, keyOf(tea.KeySpace), keys))
	assert.Equal(t, actNone, route(searchMode, runes("é"), keys))
	assert.Equal(t, actNone, route(searchMode, keyOf(tea.KeyF6), keys))
}

func TestSearchText(t *testing.T) {
	assert.Equal(t, "ab", searchText(runes("ab")))
	assert.Equal(t, " ", searchText(keyOf(tea.KeySpace)))
	assert.Equal(t, "", searchText(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a"), Alt: true}))
	assert.Equal(t, "", searchText(runes("aé")))
	assert.Equal(t, "", searchText(keyOf(tea.KeyEnter)))
}

func TestRouteModal(t *testing.T) {
	keys := newKeyMap()

	assert.Equal(t, actConfirm, route(confirmMode, runes("y"), keys))
	assert.Equal(t, actConfirm, route(confirmMode, runes("Y"), keys))
	assert.Equal(t, actDecline, route(confirmMode, runes("n"), keys))
	assert.Equal(t, actDecline, route(confirmMode, keyOf(tea.KeyEsc), keys))

	assert.Equal(t, actSubmit, route(inputMode, keyOf(tea.KeyEnter), keys))
	assert.Equal(t, actAbort, route(inputMode, keyOf(tea.KeyEsc), keys))
	assert.Equal(t, actEdit, route(inputMode, runes("q"), keys))
	assert.Equal(t, actEdit, route(inputMode, keyOf(tea.KeyBackspace), keys))

	assert.Equal(t, actClose, route(previewMode, keyOf(tea.KeyEsc), keys))
	assert.Equal(t, actClose, route(previewMode, keyOf(tea.KeyF3), keys))
	assert.Equal(t, actClose, route(previewMode, runes("q"), keys))
	assert.Equal(t, actScroll, route(previewMode, keyOf(tea.KeyPgDown), keys))
	assert.Equal(t, actNone, route(previewMode, runes("z"), keys))

	assert.Equal(t, actClose, route(mountsMode, runes("z"), keys))
}
