package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"zeta/internal/archive"
	"zeta/internal/logging"
	"zeta/internal/transfer"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, tea.ClearScreen
	case tickMsg:
		if msg.t != nil && msg.t == m.transfer && m.transferActive() {
			return m, tick(msg.t)
		}
		return m, nil
	case transferDoneMsg:
		if m.transfer == nil || msg.t != m.transfer {
			return m, nil
		}
		m.status.show(m.finishTransfer())
		return m, nil
	case cancelJoinedMsg:
		if !msg.joined && msg.t == m.transfer {
			m.status.show(fail("Transfer is still stopping"))
		}
		return m, nil
	case DirChangedMsg:
		m.dirChanged(msg.Dir)
		return m, nil
	case tea.KeyMsg:
		m.status.tick()
		cmd := m.handleKey(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.layout = computeLayout(width, height, m.rightHidden)
	for _, p := range m.panes {
		p.ResetScroll()
	}
	m.progress.Width = width / 3
	m.resizePreview()
	logging.L().Debug().Int("width", width).Int("height", height).Msg("resize")
}

// handleKey performs the action a key means in the current mode.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	act := route(m.currentMode(), msg, m.keys)
	var (
		o   outcome
		cmd tea.Cmd
	)
	switch act {
	case actUp:
		m.activePane().Move(-1, m.layout.listHeight)
	case actDown:
		m.activePane().Move(1, m.layout.listHeight)
	case actLeave:
		m.leaveDir()
	case actEnterDir:
		m.enterDir()
	case actOpen:
		o = m.openSelected()
	case actSwitchPane:
		m.switchPane()
	case actToggleRight:
		o = m.toggleRight()
	case actCopy:
		o = m.clip(transfer.Copy)
	case actCut:
		o = m.clip(transfer.Move)
	case actPaste:
		o, cmd = m.paste()
	case actDelete:
		o = m.askDelete()
	case actRename:
		o, cmd = m.askRename()
	case actNewFile:
		o, cmd = m.askNewFile()
	case actExtractZip:
		o = m.askExtract(archive.Zip)
	case actExtractTarGz:
		o = m.askExtract(archive.TarGz)
	case actExtractTarXz:
		o = m.askExtract(archive.TarXz)
	case actPreview:
		o = m.openPreview()
	case actMounts:
		m.showMounts()
	case actQuit:
		cmd = m.quit()
	case actCancelTransfer:
		cmd = m.cancelTransfer()
	case actBusy:
		o = fail("Transfer in progress")

	// the query replaces the pane filter from the first edit on, so a kept
	// filter survives until the user types
	case actSearchStart:
		m.mode = searchMode
		m.query = ""
	case actSearchAppend:
		m.query += searchText(msg)
		m.activePane().SetFilter(m.query)
	case actSearchBackspace:
		if m.query != "" {
			m.query = m.query[:len(m.query)-1]
		}
		m.activePane().SetFilter(m.query)
	case actSearchCancel:
		m.query = ""
		m.activePane().SetFilter("")
		m.mode = normalMode
	case actSearchAccept:
		m.mode = normalMode

	case actConfirm:
		m.mode = normalMode
		o = m.confirmed()
	case actDecline:
		m.mode = normalMode
		o = m.declined()
	case actSubmit:
		m.mode = normalMode
		m.input.Blur()
		o = m.submitted(m.input.Value())
	case actAbort:
		m.mode = normalMode
		m.input.Blur()
		m.prompt = prompt{}
	case actEdit:
		m.input, cmd = m.input.Update(msg)

	case actClose:
		m.mode = normalMode
		m.mounts = nil
	case actScroll:
		m.preview, cmd = m.preview.Update(msg)
	}
	m.status.show(o)
	return cmd
}
