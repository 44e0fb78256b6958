package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"zeta/internal/archive"
	"zeta/internal/diskspace"
	"zeta/internal/fsinfo"
	"zeta/internal/logging"
	"zeta/internal/transfer"
)

// relist reloads pane i and keeps the cursor on the same name when it still
// exists.
func (m *Model) relist(i int) {
	p := m.panes[i]
	name := p.Selected()
	p.Relist()
	if name != "" {
		p.Select(name, m.layout.listHeight)
	}
}

func (m *Model) relistAll() {
	m.relist(left)
	m.relist(right)
}

func (m *Model) dirChanged(dir string) {
	for i, p := range m.panes {
		if p.Path() == dir {
			m.relist(i)
		}
	}
}

func (m *Model) switchPane() {
	if m.rightHidden {
		return
	}
	m.active = 1 - m.active
}

func (m *Model) toggleRight() outcome {
	m.rightHidden = !m.rightHidden
	if m.rightHidden && m.active == right {
		m.active = left
	}
	m.layout = computeLayout(m.layout.width, m.layout.height, m.rightHidden)
	if m.rightHidden {
		return succeed("Right panel hidden")
	}
	return succeed("Right panel shown")
}

func (m *Model) enterDir() {
	if m.activePane().Enter() {
		logging.L().Debug().Str("dir", m.activePane().Path()).Msg("entered directory")
		m.syncWatch()
	}
}

func (m *Model) leaveDir() {
	if m.activePane().Up() {
		logging.L().Debug().Str("dir", m.activePane().Path()).Msg("left directory")
		m.syncWatch()
	}
}

// openSelected enters a directory or hands a file to the opener.
func (m *Model) openSelected() outcome {
	p := m.activePane()
	e, ok := p.SelectedEntry()
	target, isTarget := p.Target()
	if !ok || !isTarget {
		return silent()
	}
	if e.IsDir {
		m.enterDir()
		return silent()
	}
	if err := m.open(target); err != nil {
		logging.L().Error().Err(err).Str("path", target).Msg("open failed")
		return fail(fmt.Sprintf("Error executing: %v", err))
	}
	return silent()
}

func (m *Model) clip(kind transfer.Kind) outcome {
	target, ok := m.activePane().Target()
	if !ok {
		return fail("No file selected")
	}
	m.clipboard = clipboard{path: target, kind: kind}
	name := filepath.Base(target)
	if kind == transfer.Move {
		return succeed("Cut: " + name)
	}
	return succeed("Copied: " + name)
}

// paste starts a transfer of the clipboard into the active pane.
func (m *Model) paste() (outcome, tea.Cmd) {
	if m.transferActive() {
		return fail(fmt.Sprintf("Error: %v", transfer.ErrBusy)), nil
	}
	if m.transfer != nil {
		// finished, but its done message is still queued behind this key
		m.status.show(m.finishTransfer())
	}
	if m.clipboard.empty() {
		return fail("Clipboard empty"), nil
	}
	dest := m.activePane()
	if dest.Denied() {
		return fail("Error: destination is not readable"), nil
	}
	t, err := transfer.Start(m.ctx, transfer.Request{
		Kind:    m.clipboard.kind,
		Source:  m.clipboard.path,
		DestDir: dest.Path(),
	})
	if err != nil {
		logging.L().Warn().Err(err).Str("src", m.clipboard.path).Msg("transfer rejected")
		return fail(describeTransferError(err)), nil
	}
	m.transfer = t
	return silent(), tea.Batch(tick(t), waitTransfer(t))
}

func describeTransferError(err error) string {
	var space *diskspace.InsufficientSpaceError
	switch {
	case errors.Is(err, transfer.ErrDirectory):
		return "Folder copy not supported"
	case errors.Is(err, transfer.ErrNotRegular):
		return "Error: only regular files can be copied"
	case errors.Is(err, transfer.ErrSameFile):
		return "Error: source and destination are the same file"
	case errors.As(err, &space):
		return "Error: " + space.Error()
	}
	return fmt.Sprintf("Error: %v", err)
}

// cancelTransfer asks the worker to stop and joins it in the background.
func (m *Model) cancelTransfer() tea.Cmd {
	if !m.transferActive() {
		return nil
	}
	m.transfer.Cancel()
	return joinCancelled(m.transfer)
}

// finishTransfer clears the finished transfer and reports how it ended.
func (m *Model) finishTransfer() outcome {
	snap := m.transfer.Snapshot()
	m.transfer = nil
	m.relistAll()
	switch {
	case snap.Cancelled:
		return succeed("Operation cancelled")
	case snap.Err != nil:
		return fail(fmt.Sprintf("Error during %s: %v", strings.ToLower(snap.Kind.String()), snap.Err))
	}
	return succeed(fmt.Sprintf("%s done: %s", snap.Kind, snap.Name))
}

func (m *Model) askDelete() outcome {
	p := m.activePane()
	e, _ := p.SelectedEntry()
	if _, ok := p.Target(); !ok {
		return fail("No file selected")
	}
	m.prompt = prompt{kind: promptDelete, dir: p.Path(), name: e.Name, isDir: e.IsDir}
	m.mode = confirmMode
	return silent()
}

func (m *Model) askExtract(kind archive.Kind) outcome {
	p := m.activePane()
	e, _ := p.SelectedEntry()
	if _, ok := p.Target(); !ok || e.IsDir || archive.KindFor(e.Name) != kind {
		return fail(kind.Hint())
	}
	m.prompt = prompt{kind: promptExtract, dir: p.Path(), name: e.Name, archive: kind}
	m.mode = confirmMode
	return silent()
}

func (m *Model) askRename() (outcome, tea.Cmd) {
	p := m.activePane()
	if _, ok := p.Target(); !ok {
		return fail("Invalid selection"), nil
	}
	m.prompt = prompt{kind: promptRename, dir: p.Path(), name: p.Selected()}
	return silent(), m.startInput(m.prompt.name)
}

func (m *Model) askNewFile() (outcome, tea.Cmd) {
	m.prompt = prompt{kind: promptNewFile, dir: m.activePane().Path()}
	return silent(), m.startInput("")
}

func (m *Model) startInput(value string) tea.Cmd {
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Width = 40
	m.mode = inputMode
	return m.input.Focus()
}

// confirmed runs the operation of an accepted confirmation prompt.
func (m *Model) confirmed() outcome {
	pr := m.prompt
	m.prompt = prompt{}
	switch pr.kind {
	case promptDelete:
		return m.deletePath(pr)
	case promptExtract:
		ok, msg := archive.Extract(pr.archive, pr.dir, pr.name)
		m.relistAll()
		return outcome{ok: ok, msg: msg}
	}
	return silent()
}

func (m *Model) declined() outcome {
	pr := m.prompt
	m.prompt = prompt{}
	if pr.kind == promptExtract {
		return succeed("Cancelled")
	}
	return silent()
}

func (m *Model) deletePath(pr prompt) outcome {
	var err error
	if pr.isDir {
		err = os.RemoveAll(pr.path())
	} else {
		err = os.Remove(pr.path())
	}
	if err != nil {
		logging.L().Error().Err(err).Str("path", pr.path()).Msg("delete failed")
		return fail(fmt.Sprintf("Error deleting: %v", err))
	}
	logging.L().Info().Str("path", pr.path()).Msg("deleted")
	if m.clipboard.path == pr.path() {
		m.clipboard = clipboard{}
	}
	m.relistAll()
	return succeed(fmt.Sprintf("Deleted '%s'", pr.name))
}

// submitted runs an input prompt with the entered text.
func (m *Model) submitted(value string) outcome {
	pr := m.prompt
	m.prompt = prompt{}
	value = strings.TrimSpace(value)
	if value == "" || (pr.kind == promptRename && value == pr.name) {
		return silent()
	}
	if strings.ContainsRune(value, filepath.Separator) || value == "." || value == ".." {
		return fail(fmt.Sprintf("Error: invalid name '%s'", value))
	}
	target := filepath.Join(pr.dir, value)
	switch pr.kind {
	case promptRename:
		return m.rename(pr, value, target)
	case promptNewFile:
		return m.create(value, target)
	}
	return silent()
}

func (m *Model) rename(pr prompt, value, target string) outcome {
	if _, err := os.Lstat(target); err == nil {
		return fail(fmt.Sprintf("Error: '%s' already exists", value))
	}
	if err := os.Rename(pr.path(), target); err != nil {
		logging.L().Error().Err(err).Str("path", pr.path()).Msg("rename failed")
		return fail(fmt.Sprintf("Error: %v", unwrapPathError(err)))
	}
	if m.clipboard.path == pr.path() {
		m.clipboard.path = target
	}
	m.relistAll()
	m.activePane().Select(value, m.layout.listHeight)
	return succeed(fmt.Sprintf("Renamed to '%s'", value))
}

func (m *Model) create(value, target string) outcome {
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		logging.L().Error().Err(err).Str("path", target).Msg("create failed")
		return fail(fmt.Sprintf("Error: %v", unwrapPathError(err)))
	}
	if err := f.Close(); err != nil {
		return fail(fmt.Sprintf("Error: %v", err))
	}
	m.relistAll()
	m.activePane().Select(value, m.layout.listHeight)
	return succeed(fmt.Sprintf("Created '%s'", value))
}

func unwrapPathError(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	var le *os.LinkError
	if errors.As(err, &le) {
		return le.Err
	}
	return err
}

func (m *Model) showMounts() {
	m.mounts = fsinfo.Mounts(fsinfo.MountBases)
	m.mode = mountsMode
}

// quit stops a running transfer, waiting a bounded time for it to finish.
func (m *Model) quit() tea.Cmd {
	if m.transferActive() {
		m.transfer.Cancel()
		if !m.transfer.Wait(joinTimeout) {
			logging.L().Warn().Msg("transfer still running at exit")
		}
	}
	m.quitting = true
	return tea.Quit
}
