// Package ui is the interactive dual-pane browser: a bubbletea model owning
// two panes, a clipboard, at most one background transfer and the modal
// prompts layered over them.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"zeta/internal/logging"
	"zeta/internal/opener"
	"zeta/internal/pane"
	"zeta/internal/theme"
	"zeta/internal/transfer"
)

const (
	left  = 0
	right = 1

	pollInterval = 100 * time.Millisecond
	joinTimeout  = time.Second
)

// tickMsg is one progress poll of transfer t.
type tickMsg struct{ t *transfer.Transfer }

// transferDoneMsg reports that the worker of t has finished.
type transferDoneMsg struct{ t *transfer.Transfer }

// cancelJoinedMsg reports the end of a bounded wait for a cancelled worker.
type cancelJoinedMsg struct {
	t      *transfer.Transfer
	joined bool
}

// DirChangedMsg tells the model that the contents of Dir changed on disk.
type DirChangedMsg struct{ Dir string }

type clipboard struct {
	path string
	kind transfer.Kind // Copy, or Move for a cut
}

func (c clipboard) empty() bool { return c.path == "" }

// Options configure a new Model.
type Options struct {
	LeftDir  string
	RightDir string
	Theme    *theme.Theme
	// Context is handed to transfers; cancelling it stops them.
	Context context.Context
	// Watch receives the pane directories whenever either changes.
	Watch func(dirs ...string) error
	// Open launches a file; it defaults to opener.Open.
	Open func(path string) error
}

type Model struct {
	panes       [2]*pane.Pane
	active      int
	rightHidden bool
	clipboard   clipboard
	transfer    *transfer.Transfer
	status      status
	mode        mode
	prompt      prompt
	input       textinput.Model
	preview     viewport.Model
	previewName string
	mounts      []string
	progress    progress.Model
	keys        keyMap
	palette     palette
	layout      layout
	ctx         context.Context
	watch       func(dirs ...string) error
	open        func(path string) error
	watched     [2]string
	query       string
	quitting    bool
}

func New(opts Options) Model {
	if opts.Theme == nil {
		opts.Theme = theme.Default()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Open == nil {
		opts.Open = opener.Open
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 255

	prog := progress.New(progress.WithSolidFill(opts.Theme.Colors(theme.Progress).FG), progress.WithoutPercentage())
	prog.Full = '='
	prog.Empty = ' '

	m := Model{
		panes:    [2]*pane.Pane{pane.New(opts.LeftDir), pane.New(opts.RightDir)},
		active:   left,
		mode:     normalMode,
		input:    ti,
		preview:  viewport.New(0, 0),
		progress: prog,
		keys:     newKeyMap(),
		palette:  newPalette(opts.Theme),
		layout:   computeLayout(80, 24, false),
		ctx:      opts.Context,
		watch:    opts.Watch,
		open:     opts.Open,
	}
	m.syncWatch()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// currentMode is the stored mode with the transfer overlay applied.
func (m Model) currentMode() mode {
	if m.mode == normalMode && m.transferActive() {
		return transferMode
	}
	return m.mode
}

func (m Model) transferActive() bool {
	return m.transfer != nil && !m.transfer.Snapshot().Finished
}

func (m *Model) activePane() *pane.Pane { return m.panes[m.active] }

// syncWatch points the directory watcher at the visible pane directories.
func (m *Model) syncWatch() {
	if m.watch == nil {
		return
	}
	dirs := [2]string{m.panes[left].Path(), m.panes[right].Path()}
	if dirs == m.watched {
		return
	}
	m.watched = dirs
	// unreadable directories cannot be watched; they are relisted on entry
	if err := m.watch(dirs[0], dirs[1]); err != nil {
		logging.L().Debug().Err(err).Msg("watch")
	}
}

func tick(t *transfer.Transfer) tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return tickMsg{t: t}
	})
}

func waitTransfer(t *transfer.Transfer) tea.Cmd {
	return func() tea.Msg {
		<-t.Done()
		return transferDoneMsg{t: t}
	}
}

func joinCancelled(t *transfer.Transfer) tea.Cmd {
	return func() tea.Msg {
		return cancelJoinedMsg{t: t, joined: t.Wait(joinTimeout)}
	}
}
