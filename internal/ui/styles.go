package ui

import (
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"zeta/internal/theme"
)

const (
	appTitle        = "[ Zeta Manager ]"
	previewLines    = 200
	maxPreviewBytes = 2 * 1024 * 1024
)

var (
	chromaStyle     = styles.Register(styles.Fallback)
	chromaFormatter = formatters.TTY256
)

// palette holds the styles for every screen element, built from a theme.
type palette struct {
	header         lipgloss.Style
	title          lipgloss.Style
	activePath     lipgloss.Style
	inactivePath   lipgloss.Style
	activeFrame    lipgloss.Style
	inactiveFrame  lipgloss.Style
	file           lipgloss.Style
	dir            lipgloss.Style
	selectedFile   lipgloss.Style
	selectedDir    lipgloss.Style
	activeFooter   lipgloss.Style
	inactiveFooter lipgloss.Style
	infoText       lipgloss.Style
	errText        lipgloss.Style
	progress       lipgloss.Style
	statusBar      lipgloss.Style
	fBar           lipgloss.Style
	popup          lipgloss.Style
}

func newPalette(t *theme.Theme) palette {
	frame := func(p theme.Pair) lipgloss.Style {
		return lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.Colors(p).FG))
	}
	return palette{
		header:         t.Pair(theme.Header),
		title:          t.Pair(theme.ActiveFrame).Bold(true),
		activePath:     t.Pair(theme.ActivePathBar),
		inactivePath:   t.Pair(theme.InactiveHeader),
		activeFrame:    frame(theme.ActiveFrame),
		inactiveFrame:  frame(theme.InactiveFrame),
		file:           t.Pair(theme.File),
		dir:            t.Pair(theme.Dir),
		selectedFile:   t.Pair(theme.SelectedFile),
		selectedDir:    t.Pair(theme.SelectedDir),
		activeFooter:   t.Pair(theme.ActiveFooter).Bold(true),
		inactiveFooter: t.Pair(theme.InactiveFooter).Bold(true),
		infoText:       t.Pair(theme.Info),
		errText:        t.Pair(theme.Error).Bold(true),
		progress:       t.Pair(theme.Progress).Bold(true),
		statusBar:      t.Pair(theme.ActiveFrame).Bold(true),
		fBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFF00")).
			Background(lipgloss.Color("#000000")).
			Bold(true),
		popup: frame(theme.ActiveFrame).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
	}
}
