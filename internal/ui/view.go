package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"zeta/internal/fsinfo"
	"zeta/internal/icons"
	"zeta/internal/pane"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	l := m.layout
	if l.tooSmall {
		return lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center,
			m.palette.errText.Render(fmt.Sprintf("Terminal too small (min %dx%d)", minWidth, minHeight)))
	}
	if m.mode == previewMode {
		return m.previewView()
	}

	header := m.palette.header.Width(l.width).Align(lipgloss.Center).Render(m.palette.title.Render(appTitle))
	panes := m.paneView(left)
	if !m.rightHidden {
		panes = lipgloss.JoinHorizontal(lipgloss.Top, panes, m.paneView(right))
	}
	switch m.mode {
	case confirmMode, inputMode, mountsMode:
		panes = lipgloss.Place(l.width, lipgloss.Height(panes), lipgloss.Center, lipgloss.Center, m.popupView())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		panes,
		m.progressView(),
		m.statusBarView(),
		m.messageView(),
		m.fBarView(),
	)
}

// paneView renders the path bar, the framed listing and the file count of
// pane i.
func (m Model) paneView(i int) string {
	p := m.panes[i]
	active := i == m.active
	inner := m.layout.innerWidth(i)

	bar := truncateLeft(p.Path(), m.layout.paneWidths[i])
	if active && m.mode == searchMode {
		bar = truncateLeft("[ /: "+m.query, m.layout.paneWidths[i])
	}
	pathStyle, frame, footer := m.palette.inactivePath, m.palette.inactiveFrame, m.palette.inactiveFooter
	if active {
		pathStyle, frame, footer = m.palette.activePath, m.palette.activeFrame, m.palette.activeFooter
	}

	rows := make([]string, 0, m.layout.listHeight)
	entries := p.Entries()
	for r := 0; r < m.layout.listHeight; r++ {
		idx := p.Scroll() + r
		if idx >= len(entries) {
			rows = append(rows, strings.Repeat(" ", inner))
			continue
		}
		rows = append(rows, m.rowView(p, entries[idx], idx == p.Cursor(), active, inner))
	}

	count := 0
	if !p.Denied() {
		count = p.Len()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		pathStyle.Width(m.layout.paneWidths[i]).Render(bar),
		frame.Width(inner).Render(strings.Join(rows, "\n")),
		footer.Width(m.layout.paneWidths[i]).Render(fmt.Sprintf("[ %d files ]", count)),
	)
}

func (m Model) rowView(p *pane.Pane, e pane.Entry, selected, active bool, width int) string {
	denied := p.Denied() && e.Name == pane.PermissionDenied
	glyph := icons.For(e.Name, icons.Attrs{
		Dir:        e.IsDir,
		Open:       e.IsDir && selected,
		Denied:     denied,
		Link:       e.IsLink,
		Executable: !e.IsDir && e.Mode&0o111 != 0,
	})

	size := ""
	switch {
	case denied:
	case e.IsDir:
		size = "<DIR>"
	default:
		size = humanize.IBytes(uint64(e.Size))
	}
	nameWidth := width - sizeColumn - 1
	if nameWidth < 1 {
		nameWidth = 1
	}
	label := runewidth.FillRight(runewidth.Truncate(glyph+" "+e.Name, nameWidth, "~"), nameWidth)
	row := label + " " + fmt.Sprintf("%*s", sizeColumn, size)

	style := m.palette.file
	switch {
	case selected && active && e.IsDir:
		style = m.palette.selectedDir
	case selected && active:
		style = m.palette.selectedFile
	case e.IsDir:
		style = m.palette.dir
	}
	return style.Render(runewidth.Truncate(row, width, ""))
}

// truncateLeft keeps the tail of s, marking the cut with "...".
func truncateLeft(s string, width int) string {
	if runewidth.StringWidth(s) <= width || width <= 3 {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && runewidth.StringWidth(string(runes))+3 > width {
		runes = runes[1:]
	}
	return "..." + string(runes)
}

func (m Model) progressView() string {
	if m.transfer == nil {
		return ""
	}
	snap := m.transfer.Snapshot()
	label := fmt.Sprintf("%s: %s ", snap.Kind, snap.Name)
	if snap.CancelRequested && !snap.Finished {
		label = "Cancelling " + label
	}
	bar := "[" + m.progress.ViewAs(snap.Percent()/100) + "]"
	return m.palette.progress.Render(fmt.Sprintf("%s%s %3.0f%%", label, bar, snap.Percent()))
}

// statusBarView describes the selection of the active pane.
func (m Model) statusBarView() string {
	p := m.activePane()
	target, ok := p.Target()
	if !ok {
		return m.palette.statusBar.Width(m.layout.width).Render("")
	}
	info, err := os.Lstat(target)
	if err != nil {
		return m.palette.statusBar.Width(m.layout.width).Render(p.Selected())
	}
	size := "<DIR>"
	if !info.IsDir() {
		size = humanize.IBytes(uint64(info.Size()))
	}
	line := strings.Join([]string{
		info.Name(),
		size,
		fsinfo.Owner(info),
		info.Mode().Perm().String()[1:],
		info.ModTime().Format("2006-01-02 15:04"),
	}, " | ")
	return m.palette.statusBar.Width(m.layout.width).Render(truncateRight(line, m.layout.width))
}

func truncateRight(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}

func (m Model) messageView() string {
	if !m.status.visible() {
		return ""
	}
	style := m.palette.infoText
	if m.status.isErr {
		style = m.palette.errText
	}
	return style.Render(truncateRight(m.status.text, m.layout.width))
}

func (m Model) fBarView() string {
	parts := make([]string, 0, 8)
	for _, b := range m.keys.footerBindings() {
		parts = append(parts, helpString(b))
	}
	return m.palette.fBar.Width(m.layout.width).Render(truncateRight(strings.Join(parts, "  "), m.layout.width))
}

func (m Model) popupView() string {
	var title string
	var body []string
	switch m.mode {
	case confirmMode:
		title, body = m.prompt.title(), m.prompt.lines()
	case inputMode:
		title = m.prompt.title()
		body = []string{m.prompt.label() + m.input.View(), "Enter to accept, Esc to cancel"}
	case mountsMode:
		title = " Mounts "
		if len(m.mounts) == 0 {
			body = append(body, "No mounts found in /mnt or /media.")
		}
		body = append(body, m.mounts...)
		body = append(body, "", "Press any key to close")
	}
	content := lipgloss.JoinVertical(lipgloss.Left, append([]string{m.palette.title.Render(title), ""}, body...)...)
	return m.palette.popup.Render(content)
}

func (m Model) previewView() string {
	title := m.palette.header.Width(m.layout.width).Render(truncateLeft(m.previewName, m.layout.width))
	help := m.palette.fBar.Width(m.layout.width).Render("↑/↓ pgup/pgdown scroll  esc close")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.preview.View(), help)
}
