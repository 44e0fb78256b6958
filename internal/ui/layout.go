package ui

const (
	minWidth  = 40
	minHeight = 10

	// rows outside the list: header, path bar, two box borders, file count,
	// progress, status bar, message line, key bar
	chromeRows = 9
	sizeColumn = 10
)

// layout is the geometry derived from the terminal size.
type layout struct {
	width      int
	height     int
	tooSmall   bool
	paneWidths [2]int
	listHeight int
}

func computeLayout(width, height int, rightHidden bool) layout {
	l := layout{width: width, height: height}
	if width < minWidth || height < minHeight {
		l.tooSmall = true
		l.listHeight = 1
		return l
	}
	if rightHidden {
		l.paneWidths = [2]int{width, 0}
	} else {
		l.paneWidths = [2]int{width / 2, width - width/2}
	}
	l.listHeight = height - chromeRows
	if l.listHeight < 1 {
		l.listHeight = 1
	}
	return l
}

// innerWidth is the text width inside pane i's border.
func (l layout) innerWidth(i int) int {
	w := l.paneWidths[i] - 2
	if w < 1 {
		return 1
	}
	return w
}
