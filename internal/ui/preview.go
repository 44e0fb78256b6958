package ui

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/dustin/go-humanize"
)

// openPreview loads the head of the selected file into the viewport,
// highlighted by file type.
func (m *Model) openPreview() outcome {
	p := m.activePane()
	e, _ := p.SelectedEntry()
	target, ok := p.Target()
	if !ok || e.IsDir {
		return fail("Select a file to preview")
	}
	content, err := previewContent(target)
	if err != nil {
		return fail(fmt.Sprintf("Error: %v", unwrapPathError(err)))
	}
	m.previewName = target
	m.preview.SetContent(content)
	m.preview.GotoTop()
	m.resizePreview()
	m.mode = previewMode
	return silent()
}

func previewContent(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if info, err := f.Stat(); err == nil && info.Size() > maxPreviewBytes {
		return fmt.Sprintf("File too large to preview (%s)", humanize.IBytes(uint64(info.Size()))), nil
	}
	buf, err := io.ReadAll(io.LimitReader(f, maxPreviewBytes))
	if err != nil {
		return "", err
	}
	head := buf
	if len(head) > 512 {
		head = head[:512]
	}
	mimeType := http.DetectContentType(head)
	if !strings.HasPrefix(mimeType, "text/") {
		return "Non-text file: " + mimeType, nil
	}
	lines := strings.Split(string(buf), "\n")
	if len(lines) > previewLines {
		lines = append(lines[:previewLines], "...")
	}
	content := strings.Join(lines, "\n")

	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return content, nil
	}
	var sb strings.Builder
	if err := chromaFormatter.Format(&sb, chromaStyle, iterator); err != nil {
		return content, nil
	}
	return sb.String(), nil
}

func (m *Model) resizePreview() {
	m.preview.Width = m.layout.width
	m.preview.Height = m.layout.height - 2
	if m.preview.Height < 1 {
		m.preview.Height = 1
	}
}
