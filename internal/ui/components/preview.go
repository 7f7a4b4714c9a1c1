package components

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"hyprpick/internal/ui"
)

// previewLineLimit caps how much of a file the preview pane reads.
const previewLineLimit = 200

// FilePreview shows the head of the entry under the cursor with
// syntax highlighting.
type FilePreview struct {
	viewport    viewport.Model
	highlighter *ui.Highlighter

	path   string
	width  int
	height int

	headerStyle lipgloss.Style
	borderStyle lipgloss.Style
	errStyle    lipgloss.Style
}

// NewFilePreview creates an empty preview pane.
func NewFilePreview() *FilePreview {
	vp := viewport.New(40, 20)
	return &FilePreview{
		viewport: vp,
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89B4FA")),
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")),
		errStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8")),
	}
}

// SetSize resizes the pane; the border and header take up the frame.
func (p *FilePreview) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.viewport.Width = max(width-2, 1)
	p.viewport.Height = max(height-3, 1)
}

// Load reads and highlights the file at path. Reloading the same path
// is a no-op. A read failure shows an error message inside the pane
// instead of failing the picker.
func (p *FilePreview) Load(path string) {
	if path == p.path {
		return
	}
	p.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		p.viewport.SetContent(p.errStyle.Render("cannot read file"))
		return
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) > previewLineLimit {
		lines = lines[:previewLineLimit]
	}
	if p.highlighter == nil {
		p.highlighter = ui.NewHighlighter()
	}
	content := p.highlighter.Highlight(strings.Join(lines, "\n"), filepath.Base(path))
	p.viewport.SetContent(content)
	p.viewport.GotoTop()
}

// View renders the bordered pane with the file name as a header.
func (p *FilePreview) View() string {
	header := p.headerStyle.Render(truncateName(filepath.Base(p.path), max(p.width-2, 1)))
	body := lipgloss.JoinVertical(lipgloss.Left, header, p.viewport.View())
	return p.borderStyle.Width(max(p.width-2, 1)).Render(body)
}

func truncateName(name string, width int) string {
	runes := []rune(name)
	if len(runes) <= width {
		return name
	}
	if width <= 1 {
		return "…"
	}
	return fmt.Sprintf("%s…", string(runes[:width-1]))
}
