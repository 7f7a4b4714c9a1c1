package ui

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter renders file content for the preview pane with syntax
// coloring.
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter creates a new syntax highlighter
func NewHighlighter() *Highlighter {
	return &Highlighter{
		style: styles.Get("catppuccin-mocha"),
	}
}

// Highlight colors a block of source text based on the file name. On
// any lexer failure the text comes back unchanged.
func (h *Highlighter) Highlight(src, filename string) string {
	lexer := lexerForFile(filename)
	if lexer == nil {
		return src
	}

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}

	var result strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		entry := h.style.Get(token.Type)
		if !entry.Colour.IsSet() {
			result.WriteString(token.Value)
			continue
		}
		styled := lipgloss.NewStyle().Foreground(lipgloss.Color(entry.Colour.String()))
		if entry.Bold == chroma.Yes {
			styled = styled.Bold(true)
		}
		if entry.Italic == chroma.Yes {
			styled = styled.Italic(true)
		}
		// Style line by line so the viewport can wrap and scroll
		// without carrying escape state across rows.
		lines := strings.Split(token.Value, "\n")
		for i, line := range lines {
			if i > 0 {
				result.WriteString("\n")
			}
			if line != "" {
				result.WriteString(styled.Render(line))
			}
		}
	}
	return result.String()
}

// lexerForFile picks a chroma lexer by file name, with fallbacks for
// the extensions Hyprland configs actually use.
func lexerForFile(filename string) chroma.Lexer {
	if lexer := lexers.Match(filename); lexer != nil {
		return lexer
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".conf", ".config", ".ini":
		return lexers.Get("ini")
	case ".sh", ".bash", ".zsh", "":
		return lexers.Get("bash")
	}
	return lexers.Fallback
}
