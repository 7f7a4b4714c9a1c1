// Package components holds the interactive pieces of the picker UI.
package components

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hyprpick/internal/models"
	"hyprpick/internal/ui"
)

// PickerItem is one selectable row: the plain text the fuzzy filter
// matches against, the segment spans for coloring, and the entry path
// as an opaque identifier. Selection is recovered by Path, never by
// re-parsing Text, so two identically rendered rows stay distinct.
type PickerItem struct {
	Text  string
	Spans []ui.Span
	Path  string
}

// FilterValue returns the text the list's fuzzy filter runs against.
// It must be the display text itself so matched rune positions line up
// with what is on screen.
func (i PickerItem) FilterValue() string { return i.Text }

// BuildItems renders entries into picker items. When only is non-nil,
// entries of other categories are excluded before rendering.
func BuildItems(entries []*models.ConfigEntry, only *models.Category, colored bool) []PickerItem {
	items := make([]PickerItem, 0, len(entries))
	for _, e := range entries {
		if only != nil && e.Category != *only {
			continue
		}
		text, spans := ui.RenderLine(e, colored)
		items = append(items, PickerItem{Text: text, Spans: spans, Path: e.Path})
	}
	return items
}

// Selector runs one interactive selection over a fixed item set and
// blocks until the user confirms or aborts. ok is false on abort; that
// is a normal outcome, not an error.
type Selector interface {
	Pick(items []PickerItem) (path string, ok bool, err error)
}

// ListPicker is the bubbles/list implementation of Selector.
type ListPicker struct {
	theme  ui.Theme
	footer string
}

// NewListPicker creates a picker with the given theme. footer is extra
// status text (e.g. git branch) shown under the list; empty hides it.
func NewListPicker(theme ui.Theme, footer string) *ListPicker {
	return &ListPicker{theme: theme, footer: footer}
}

// Pick runs the interactive selection.
func (p *ListPicker) Pick(items []PickerItem) (string, bool, error) {
	model := newPickerModel(items, p.theme, p.footer)
	out, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return "", false, fmt.Errorf("running picker: %w", err)
	}
	final, ok := out.(pickerModel)
	if !ok || final.aborted || final.choice == "" {
		return "", false, nil
	}
	return final.choice, true, nil
}

// entryDelegate renders one row: segment colors from the precomputed
// spans, with the current fuzzy match overlaid on top.
type entryDelegate struct {
	theme ui.Theme
}

func (d entryDelegate) Height() int                             { return 1 }
func (d entryDelegate) Spacing() int                            { return 0 }
func (d entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(PickerItem)
	if !ok {
		return
	}

	var matches []int
	if m.FilterState() == list.Filtering || m.FilterState() == list.FilterApplied {
		matches = m.MatchesForItem(index)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Cursor.Render("> ")
	}
	line := ui.StyledLine(it.Text, it.Spans, matches, d.theme, m.Width()-2)
	fmt.Fprint(w, prefix+line)
}

// pickerModel is the bubbletea model for one selection session.
type pickerModel struct {
	list        list.Model
	preview     *FilePreview
	showPreview bool
	keys        ui.KeyMap
	theme       ui.Theme
	footer      string

	width  int
	height int

	choice  string
	aborted bool
}

func newPickerModel(items []PickerItem, theme ui.Theme, footer string) pickerModel {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}

	l := list.New(listItems, entryDelegate{theme: theme}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.FilterInput.Prompt = "> "
	l.FilterInput.PromptStyle = theme.Cursor
	l.FilterInput.Cursor.Style = theme.Cursor
	// Filtering starts active so the first keystroke narrows the
	// list, the way a fuzzy finder behaves. SetFilterText runs the
	// filter synchronously, so the empty query populates the visible
	// set with every item before the state flips to Filtering;
	// setting the state alone would leave the list empty.
	l.SetFilterText("")
	l.SetFilterState(list.Filtering)

	return pickerModel{
		list:    l,
		preview: NewFilePreview(),
		keys:    ui.DefaultKeyMap(),
		theme:   theme,
		footer:  footer,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Abort):
			m.aborted = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Confirm):
			if it, ok := m.list.SelectedItem().(PickerItem); ok {
				m.choice = it.Path
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Preview):
			m.showPreview = !m.showPreview
			m.layout()
			m.refreshPreview()
			return m, nil

		// While the filter input is focused the list does not move
		// its cursor on its own, so navigation is handled here.
		case key.Matches(msg, m.keys.Up):
			m.list.CursorUp()
			m.refreshPreviewIfShown()
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.list.CursorDown()
			m.refreshPreviewIfShown()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.refreshPreviewIfShown()
	return m, cmd
}

func (m *pickerModel) refreshPreviewIfShown() {
	if m.showPreview {
		m.refreshPreview()
	}
}

// layout splits the window between the list and the preview pane and
// reserves one row for the footer when present.
func (m *pickerModel) layout() {
	if m.width == 0 {
		return
	}
	height := m.height
	if m.footer != "" {
		height--
	}
	if m.showPreview {
		listWidth := m.width / 2
		m.list.SetSize(listWidth, height)
		m.preview.SetSize(m.width-listWidth, height)
	} else {
		m.list.SetSize(m.width, height)
	}
}

// refreshPreview points the preview pane at the entry under the
// cursor. Loading is a no-op when the path has not changed.
func (m *pickerModel) refreshPreview() {
	if it, ok := m.list.SelectedItem().(PickerItem); ok {
		m.preview.Load(it.Path)
	}
}

func (m pickerModel) View() string {
	main := m.list.View()
	if m.showPreview {
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, m.preview.View())
	}
	if m.footer == "" {
		return main
	}
	return lipgloss.JoinVertical(lipgloss.Left, main, m.theme.Footer.Render(" "+m.footer))
}
