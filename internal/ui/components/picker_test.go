package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"hyprpick/internal/models"
	"hyprpick/internal/ui"
)

func testEntries() []*models.ConfigEntry {
	return []*models.ConfigEntry{
		{Path: "/r/hyprland.conf", FileName: "hyprland.conf", Alias: "hyprland", Category: models.CategoryHyprland},
		{Path: "/r/conf.d/00-env.conf", FileName: "00-env.conf", Alias: "env", Category: models.CategoryConfD},
		{Path: "/r/conf.d/70-binds.conf", FileName: "70-binds.conf", Alias: "binds", Description: "keybindings", Category: models.CategoryConfD},
		{Path: "/r/scripts/lock.sh", FileName: "lock.sh", Alias: "lock", Category: models.CategoryScripts},
	}
}

func TestBuildItemsAll(t *testing.T) {
	items := BuildItems(testEntries(), nil, true)
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	for i, e := range testEntries() {
		if items[i].Path != e.Path {
			t.Errorf("item %d: expected id %s, got %s", i, e.Path, items[i].Path)
		}
	}
}

func TestBuildItemsCategoryFilter(t *testing.T) {
	cat := models.CategoryConfD
	items := BuildItems(testEntries(), &cat, true)
	if len(items) != 2 {
		t.Fatalf("expected 2 conf.d items, got %d", len(items))
	}
	for _, it := range items {
		if it.Path != "/r/conf.d/00-env.conf" && it.Path != "/r/conf.d/70-binds.conf" {
			t.Errorf("unexpected item through category filter: %s", it.Path)
		}
	}
}

func TestBuildItemsColorFlag(t *testing.T) {
	colored := BuildItems(testEntries(), nil, true)
	plain := BuildItems(testEntries(), nil, false)

	if len(colored[0].Spans) == 0 {
		t.Error("expected spans when coloring is enabled")
	}
	if len(plain[0].Spans) != 0 {
		t.Errorf("expected no spans when coloring is disabled, got %d", len(plain[0].Spans))
	}
	if colored[0].Text != plain[0].Text {
		t.Error("coloring must not change the display text")
	}
}

func TestFilterValueMatchesDisplayText(t *testing.T) {
	// The fuzzy filter reports rune indices into FilterValue; they
	// are applied to Text, so the two must be the same string.
	for _, it := range BuildItems(testEntries(), nil, true) {
		if it.FilterValue() != it.Text {
			t.Errorf("FilterValue %q differs from Text %q", it.FilterValue(), it.Text)
		}
	}
}

// ============ Picker Model Tests ============

func newTestModel(t *testing.T) pickerModel {
	t.Helper()
	items := BuildItems(testEntries(), nil, false)
	return newPickerModel(items, ui.Theme{}, "")
}

func keyPress(t *testing.T, m pickerModel, msg tea.KeyMsg) pickerModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(pickerModel)
	if !ok {
		t.Fatalf("Update returned %T, want pickerModel", next)
	}
	return out
}

func TestPickerShowsAllItemsOnStart(t *testing.T) {
	// The filter starts active with an empty query, which must still
	// present the full entry set, not an empty list.
	m := newTestModel(t)
	if got := len(m.list.VisibleItems()); got != len(testEntries()) {
		t.Fatalf("expected %d visible items on a fresh picker, got %d", len(testEntries()), got)
	}
	if _, ok := m.list.SelectedItem().(PickerItem); !ok {
		t.Fatal("expected a selectable item before any keystroke")
	}
}

func TestPickerConfirmBeforeTyping(t *testing.T) {
	m := keyPress(t, newTestModel(t), tea.KeyMsg{Type: tea.KeyEnter})
	if m.aborted {
		t.Error("enter should not abort")
	}
	if m.choice != testEntries()[0].Path {
		t.Errorf("expected first entry chosen, got %q", m.choice)
	}
}

func TestPickerConfirmAfterNavigation(t *testing.T) {
	m := newTestModel(t)
	m = keyPress(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = keyPress(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.choice != testEntries()[1].Path {
		t.Errorf("expected second entry chosen, got %q", m.choice)
	}
}

func TestPickerAbort(t *testing.T) {
	m := keyPress(t, newTestModel(t), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.aborted {
		t.Error("esc should abort the picker")
	}
	if m.choice != "" {
		t.Errorf("abort must not carry a choice, got %q", m.choice)
	}
}

func TestItemsWithIdenticalTextStayDistinct(t *testing.T) {
	entries := []*models.ConfigEntry{
		{Path: "/a/same.conf", FileName: "same.conf", Alias: "same", Category: models.CategoryThemes},
		{Path: "/b/same.conf", FileName: "same.conf", Alias: "same", Category: models.CategoryThemes},
	}
	items := BuildItems(entries, nil, false)
	if items[0].Path == items[1].Path {
		t.Error("identifiers must stay distinct even for similar entries")
	}
}
