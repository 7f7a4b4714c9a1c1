package models

import (
	"testing"
)

// ============ Category Tests ============

func TestCategoryRankOrder(t *testing.T) {
	ordered := []Category{
		CategoryHyprland,
		CategoryUtility,
		CategoryThemes,
		CategoryPlugins,
		CategoryConfD,
		CategoryScripts,
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Rank() >= ordered[i].Rank() {
			t.Errorf("expected %s to rank before %s", ordered[i-1], ordered[i])
		}
	}
}

func TestCategoryLabels(t *testing.T) {
	tests := []struct {
		cat   Category
		label string
	}{
		{CategoryHyprland, "hyprland"},
		{CategoryUtility, "utility"},
		{CategoryThemes, "themes"},
		{CategoryPlugins, "plugins"},
		{CategoryConfD, "conf.d"},
		{CategoryScripts, "scripts"},
	}
	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.label {
			t.Errorf("expected label %q, got %q", tt.label, got)
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"hyprland", CategoryHyprland},
		{"utility", CategoryUtility},
		{"themes", CategoryThemes},
		{"plugins", CategoryPlugins},
		{"conf.d", CategoryConfD},
		{"conf-d", CategoryConfD},
		{"scripts", CategoryScripts},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		if err != nil {
			t.Errorf("ParseCategory(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := ParseCategory("bogus"); err == nil {
		t.Error("expected error for unknown category")
	}
}

// ============ Sort Tests ============

func TestSortKeyPerCategory(t *testing.T) {
	confd := &ConfigEntry{FileName: "70-Binds.conf", Alias: "Binds", Category: CategoryConfD}
	if _, key := confd.SortKey(); key != "70-binds.conf" {
		t.Errorf("conf.d entries should sort by lowercased file name, got %q", key)
	}

	theme := &ConfigEntry{FileName: "Nord.conf", Alias: "Nord", Category: CategoryThemes}
	if _, key := theme.SortKey(); key != "nord" {
		t.Errorf("theme entries should sort by lowercased alias, got %q", key)
	}
}

func TestSortEntries(t *testing.T) {
	entries := []*ConfigEntry{
		{FileName: "cleanup.sh", Alias: "cleanup", Category: CategoryScripts},
		{FileName: "70-binds.conf", Alias: "binds", Category: CategoryConfD},
		{FileName: "hyprpaper.conf", Alias: "hyprpaper", Category: CategoryUtility},
		{FileName: "00-env.conf", Alias: "env", Category: CategoryConfD},
		{FileName: "hyprland.conf", Alias: "hyprland", Category: CategoryHyprland},
	}
	SortEntries(entries)

	want := []string{"hyprland.conf", "hyprpaper.conf", "00-env.conf", "70-binds.conf", "cleanup.sh"}
	for i, name := range want {
		if entries[i].FileName != name {
			t.Errorf("position %d: expected %s, got %s", i, name, entries[i].FileName)
		}
	}
}

func TestSortEntriesStable(t *testing.T) {
	// Two entries with identical keys keep their original order.
	first := &ConfigEntry{Path: "/a/same.conf", FileName: "same.conf", Alias: "same", Category: CategoryThemes}
	second := &ConfigEntry{Path: "/b/same.conf", FileName: "same.conf", Alias: "same", Category: CategoryThemes}
	entries := []*ConfigEntry{first, second}
	SortEntries(entries)

	if entries[0] != first || entries[1] != second {
		t.Error("stable sort should preserve scan order for equal keys")
	}
}

func TestHasDescription(t *testing.T) {
	e := &ConfigEntry{Description: ""}
	if e.HasDescription() {
		t.Error("empty description should report false")
	}
	e.Description = "   "
	if e.HasDescription() {
		t.Error("whitespace description should report false")
	}
	e.Description = "keybindings"
	if !e.HasDescription() {
		t.Error("expected HasDescription to be true")
	}
}
