package models

import (
	"sort"
	"strings"
)

// ConfigEntry represents one discovered config file. Entries are built
// once per scan and never mutated afterwards.
type ConfigEntry struct {
	Path        string   // absolute path on disk
	FileName    string   // base name including extension
	Alias       string   // short human identifier, derived per category
	Description string   // first leading comment, empty if none found
	Category    Category
}

// HasDescription reports whether a usable description was extracted.
func (e *ConfigEntry) HasDescription() bool {
	return strings.TrimSpace(e.Description) != ""
}

// SortKey returns the (category rank, within-category key) pair that
// defines the display order. conf.d entries sort by raw file name so
// the numeric prefixes (00-..., 05-...) stay in sequence; everything
// else sorts by alias.
func (e *ConfigEntry) SortKey() (int, string) {
	var within string
	switch e.Category {
	case CategoryConfD:
		within = strings.ToLower(e.FileName)
	default:
		within = strings.ToLower(e.Alias)
	}
	return e.Category.Rank(), within
}

// SortEntries orders entries by SortKey. The sort is stable, so entries
// with equal keys keep their scan order.
func SortEntries(entries []*ConfigEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ri, ki := entries[i].SortKey()
		rj, kj := entries[j].SortKey()
		if ri != rj {
			return ri < rj
		}
		return ki < kj
	})
}
