package models

import "fmt"

// Category classifies a discovered config file. The set is fixed: every
// entry belongs to exactly one category and the enum value doubles as
// the primary sort rank.
type Category int

const (
	CategoryHyprland Category = iota // hyprland.conf itself
	CategoryUtility                  // hyprpaper/hyprlock/hypridle
	CategoryThemes
	CategoryPlugins
	CategoryConfD
	CategoryScripts
)

// Rank returns the category's position in the display order.
func (c Category) Rank() int {
	return int(c)
}

// String returns the display label shown inside the bracketed prefix of
// a rendered line.
func (c Category) String() string {
	switch c {
	case CategoryHyprland:
		return "hyprland"
	case CategoryUtility:
		return "utility"
	case CategoryThemes:
		return "themes"
	case CategoryPlugins:
		return "plugins"
	case CategoryConfD:
		return "conf.d"
	case CategoryScripts:
		return "scripts"
	default:
		return "unknown"
	}
}

// ParseCategory converts a CLI spelling into a Category. Both the
// display label ("conf.d") and the flag-friendly "conf-d" are accepted.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "hyprland":
		return CategoryHyprland, nil
	case "utility":
		return CategoryUtility, nil
	case "themes":
		return CategoryThemes, nil
	case "plugins":
		return CategoryPlugins, nil
	case "conf.d", "conf-d":
		return CategoryConfD, nil
	case "scripts":
		return CategoryScripts, nil
	default:
		return 0, fmt.Errorf("unknown category: %q", s)
	}
}
