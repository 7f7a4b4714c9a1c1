package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"hyprpick/internal/config"
	"hyprpick/internal/editor"
	"hyprpick/internal/gitinfo"
	"hyprpick/internal/models"
	"hyprpick/internal/scanner"
	"hyprpick/internal/ui"
	"hyprpick/internal/ui/components"
)

// Version info (set by ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
)

var debugMode = false

// debugLog logs a message if debug mode is enabled
func debugLog(format string, args ...interface{}) {
	if debugMode {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hyprpick: "+err.Error())
		os.Exit(1)
	}
}

func run() error {
	var (
		rootFlag     string
		categoryFlag string
		editorFlag   string
		colorFlag    string
		noSegColors  bool
		showVersion  bool
		debug        bool
	)
	pflag.StringVarP(&rootFlag, "root", "r", "", "root directory of Hypr configuration (default: ~/.config/hypr)")
	pflag.StringVar(&categoryFlag, "category", "", "pre-filter to one category: hyprland, utility, themes, plugins, conf-d, scripts")
	pflag.StringVar(&editorFlag, "editor", "", "editor to open the file with (default: hx)")
	pflag.StringVar(&colorFlag, "color", "", "color scheme: dark, light or none")
	pflag.BoolVar(&noSegColors, "no-seg-colors", false, "disable per-line segment colors")
	pflag.BoolVar(&showVersion, "version", false, "print version and exit")
	pflag.BoolVar(&debug, "debug", false, "enable debug logging")
	pflag.Parse()

	if showVersion {
		fmt.Printf("hyprpick %s (built %s)\n", version, buildTime)
		return nil
	}
	debugMode = debug
	scanner.DebugMode = debug

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var categoryFilter *models.Category
	if categoryFlag != "" {
		cat, err := models.ParseCategory(categoryFlag)
		if err != nil {
			return err
		}
		categoryFilter = &cat
	}

	root, err := config.ResolveRoot(rootFlag)
	if err != nil {
		return err
	}
	debugLog("scanning %s", root)

	entries, err := scanner.New(root).Scan()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "no config files found under %s\n", root)
		return nil
	}
	debugLog("found %d entries", len(entries))

	segColors := !noSegColors && cfg.SegColorsEnabled() && ui.SegColorsAllowed()
	theme := ui.NewTheme(ui.SchemeFromPreferences(colorFlag, cfg.Color), segColors)

	footer := ""
	if info, ok := gitinfo.Lookup(root); ok {
		footer = info.Summary()
	}

	items := components.BuildItems(entries, categoryFilter, theme.SegColors)
	var selector components.Selector = components.NewListPicker(theme, footer)
	path, picked, err := selector.Pick(items)
	if err != nil {
		return err
	}
	if !picked {
		// User aborted; not an error.
		return nil
	}

	command := editor.Resolve(editorFlag, cfg.Editor)
	debugLog("opening %s with %s", path, command)
	return editor.Open(command, path)
}
