// Package scanner discovers Hyprland config files under a root
// directory and normalizes them into entries with an alias, a category
// and an optional description pulled from the file's leading comment.
package scanner

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"

	"hyprpick/internal/models"
)

// DebugMode enables debug logging
var DebugMode = false

func debugLog(format string, args ...interface{}) {
	if DebugMode {
		fmt.Fprintf(os.Stderr, "[SCANNER] "+format+"\n", args...)
	}
}

// commentMarkers are the comment styles recognized when extracting a
// description from the head of a file.
var commentMarkers = []string{"#", "//", ";"}

// utilityFiles are the well-known companion configs next to
// hyprland.conf.
var utilityFiles = []string{"hyprpaper.conf", "hyprlock.conf", "hypridle.conf"}

// Line budgets for description extraction. Utility files tend to carry
// longer header comments, so they get a larger window.
const (
	descLineBudget        = 10
	utilityDescLineBudget = 20
)

// Scanner discovers config entries under a single root directory.
type Scanner struct {
	root string
}

// New creates a Scanner for the given root directory. The root is made
// absolute so every emitted entry carries an absolute path.
func New(root string) *Scanner {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Scanner{root: root}
}

// Scan performs one discovery pass over the well-known locations under
// the root. Missing locations are skipped; a failure to enumerate an
// existing directory aborts the scan. Entries come back sorted.
func (s *Scanner) Scan() ([]*models.ConfigEntry, error) {
	var entries []*models.ConfigEntry

	// hyprland.conf, the single primary config
	primary := filepath.Join(s.root, "hyprland.conf")
	if fileExists(primary) {
		entries = append(entries, s.entryForPath(primary, models.CategoryHyprland))
	}

	// well-known utility configs next to it
	for _, name := range utilityFiles {
		p := filepath.Join(s.root, name)
		if fileExists(p) {
			entries = append(entries, s.entryForPath(p, models.CategoryUtility))
		}
	}

	var err error
	if entries, err = s.scanConfDir(entries, "conf.d", models.CategoryConfD); err != nil {
		return nil, err
	}
	if entries, err = s.scanConfDir(entries, "themes", models.CategoryThemes); err != nil {
		return nil, err
	}
	if entries, err = s.scanConfDir(entries, "plugins", models.CategoryPlugins); err != nil {
		return nil, err
	}
	if entries, err = s.scanScripts(entries); err != nil {
		return nil, err
	}

	debugLog("scan of %s found %d entries", s.root, len(entries))
	models.SortEntries(entries)
	return entries, nil
}

// scanConfDir collects *.conf files directly inside the named
// subdirectory. A missing directory yields no entries; a read failure
// on an existing one is a hard error.
func (s *Scanner) scanConfDir(entries []*models.ConfigEntry, sub string, cat models.Category) ([]*models.ConfigEntry, error) {
	dir := filepath.Join(s.root, sub)
	if !dirExists(dir) {
		return entries, nil
	}
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	for _, d := range dirents {
		if d.IsDir() || filepath.Ext(d.Name()) != ".conf" {
			continue
		}
		entries = append(entries, s.entryForPath(filepath.Join(dir, d.Name()), cat))
	}
	return entries, nil
}

// scanScripts collects executable regular files inside scripts/. On
// platforms without a unix permission model every regular file counts.
func (s *Scanner) scanScripts(entries []*models.ConfigEntry) ([]*models.ConfigEntry, error) {
	dir := filepath.Join(s.root, "scripts")
	if !dirExists(dir) {
		return entries, nil
	}
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	for _, d := range dirents {
		if d.IsDir() {
			continue
		}
		info, err := d.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if runtime.GOOS != "windows" && info.Mode().Perm()&0o111 == 0 {
			continue
		}
		entries = append(entries, s.entryForPath(filepath.Join(dir, d.Name()), models.CategoryScripts))
	}
	return entries, nil
}

// entryForPath builds the normalized entry for one discovered file.
// Alias derivation is a pure function of path and category; the
// description read degrades to empty on any file error.
func (s *Scanner) entryForPath(path string, cat models.Category) *models.ConfigEntry {
	fileName := filepath.Base(path)
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	var alias string
	budget := descLineBudget
	switch cat {
	case models.CategoryHyprland:
		alias = "hyprland"
	case models.CategoryUtility:
		alias = stem
		budget = utilityDescLineBudget
	case models.CategoryConfD:
		alias = aliasFromConfD(stem)
	case models.CategoryScripts:
		alias = stem
		if alias == "" {
			alias = fileName
		}
	default:
		alias = stem
	}

	desc := firstCommentLine(path, budget)
	desc = stripAliasPrefix(alias, desc)

	return &models.ConfigEntry{
		Path:        path,
		FileName:    fileName,
		Alias:       alias,
		Description: desc,
		Category:    cat,
	}
}

// aliasFromConfD strips the conventional numeric prefix from a conf.d
// stem: "70-binds" -> "binds", "00-env" -> "env". A stem without a
// separator is used as-is.
func aliasFromConfD(stem string) string {
	if _, rest, ok := strings.Cut(stem, "-"); ok {
		return rest
	}
	return stem
}

// firstCommentLine returns the first non-empty comment found within
// maxLines of the file head, with the marker stripped. Shebang lines
// are skipped. Any read failure yields an empty result.
func firstCommentLine(path string, maxLines int) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for i := 0; i < maxLines && sc.Scan(); i++ {
		trimmed := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(trimmed, "#!") {
			continue
		}
		for _, marker := range commentMarkers {
			if !strings.HasPrefix(trimmed, marker) {
				continue
			}
			content := trimmed
			for strings.HasPrefix(content, marker) {
				content = content[len(marker):]
			}
			content = strings.TrimSpace(content)
			if content != "" {
				return content
			}
			break
		}
	}
	return ""
}

// isDescSeparator reports whether r is one of the characters dropped
// between a stripped alias prefix and the rest of the description,
// e.g. the " - " in "binds - ..." or the ": " in "binds: ...".
func isDescSeparator(r rune) bool {
	switch r {
	case '-', '—', '–', ':', '|':
		return true
	}
	return unicode.IsSpace(r)
}

// stripAliasPrefix removes a leading case-insensitive repetition of the
// alias from the description, along with the separator that follows it,
// so "Binds - keybindings" stored under alias "binds" becomes just
// "keybindings".
func stripAliasPrefix(alias, desc string) string {
	trimmed := strings.TrimSpace(desc)
	if trimmed == "" {
		return ""
	}
	aliasLC := strings.ToLower(strings.TrimSpace(alias))
	runes := []rune(trimmed)
	aliasLen := len([]rune(aliasLC))
	if aliasLen == 0 || len(runes) < aliasLen {
		return trimmed
	}
	if strings.ToLower(string(runes[:aliasLen])) != aliasLC {
		return trimmed
	}
	rest := string(runes[aliasLen:])
	rest = strings.TrimLeftFunc(rest, isDescSeparator)
	return strings.TrimSpace(rest)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
