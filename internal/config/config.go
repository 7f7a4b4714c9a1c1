// Package config loads the optional user settings file and resolves
// the Hyprland config root directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the user-adjustable settings. All fields are optional;
// CLI flags take precedence over anything set here.
type Config struct {
	Editor    string `yaml:"editor"`     // editor command, e.g. "hx", "nvim"
	Color     string `yaml:"color"`      // color scheme: "dark", "light", "none"
	SegColors *bool  `yaml:"seg_colors"` // per-segment line coloring
}

// configFileName is the name of the settings file
const configFileName = "config.yaml"

// Default returns the default configuration.
func Default() *Config {
	return &Config{}
}

// ConfigPath returns the path of the settings file, under
// $XDG_CONFIG_HOME/hyprpick or ~/.config/hyprpick.
func ConfigPath() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "hyprpick", configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "hyprpick", configFileName), nil
}

// Load reads the settings file. A missing file yields the defaults; a
// malformed file is an error.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		// No home directory means no settings file either; the
		// defaults still work when --root is given explicitly.
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the settings file at an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// SegColorsEnabled reports the seg_colors setting, defaulting to on.
func (c *Config) SegColorsEnabled() bool {
	if c.SegColors == nil {
		return true
	}
	return *c.SegColors
}

// ResolveRoot determines the Hyprland config root: an explicit flag
// value wins, then $XDG_CONFIG_HOME/hypr, then ~/.config/hypr.
func ResolveRoot(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "hypr"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve default root: %w", err)
	}
	return filepath.Join(home, ".config", "hypr"), nil
}
