// Package editor launches the user's editor on a selected file.
package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// defaultEditor is used when neither a flag, the settings file, nor
// $EDITOR names a command.
const defaultEditor = "hx"

// Resolve picks the editor command: explicit override first, then the
// settings-file value, then $EDITOR, then the built-in default.
func Resolve(override, configured string) string {
	if override != "" {
		return override
	}
	if configured != "" {
		return configured
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return defaultEditor
}

// isCommandAvailable checks if a command exists in PATH
func isCommandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Open runs the editor with the file path as its sole argument,
// attached to the current terminal, and blocks until it exits. A
// spawn failure and a non-zero exit are both reported as errors.
func Open(command, path string) error {
	if !isCommandAvailable(command) {
		return fmt.Errorf("editor %q not found in PATH", command)
	}

	cmd := exec.Command(command, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to spawn editor for %s: %w", path, err)
	}
	return nil
}
