// Package gitinfo reports lightweight git status for the config root,
// shown in the picker footer. Many Hyprland setups keep their config
// inside a dotfiles repository.
package gitinfo

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// Info summarizes the repository containing the config root.
type Info struct {
	Branch string
	Dirty  int // files with uncommitted changes
}

// Lookup opens the repository containing path, walking up to find the
// .git directory. The second return is false when the path is not
// inside a work tree or the status cannot be read; that is not an
// error for the caller.
func Lookup(path string) (Info, bool) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Info{}, false
	}

	var info Info
	if head, err := repo.Head(); err == nil {
		info.Branch = head.Name().Short()
	}

	wt, err := repo.Worktree()
	if err != nil {
		return Info{}, false
	}
	status, err := wt.Status()
	if err != nil {
		return Info{}, false
	}
	for _, fs := range status {
		if fs.Worktree != git.Unmodified || fs.Staging != git.Unmodified {
			info.Dirty++
		}
	}
	return info, true
}

// Summary formats the footer text, e.g. "main" or "main ±3". An empty
// branch (detached or unborn HEAD) falls back to "HEAD".
func (i Info) Summary() string {
	branch := i.Branch
	if branch == "" {
		branch = "HEAD"
	}
	if i.Dirty == 0 {
		return branch
	}
	return fmt.Sprintf("%s ±%d", branch, i.Dirty)
}
