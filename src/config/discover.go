package config

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// Discover finds the config file for dir. It looks in dir itself, then at
// the root of the enclosing git worktree. Returns "" when neither has one.
func Discover(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	dirs := []string{abs}
	if root := repoRoot(abs); root != "" && root != abs {
		dirs = append(dirs, root)
	}

	for _, d := range dirs {
		for _, name := range candidateFiles {
			p := filepath.Join(d, name)
			if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
				return p
			}
		}
	}
	return ""
}

// repoRoot returns the worktree root of the git repository containing dir,
// or "" when dir is not inside one.
func repoRoot(dir string) string {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	wt, err := repo.Worktree()
	if err != nil {
		return ""
	}
	return wt.Filesystem.Root()
}
