package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sofmeright/lintcomposer/src/compose"
)

const (
	storeDir    = ".lintcomposer/resolved"
	currentFile = "current.json"
)

// ErrNotFound reports a fingerprint with no stored configuration.
var ErrNotFound = errors.New("resolved configuration not found")

// Store keeps resolved configurations on disk, addressed by fingerprint, so
// a rule engine can read the current one from a fixed path.
type Store struct {
	RootDir string
}

// entry is the on-disk form of a stored configuration.
type entry struct {
	Fingerprint string            `json:"fingerprint"`
	Config      *compose.Resolved `json:"config"`
}

// Put writes r under its fingerprint and points current.json at it.
// Returns the path of the fingerprinted file.
func (s *Store) Put(r *compose.Resolved) (string, error) {
	fp, err := r.Fingerprint()
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(entry{Fingerprint: fp, Config: r}, "", "  ")
	if err != nil {
		return "", err
	}

	path := s.path(fp)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating store dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(s.RootDir, storeDir, currentFile), data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Get reads the configuration stored under fingerprint.
func (s *Store) Get(fingerprint string) (*compose.Resolved, error) {
	if len(fingerprint) < 3 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, fingerprint)
	}
	return s.read(s.path(fingerprint))
}

// Current reads the configuration most recently written by Put.
func (s *Store) Current() (*compose.Resolved, error) {
	return s.read(filepath.Join(s.RootDir, storeDir, currentFile))
}

// Clear removes every stored configuration.
func (s *Store) Clear() error {
	return os.RemoveAll(filepath.Join(s.RootDir, storeDir))
}

func (s *Store) read(path string) (*compose.Resolved, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return e.Config, nil
}

// path returns the filesystem path for a fingerprint.
// Uses 2-char prefix subdirectory to avoid huge flat directories.
func (s *Store) path(fingerprint string) string {
	prefix := fingerprint[:2]
	return filepath.Join(s.RootDir, storeDir, prefix, fingerprint+".json")
}

// EnsureGitignore adds .lintcomposer/ to .gitignore if not already present.
func EnsureGitignore(rootDir string) {
	gitignorePath := filepath.Join(rootDir, ".gitignore")
	line := ".lintcomposer/"

	data, err := os.ReadFile(gitignorePath)
	if err == nil {
		for _, l := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
			if l == line {
				return
			}
		}
	}

	f, err := os.OpenFile(gitignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return // best effort
	}
	defer f.Close()

	// Add newline before entry if file doesn't end with one
	if len(data) > 0 && data[len(data)-1] != '\n' {
		f.WriteString("\n")
	}
	f.WriteString(line + "\n")
}
