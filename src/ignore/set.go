package ignore

import (
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Set is a normalized collection of ignore globs.
type Set struct {
	patterns []string
}

// NewSet normalizes patterns into a Set.
func NewSet(patterns []string) *Set {
	return &Set{patterns: Normalize(patterns)}
}

// Patterns returns a copy of the normalized patterns.
func (s *Set) Patterns() []string {
	return append([]string{}, s.patterns...)
}

// Len returns the number of distinct patterns.
func (s *Set) Len() int {
	return len(s.patterns)
}

// Match reports whether p is ignored and returns the first pattern, in
// sorted order, that ignores it. A pattern ignores a path when it matches the
// path itself or any parent directory of it.
func (s *Set) Match(p string) (string, bool) {
	norm := NormalizePath(p)
	if norm == "" || len(s.patterns) == 0 {
		return "", false
	}
	candidates := ancestors(norm)
	for _, pattern := range s.patterns {
		for _, c := range candidates {
			if matchPattern(pattern, c) {
				return pattern, true
			}
		}
	}
	return "", false
}

// Ignored is Match without the pattern.
func (s *Set) Ignored(p string) bool {
	_, ok := s.Match(p)
	return ok
}

// Normalize trims patterns, converts them to forward slashes, strips a
// leading "./", drops blanks and duplicates, and sorts the result. The result
// is never nil.
func Normalize(patterns []string) []string {
	seen := make(map[string]bool, len(patterns))
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = NormalizePath(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// NormalizePath converts a path or pattern to forward slashes and strips
// surrounding whitespace and a leading "./".
func NormalizePath(p string) string {
	p = strings.TrimSpace(p)
	p = filepath.ToSlash(p)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

// matchPattern matches one pattern against one candidate path.
// Patterns containing "/" or "**" match against the full path; others match
// the base name only.
func matchPattern(pattern, candidate string) bool {
	if strings.Contains(strings.TrimSuffix(pattern, "/"), "/") || strings.Contains(pattern, "**") {
		return MatchGlob(strings.TrimPrefix(pattern, "/"), candidate)
	}
	return MatchGlob(strings.TrimSuffix(pattern, "/"), path.Base(candidate))
}

// ancestors returns p and each of its parent directories, shortest first:
// "a/b/c" yields "a", "a/b", "a/b/c".
func ancestors(p string) []string {
	p = strings.Trim(p, "/")
	segs := strings.Split(p, "/")
	out := make([]string, 0, len(segs))
	for i := range segs {
		out = append(out, strings.Join(segs[:i+1], "/"))
	}
	return out
}
