package ignore

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrBadPattern reports a malformed ignore glob.
var ErrBadPattern = errors.New("malformed glob pattern")

// MatchGlob matches a glob pattern supporting ** against a forward-slash path.
// "**" as a whole segment matches zero or more segments; every other segment
// follows path.Match. Brace alternatives ("*.{js,ts}") are expanded first.
func MatchGlob(pattern, name string) bool {
	for _, alt := range expandBraces(pattern) {
		if matchSegments(splitSegments(alt), splitSegments(name)) {
			return true
		}
	}
	return false
}

// Validate reports whether pattern is a well-formed glob.
func Validate(pattern string) error {
	if strings.Count(pattern, "{") != strings.Count(pattern, "}") {
		return fmt.Errorf("%w: %q has unbalanced braces", ErrBadPattern, pattern)
	}
	for _, alt := range expandBraces(pattern) {
		for _, seg := range splitSegments(alt) {
			if seg == "**" {
				continue
			}
			if _, err := path.Match(seg, ""); err != nil {
				return fmt.Errorf("%w: %q", ErrBadPattern, pattern)
			}
		}
	}
	return nil
}

func splitSegments(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// matchSegments walks pattern and path segments. A "**" segment tries every
// possible number of consumed path segments, including none.
func matchSegments(pat, segs []string) bool {
	for len(pat) > 0 {
		if pat[0] == "**" {
			// Collapse runs of "**".
			for len(pat) > 1 && pat[1] == "**" {
				pat = pat[1:]
			}
			if len(pat) == 1 {
				return true
			}
			for i := 0; i <= len(segs); i++ {
				if matchSegments(pat[1:], segs[i:]) {
					return true
				}
			}
			return false
		}
		if len(segs) == 0 {
			return false
		}
		ok, err := path.Match(pat[0], segs[0])
		if err != nil || !ok {
			return false
		}
		pat, segs = pat[1:], segs[1:]
	}
	return len(segs) == 0
}

// expandBraces turns "a.{js,ts}" into ["a.js", "a.ts"]. Groups expand left to
// right; nested groups are expanded recursively. Unbalanced input is
// returned unchanged.
func expandBraces(pattern string) []string {
	open := strings.IndexByte(pattern, '{')
	if open < 0 {
		return []string{pattern}
	}
	depth := 0
	closeIdx := -1
	for i := open; i < len(pattern); i++ {
		switch pattern[i] {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth == 0 {
			closeIdx = i
			break
		}
	}
	if closeIdx < 0 {
		return []string{pattern}
	}

	prefix, body, suffix := pattern[:open], pattern[open+1:closeIdx], pattern[closeIdx+1:]
	var out []string
	for _, alt := range splitTopLevel(body) {
		out = append(out, expandBraces(prefix+alt+suffix)...)
	}
	return out
}

// splitTopLevel splits on commas not enclosed in nested braces.
func splitTopLevel(body string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, body[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, body[start:])
}
