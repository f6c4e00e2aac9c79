package compose

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/sofmeright/lintcomposer/src/ignore"
	"github.com/sofmeright/lintcomposer/src/preset"
)

// Resolved is the configuration handed to the rule engine. Blocks apply in
// order; when two blocks set the same rule the later one wins.
type Resolved struct {
	// Presets lists the toggled presets in application order.
	Presets []preset.Name `json:"presets" yaml:"presets"`
	// Blocks holds the base presets, then toggled presets, then overrides.
	Blocks   []Block  `json:"blocks" yaml:"blocks"`
	Ignores  []string `json:"ignores" yaml:"ignores"`
	Includes []string `json:"includes,omitempty" yaml:"includes,omitempty"`
	// Extra carries option keys the catalog does not know.
	Extra          map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
	CatalogVersion string         `json:"catalog_version" yaml:"catalog_version"`
}

// Block is one preset's contribution to the configuration.
type Block struct {
	Name string `json:"name" yaml:"name"`
	// Files restricts the block to matching paths. Empty means all files.
	Files []string               `json:"files" yaml:"files"`
	Rules map[string]preset.Rule `json:"rules" yaml:"rules"`
}

// Active reports whether the named preset was toggled on.
func (r *Resolved) Active(name preset.Name) bool {
	for _, p := range r.Presets {
		if p == name {
			return true
		}
	}
	return false
}

// Applies reports whether the block targets path. An empty path matches
// every block.
func (b Block) Applies(path string) bool {
	if path == "" || len(b.Files) == 0 {
		return true
	}
	path = ignore.NormalizePath(path)
	for _, glob := range b.Files {
		if ignore.MatchGlob(glob, path) {
			return true
		}
	}
	return false
}

// Flatten applies the blocks that target path in order, later blocks
// overriding earlier ones, and returns the effective rules. Pass "" to
// flatten every block regardless of its file globs.
func (r *Resolved) Flatten(path string) map[string]preset.Rule {
	out := map[string]preset.Rule{}
	for _, b := range r.Blocks {
		if !b.Applies(path) {
			continue
		}
		for name, rule := range preset.CloneRules(b.Rules) {
			out[name] = rule
		}
	}
	return out
}

// Ignored reports whether path is excluded and by which pattern.
func (r *Resolved) Ignored(path string) (string, bool) {
	return ignore.NewSet(r.Ignores).Match(path)
}

// Fingerprint returns a hex SHA-256 of the canonical JSON encoding. Equal
// configurations always share a fingerprint. Pass-through options that JSON
// cannot encode, such as NaN, make it fail.
func (r *Resolved) Fingerprint() (string, error) {
	// encoding/json sorts map keys, so the encoding is canonical.
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("fingerprinting resolved configuration: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
