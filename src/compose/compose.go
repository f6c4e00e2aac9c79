// Package compose merges option toggles and ignore globs into a resolved
// lint configuration for an external rule engine.
//
// Build is a pure function: it never fails, never mutates its inputs, and
// returns values that share no maps or slices with the preset catalog.
package compose

import (
	"sort"

	"github.com/sofmeright/lintcomposer/src/ignore"
	"github.com/sofmeright/lintcomposer/src/preset"
)

// OverridesBlock names the block that carries caller rule overrides.
const OverridesBlock = "overrides"

// Options maps option names to values. A key naming a catalog preset toggles
// that preset when its value is the boolean true. Any other key is carried
// through to Resolved.Extra untouched.
type Options map[string]any

// Enabled reports whether the option is set to boolean true.
func (o Options) Enabled(name preset.Name) bool {
	v, ok := o[string(name)].(bool)
	return ok && v
}

// BuildOption customizes Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	catalog   *preset.Catalog
	includes  []string
	overrides map[string]preset.Rule
}

// WithCatalog resolves toggles against c instead of the registered presets.
func WithCatalog(c *preset.Catalog) BuildOption {
	return func(b *buildConfig) {
		if c != nil {
			b.catalog = c
		}
	}
}

// WithIncludes sets the globs naming the files to lint.
func WithIncludes(globs ...string) BuildOption {
	return func(b *buildConfig) {
		b.includes = append(b.includes, globs...)
	}
}

// WithOverrides appends a final block of caller rules that applies after
// every preset.
func WithOverrides(rules map[string]preset.Rule) BuildOption {
	return func(b *buildConfig) {
		if b.overrides == nil {
			b.overrides = make(map[string]preset.Rule, len(rules))
		}
		for name, r := range rules {
			b.overrides[name] = r
		}
	}
}

// Build resolves options and ignores into a configuration.
func Build(options Options, ignores []string, opts ...BuildOption) *Resolved {
	bc := &buildConfig{}
	for _, opt := range opts {
		opt(bc)
	}
	if bc.catalog == nil {
		bc.catalog = preset.Default()
	}

	var active []preset.Name
	extra := map[string]any{}
	for key, value := range options {
		name := preset.Name(key)
		if bc.catalog.Has(name) {
			if options.Enabled(name) {
				active = append(active, name)
			}
			continue
		}
		extra[key] = preset.CopyValue(value)
	}

	ordered := bc.catalog.Ordered(active)
	// Base presets never count as toggled, even if named in options.
	presets := make([]preset.Name, 0, len(ordered))
	blocks := make([]Block, 0, len(ordered)+2)
	for _, p := range bc.catalog.Base() {
		blocks = append(blocks, blockFrom(p))
	}
	for _, p := range ordered {
		if p.Base {
			continue
		}
		presets = append(presets, p.Name)
		blocks = append(blocks, blockFrom(p))
	}
	if len(bc.overrides) > 0 {
		blocks = append(blocks, Block{
			Name:  OverridesBlock,
			Files: []string{},
			Rules: preset.CloneRules(bc.overrides),
		})
	}

	return &Resolved{
		Presets:        presets,
		Blocks:         blocks,
		Ignores:        ignore.Normalize(ignores),
		Includes:       ignore.Normalize(bc.includes),
		Extra:          extra,
		CatalogVersion: bc.catalog.Version(),
	}
}

func blockFrom(p preset.Preset) Block {
	files := append([]string{}, p.Files...)
	sort.Strings(files)
	return Block{
		Name:  string(p.Name),
		Files: files,
		Rules: preset.CloneRules(p.Rules),
	}
}
