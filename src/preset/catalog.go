package preset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CatalogVersion is the version of the built-in preset catalog. Bump the
// minor version when presets gain rules and the major version when a preset
// is removed or renamed.
const CatalogVersion = "1.4.0"

// ErrConstraint reports a catalog version that does not satisfy a caller's
// composer constraint.
var ErrConstraint = errors.New("preset catalog version constraint not satisfied")

// Catalog is an immutable set of presets with a version.
type Catalog struct {
	version *semver.Version
	presets map[Name]Preset
}

// NewCatalog builds a catalog from presets. A later preset with the same name
// replaces an earlier one. An unparseable version falls back to 0.0.0.
func NewCatalog(version string, presets ...Preset) *Catalog {
	v, err := semver.NewVersion(version)
	if err != nil {
		v = semver.MustParse("0.0.0")
	}
	c := &Catalog{
		version: v,
		presets: make(map[Name]Preset, len(presets)),
	}
	for _, p := range presets {
		c.presets[p.Name] = p
	}
	return c
}

// Version returns the catalog's semantic version.
func (c *Catalog) Version() string {
	return c.version.String()
}

// Lookup returns a copy of the named preset.
func (c *Catalog) Lookup(name Name) (Preset, bool) {
	p, ok := c.presets[name]
	if !ok {
		return Preset{}, false
	}
	return p.clone(), true
}

// Has reports whether name is a preset in the catalog.
func (c *Catalog) Has(name Name) bool {
	_, ok := c.presets[name]
	return ok
}

// Toggles returns the names of presets that an option can switch on,
// sorted by name.
func (c *Catalog) Toggles() []Name {
	var names []Name
	for name, p := range c.presets {
		if !p.Base {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Base returns the always-on presets in application order.
func (c *Catalog) Base() []Preset {
	var out []Preset
	for _, p := range c.presets {
		if p.Base {
			out = append(out, p.clone())
		}
	}
	sortByOrder(out)
	return out
}

// Ordered returns copies of the named presets in application order.
// Names missing from the catalog are skipped.
func (c *Catalog) Ordered(names []Name) []Preset {
	seen := make(map[Name]bool, len(names))
	out := make([]Preset, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		if p, ok := c.presets[name]; ok {
			out = append(out, p.clone())
		}
	}
	sortByOrder(out)
	return out
}

// All returns copies of every preset in application order.
func (c *Catalog) All() []Preset {
	out := make([]Preset, 0, len(c.presets))
	for _, p := range c.presets {
		out = append(out, p.clone())
	}
	sortByOrder(out)
	return out
}

// Satisfies checks the catalog version against a semver constraint such as
// "^1.0" or ">= 1.2, < 2". An empty constraint always passes.
func (c *Catalog) Satisfies(constraint string) error {
	constraint = strings.TrimSpace(constraint)
	if constraint == "" {
		return nil
	}
	cons, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("composer constraint %q: %w", constraint, err)
	}
	if ok, reasons := cons.Validate(c.version); !ok {
		msgs := make([]string, len(reasons))
		for i, r := range reasons {
			msgs[i] = r.Error()
		}
		return fmt.Errorf("%w: catalog %s against %q (%s)", ErrConstraint, c.version, constraint, strings.Join(msgs, "; "))
	}
	return nil
}

func sortByOrder(presets []Preset) {
	sort.SliceStable(presets, func(i, j int) bool {
		if presets[i].Order != presets[j].Order {
			return presets[i].Order < presets[j].Order
		}
		return presets[i].Name < presets[j].Name
	})
}

func (p Preset) clone() Preset {
	p.Files = append([]string(nil), p.Files...)
	p.Rules = CloneRules(p.Rules)
	return p
}
