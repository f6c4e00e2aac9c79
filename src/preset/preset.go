package preset

import (
	"fmt"
	"sort"
	"sync"
)

// Name identifies a preset. It doubles as the option key that toggles it.
type Name string

// Preset is a named, pre-authored bundle of rule settings.
type Preset struct {
	Name        Name   `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	// Order ranks the preset in the application sequence. Lower applies
	// first, so higher-ranked presets override earlier ones.
	Order int `json:"order" yaml:"order"`
	// Files restricts the preset to matching paths. Empty means all files.
	Files []string        `json:"files,omitempty" yaml:"files,omitempty"`
	Rules map[string]Rule `json:"rules" yaml:"rules"`
	// Base presets are always applied and have no toggle.
	Base bool `json:"base,omitempty" yaml:"base,omitempty"`
}

var (
	registryMu sync.RWMutex
	registry   = map[Name]func() Preset{}
)

// Register adds a preset constructor to the global registry.
// Called from init() in each preset file.
func Register(name Name, constructor func() Preset) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("preset: duplicate registration: %s", name))
	}
	registry[name] = constructor
}

// Get returns a fresh copy of the named preset.
func Get(name Name) (Preset, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ctor, ok := registry[name]
	if !ok {
		return Preset{}, fmt.Errorf("preset: unknown preset: %s", name)
	}
	return ctor(), nil
}

// All returns sorted names of all registered presets.
func All() []Name {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]Name, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Default snapshots every registered preset into a Catalog.
func Default() *Catalog {
	names := All()
	presets := make([]Preset, 0, len(names))
	for _, name := range names {
		p, err := Get(name)
		if err != nil {
			continue
		}
		presets = append(presets, p)
	}
	return NewCatalog(CatalogVersion, presets...)
}
