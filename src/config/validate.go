package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sofmeright/lintcomposer/src/ignore"
	"github.com/sofmeright/lintcomposer/src/preset"
)

// LatestVersion is the current config schema version.
const LatestVersion = 1

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

var validOutputs = map[OutputFormat]bool{
	OutputText: true,
	OutputJSON: true,
	OutputYAML: true,
}

// Validate checks a loaded Config against a preset catalog.
// Returns warnings (soft issues) and a hard error if the config is invalid.
func Validate(cfg *Config, catalog *preset.Catalog) (warnings []string, err error) {
	if catalog == nil {
		catalog = preset.Default()
	}
	var errs []string

	if cfg.Version != LatestVersion {
		errs = append(errs, fmt.Sprintf("version: must be %d, got %d", LatestVersion, cfg.Version))
	}

	if !validOutputs[cfg.Output] {
		errs = append(errs, fmt.Sprintf("output: unknown format %q (supported: text, json, yaml)", cfg.Output))
	}

	keys := make([]string, 0, len(cfg.Options))
	for k := range cfg.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := cfg.Options[key]
		if !catalog.Has(preset.Name(key)) {
			warnings = append(warnings, fmt.Sprintf("%s: not a known preset, passed through unchanged", key))
			continue
		}
		if _, ok := value.(bool); !ok {
			errs = append(errs, fmt.Sprintf("%s: must be a boolean, got %T (%v)", key, value, value))
		}
	}

	for i, pattern := range cfg.Ignores {
		if err := ignore.Validate(pattern); err != nil {
			warnings = append(warnings, fmt.Sprintf("ignores[%d]: %v", i, err))
		}
	}
	for i, pattern := range cfg.Includes {
		if err := ignore.Validate(pattern); err != nil {
			warnings = append(warnings, fmt.Sprintf("includes[%d]: %v", i, err))
		}
	}

	if err := catalog.Satisfies(cfg.Composer); err != nil {
		errs = append(errs, fmt.Sprintf("composer: %v", err))
	}

	if len(errs) > 0 {
		return warnings, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return warnings, nil
}
