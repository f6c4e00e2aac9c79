package config

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/sofmeright/lintcomposer/src/compose"
	"github.com/sofmeright/lintcomposer/src/preset"
)

// Reserved top-level keys. Every other key is an option.
const (
	keyVersion  = "version"
	keyComposer = "composer"
	keyIgnores  = "ignores"
	keyIncludes = "includes"
	keyRules    = "rules"
	keyOutput   = "output"
)

func decode(data []byte, format FileFormat) (map[string]any, error) {
	raw := map[string]any{}
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	default:
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, err
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

// apply merges one decoded file into c.
func (c *Config) apply(raw map[string]any) error {
	for key, value := range raw {
		switch key {
		case keyVersion:
			n, err := asInt(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			c.Version = n
		case keyComposer:
			s, err := asString(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			c.Composer = s
		case keyOutput:
			s, err := asString(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			c.Output = OutputFormat(s)
		case keyIgnores:
			list, err := asStringList(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			// The first file that names ignores replaces the defaults.
			if !c.ignoresSet {
				c.Ignores = nil
				c.ignoresSet = true
			}
			c.Ignores = append(c.Ignores, list...)
		case keyIncludes:
			list, err := asStringList(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			c.Includes = append(c.Includes, list...)
		case keyRules:
			m, ok := value.(map[string]any)
			if !ok && value != nil {
				return fmt.Errorf("%s: expected a map, got %T", key, value)
			}
			rules, err := preset.ParseRules(m)
			if err != nil {
				return err
			}
			if c.Rules == nil {
				c.Rules = map[string]preset.Rule{}
			}
			for name, r := range rules {
				c.Rules[name] = r
			}
		default:
			if c.Options == nil {
				c.Options = compose.Options{}
			}
			c.Options[key] = mergeValue(c.Options[key], value)
		}
	}
	return nil
}

// mergeValue merges src over dst: maps merge recursively, anything else is
// replaced by src.
func mergeValue(dst, src any) any {
	dstMap, ok1 := dst.(map[string]any)
	srcMap, ok2 := src.(map[string]any)
	if !ok1 || !ok2 {
		return preset.CopyValue(src)
	}
	out := preset.CopyValue(dstMap).(map[string]any)
	for k, v := range srcMap {
		out[k] = mergeValue(out[k], v)
	}
	return out
}

func asInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, fmt.Errorf("expected an integer, got %v", v)
}

func asString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected a string, got %T", v)
	}
	return s, nil
}

func asStringList(v any) ([]string, error) {
	switch list := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{list}, nil
	case []string:
		return append([]string(nil), list...), nil
	case []any:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("item %d: expected a string, got %T", i, item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected a list of strings, got %T", v)
}
