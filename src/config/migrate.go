package config

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedVersion reports a schema version this build cannot read.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// MigrateToLatest takes raw config data and migrates it to the current schema version.
// Returns the migrated bytes ready for writing.
//
// Migration chain:
//
//	unversioned → 1 (sets the version key; the shape is unchanged)
//	version 1   → current (no-op, already latest)
func MigrateToLatest(data []byte, format FileFormat) ([]byte, error) {
	ver, err := peekVersion(data, format)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	switch ver {
	case LatestVersion:
		return data, nil
	case 0:
		var out []byte
		if format == FormatTOML {
			out, err = stampTOML(data)
		} else {
			out, err = stampYAML(data)
		}
		if err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("migrate: %w %d (latest supported: %d)", ErrUnsupportedVersion, ver, LatestVersion)
	}
}

// peekVersion extracts the version field without full parsing.
// Returns 0 if no version field is present.
func peekVersion(data []byte, format FileFormat) (int, error) {
	var probe struct {
		Version int `yaml:"version" toml:"version"`
	}

	var err error
	if format == FormatTOML {
		err = toml.Unmarshal(data, &probe)
	} else {
		err = yaml.Unmarshal(data, &probe)
	}
	if err != nil {
		return 0, fmt.Errorf("reading version: %w", err)
	}
	return probe.Version, nil
}

// stampYAML sets the version key on the root mapping of the first document.
// Comments and key order survive; flow-style roots are rewritten as blocks.
func stampYAML(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Empty or comment-only file: there is no document to edit.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return append([]byte(keyVersion+": "+strconv.Itoa(LatestVersion)+"\n"), data...), nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		*root = yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", HeadComment: root.HeadComment}
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top level must be a mapping, got %s", kindName(root.Kind))
	}
	root.Style &^= yaml.FlowStyle

	version := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(LatestVersion)}
	replaced := false
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == keyVersion {
			version.LineComment = root.Content[i+1].LineComment
			root.Content[i+1] = version
			replaced = true
			break
		}
	}
	if !replaced {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: keyVersion}
		// A comment heading the file stays above the new first key.
		if len(root.Content) > 0 {
			key.HeadComment = root.Content[0].HeadComment
			root.Content[0].HeadComment = ""
		}
		root.Content = append([]*yaml.Node{key, version}, root.Content...)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// tomlVersionLine matches an explicit top-level "version = 0". Top-level
// keys precede every table, so the first match is the top-level one.
var tomlVersionLine = regexp.MustCompile(`(?m)^([ \t]*version[ \t]*=[ \t]*)0\b`)

// stampTOML sets version = 1, rewriting an explicit zero in place.
func stampTOML(data []byte) ([]byte, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, ok := raw[keyVersion]; !ok {
		return append([]byte(keyVersion+" = "+strconv.Itoa(LatestVersion)+"\n"), data...), nil
	}

	loc := tomlVersionLine.FindSubmatchIndex(data)
	if loc == nil {
		return nil, fmt.Errorf("%s: cannot rewrite value in place", keyVersion)
	}
	out := make([]byte, 0, len(data)+1)
	out = append(out, data[:loc[3]]...)
	out = append(out, strconv.Itoa(LatestVersion)...)
	out = append(out, data[loc[1]:]...)
	return out, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "a list"
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.AliasNode:
		return "an alias"
	default:
		return "kind " + strconv.Itoa(int(k))
	}
}
