package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sofmeright/lintcomposer/src/compose"
	"github.com/sofmeright/lintcomposer/src/preset"
)

// DefaultFile is the config file name tried when no path is given.
const DefaultFile = ".lintcomposer.yml"

// candidateFiles lists the names Discover looks for, in priority order.
var candidateFiles = []string{".lintcomposer.yml", ".lintcomposer.yaml", ".lintcomposer.toml"}

// DefaultIgnores are applied when no file sets ignores.
var DefaultIgnores = []string{"**/node_modules", "**/dist", "**/.next", "**/build"}

// OutputFormat selects how a resolved configuration is printed.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// Config is a loaded lintcomposer project configuration.
type Config struct {
	Version int
	// Composer is an optional semver constraint on the preset catalog.
	Composer string
	// Options holds preset toggles and any keys the loader does not reserve.
	Options  compose.Options
	Ignores  []string
	Includes []string
	// Rules are caller overrides applied after every preset.
	Rules  map[string]preset.Rule
	Output OutputFormat
	// Sources lists the files the config was read from, in merge order.
	Sources []string

	ignoresSet bool
}

// Defaults returns the configuration used when no file exists.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Options: compose.Options{},
		Ignores: append([]string(nil), DefaultIgnores...),
		Rules:   map[string]preset.Rule{},
		Output:  OutputText,
	}
}

// Load reads configuration from a single file.
// If path is empty, it tries the default file.
// Returns defaults if the default file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg, err := LoadFiles(context.Background(), DefaultFile)
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return cfg, err
	}
	return LoadFiles(context.Background(), path)
}

// LoadFiles reads every file concurrently and merges them in argument order.
// Scalars from later files win, ignores and includes are unioned, rules are
// overridden per rule, and unknown option maps are merged recursively.
func LoadFiles(ctx context.Context, paths ...string) (*Config, error) {
	log := zerolog.Ctx(ctx)
	fragments := make([]map[string]any, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			raw, err := readFile(p)
			if err != nil {
				return err
			}
			fragments[i] = raw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cfg := Defaults()
	for i, raw := range fragments {
		log.Debug().Str("file", paths[i]).Int("keys", len(raw)).Msg("read config file")
		if err := cfg.apply(raw); err != nil {
			return nil, fmt.Errorf("%s: %w", paths[i], err)
		}
		cfg.Sources = append(cfg.Sources, paths[i])
	}
	return cfg, nil
}

// Build resolves the configuration into the value handed to the rule engine.
func (c *Config) Build(opts ...compose.BuildOption) *compose.Resolved {
	base := []compose.BuildOption{
		compose.WithIncludes(c.Includes...),
	}
	if len(c.Rules) > 0 {
		base = append(base, compose.WithOverrides(c.Rules))
	}
	return compose.Build(c.Options, c.Ignores, append(base, opts...)...)
}

// SetOption overrides a single option, as the CLI's --set flag does.
func (c *Config) SetOption(name string, value any) {
	if c.Options == nil {
		c.Options = compose.Options{}
	}
	c.Options[name] = value
}

// AddIgnores appends extra ignore globs.
func (c *Config) AddIgnores(globs ...string) {
	c.Ignores = append(c.Ignores, globs...)
	c.ignoresSet = true
}

func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := decode(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return raw, nil
}

// FileFormat is the syntax of a config file.
type FileFormat string

const (
	FormatYAML FileFormat = "yaml"
	FormatTOML FileFormat = "toml"
)

// FormatFor picks the syntax from the file extension. Anything that is not
// .toml is read as YAML.
func FormatFor(path string) FileFormat {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}
