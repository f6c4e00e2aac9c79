package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sofmeright/lintcomposer/src/output"
	"github.com/sofmeright/lintcomposer/src/store"
)

var (
	resolveFormat      string
	resolveSet         []string
	resolveIgnores     []string
	resolveFingerprint bool
	resolveWrite       bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved lint configuration",
	Long: `Build the resolved configuration from the project config and print it.

Toggles can be overridden for one run with --set (e.g. --set strict=false),
and extra ignore globs added with --ignore.

With --write, the configuration is also stored under
.lintcomposer/resolved/ by fingerprint, and current.json is updated for the
rule engine to read.`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "f", "", "output format: text, json or yaml (default: from config, then text)")
	resolveCmd.Flags().StringArrayVar(&resolveSet, "set", nil, "override an option, name=value (repeatable)")
	resolveCmd.Flags().StringSliceVar(&resolveIgnores, "ignore", nil, "additional ignore globs (comma-separated)")
	resolveCmd.Flags().BoolVar(&resolveFingerprint, "fingerprint", false, "print only the configuration fingerprint")
	resolveCmd.Flags().BoolVar(&resolveWrite, "write", false, "store the configuration under .lintcomposer/resolved")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	for _, kv := range resolveSet {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return fmt.Errorf("--set %q: expected name=value", kv)
		}
		cfg.SetOption(strings.TrimSpace(name), parseOptionValue(value))
	}
	if len(resolveIgnores) > 0 {
		cfg.AddIgnores(resolveIgnores...)
	}
	if err := validateConfig(); err != nil {
		return err
	}

	r := cfg.Build()
	fp, err := r.Fingerprint()
	if err != nil {
		return err
	}
	presets := make([]string, len(r.Presets))
	for i, p := range r.Presets {
		presets[i] = string(p)
	}
	logger.Debug().
		Strs("presets", presets).
		Int("ignores", len(r.Ignores)).
		Str("fingerprint", fp).
		Msg("resolved configuration")

	w := cmd.OutOrStdout()
	if resolveWrite {
		rootDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		st := &store.Store{RootDir: rootDir}
		path, err := st.Put(r)
		if err != nil {
			return fmt.Errorf("storing resolved configuration: %w", err)
		}
		store.EnsureGitignore(rootDir)
		logger.Info().Str("file", path).Msg("stored resolved configuration")
	}

	if resolveFingerprint {
		fmt.Fprintln(w, fp)
		return nil
	}

	// CLI flag > config > default text
	format := resolveFormat
	if format == "" {
		format = string(cfg.Output)
	}
	return output.Render(w, r, output.Format(format), useColor(w))
}

// parseOptionValue reads booleans as booleans and leaves anything else as a
// string, so validation can name a mistyped toggle.
func parseOptionValue(s string) any {
	s = strings.TrimSpace(s)
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
