package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sofmeright/lintcomposer/src/config"
	"github.com/sofmeright/lintcomposer/src/output"
)

var (
	cfgFiles  []string
	verbose   bool
	logFormat string
	cfg       *config.Config
	logger    = zerolog.Nop()
)

// skipConfig lists commands that never read the project config.
var skipConfig = map[string]bool{
	"version": true,
	"presets": true,
	"migrate": true,
}

var rootCmd = &cobra.Command{
	Use:   "lintcomposer",
	Short: "Compose lint presets into a resolved configuration",
	Long: `lintcomposer turns a handful of toggles (strict, typescript, react, nextjs)
and a list of ignore globs into one resolved lint configuration for a rule engine.

The config file is looked up in the working directory, then at the root of the
enclosing git repository (.lintcomposer.yml, .lintcomposer.yaml, .lintcomposer.toml).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(cmd.ErrOrStderr())
		cmd.SetContext(logger.WithContext(cmd.Context()))

		if skipConfig[cmd.Name()] {
			return nil
		}
		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&cfgFiles, "config", nil, "config files, merged in order (default: discovered .lintcomposer.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format: console or json")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func newLogger(w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if logFormat != "json" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: !output.UseColor(), TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	paths := cfgFiles
	if len(paths) == 0 {
		if found := config.Discover("."); found != "" {
			paths = []string{found}
		}
	}
	if len(paths) == 0 {
		logger.Debug().Msg("no config file found, using defaults")
		return config.Defaults(), nil
	}
	logger.Debug().Strs("files", paths).Msg("loading config")
	return config.LoadFiles(cmd.Context(), paths...)
}

// validateConfig logs soft issues and returns hard ones.
func validateConfig() error {
	warnings, err := config.Validate(cfg, nil)
	for _, w := range warnings {
		logger.Warn().Msg(w)
	}
	return err
}

// useColor reports whether w is the terminal stdout and color is wanted.
func useColor(w io.Writer) bool {
	return w == os.Stdout && output.UseColor()
}
