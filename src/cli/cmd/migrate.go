package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sofmeright/lintcomposer/src/config"
)

var (
	migrateInPlace bool
	migrateOutput  string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [file]",
	Short: "Migrate config to the latest schema version",
	Long: `Migrate a .lintcomposer config file to the latest schema version.

By default, prints the migrated config to stdout. Use --in-place to
overwrite the file, or --output to write to a different path.

Unversioned files (plain toggles and ignores) are stamped with version 1.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVarP(&migrateInPlace, "in-place", "i", false, "overwrite the config file in place")
	migrateCmd.Flags().StringVarP(&migrateOutput, "output", "o", "", "write migrated config to this path")

	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	inputPath := config.DefaultFile
	switch {
	case len(args) > 0:
		inputPath = args[0]
	case len(cfgFiles) > 0:
		inputPath = cfgFiles[0]
	default:
		if found := config.Discover("."); found != "" {
			inputPath = found
		}
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	migrated, err := config.MigrateToLatest(data, config.FormatFor(inputPath))
	if err != nil {
		return err
	}

	// Determine output destination.
	switch {
	case migrateInPlace:
		if err := os.WriteFile(inputPath, migrated, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", inputPath, err)
		}
		logger.Info().Str("file", inputPath).Msg("migrated in place")

	case migrateOutput != "":
		if err := os.WriteFile(migrateOutput, migrated, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", migrateOutput, err)
		}
		logger.Info().Str("from", inputPath).Str("to", migrateOutput).Msg("migrated")

	default:
		// Print to stdout (pipeable).
		fmt.Fprint(cmd.OutOrStdout(), string(migrated))
	}

	return nil
}
