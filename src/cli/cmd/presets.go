package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/lintcomposer/src/output"
	"github.com/sofmeright/lintcomposer/src/preset"
)

var presetsFormat string

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the presets in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := preset.Default()
		w := cmd.OutOrStdout()

		switch presetsFormat {
		case "json":
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Version string          `json:"version"`
				Presets []preset.Preset `json:"presets"`
			}{catalog.Version(), catalog.All()})
		case "text", "":
			output.RenderPresets(w, catalog.All(), useColor(w))
			return nil
		default:
			return fmt.Errorf("unknown format %q (supported: text, json)", presetsFormat)
		}
	},
}

func init() {
	presetsCmd.Flags().StringVarP(&presetsFormat, "format", "f", "text", "output format: text or json")

	rootCmd.AddCommand(presetsCmd)
}
