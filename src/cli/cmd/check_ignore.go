package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNothingIgnored = errors.New("no given path is ignored")

var checkIgnoreNonMatching bool

var checkIgnoreCmd = &cobra.Command{
	Use:   "check-ignore <paths...>",
	Short: "Report which paths the ignore globs exclude",
	Long: `Check paths against the resolved ignore globs.

Each ignored path is printed with the pattern that excludes it. Exits non-zero
when none of the paths is ignored, like git check-ignore.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheckIgnore,
}

func init() {
	checkIgnoreCmd.Flags().BoolVarP(&checkIgnoreNonMatching, "non-matching", "n", false, "also print paths that are not ignored")

	rootCmd.AddCommand(checkIgnoreCmd)
}

func runCheckIgnore(cmd *cobra.Command, args []string) error {
	if err := validateConfig(); err != nil {
		return err
	}
	r := cfg.Build()
	w := cmd.OutOrStdout()

	matched := 0
	for _, p := range args {
		pattern, ok := r.Ignored(p)
		if ok {
			matched++
			fmt.Fprintf(w, "%s\t%s\n", pattern, p)
			continue
		}
		logger.Debug().Str("path", p).Msg("not ignored")
		if checkIgnoreNonMatching {
			fmt.Fprintf(w, "::\t%s\n", p)
		}
	}

	if matched == 0 {
		return errNothingIgnored
	}
	return nil
}
