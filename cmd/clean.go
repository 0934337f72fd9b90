package cmd

import (
	"fmt"

	"github.com/camkes-http/makefs/internal/generator"
	"github.com/camkes-http/makefs/internal/ui"
	"github.com/spf13/cobra"
)

// cleanCmd represents the clean command. "makefs -c" is routed here too.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete the generated headers",
	Args:               cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClean()
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

// runClean removes the aggregate header and the header of every asset that
// still exists. Missing headers are not an error.
func runClean() error {
	removed, err := generator.CleanAll(cfg.Layout())
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}

	ui.PrintHeader("Cleaning headers:")
	if len(removed) == 0 {
		ui.PrintSuccess("Clean", "nothing to remove")
	}
	for _, path := range removed {
		ui.PrintSuccess("Removed", path)
	}
	return nil
}
