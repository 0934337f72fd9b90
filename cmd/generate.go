package cmd

import (
	"context"
	"fmt"

	"github.com/camkes-http/makefs/internal/generator"
	"github.com/camkes-http/makefs/internal/ui"
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate every asset header and the aggregate header",
	// Like the root command, stray arguments and unknown flags are ignored.
	Args:               cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

// runGenerate cleans the previous output, writes one header per asset and
// then the aggregate header, reporting each step on the console.
func runGenerate(ctx context.Context) error {
	layout := cfg.Layout()

	res, err := generator.Generate(ctx, layout, cfg.Options())
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}
	printResult(layout, res)
	return nil
}

func printResult(layout generator.Layout, res *generator.Result) {
	ui.PrintHeader("Generating headers:")
	if len(res.Files) == 0 {
		ui.PrintWarning("No assets", fmt.Sprintf("nothing matching %v in %s", layout.Extensions, layout.SourceDir))
	}
	for _, h := range res.Headers {
		ui.PrintSuccess("Header", h)
	}
	ui.PrintSuccess("Manifest", fmt.Sprintf("%s (%d includes)", res.Manifest, len(res.Includes)))
}
