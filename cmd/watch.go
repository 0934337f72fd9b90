package cmd

import (
	"context"
	"fmt"

	"github.com/camkes-http/makefs/internal/ui"
	"github.com/camkes-http/makefs/internal/watch"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Generate headers, then regenerate whenever an asset changes",
	Long: `Runs generate once and then watches the web asset directory. Whenever a
matching file is created, written, renamed or removed, generate runs again.
Stop with Ctrl+C.`,
	Args:               cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// runWatch hands generation to the watcher, which runs it once the directory
// is being watched and again after every burst of changes.
func runWatch(ctx context.Context) error {
	layout := cfg.Layout()
	ui.PrintHeader(fmt.Sprintf("Watching %s (Ctrl+C to stop)", layout.SourceDir))
	return watch.Run(ctx, layout.SourceDir, layout.Matches, cfg.DebounceInterval(), func(ctx context.Context) error {
		err := runGenerate(ctx)
		if err != nil {
			ui.PrintError("Error", err.Error())
		}
		return err
	})
}
