package cmd

import (
	"fmt"

	"github.com/camkes-http/makefs/internal/ui"
	"github.com/camkes-http/makefs/version"
	"github.com/spf13/cobra"
)

// versionCmd prints build information. --short prints only the version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of makefs",
	Args:  cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		short, err := cmd.Flags().GetBool("short")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		v := version.Get()
		if short {
			fmt.Fprintln(ui.Output, v.Version)
		} else {
			fmt.Fprintln(ui.Output, v.String())
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")
	rootCmd.AddCommand(versionCmd)
}
