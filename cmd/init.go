package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/camkes-http/makefs/internal/templates"
	"github.com/camkes-http/makefs/internal/ui"
	"github.com/spf13/cobra"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default makefs.yaml",
	Args:  cobra.NoArgs,
	// init creates the config file, so it must not require a valid one.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(configPath, sourceDir)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// runInit writes a config file at path from the embedded template and
// creates the web asset directory.
//
// Parameters:
//   - path: Where to write the config file. It must not exist yet.
//   - dir: The web asset directory. If empty, the user is asked (default "web").
//
// Returns:
//   - error: An error if the file already exists or cannot be written.
func runInit(path, dir string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return fmt.Errorf("%s already exists", path)
	}

	if dir == "" {
		dir = ui.Prompt("Source directory", "web")
	}

	content, err := templates.Render("makefs.yaml.tmpl", struct{ SourceDir string }{dir}, nil)
	if err != nil {
		return err
	}

	if parent := filepath.Dir(path); parent != "." {
		if err := os.MkdirAll(parent, 0755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	ui.PrintHeader("Initialized:")
	ui.PrintSuccess("Config", path)
	ui.PrintSuccess("Assets", dir)
	fmt.Fprintln(ui.Output, "Next steps:")
	fmt.Fprintf(ui.Output, "  add .html and .js files to %s\n", dir)
	fmt.Fprintln(ui.Output, "  makefs generate")
	return nil
}
