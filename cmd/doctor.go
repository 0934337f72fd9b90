package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"

	"github.com/camkes-http/makefs/internal/generator"
	"github.com/camkes-http/makefs/internal/ui"
	"github.com/spf13/cobra"
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the asset layout and toolchain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		layout := cfg.Layout()
		ui.PrintHeader("Checking environment:")
		checkSource(layout)
		checkOutput(layout)
		checkCompiler()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// checkSource reports whether the source directory exists and what it holds.
func checkSource(layout generator.Layout) {
	info, err := os.Stat(layout.SourceDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		ui.PrintWarning("Source", fmt.Sprintf("%s does not exist", layout.SourceDir))
		return
	case err != nil:
		ui.PrintError("Source", err.Error())
		return
	case !info.IsDir():
		ui.PrintError("Source", fmt.Sprintf("%s is not a directory", layout.SourceDir))
		return
	}
	ui.PrintSuccess("Source", layout.SourceDir)

	files, err := generator.Discover(layout)
	if err != nil {
		ui.PrintError("Assets", err.Error())
		return
	}
	if len(files) == 0 {
		ui.PrintWarning("Assets", fmt.Sprintf("no files matching %v", layout.Extensions))
		return
	}
	for _, f := range files {
		symbol := f.Symbol(cfg.Gen.SymbolPrefix)
		if !generator.IsIdentifier(symbol) {
			ui.PrintWarning("Asset", fmt.Sprintf("%s -> %s is not a valid C identifier", f.Name, symbol))
			continue
		}
		ui.PrintSuccess("Asset", fmt.Sprintf("%s -> %s", f.Name, symbol))
	}
}

// checkOutput verifies the output directory can be written to.
func checkOutput(layout generator.Layout) {
	if _, err := os.Stat(layout.OutputDir); errors.Is(err, fs.ErrNotExist) {
		ui.PrintSuccess("Output", fmt.Sprintf("%s (will be created)", layout.OutputDir))
		return
	}
	f, err := os.CreateTemp(layout.OutputDir, ".makefs-doctor-*")
	if err != nil {
		ui.PrintError("Output", fmt.Sprintf("%s is not writable: %v", layout.OutputDir, err))
		return
	}
	name := f.Name()
	closeErr := f.Close()
	if err := os.Remove(name); err != nil {
		ui.PrintWarning("Output", fmt.Sprintf("could not remove temporary file %s: %v", name, err))
	}
	if closeErr != nil {
		ui.PrintError("Output", fmt.Sprintf("%s is not writable: %v", layout.OutputDir, closeErr))
		return
	}
	ui.PrintSuccess("Output", layout.OutputDir)
}

// checkCompiler looks for a C compiler that can consume the generated headers.
func checkCompiler() {
	for _, cc := range []string{"cc", "gcc", "clang"} {
		if path, err := exec.LookPath(cc); err == nil {
			ui.PrintSuccess("C compiler", path)
			return
		}
	}
	ui.PrintWarning("C compiler", "not found in PATH; the headers can still be generated")
}
