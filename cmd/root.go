package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/camkes-http/makefs/internal/config"
	"github.com/camkes-http/makefs/internal/ui"
	"github.com/camkes-http/makefs/pkg/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	sourceDir  string
	logLevel   string
	logFile    string

	// cfg is the configuration loaded by loadConfig for the running command.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
// Without a subcommand it behaves like generate; unknown flags and stray
// arguments are ignored rather than rejected.
var rootCmd = &cobra.Command{
	Use:   "makefs",
	Short: "Embed web assets into C headers",
	Long: `makefs converts the HTML and JavaScript files of a web directory into C headers
holding their contents as byte arrays, plus one aggregate header including them all,
so they can be compiled into a binary that has no filesystem at runtime.`,
	Args:               cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	log.Close()
	if err != nil {
		ui.PrintError("Error", err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the makefs config file")
	rootCmd.PersistentFlags().StringVar(&sourceDir, "dir", "", "Web asset directory (overrides source.dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stdout")
}

// IsLegacyClean reports whether args request clean mode the way the original
// script did: all arguments concatenated must equal "-c".
func IsLegacyClean(args []string) bool {
	return strings.Join(args, "") == "-c"
}

// normalizeArgs maps the legacy clean invocation onto the clean command.
func normalizeArgs(args []string) []string {
	if IsLegacyClean(args) {
		return []string{"clean"}
	}
	return args
}

// loadConfig reads the config file, applies flag overrides and defaults,
// validates the result and initializes logging.
func loadConfig(cmd *cobra.Command) error {
	loaded, err := config.Load(configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	if sourceDir != "" {
		loaded.Source.Dir = sourceDir
	}
	if logLevel != "" {
		loaded.Logging.Level = logLevel
	}
	if logFile != "" {
		loaded.Logging.Path = logFile
	}

	config.ApplyDefaults(loaded)
	if err := config.Validate(loaded); err != nil {
		return err
	}
	if err := log.Init(loaded.Logging.Path, loaded.Logging.Level); err != nil {
		return err
	}

	cfg = loaded
	return nil
}
