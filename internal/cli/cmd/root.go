package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/berrythewa/clipstack/internal/common"
	"github.com/berrythewa/clipstack/internal/config"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "clipstack",
	Short: "A clipboard history stack with instant restore",
	Long: `Clipstack keeps a bounded stack of recent clipboard snapshots and can
push any of them back onto the system clipboard, optionally followed by a
paste keystroke into the frontmost application.

The daemon (clipstackd or 'clipstack daemon run') watches the clipboard;
this CLI talks to it over a local socket.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initRuntime()
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is the platform config dir)")
	flags.StringVar(&socketOverride, "socket", "", "daemon socket path (overrides config)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	flags.BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")
	flags.BoolVar(&useJSON, "json", false, "output machine-readable JSON")

	rootCmd.AddCommand(
		newDaemonCmd(),
		newHistoryCmd(),
		newRestoreCmd(),
		newWatchCmd(),
		newCurrentCmd(),
		newStatusCmd(),
		newClearCmd(),
		newConfigCmd(),
		newServiceCmd(),
		newVersionCmd(),
	)
}

// initRuntime loads configuration and builds the shared logger. Verbosity
// flags override the configured log level.
func initRuntime() error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch {
	case verbose:
		loaded.Log.Level = "debug"
	case quiet:
		loaded.Log.Level = "warn"
	}
	if socketOverride != "" {
		loaded.Daemon.SocketPath = socketOverride
	}

	logger, err := common.NewLogger(loaded)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg = loaded
	zapLogger = logger
	return nil
}
