package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/berrythewa/clipstack/internal/daemon"
)

func newDaemonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run or control the clipboard daemon",
	}

	cmd.AddCommand(
		newDaemonRunCmd(),
		newDaemonStopCmd(),
	)
	return cmd
}

func newDaemonRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the daemon in the foreground",
		Long: `Run the clipboard monitor and the command socket in the foreground until
interrupted. Use 'clipstack service install' to keep it running in the
background across sessions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon()
		},
	}
}

func newDaemonStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop a running daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return stopDaemon()
		},
	}
}

func runDaemon() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLogger.Info("starting daemon",
		zap.String("device", cfg.DeviceName),
		zap.String("socket", cfg.Daemon.SocketPath),
	)

	return daemon.New(cfg, zapLogger).Run(ctx)
}

func stopDaemon() error {
	pid, err := daemon.ReadPID(cfg.SystemPaths.DataDir)
	if err != nil {
		return fmt.Errorf("no running daemon found: %w", err)
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find daemon process %d: %w", pid, err)
	}
	if err := proc.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to signal daemon (pid %d): %w", pid, err)
	}

	fmt.Printf("Sent shutdown signal to daemon (pid %d)\n", pid)
	return nil
}
