package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/berrythewa/clipstack/internal/common"
	"github.com/berrythewa/clipstack/internal/config"
	"github.com/berrythewa/clipstack/internal/daemon"
)

func main() {
	configPath := flag.String("config", "", "path to the configuration file")
	socketPath := flag.String("socket", "", "override the command socket path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "clipstackd: %v\n", err)
		os.Exit(1)
	}
	if *socketPath != "" {
		cfg.Daemon.SocketPath = *socketPath
	}

	logger, err := common.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "clipstackd: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := daemon.New(cfg, logger).Run(ctx); err != nil {
		logger.Error("daemon exited", zap.Error(err))
		os.Exit(1)
	}
}
