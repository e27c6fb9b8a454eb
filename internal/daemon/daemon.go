package daemon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/berrythewa/clipstack/internal/clipboard"
	"github.com/berrythewa/clipstack/internal/config"
	"github.com/berrythewa/clipstack/internal/history"
	"github.com/berrythewa/clipstack/internal/ipc"
	"github.com/berrythewa/clipstack/internal/platform"
)

// Daemon ties together the clipboard monitor, the history stack and the
// IPC server.
type Daemon struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   *history.Store
	clip    clipboard.Clipboard
	paste   clipboard.PasteNotifier
	monitor *clipboard.Monitor
	server  *ipc.Server

	startedAt time.Time
}

// New wires up a daemon from configuration. A missing platform clipboard
// degrades to the in-memory backend so the IPC surface stays usable.
func New(cfg *config.Config, logger *zap.Logger) *Daemon {
	store := history.NewStore(cfg.History.Capacity)

	clip, err := platform.New(logger)
	if err != nil {
		logger.Warn("platform clipboard unavailable, falling back to in-memory backend",
			zap.Error(err))
		clip = clipboard.NewMemory()
	}

	var paste clipboard.PasteNotifier
	if cfg.Monitor.PasteEnabled {
		paste, err = platform.NewPasteSimulator(logger)
		if err != nil {
			logger.Warn("paste simulation unavailable", zap.Error(err))
			paste = clipboard.NewNopPasteNotifier(logger)
		}
	} else {
		paste = clipboard.NewNopPasteNotifier(logger)
	}

	monitor := clipboard.NewMonitor(clip, store, paste, logger, clipboard.MonitorOptions{
		PollInterval: cfg.Monitor.PollInterval(),
		SettleDelay:  cfg.Monitor.SettleDelay(),
	})

	d := &Daemon{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		clip:    clip,
		paste:   paste,
		monitor: monitor,
	}
	d.server = ipc.NewServer(cfg.Daemon.SocketPath, d.handleRequest, logger)
	return d
}

// Run starts the monitor and IPC server, then blocks until the context is
// cancelled. Shutdown stops accepting requests before the monitor quits so
// no command can race a dying engine.
func (d *Daemon) Run(ctx context.Context) error {
	d.startedAt = time.Now()

	if err := d.monitor.Start(); err != nil {
		return fmt.Errorf("failed to start clipboard monitor: %w", err)
	}

	if err := d.server.Start(); err != nil {
		if errors.Is(err, ipc.ErrUnsupportedPlatform) {
			d.logger.Warn("control socket unavailable on this platform, running monitor only")
		} else {
			d.monitor.Stop()
			return err
		}
	}

	pidFile := PIDFilePath(d.cfg.SystemPaths.DataDir)
	if err := writePIDFile(pidFile); err != nil {
		d.logger.Warn("failed to write PID file", zap.String("path", pidFile), zap.Error(err))
	} else {
		defer os.Remove(pidFile)
	}

	d.logger.Info("daemon running",
		zap.String("device", d.cfg.DeviceName),
		zap.String("socket", d.cfg.Daemon.SocketPath),
		zap.Int("history_capacity", d.store.Capacity()))

	<-ctx.Done()

	d.logger.Info("shutting down")
	d.server.Stop()
	d.monitor.Stop()
	if closer, ok := d.paste.(io.Closer); ok {
		closer.Close()
	}
	if err := d.clip.Close(); err != nil {
		d.logger.Warn("failed to close clipboard backend", zap.Error(err))
	}
	return nil
}
