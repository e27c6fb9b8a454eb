//go:build !darwin && !linux && !windows

package platform

import (
	"go.uber.org/zap"

	"github.com/berrythewa/clipstack/internal/clipboard"
)

// Platforms without a system clipboard integration run against the
// in-process backend. History works normally inside the daemon; nothing
// reaches an OS clipboard.
func newClipboard(logger *zap.Logger) (clipboard.Clipboard, error) {
	logger.Warn("no system clipboard backend for this platform, using in-memory clipboard")
	return clipboard.NewMemory(), nil
}
