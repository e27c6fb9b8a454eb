//go:build !darwin && !linux && !windows

package platform

import (
	"go.uber.org/zap"

	"github.com/berrythewa/clipstack/internal/clipboard"
)

func newPasteSimulator(logger *zap.Logger) (clipboard.PasteNotifier, error) {
	return clipboard.NewNopPasteNotifier(logger), nil
}
