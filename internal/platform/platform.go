package platform

import (
	"go.uber.org/zap"

	"github.com/berrythewa/clipstack/internal/clipboard"
)

// New returns the system clipboard backend for the current OS, selected at
// compile time through build tags. The error covers environments where the
// backend cannot reach a clipboard at all (a Linux box with no display
// server, for instance); callers are expected to fall back to
// clipboard.NewMemory and run headless.
func New(logger *zap.Logger) (clipboard.Clipboard, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return newClipboard(logger)
}

// NewPasteSimulator returns the platform keystroke synthesizer used to
// signal a paste after a restore. An error means input synthesis is not
// available here; callers fall back to clipboard.NewNopPasteNotifier and
// the user pastes manually.
func NewPasteSimulator(logger *zap.Logger) (clipboard.PasteNotifier, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return newPasteSimulator(logger)
}
