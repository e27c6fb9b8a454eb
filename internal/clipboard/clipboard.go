package clipboard

import (
	"go.uber.org/zap"

	"github.com/berrythewa/clipstack/internal/types"
)

// Clipboard is the contract a system clipboard service has to satisfy for
// the monitor to drive it: a change counter for cheap polling, a typed read
// of the current content, and an atomic replace-write.
type Clipboard interface {
	// Version returns the service's change counter. The counter increases
	// monotonically by at least one for every clipboard mutation,
	// programmatic writes included. Backends without a native counter
	// maintain their own.
	Version() (uint64, error)

	// Read returns every readable representation of the current content in
	// the source's priority order. An empty clipboard yields an empty
	// slice, not an error.
	Read() ([]types.Representation, error)

	// Write replaces the clipboard's contents with the given
	// representations as a single item and advances the change counter.
	Write(reps []types.Representation) error

	// Close releases any OS resources held by the backend.
	Close() error
}

// PasteNotifier is the paste-simulation collaborator. The monitor signals it
// after a restore once the clipboard has settled; the notifier synthesizes a
// platform paste keystroke. It receives nothing beyond the go-ahead.
type PasteNotifier interface {
	Paste() error
}

// NopPasteNotifier satisfies PasteNotifier without synthesizing anything.
// Used when paste simulation is disabled or unsupported; the user pastes by
// hand.
type NopPasteNotifier struct {
	logger *zap.Logger
}

// NewNopPasteNotifier creates a notifier that only logs the go-ahead.
func NewNopPasteNotifier(logger *zap.Logger) *NopPasteNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NopPasteNotifier{logger: logger}
}

func (n *NopPasteNotifier) Paste() error {
	n.logger.Debug("paste simulation disabled, skipping keystroke")
	return nil
}
