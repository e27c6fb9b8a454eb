//go:build windows

package platform

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"

	"github.com/berrythewa/clipstack/internal/clipboard"
	"github.com/berrythewa/clipstack/internal/types"
)

var (
	user32                      = windows.NewLazySystemDLL("user32.dll")
	procClipboardSequenceNumber = user32.NewProc("GetClipboardSequenceNumber")
)

// windowsClipboard reads and writes through the x/clipboard bridge and uses
// the session's native clipboard sequence number as its version counter.
// The OS advances the sequence for every clipboard mutation, programmatic
// writes included.
type windowsClipboard struct {
	logger *zap.Logger
}

func newClipboard(logger *zap.Logger) (clipboard.Clipboard, error) {
	if err := initXClip(); err != nil {
		return nil, fmt.Errorf("clipboard unavailable: %w", err)
	}
	if err := procClipboardSequenceNumber.Find(); err != nil {
		return nil, fmt.Errorf("clipboard sequence counter unavailable: %w", err)
	}
	logger.Debug("using windows clipboard backend")
	return &windowsClipboard{logger: logger}, nil
}

func (c *windowsClipboard) Version() (uint64, error) {
	// Returns 0 when the caller lacks clipboard access for this desktop.
	seq, _, _ := procClipboardSequenceNumber.Call()
	return uint64(uint32(seq)), nil
}

func (c *windowsClipboard) Read() ([]types.Representation, error) {
	return readRepresentations(), nil
}

func (c *windowsClipboard) Write(reps []types.Representation) error {
	return writeBestRepresentation(reps)
}

func (c *windowsClipboard) Close() error {
	return nil
}
