//go:build darwin

package platform

// #cgo CFLAGS: -x objective-c
// #cgo LDFLAGS: -framework Cocoa
// #import <Cocoa/Cocoa.h>
//
// long clipstack_changeCount() {
//     return (long)[[NSPasteboard generalPasteboard] changeCount];
// }
import "C"

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/berrythewa/clipstack/internal/clipboard"
	"github.com/berrythewa/clipstack/internal/types"
)

// darwinClipboard reads and writes through the x/clipboard bridge and polls
// NSPasteboard's native changeCount as its version counter. The pasteboard
// bumps the count for every mutation, our own writes included, which is
// exactly the contract the monitor needs.
type darwinClipboard struct {
	logger *zap.Logger
}

func newClipboard(logger *zap.Logger) (clipboard.Clipboard, error) {
	if err := initXClip(); err != nil {
		return nil, fmt.Errorf("pasteboard unavailable: %w", err)
	}
	logger.Debug("using NSPasteboard clipboard backend")
	return &darwinClipboard{logger: logger}, nil
}

func (c *darwinClipboard) Version() (uint64, error) {
	return uint64(C.clipstack_changeCount()), nil
}

func (c *darwinClipboard) Read() ([]types.Representation, error) {
	return readRepresentations(), nil
}

func (c *darwinClipboard) Write(reps []types.Representation) error {
	return writeBestRepresentation(reps)
}

func (c *darwinClipboard) Close() error {
	return nil
}
