//go:build darwin || linux || windows

package platform

import (
	"errors"
	"sync"

	xclipboard "golang.design/x/clipboard"

	"github.com/berrythewa/clipstack/internal/types"
)

// errNoWritableRepresentation means a restore carried nothing the
// x/clipboard bridge can place on a real clipboard.
var errNoWritableRepresentation = errors.New("no text or image representation to write")

var (
	xclipOnce sync.Once
	xclipErr  error
)

// initXClip initializes the x/clipboard bridge once per process. The bridge
// refuses to initialize without a reachable clipboard (headless Linux, most
// CI boxes); the error is sticky.
func initXClip() error {
	xclipOnce.Do(func() {
		xclipErr = xclipboard.Init()
	})
	return xclipErr
}

// readRepresentations probes the bridge's formats in text, image order and
// maps them onto the identifiers the rest of the system speaks.
func readRepresentations() []types.Representation {
	var reps []types.Representation
	if text := xclipboard.Read(xclipboard.FmtText); len(text) > 0 {
		reps = append(reps, types.Representation{Type: types.TypePlainText, Data: text})
	}
	if img := xclipboard.Read(xclipboard.FmtImage); len(img) > 0 {
		reps = append(reps, types.Representation{Type: types.TypePNG, Data: img})
	}
	return reps
}

// writeBestRepresentation puts the highest-fidelity payload the bridge can
// carry onto the system clipboard: plain text when present, otherwise the
// first image. Every bridge write replaces the whole clipboard, so exactly
// one representation lands; richer types ride along only on the in-memory
// backend.
func writeBestRepresentation(reps []types.Representation) error {
	for _, r := range reps {
		if types.IsTextType(r.Type) && len(r.Data) > 0 {
			xclipboard.Write(xclipboard.FmtText, r.Data)
			return nil
		}
	}
	for _, r := range reps {
		if types.IsImageType(r.Type) && len(r.Data) > 0 {
			xclipboard.Write(xclipboard.FmtImage, r.Data)
			return nil
		}
	}
	return errNoWritableRepresentation
}
