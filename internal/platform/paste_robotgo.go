//go:build darwin || windows

package platform

import (
	"fmt"
	"runtime"

	"github.com/go-vgo/robotgo"
	"go.uber.org/zap"

	"github.com/berrythewa/clipstack/internal/clipboard"
)

// pasteSimulator taps the platform paste chord through robotgo. On macOS
// the synthetic keystroke needs the accessibility permission; without it
// KeyTap fails and the restore's clipboard write stands on its own.
type pasteSimulator struct {
	logger   *zap.Logger
	modifier string
}

func newPasteSimulator(logger *zap.Logger) (clipboard.PasteNotifier, error) {
	modifier := "ctrl"
	if runtime.GOOS == "darwin" {
		modifier = "cmd"
	}
	return &pasteSimulator{logger: logger, modifier: modifier}, nil
}

func (p *pasteSimulator) Paste() error {
	if err := robotgo.KeyTap("v", p.modifier); err != nil {
		return fmt.Errorf("synthesize paste keystroke: %w", err)
	}
	p.logger.Debug("paste keystroke synthesized", zap.String("modifier", p.modifier))
	return nil
}
