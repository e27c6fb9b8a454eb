//go:build linux

package platform

import (
	"fmt"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"go.uber.org/zap"

	"github.com/berrythewa/clipstack/internal/clipboard"
)

// x11PasteSimulator holds an X connection and fakes the ctrl+v chord
// through the XTEST extension.
type x11PasteSimulator struct {
	logger *zap.Logger
	xu     *xgbutil.XUtil
	root   xproto.Window
}

func newPasteSimulator(logger *zap.Logger) (clipboard.PasteNotifier, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X display: %w", err)
	}
	if err := xtest.Init(xu.Conn()); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("XTEST extension unavailable: %w", err)
	}
	keybind.Initialize(xu)

	logger.Debug("using XTEST paste simulator")
	return &x11PasteSimulator{
		logger: logger,
		xu:     xu,
		root:   xu.RootWin(),
	}, nil
}

// Paste presses and releases ctrl+v. The small sleeps between fake events
// keep slow toolkits from dropping the chord.
func (p *x11PasteSimulator) Paste() error {
	ctrl, err := p.keycode("Control_L")
	if err != nil {
		return err
	}
	v, err := p.keycode("v")
	if err != nil {
		return err
	}

	conn := p.xu.Conn()
	xtest.FakeInput(conn, xproto.KeyPress, byte(ctrl), 0, p.root, 0, 0, 0)
	time.Sleep(10 * time.Millisecond)
	xtest.FakeInput(conn, xproto.KeyPress, byte(v), 0, p.root, 0, 0, 0)
	time.Sleep(25 * time.Millisecond)
	xtest.FakeInput(conn, xproto.KeyRelease, byte(v), 0, p.root, 0, 0, 0)
	time.Sleep(10 * time.Millisecond)
	xtest.FakeInput(conn, xproto.KeyRelease, byte(ctrl), 0, p.root, 0, 0, 0)
	conn.Sync()

	p.logger.Debug("paste chord synthesized via XTEST")
	return nil
}

func (p *x11PasteSimulator) keycode(name string) (xproto.Keycode, error) {
	codes := keybind.StrToKeycodes(p.xu, name)
	if len(codes) == 0 {
		return 0, fmt.Errorf("no keycode mapped for %q", name)
	}
	return codes[0], nil
}

// Close drops the X connection.
func (p *x11PasteSimulator) Close() error {
	p.xu.Conn().Close()
	return nil
}
