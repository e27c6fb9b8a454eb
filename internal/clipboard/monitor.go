package clipboard

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/berrythewa/clipstack/internal/history"
	"github.com/berrythewa/clipstack/internal/types"
)

const (
	// DefaultPollInterval is how often the change counter is sampled.
	// Polling bounds detection latency at roughly one interval.
	DefaultPollInterval = 500 * time.Millisecond

	// DefaultSettleDelay separates a restore's clipboard write from the
	// synthetic paste keystroke, giving the OS time to propagate the new
	// contents before the target application reads them.
	DefaultSettleDelay = 50 * time.Millisecond
)

// MonitorOptions tune the observer's timing. Zero values select defaults.
type MonitorOptions struct {
	PollInterval time.Duration
	SettleDelay  time.Duration
}

// MonitorStatus is a point-in-time view of the observer's counters, served
// over IPC for the status command.
type MonitorStatus struct {
	Running       bool      `json:"running"`
	Captures      uint64    `json:"captures"`
	Suppressed    uint64    `json:"suppressed"`
	Deduplicated  uint64    `json:"deduplicated"`
	Skipped       uint64    `json:"skipped"`
	Restores      uint64    `json:"restores"`
	ErrorCount    uint64    `json:"error_count"`
	LastError     string    `json:"last_error,omitempty"`
	LastCaptureAt time.Time `json:"last_capture_at"`
}

// Monitor bridges the system clipboard to the history store and owns the
// restore sequence. All detection cycles and restores are serialized
// through one mutex, so the store and the suppression flag only ever see
// one logical actor.
//
// Detection is poll based: each cycle samples the clipboard's change
// counter and only reads content when the counter moved. A change observed
// while the store's suppression flag is armed is treated as the echo of our
// own restore-write and skipped. Because polling batches everything inside
// one window into a single observed change, an external write landing in
// the same window as a restore is swallowed with it and never captured.
// That is a known, bounded limitation of the poll design, not something
// this code tries to paper over.
type Monitor struct {
	clipboard Clipboard
	store     *history.Store
	paste     PasteNotifier
	logger    *zap.Logger

	pollInterval time.Duration
	settleDelay  time.Duration

	mu          sync.Mutex
	lastVersion uint64
	primed      bool
	running     bool
	stopCh      chan struct{}
	doneCh      chan struct{}

	captures      uint64
	suppressed    uint64
	deduplicated  uint64
	skipped       uint64
	restores      uint64
	errorCount    uint64
	lastError     string
	lastCaptureAt time.Time
}

// NewMonitor wires an observer to a clipboard and a store. A nil paste
// notifier disables keystroke simulation, a nil logger discards logs.
func NewMonitor(clip Clipboard, store *history.Store, paste PasteNotifier, logger *zap.Logger, opts MonitorOptions) *Monitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if paste == nil {
		paste = NewNopPasteNotifier(logger)
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = DefaultSettleDelay
	}
	return &Monitor{
		clipboard:    clip,
		store:        store,
		paste:        paste,
		logger:       logger,
		pollInterval: opts.PollInterval,
		settleDelay:  opts.SettleDelay,
	}
}

// Start primes the change counter against the current clipboard state and
// launches the poll loop. Content already on the clipboard at startup is
// not captured; only changes from here on are.
func (m *Monitor) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return fmt.Errorf("monitor already running")
	}

	if version, err := m.clipboard.Version(); err == nil {
		m.lastVersion = version
		m.primed = true
	} else {
		// First successful poll will prime instead.
		m.logger.Warn("could not read initial clipboard version", zap.Error(err))
	}

	m.stopCh = make(chan struct{})
	m.doneCh = make(chan struct{})
	m.running = true

	go m.run(m.stopCh, m.doneCh)

	m.logger.Info("clipboard monitor started",
		zap.Duration("poll_interval", m.pollInterval),
		zap.Int("history_capacity", m.store.Capacity()))
	return nil
}

// Stop halts the poll loop and waits for it to exit. Safe to call more than
// once and before Start. Nothing in a cycle is long-running, so there is no
// in-flight work to cancel.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	stopCh, doneCh := m.stopCh, m.doneCh
	m.mu.Unlock()

	close(stopCh)
	<-doneCh
	m.logger.Info("clipboard monitor stopped")
}

func (m *Monitor) run(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			m.cycle()
		}
	}
}

// cycle runs one detection pass: sample the counter, bail when nothing
// moved, otherwise either consume a pending suppression or capture the new
// content into history. Detection errors are logged and swallowed; an
// unreadable clipboard is a normal steady-state condition, not a fault.
func (m *Monitor) cycle() {
	m.mu.Lock()
	defer m.mu.Unlock()

	version, err := m.clipboard.Version()
	if err != nil {
		m.noteError(err)
		m.logger.Debug("clipboard version poll failed", zap.Error(err))
		return
	}
	if !m.primed {
		m.primed = true
		m.lastVersion = version
		return
	}
	if version == m.lastVersion {
		return
	}
	m.lastVersion = version

	if m.store.ConsumeSuppression() {
		m.suppressed++
		m.logger.Debug("suppressed restore echo", zap.Uint64("version", version))
		return
	}

	reps, err := m.clipboard.Read()
	if err != nil {
		m.skipped++
		m.noteError(err)
		m.logger.Debug("clipboard read failed", zap.Error(err))
		return
	}
	snap, err := types.NewSnapshot(reps)
	if err != nil {
		m.skipped++
		m.logger.Debug("no readable clipboard content", zap.Error(err))
		return
	}

	if !m.store.Push(snap) {
		m.deduplicated++
		m.logger.Debug("duplicate text capture dropped", zap.Uint64("version", version))
		return
	}

	m.captures++
	m.lastCaptureAt = time.Now()
	m.logger.Info("captured clipboard change",
		zap.String("label", snap.Label()),
		zap.String("kind", string(snap.Kind())),
		zap.Int("size", snap.Size()),
		zap.Uint64("version", version))
}

// Restore puts the history entry at index back on the system clipboard and,
// once the settle delay has passed, signals the paste collaborator. The
// suppression flag is armed before the write so the resulting change is not
// re-captured.
//
// An out-of-range index fails before any side effect. A failed clipboard
// write disarms the flag again and is returned to the caller. A failed
// paste keystroke is logged only: the clipboard write already succeeded and
// a manual paste still works, so the restore counts as done.
func (m *Monitor) Restore(index int) error {
	return m.restore(index, true)
}

// RestoreWithoutPaste is Restore minus the keystroke signal, for callers
// that only want the content back on the clipboard.
func (m *Monitor) RestoreWithoutPaste(index int) error {
	return m.restore(index, false)
}

func (m *Monitor) restore(index int, notify bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap, err := m.store.ItemAt(index)
	if err != nil {
		return err
	}

	m.store.SuppressNext()
	if err := snap.WriteBack(m.clipboard); err != nil {
		// The write never happened, so its echo never will; leaving the
		// flag armed would swallow the next real change.
		m.store.DisarmSuppression()
		m.noteError(err)
		return fmt.Errorf("restore clipboard write: %w", err)
	}

	m.restores++
	m.logger.Info("restored history entry",
		zap.Int("index", index),
		zap.String("label", snap.Label()))

	if notify {
		go m.signalPaste()
	}
	return nil
}

// signalPaste waits out the settle delay, then hands the go-ahead to the
// paste collaborator. Runs outside the monitor lock.
func (m *Monitor) signalPaste() {
	time.Sleep(m.settleDelay)
	if err := m.paste.Paste(); err != nil {
		m.logger.Warn("paste simulation failed, content stays on clipboard", zap.Error(err))
	}
}

// Status reports the observer's counters.
func (m *Monitor) Status() MonitorStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	return MonitorStatus{
		Running:       m.running,
		Captures:      m.captures,
		Suppressed:    m.suppressed,
		Deduplicated:  m.deduplicated,
		Skipped:       m.skipped,
		Restores:      m.restores,
		ErrorCount:    m.errorCount,
		LastError:     m.lastError,
		LastCaptureAt: m.lastCaptureAt,
	}
}

func (m *Monitor) noteError(err error) {
	m.errorCount++
	m.lastError = err.Error()
}
