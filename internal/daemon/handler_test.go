package daemon

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/berrythewa/clipstack/internal/clipboard"
	"github.com/berrythewa/clipstack/internal/config"
	"github.com/berrythewa/clipstack/internal/history"
	"github.com/berrythewa/clipstack/internal/ipc"
	"github.com/berrythewa/clipstack/internal/types"
)

// newTestDaemon wires a daemon around the in-memory clipboard so handlers
// can be driven without a platform backend or a live socket.
func newTestDaemon(t *testing.T) (*Daemon, *clipboard.Memory) {
	t.Helper()

	mem := clipboard.NewMemory()
	store := history.NewStore(5)
	logger := zap.NewNop()
	monitor := clipboard.NewMonitor(mem, store, nil, logger, clipboard.MonitorOptions{
		PollInterval: 10 * time.Millisecond,
		SettleDelay:  time.Millisecond,
	})

	cfg := &config.Config{
		DeviceName: "test-box",
		Daemon:     config.DaemonConfig{SocketPath: filepath.Join(t.TempDir(), "test.sock")},
	}

	d := &Daemon{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		clip:      mem,
		monitor:   monitor,
		startedAt: time.Now(),
	}
	d.server = ipc.NewServer(cfg.Daemon.SocketPath, d.handleRequest, logger)
	return d, mem
}

func textReps(text string) []types.Representation {
	return []types.Representation{{Type: types.TypePlainText, Data: []byte(text)}}
}

func pushText(t *testing.T, d *Daemon, text string) {
	t.Helper()
	snap, err := types.NewSnapshot(textReps(text))
	require.NoError(t, err)
	require.True(t, d.store.Push(snap))
}

func TestHandleHistoryList(t *testing.T) {
	d, _ := newTestDaemon(t)
	pushText(t, d, "alpha")
	pushText(t, d, "beta")

	resp := d.handleRequest(&ipc.Request{Command: ipc.CmdHistoryList})
	require.Equal(t, ipc.StatusOK, resp.Status)

	list, ok := resp.Data.(ipc.HistoryList)
	require.True(t, ok)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "beta", list.Items[0].Label)
	assert.Equal(t, 0, list.Items[0].Index)
	assert.Equal(t, "alpha", list.Items[1].Label)
	assert.Equal(t, 5, list.Capacity)
	assert.Equal(t, string(types.KindText), list.Items[0].Kind)
	assert.True(t, list.Items[0].HasText)
}

func TestHandleHistoryListLimit(t *testing.T) {
	d, _ := newTestDaemon(t)
	pushText(t, d, "one")
	pushText(t, d, "two")
	pushText(t, d, "three")

	resp := d.handleRequest(&ipc.Request{
		Command: ipc.CmdHistoryList,
		Args:    map[string]interface{}{"limit": 2},
	})
	require.Equal(t, ipc.StatusOK, resp.Status)

	list := resp.Data.(ipc.HistoryList)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "three", list.Items[0].Label)
	assert.Equal(t, "two", list.Items[1].Label)
}

func TestHandleHistoryGet(t *testing.T) {
	d, _ := newTestDaemon(t)
	pushText(t, d, "alpha")
	pushText(t, d, "beta")

	resp := d.handleRequest(&ipc.Request{
		Command: ipc.CmdHistoryGet,
		Args:    map[string]interface{}{"index": 1},
	})
	require.Equal(t, ipc.StatusOK, resp.Status)

	det, ok := resp.Data.(ipc.ItemDetail)
	require.True(t, ok)
	assert.Equal(t, 1, det.Index)
	assert.Equal(t, "alpha", det.PlainText)
	require.Len(t, det.Representations, 1)
	assert.Equal(t, types.TypePlainText, det.Representations[0].Type)
}

func TestHandleHistoryGetOutOfRange(t *testing.T) {
	d, _ := newTestDaemon(t)
	pushText(t, d, "alpha")

	resp := d.handleRequest(&ipc.Request{
		Command: ipc.CmdHistoryGet,
		Args:    map[string]interface{}{"index": 7},
	})
	assert.Equal(t, ipc.StatusError, resp.Status)
	assert.Contains(t, resp.Message, "index")
}

func TestHandleHistoryGetMissingIndex(t *testing.T) {
	d, _ := newTestDaemon(t)

	resp := d.handleRequest(&ipc.Request{Command: ipc.CmdHistoryGet})
	assert.Equal(t, ipc.StatusError, resp.Status)
	assert.Contains(t, resp.Message, "missing required argument")
}

func TestHandleRestoreWritesClipboard(t *testing.T) {
	d, mem := newTestDaemon(t)
	pushText(t, d, "alpha")
	pushText(t, d, "beta")

	resp := d.handleRequest(&ipc.Request{
		Command: ipc.CmdHistoryRestore,
		Args:    map[string]interface{}{"index": 1, "no_paste": true},
	})
	require.Equal(t, ipc.StatusOK, resp.Status)

	reps, err := mem.Read()
	require.NoError(t, err)
	require.Len(t, reps, 1)
	assert.Equal(t, []byte("alpha"), reps[0].Data)
}

func TestHandleRestoreOutOfRange(t *testing.T) {
	d, _ := newTestDaemon(t)
	pushText(t, d, "alpha")

	resp := d.handleRequest(&ipc.Request{
		Command: ipc.CmdHistoryRestore,
		Args:    map[string]interface{}{"index": 99},
	})
	assert.Equal(t, ipc.StatusError, resp.Status)
	assert.Contains(t, resp.Message, "index")
}

func TestHandleHistoryClear(t *testing.T) {
	d, _ := newTestDaemon(t)
	pushText(t, d, "alpha")
	pushText(t, d, "beta")

	resp := d.handleRequest(&ipc.Request{Command: ipc.CmdHistoryClear})
	require.Equal(t, ipc.StatusOK, resp.Status)
	assert.Equal(t, 0, d.store.Len())
}

func TestHandleClipCurrent(t *testing.T) {
	d, mem := newTestDaemon(t)

	resp := d.handleRequest(&ipc.Request{Command: ipc.CmdClipCurrent})
	assert.Equal(t, ipc.StatusError, resp.Status, "empty clipboard should report an error")

	require.NoError(t, mem.Write(textReps("live content")))

	resp = d.handleRequest(&ipc.Request{Command: ipc.CmdClipCurrent})
	require.Equal(t, ipc.StatusOK, resp.Status)

	det := resp.Data.(ipc.ItemDetail)
	assert.Equal(t, -1, det.Index, "live clipboard content has no history position")
	assert.Equal(t, "live content", det.PlainText)
	assert.Equal(t, 0, d.store.Len(), "reading the current clip must not touch history")
}

func TestHandleStatus(t *testing.T) {
	d, _ := newTestDaemon(t)
	pushText(t, d, "alpha")

	resp := d.handleRequest(&ipc.Request{Command: ipc.CmdStatus})
	require.Equal(t, ipc.StatusOK, resp.Status)

	info, ok := resp.Data.(ipc.StatusInfo)
	require.True(t, ok)
	assert.Equal(t, os.Getpid(), info.PID)
	assert.Equal(t, "test-box", info.DeviceName)
	assert.Equal(t, 1, info.HistoryItems)
	assert.Equal(t, 5, info.HistoryCapacity)
	assert.Equal(t, uint64(1), info.HistoryVersion)
}

func TestHandleUnknownCommand(t *testing.T) {
	d, _ := newTestDaemon(t)

	resp := d.handleRequest(&ipc.Request{Command: "history.evaporate"})
	assert.Equal(t, ipc.StatusError, resp.Status)
	assert.Contains(t, resp.Message, "history.evaporate")
}

func TestPreviewFlattensAndCaps(t *testing.T) {
	assert.Equal(t, "short text", preview("short\n\ttext"))
	assert.Equal(t, "", preview(""))

	long := ""
	for i := 0; i < 30; i++ {
		long += "abcde "
	}
	got := preview(long)
	assert.Len(t, []rune(got), previewMaxRunes+3)
	assert.Contains(t, got, "...")
}

func TestPIDFileRoundTrip(t *testing.T) {
	dataDir := t.TempDir()

	require.NoError(t, writePIDFile(PIDFilePath(dataDir)))
	pid, err := ReadPID(dataDir)
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)
	assert.True(t, IsRunning(dataDir))
}

func TestReadPIDRejectsGarbage(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(PIDFilePath(dataDir), []byte("not-a-pid"), 0644))

	_, err := ReadPID(dataDir)
	assert.Error(t, err)
	assert.False(t, IsRunning(dataDir))
}
