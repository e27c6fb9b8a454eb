package daemon

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/berrythewa/clipstack/internal/ipc"
	"github.com/berrythewa/clipstack/internal/types"
)

const previewMaxRunes = 80

// handleRequest dispatches one IPC request. Every command answers; errors
// travel as error responses, never as dropped connections.
func (d *Daemon) handleRequest(req *ipc.Request) *ipc.Response {
	switch req.Command {
	case ipc.CmdHistoryList:
		return d.handleHistoryList(req)
	case ipc.CmdHistoryGet:
		return d.handleHistoryGet(req)
	case ipc.CmdHistoryRestore:
		return d.handleHistoryRestore(req)
	case ipc.CmdHistoryClear:
		return d.handleHistoryClear()
	case ipc.CmdClipCurrent:
		return d.handleClipCurrent()
	case ipc.CmdStatus:
		return d.handleStatus()
	default:
		return ipc.Errorf("unknown command %q", req.Command)
	}
}

func (d *Daemon) handleHistoryList(req *ipc.Request) *ipc.Response {
	items := d.store.Items()
	if limit, ok := ipc.IntArg(req, "limit"); ok && limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	list := ipc.HistoryList{
		Items:    make([]ipc.ItemSummary, 0, len(items)),
		Capacity: d.store.Capacity(),
		Version:  d.store.Version(),
	}
	for i, snap := range items {
		list.Items = append(list.Items, summarize(i, snap))
	}
	return ipc.OK("", list)
}

func (d *Daemon) handleHistoryGet(req *ipc.Request) *ipc.Response {
	index, ok := ipc.IntArg(req, "index")
	if !ok {
		return ipc.Errorf("missing required argument: index")
	}

	snap, err := d.store.ItemAt(index)
	if err != nil {
		return ipc.Errorf("%v", err)
	}
	return ipc.OK("", detail(index, snap))
}

func (d *Daemon) handleHistoryRestore(req *ipc.Request) *ipc.Response {
	index, ok := ipc.IntArg(req, "index")
	if !ok {
		return ipc.Errorf("missing required argument: index")
	}

	var err error
	if ipc.BoolArg(req, "no_paste") {
		err = d.monitor.RestoreWithoutPaste(index)
	} else {
		err = d.monitor.Restore(index)
	}
	if err != nil {
		return ipc.Errorf("%v", err)
	}
	return ipc.OK(fmt.Sprintf("restored item %d", index), nil)
}

func (d *Daemon) handleHistoryClear() *ipc.Response {
	d.store.Clear()
	return ipc.OK("history cleared", nil)
}

// handleClipCurrent reads the live clipboard without touching history.
func (d *Daemon) handleClipCurrent() *ipc.Response {
	reps, err := d.clip.Read()
	if err != nil {
		return ipc.Errorf("failed to read clipboard: %v", err)
	}

	snap, err := types.NewSnapshot(reps)
	if err != nil {
		if errors.Is(err, types.ErrNoRepresentations) {
			return ipc.Errorf("clipboard is empty")
		}
		return ipc.Errorf("%v", err)
	}
	return ipc.OK("", detail(-1, snap))
}

func (d *Daemon) handleStatus() *ipc.Response {
	return ipc.OK("", ipc.StatusInfo{
		PID:             os.Getpid(),
		DeviceName:      d.cfg.DeviceName,
		SocketPath:      d.cfg.Daemon.SocketPath,
		StartedAt:       d.startedAt,
		HistoryItems:    d.store.Len(),
		HistoryCapacity: d.store.Capacity(),
		HistoryVersion:  d.store.Version(),
		Monitor:         d.monitor.Status(),
	})
}

func summarize(index int, snap *types.Snapshot) ipc.ItemSummary {
	text, hasText := snap.PlainText()
	return ipc.ItemSummary{
		Index:         index,
		Label:         snap.Label(),
		Kind:          string(snap.Kind()),
		PreferredType: snap.PreferredType(),
		Types:         snap.Types(),
		Size:          snap.Size(),
		HasText:       hasText,
		Preview:       preview(text),
		Hash:          snap.Hash(),
		CapturedAt:    snap.CapturedAt(),
	}
}

// detail uses index -1 for content that has no position in the history,
// such as the live clipboard.
func detail(index int, snap *types.Snapshot) ipc.ItemDetail {
	det := ipc.ItemDetail{
		ItemSummary:     summarize(index, snap),
		Representations: snap.Representations(),
	}
	if text, ok := snap.PlainText(); ok {
		det.PlainText = text
	}
	return det
}

// preview flattens text to a single line and caps its length.
func preview(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= previewMaxRunes {
		return text
	}
	return string(runes[:previewMaxRunes]) + "..."
}
