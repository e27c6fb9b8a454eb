package ipc

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/berrythewa/clipstack/internal/clipboard"
	"github.com/berrythewa/clipstack/internal/types"
)

// Commands understood by the daemon.
const (
	CmdHistoryList    = "history.list"
	CmdHistoryGet     = "history.get"
	CmdHistoryRestore = "history.restore"
	CmdHistoryClear   = "history.clear"
	CmdClipCurrent    = "clip.current"
	CmdStatus         = "status"
)

// Response status values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Request represents a command sent from the CLI to the daemon.
type Request struct {
	Command string                 `json:"command"`
	Args    map[string]interface{} `json:"args,omitempty"`
}

// Response represents a reply from the daemon to the CLI.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ItemSummary describes one history entry for transport.
type ItemSummary struct {
	Index         int       `json:"index"`
	Label         string    `json:"label"`
	Kind          string    `json:"kind"`
	PreferredType string    `json:"preferred_type"`
	Types         []string  `json:"types"`
	Size          int       `json:"size"`
	HasText       bool      `json:"has_text"`
	Preview       string    `json:"preview,omitempty"`
	Hash          string    `json:"hash"`
	CapturedAt    time.Time `json:"captured_at"`
}

// ItemDetail carries one history entry with its full content.
type ItemDetail struct {
	ItemSummary
	PlainText       string                 `json:"plain_text,omitempty"`
	Representations []types.Representation `json:"representations"`
}

// HistoryList is the payload of a history.list response.
type HistoryList struct {
	Items    []ItemSummary `json:"items"`
	Capacity int           `json:"capacity"`
	Version  uint64        `json:"version"`
}

// StatusInfo is the payload of a status response.
type StatusInfo struct {
	PID             int                     `json:"pid"`
	DeviceName      string                  `json:"device_name"`
	SocketPath      string                  `json:"socket_path"`
	StartedAt       time.Time               `json:"started_at"`
	HistoryItems    int                     `json:"history_items"`
	HistoryCapacity int                     `json:"history_capacity"`
	HistoryVersion  uint64                  `json:"history_version"`
	Monitor         clipboard.MonitorStatus `json:"monitor"`
}

// OK builds a success response.
func OK(message string, data interface{}) *Response {
	return &Response{Status: StatusOK, Message: message, Data: data}
}

// Errorf builds an error response.
func Errorf(format string, args ...interface{}) *Response {
	return &Response{Status: StatusError, Message: fmt.Sprintf(format, args...)}
}

// DecodeData re-decodes a response's Data payload into out. Data crosses
// the socket as generic JSON; this recovers the typed form.
func DecodeData(resp *Response, out interface{}) error {
	raw, err := json.Marshal(resp.Data)
	if err != nil {
		return fmt.Errorf("failed to re-encode response data: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// IntArg reads an integer argument, tolerating the float64 form JSON
// decoding produces.
func IntArg(req *Request, key string) (int, bool) {
	v, ok := req.Args[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}

// BoolArg reads a boolean argument, returning false when absent.
func BoolArg(req *Request, key string) bool {
	v, ok := req.Args[key].(bool)
	return ok && v
}
