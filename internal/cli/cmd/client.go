package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/berrythewa/clipstack/internal/daemon"
	"github.com/berrythewa/clipstack/internal/ipc"
)

// call sends one request to the daemon and unwraps error responses.
func call(req *ipc.Request) (*ipc.Response, error) {
	resp, err := rawCall(req)
	if err != nil {
		return nil, err
	}
	if resp.Status != ipc.StatusOK {
		return nil, fmt.Errorf("daemon error: %s", resp.Message)
	}
	return resp, nil
}

// rawCall sends a request and returns the response as-is, so callers can
// inspect error responses themselves.
func rawCall(req *ipc.Request) (*ipc.Response, error) {
	resp, err := ipc.SendRequest(cfg.Daemon.SocketPath, req)
	if err != nil {
		return nil, daemonUnreachable(err)
	}
	return resp, nil
}

// daemonUnreachable decorates connection failures with a liveness hint
// from the PID file.
func daemonUnreachable(err error) error {
	if daemon.IsRunning(cfg.SystemPaths.DataDir) {
		return fmt.Errorf("daemon is running but not reachable: %w", err)
	}
	return fmt.Errorf("daemon does not appear to be running (start it with 'clipstack daemon run'): %w", err)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
