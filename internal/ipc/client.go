package ipc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"runtime"
	"time"
)

const (
	// DefaultSocketPath is the last-resort socket location when neither
	// configuration nor environment names one.
	DefaultSocketPath = "/tmp/clipstack.sock"

	dialTimeout = 2 * time.Second
	ioTimeout   = 30 * time.Second
)

// ErrUnsupportedPlatform is returned where unix domain sockets are
// unavailable.
var ErrUnsupportedPlatform = errors.New("unix sockets are not supported on this platform")

// SendRequest connects to the daemon, sends a single request, and returns
// the response. Each request uses its own connection.
func SendRequest(socketPath string, req *Request) (*Response, error) {
	if runtime.GOOS == "windows" {
		return nil, ErrUnsupportedPlatform
	}
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}

	conn, err := net.DialTimeout("unix", socketPath, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon at %s: %w", socketPath, err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(ioTimeout))

	enc := json.NewEncoder(conn)
	dec := json.NewDecoder(conn)

	if err := enc.Encode(req); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	var resp Response
	if err := dec.Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &resp, nil
}
