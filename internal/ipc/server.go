package ipc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Handler produces a response for one decoded request.
type Handler func(*Request) *Response

// Server accepts CLI connections on a unix domain socket and dispatches
// one request per connection to its handler.
type Server struct {
	socketPath string
	handler    Handler
	logger     *zap.Logger

	mu sync.Mutex
	ln net.Listener
	wg sync.WaitGroup
}

// NewServer creates a server bound to socketPath. A nil logger disables
// logging.
func NewServer(socketPath string, handler Handler, logger *zap.Logger) *Server {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		socketPath: socketPath,
		handler:    handler,
		logger:     logger,
	}
}

// SocketPath returns the path the server listens on.
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Start begins listening and serving in the background.
func (s *Server) Start() error {
	if runtime.GOOS == "windows" {
		return ErrUnsupportedPlatform
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return errors.New("ipc server already started")
	}

	// Remove any stale socket left by a previous run.
	os.Remove(s.socketPath)

	ln, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to listen on socket %s: %w", s.socketPath, err)
	}
	s.ln = ln

	s.wg.Add(1)
	go s.acceptLoop(ln)

	s.logger.Info("IPC server listening", zap.String("socket", s.socketPath))
	return nil
}

// Stop closes the listener and waits for in-flight requests to finish.
// It is safe to call on a server that never started.
func (s *Server) Stop() error {
	s.mu.Lock()
	ln := s.ln
	s.ln = nil
	s.mu.Unlock()

	if ln == nil {
		return nil
	}

	err := ln.Close()
	s.wg.Wait()
	os.Remove(s.socketPath)
	s.logger.Info("IPC server stopped")
	return err
}

func (s *Server) acceptLoop(ln net.Listener) {
	defer s.wg.Done()
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			s.logger.Warn("failed to accept connection", zap.Error(err))
			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConn(conn)
		}()
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	// A stalled client must not hold the server open indefinitely.
	conn.SetDeadline(time.Now().Add(ioTimeout))

	dec := json.NewDecoder(conn)
	enc := json.NewEncoder(conn)

	var req Request
	if err := dec.Decode(&req); err != nil {
		enc.Encode(Errorf("invalid request: %v", err))
		return
	}

	resp := s.handler(&req)
	if resp == nil {
		resp = Errorf("no response for command %q", req.Command)
	}
	if err := enc.Encode(resp); err != nil {
		s.logger.Warn("failed to write response",
			zap.String("command", req.Command),
			zap.Error(err))
	}
}
