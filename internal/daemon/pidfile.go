package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// PIDFilePath returns the daemon PID file location under dataDir.
func PIDFilePath(dataDir string) string {
	return filepath.Join(dataDir, "clipstackd.pid")
}

func writePIDFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0644)
}

// ReadPID returns the PID recorded by a daemon, or an error when no valid
// PID file exists.
func ReadPID(dataDir string) (int, error) {
	data, err := os.ReadFile(PIDFilePath(dataDir))
	if err != nil {
		return 0, err
	}

	raw := strings.TrimSpace(string(data))
	pid, err := strconv.Atoi(raw)
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("invalid PID file contents: %q", raw)
	}
	return pid, nil
}

// IsRunning reports whether the recorded daemon process is alive. The probe
// uses signal 0 and reports not-running on platforms without signal support.
func IsRunning(dataDir string) bool {
	pid, err := ReadPID(dataDir)
	if err != nil {
		return false
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(syscall.Signal(0)) == nil
}
