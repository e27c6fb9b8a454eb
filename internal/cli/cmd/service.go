package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/berrythewa/clipstack/internal/daemon"
)

const launchdLabel = "com.berrythewa.clipstack"

func newServiceCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "service [install|uninstall|status]",
		Short: "Manage clipstackd as a user service",
		Long: `Install, remove or inspect a user-level service definition that keeps the
daemon running in the background: a systemd user unit on Linux, a launchd
agent on macOS.`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"install", "uninstall", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "install":
				return installService(force)
			case "uninstall":
				return uninstallService()
			default:
				return serviceStatus()
			}
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing service file")
	return cmd
}

func installService(force bool) error {
	path, err := servicePath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("service file already exists at %s (use --force to overwrite)", path)
	}

	content, err := renderServiceFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create service directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write service file: %w", err)
	}
	fmt.Printf("Wrote service file to %s\n", path)

	if err := enableService(path); err != nil {
		return err
	}
	fmt.Println("Service installed and started")
	return nil
}

func uninstallService() error {
	path, err := servicePath()
	if err != nil {
		return err
	}

	// Stopping a service that is not loaded is fine; removal is the point.
	disableService(path)

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no service file found at %s", path)
		}
		return fmt.Errorf("failed to remove service file: %w", err)
	}

	fmt.Printf("Removed service file %s\n", path)
	return nil
}

func serviceStatus() error {
	path, err := servicePath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("Service: not installed")
	} else {
		fmt.Printf("Service file: %s\n", path)
		switch runtime.GOOS {
		case "linux":
			out, _ := exec.Command("systemctl", "--user", "is-active", "clipstack.service").CombinedOutput()
			fmt.Printf("systemd state: %s\n", strings.TrimSpace(string(out)))
		case "darwin":
			if err := exec.Command("launchctl", "list", launchdLabel).Run(); err == nil {
				fmt.Println("launchd state: loaded")
			} else {
				fmt.Println("launchd state: not loaded")
			}
		}
	}

	if pid, err := daemon.ReadPID(cfg.SystemPaths.DataDir); err == nil && daemon.IsRunning(cfg.SystemPaths.DataDir) {
		fmt.Printf("Daemon: running (pid %d)\n", pid)
	} else {
		fmt.Println("Daemon: not running")
	}
	return nil
}

func servicePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	switch runtime.GOOS {
	case "linux":
		return filepath.Join(home, ".config", "systemd", "user", "clipstack.service"), nil
	case "darwin":
		return filepath.Join(home, "Library", "LaunchAgents", launchdLabel+".plist"), nil
	default:
		return "", fmt.Errorf("service management is not supported on %s", runtime.GOOS)
	}
}

// serviceExec resolves the command line the service should run: the
// clipstackd binary when one is installed, otherwise this binary in
// foreground daemon mode.
func serviceExec() ([]string, error) {
	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable path: %w", err)
	}

	candidate := filepath.Join(filepath.Dir(self), "clipstackd")
	if _, err := os.Stat(candidate); err == nil {
		return []string{candidate}, nil
	}
	if path, err := exec.LookPath("clipstackd"); err == nil {
		return []string{path}, nil
	}
	return []string{self, "daemon", "run"}, nil
}

func renderServiceFile() (string, error) {
	args, err := serviceExec()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "linux":
		return fmt.Sprintf(`[Unit]
Description=Clipstack clipboard history daemon
After=graphical-session.target

[Service]
ExecStart=%s
Restart=on-failure
RestartSec=2

[Install]
WantedBy=default.target
`, strings.Join(args, " ")), nil

	case "darwin":
		var programArgs strings.Builder
		for _, arg := range args {
			fmt.Fprintf(&programArgs, "        <string>%s</string>\n", arg)
		}
		logFile := filepath.Join(cfg.SystemPaths.LogDir, "clipstackd.log")
		return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>%s</string>
    <key>ProgramArguments</key>
    <array>
%s    </array>
    <key>RunAtLoad</key>
    <true/>
    <key>KeepAlive</key>
    <true/>
    <key>StandardOutPath</key>
    <string>%s</string>
    <key>StandardErrorPath</key>
    <string>%s</string>
</dict>
</plist>
`, launchdLabel, programArgs.String(), logFile, logFile), nil

	default:
		return "", fmt.Errorf("service management is not supported on %s", runtime.GOOS)
	}
}

func enableService(path string) error {
	switch runtime.GOOS {
	case "linux":
		if out, err := exec.Command("systemctl", "--user", "daemon-reload").CombinedOutput(); err != nil {
			return fmt.Errorf("systemctl daemon-reload failed: %s", strings.TrimSpace(string(out)))
		}
		if out, err := exec.Command("systemctl", "--user", "enable", "--now", "clipstack.service").CombinedOutput(); err != nil {
			return fmt.Errorf("failed to enable service (enable it manually with 'systemctl --user enable --now clipstack.service'): %s", strings.TrimSpace(string(out)))
		}
	case "darwin":
		if out, err := exec.Command("launchctl", "load", path).CombinedOutput(); err != nil {
			return fmt.Errorf("failed to load agent (load it manually with 'launchctl load %s'): %s", path, strings.TrimSpace(string(out)))
		}
	}
	return nil
}

func disableService(path string) {
	switch runtime.GOOS {
	case "linux":
		exec.Command("systemctl", "--user", "disable", "--now", "clipstack.service").Run()
	case "darwin":
		exec.Command("launchctl", "unload", path).Run()
	}
}
