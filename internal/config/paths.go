package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
)

// ConfigPaths holds the resolved filesystem locations used by the daemon
// and CLI. All directories are created on resolution.
type ConfigPaths struct {
	BaseDir    string `json:"base_dir" yaml:"base_dir"`       // base directory for configuration
	ConfigFile string `json:"config_file" yaml:"config_file"` // path to the active config file
	DataDir    string `json:"data_dir" yaml:"data_dir"`       // application data
	LogDir     string `json:"log_dir" yaml:"log_dir"`         // log files
	SocketPath string `json:"socket_path" yaml:"socket_path"` // daemon control socket
}

// Resolution seams, swapped out by tests.
var (
	getConfigDir     = defaultConfigDir
	getDataDir       = defaultDataDir
	generateDeviceID = func() string { return uuid.New().String() }
	getHostname      = defaultHostname
)

// GetConfigPaths resolves the platform-specific paths, honoring the
// CLIPSTACK_CONFIG_DIR and CLIPSTACK_DATA_DIR environment overrides.
func GetConfigPaths() (*ConfigPaths, error) {
	baseDir := os.Getenv("CLIPSTACK_CONFIG_DIR")
	if baseDir == "" {
		var err error
		baseDir, err = getConfigDir()
		if err != nil {
			return nil, err
		}
	}

	dataDir := os.Getenv("CLIPSTACK_DATA_DIR")
	if dataDir == "" {
		var err error
		dataDir, err = getDataDir()
		if err != nil {
			return nil, err
		}
	}

	paths := &ConfigPaths{
		BaseDir:    baseDir,
		ConfigFile: filepath.Join(baseDir, "config.yaml"),
		DataDir:    dataDir,
		LogDir:     filepath.Join(dataDir, "logs"),
		SocketPath: defaultSocketPath(dataDir),
	}

	for _, dir := range []string{
		paths.BaseDir,
		paths.DataDir,
		paths.LogDir,
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	return paths, nil
}

// GetActiveConfigPath returns the path of the config file Load uses when
// no explicit path is given.
func GetActiveConfigPath() (string, error) {
	paths, err := GetConfigPaths()
	if err != nil {
		return "", err
	}
	return paths.ConfigFile, nil
}

func defaultConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(configDir, "Clipstack"), nil
	case "darwin":
		return filepath.Join(configDir, "com.berrythewa.clipstack"), nil
	default: // Linux and others
		return filepath.Join(configDir, "clipstack"), nil
	}
}

func defaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "windows":
		appData, err := os.UserConfigDir()
		if err != nil {
			return filepath.Join(homeDir, "AppData", "Local", "Clipstack"), nil
		}
		return filepath.Join(appData, "Clipstack", "Data"), nil
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", "Clipstack"), nil
	default: // Linux and others
		if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
			return filepath.Join(xdgDataHome, "clipstack"), nil
		}
		return filepath.Join(homeDir, ".clipstack"), nil
	}
}

// defaultSocketPath prefers the user runtime directory where one exists;
// sockets there are cleaned up on logout.
func defaultSocketPath(dataDir string) string {
	if runtime.GOOS == "linux" {
		if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
			return filepath.Join(runtimeDir, "clipstack.sock")
		}
	}
	return filepath.Join(dataDir, "clipstack.sock")
}

func defaultHostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
