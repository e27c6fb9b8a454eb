package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/berrythewa/clipstack/internal/clipboard"
	"github.com/berrythewa/clipstack/internal/history"
)

// Config holds all application configuration.
type Config struct {
	// General settings
	DeviceID   string `json:"device_id" yaml:"device_id"`
	DeviceName string `json:"device_name" yaml:"device_name"`

	// Resolved filesystem locations
	SystemPaths ConfigPaths `json:"system_paths" yaml:"system_paths"`

	// Logging configuration
	Log LogConfig `json:"log" yaml:"log"`

	// History stack options
	History HistoryConfig `json:"history" yaml:"history"`

	// Clipboard monitoring options
	Monitor MonitorConfig `json:"monitor" yaml:"monitor"`

	// Daemon configuration
	Daemon DaemonConfig `json:"daemon" yaml:"daemon"`
}

// LogConfig holds logging-related configuration.
type LogConfig struct {
	Level             string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format            string `json:"format" yaml:"format"` // "console" or "json"
	EnableFileLogging bool   `json:"enable_file_logging" yaml:"enable_file_logging"`
	File              string `json:"file" yaml:"file"`
}

// HistoryConfig holds history stack configuration.
type HistoryConfig struct {
	Capacity int `json:"capacity" yaml:"capacity"`
}

// MonitorConfig holds clipboard monitoring configuration. Intervals are
// expressed in milliseconds.
type MonitorConfig struct {
	PollIntervalMS int64 `json:"poll_interval_ms" yaml:"poll_interval_ms"`
	SettleDelayMS  int64 `json:"settle_delay_ms" yaml:"settle_delay_ms"`
	PasteEnabled   bool  `json:"paste_enabled" yaml:"paste_enabled"`
}

// DaemonConfig holds configuration for the background daemon.
type DaemonConfig struct {
	SocketPath string `json:"socket_path" yaml:"socket_path"`
}

// PollInterval returns the monitor poll interval as a duration.
func (m MonitorConfig) PollInterval() time.Duration {
	return time.Duration(m.PollIntervalMS) * time.Millisecond
}

// SettleDelay returns the restore settle delay as a duration.
func (m MonitorConfig) SettleDelay() time.Duration {
	return time.Duration(m.SettleDelayMS) * time.Millisecond
}

// DefaultConfig returns a new Config with default values. Path resolution
// failures leave SystemPaths empty; Load fills them in on next use.
func DefaultConfig() *Config {
	cfg := &Config{
		DeviceID:   generateDeviceID(),
		DeviceName: getHostname(),
		Log: LogConfig{
			Level:             "info",
			Format:            "console",
			EnableFileLogging: false,
		},
		History: HistoryConfig{
			Capacity: history.DefaultCapacity,
		},
		Monitor: MonitorConfig{
			PollIntervalMS: int64(clipboard.DefaultPollInterval / time.Millisecond),
			SettleDelayMS:  int64(clipboard.DefaultSettleDelay / time.Millisecond),
			PasteEnabled:   true,
		},
	}

	if paths, err := GetConfigPaths(); err == nil {
		cfg.SystemPaths = *paths
		cfg.Daemon.SocketPath = paths.SocketPath
		cfg.Log.File = filepath.Join(paths.LogDir, "clipstack.log")
	}

	return cfg
}

// Load loads the configuration from the specified file, creating a default
// one if the file does not exist. Environment variables override values
// from the file.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		var err error
		configPath, err = GetActiveConfigPath()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if err := cfg.Save(configPath); err != nil {
				return nil, fmt.Errorf("failed to create default config: %w", err)
			}
			overrideFromEnv(cfg)
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	overrideFromEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save saves the configuration to the specified file.
func (c *Config) Save(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for values the daemon cannot run with.
func (c *Config) Validate() error {
	if c.History.Capacity < 1 {
		return fmt.Errorf("history capacity must be at least 1, got %d", c.History.Capacity)
	}
	if c.Monitor.PollIntervalMS <= 0 {
		return fmt.Errorf("poll interval must be positive, got %dms", c.Monitor.PollIntervalMS)
	}
	if c.Monitor.SettleDelayMS < 0 {
		return fmt.Errorf("settle delay cannot be negative, got %dms", c.Monitor.SettleDelayMS)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q (expected console or json)", c.Log.Format)
	}
	return nil
}

// applyDefaults fills in zero values left by sparse, hand-written config
// files. PasteEnabled is a plain bool and must be stated explicitly in
// such files; the generated default file always carries it.
func applyDefaults(cfg *Config) {
	if cfg.DeviceID == "" {
		cfg.DeviceID = generateDeviceID()
	}
	if cfg.DeviceName == "" {
		cfg.DeviceName = getHostname()
	}
	if cfg.History.Capacity == 0 {
		cfg.History.Capacity = history.DefaultCapacity
	}
	if cfg.Monitor.PollIntervalMS == 0 {
		cfg.Monitor.PollIntervalMS = int64(clipboard.DefaultPollInterval / time.Millisecond)
	}
	if cfg.Monitor.SettleDelayMS == 0 {
		cfg.Monitor.SettleDelayMS = int64(clipboard.DefaultSettleDelay / time.Millisecond)
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.SystemPaths.BaseDir == "" {
		if paths, err := GetConfigPaths(); err == nil {
			cfg.SystemPaths = *paths
		}
	}
	if cfg.Daemon.SocketPath == "" {
		cfg.Daemon.SocketPath = cfg.SystemPaths.SocketPath
	}
}

// overrideFromEnv overrides configuration values from environment variables.
func overrideFromEnv(config *Config) {
	if val := os.Getenv("CLIPSTACK_DEVICE_ID"); val != "" {
		config.DeviceID = val
	}
	if val := os.Getenv("CLIPSTACK_DEVICE_NAME"); val != "" {
		config.DeviceName = val
	}
	if val := os.Getenv("CLIPSTACK_DATA_DIR"); val != "" {
		config.SystemPaths.DataDir = val
	}

	if val := os.Getenv("CLIPSTACK_HISTORY_CAPACITY"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.History.Capacity = n
		}
	}

	if val := os.Getenv("CLIPSTACK_POLL_INTERVAL"); val != "" {
		if ms, err := strconv.ParseInt(val, 10, 64); err == nil {
			config.Monitor.PollIntervalMS = ms
		}
	}
	if val := os.Getenv("CLIPSTACK_SETTLE_DELAY"); val != "" {
		if ms, err := strconv.ParseInt(val, 10, 64); err == nil {
			config.Monitor.SettleDelayMS = ms
		}
	}
	if val := os.Getenv("CLIPSTACK_PASTE_ENABLED"); val != "" {
		config.Monitor.PasteEnabled = val == "true"
	}

	if val := os.Getenv("CLIPSTACK_SOCKET"); val != "" {
		config.Daemon.SocketPath = val
	}
	if val := os.Getenv("CLIPSTACK_LOG_LEVEL"); val != "" {
		config.Log.Level = val
	}
}
