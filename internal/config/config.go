package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/shelf/internal/catalog"
)

const appName = "shelf"

// DefaultNotificationMs is how long a notification stays on screen.
const DefaultNotificationMs = 3000

type Config struct {
	Catalog       CatalogConfig       `koanf:"catalog"`
	Notifications NotificationsConfig `koanf:"notifications"`
	Log           LogConfig           `koanf:"log"`
}

// CatalogConfig describes where the product listing comes from.
type CatalogConfig struct {
	URL            string `koanf:"url"`             // listing endpoint returning a JSON array
	TimeoutSeconds int    `koanf:"timeout_seconds"` // 0 = no timeout
	UserAgent      string `koanf:"user_agent"`      // empty = built-in agent
}

// NotificationsConfig controls the notification bar and desktop mirroring.
type NotificationsConfig struct {
	DurationMs int   `koanf:"duration_ms"` // display time (default: 3000)
	Desktop    *bool `koanf:"desktop"`     // also send D-Bus notifications (default: false)
}

// LogConfig controls the log file. The terminal belongs to the UI, so logs
// never go to stdout or stderr.
type LogConfig struct {
	File    string `koanf:"file"`    // default: $XDG_STATE_HOME/shelf/shelf.log
	Level   string `koanf:"level"`   // debug, info, warn, error (default: info)
	Enabled *bool  `koanf:"enabled"` // default: true
}

// Load reads the standard config files. Later files override earlier ones.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files in order; missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Catalog.URL = strings.TrimSpace(cfg.Catalog.URL)
	if cfg.Catalog.URL == "" {
		cfg.Catalog.URL = catalog.DefaultURL
	}
	if cfg.Catalog.TimeoutSeconds < 0 {
		cfg.Catalog.TimeoutSeconds = 0
	}
	if cfg.Notifications.DurationMs <= 0 {
		cfg.Notifications.DurationMs = DefaultNotificationMs
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/shelf/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// FetchTimeout returns the request timeout, zero meaning none.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Catalog.TimeoutSeconds) * time.Second
}

// NotificationDuration returns how long notifications stay visible.
func (c *Config) NotificationDuration() time.Duration {
	return time.Duration(c.Notifications.DurationMs) * time.Millisecond
}

// DesktopNotifications reports whether notifications are mirrored over D-Bus.
func (c *Config) DesktopNotifications() bool {
	return c.Notifications.Desktop != nil && *c.Notifications.Desktop
}

// LogEnabled reports whether the log file is written.
func (c *Config) LogEnabled() bool {
	return c.Log.Enabled == nil || *c.Log.Enabled
}

// DefaultLogPath is the log file used when none is configured.
func DefaultLogPath() (string, error) {
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}
