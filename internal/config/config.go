// Package config loads and saves flashbar.json, the server
// configuration file for the flashbar CLI.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/flashbar-dev/flashbar/internal/errors"
	"github.com/flashbar-dev/flashbar/pkg/banner"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "flashbar.json"

	// DefaultPort is the default server port.
	DefaultPort = 8080

	// DefaultHost is the default server host.
	DefaultHost = "localhost"
)

// Config represents the complete flashbar.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Server contains HTTP server settings.
	Server ServerConfig `json:"server,omitempty"`

	// Notifications contains banner behavior settings.
	Notifications NotificationsConfig `json:"notifications,omitempty"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// ShutdownTimeout is the graceful shutdown window (e.g. "30s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty"`
}

// NotificationsConfig contains banner behavior settings.
type NotificationsConfig struct {
	// AutoHideMs is the auto-hide delay in milliseconds.
	AutoHideMs int `json:"autoHideMs,omitempty"`

	// Anchor is the screen corner banners appear in:
	// "bottom-left", "bottom-right", "top-left", "top-right".
	Anchor string `json:"anchor,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled controls whether /metrics is served.
	Enabled bool `json:"enabled,omitempty"`

	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ShutdownTimeout: "30s",
		},
		Notifications: NotificationsConfig{
			AutoHideMs: int(banner.DefaultAutoHide / time.Millisecond),
			Anchor:     string(banner.AnchorBottomLeft),
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "flashbar",
		},
	}
}

// Load reads configuration from the specified directory. It looks for
// flashbar.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CategoryConfig, "config file not found").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Run 'flashbar init' to create one")
		}
		return nil, errors.New(errors.CategoryConfig, "config read failed").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(errors.CategoryConfig, "config parse failed").
			WithDetail("Failed to parse "+ConfigFileName+": "+err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New(errors.CategoryConfig, "config encode failed").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New(errors.CategoryConfig, "config write failed").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = "30s"
	}
	if c.Notifications.AutoHideMs == 0 {
		c.Notifications.AutoHideMs = int(banner.DefaultAutoHide / time.Millisecond)
	}
	if c.Notifications.Anchor == "" {
		c.Notifications.Anchor = string(banner.AnchorBottomLeft)
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "flashbar"
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.Newf(errors.CategoryValidation, "invalid port %d", c.Server.Port).
			WithSuggestion("Port must be between 1 and 65535")
	}
	if c.Notifications.AutoHideMs < 0 {
		return errors.Newf(errors.CategoryValidation, "negative autoHideMs %d", c.Notifications.AutoHideMs)
	}
	switch banner.Anchor(c.Notifications.Anchor) {
	case banner.AnchorBottomLeft, banner.AnchorBottomRight, banner.AnchorTopLeft, banner.AnchorTopRight:
	default:
		return errors.Newf(errors.CategoryValidation, "unknown anchor %q", c.Notifications.Anchor).
			WithSuggestion("Use bottom-left, bottom-right, top-left, or top-right")
	}
	if _, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil {
		return errors.Newf(errors.CategoryValidation, "invalid shutdownTimeout %q", c.Server.ShutdownTimeout).
			Wrap(err).
			WithSuggestion(`Use a Go duration string such as "30s"`)
	}
	return nil
}

// Address returns the host:port listen address.
func (c *Config) Address() string {
	return c.Server.Host + ":" + itoa(c.Server.Port)
}

// AutoHide returns the auto-hide delay as a duration.
func (c *Config) AutoHide() time.Duration {
	return time.Duration(c.Notifications.AutoHideMs) * time.Millisecond
}

// ShutdownTimeout returns the parsed shutdown window. Validate catches
// malformed values, so this falls back to the default silently.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// Exists reports whether a flashbar.json is present in dir.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// itoa converts int to string without importing strconv.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + itoa(-n)
	}
	digits := make([]byte, 0, 10)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
