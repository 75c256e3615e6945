package server

import (
	"net/http"
	"time"
)

// Config holds server configuration.
type Config struct {
	// Address is the listen address (default: ":8080").
	Address string

	// ReadBufferSize is the WebSocket read buffer size in bytes.
	ReadBufferSize int

	// WriteBufferSize is the WebSocket write buffer size in bytes.
	WriteBufferSize int

	// CheckOrigin validates WebSocket upgrade origins.
	// The default accepts same-origin requests only.
	CheckOrigin func(r *http.Request) bool

	// SendQueueSize is the per-client outbound queue length. A client
	// that falls this far behind is disconnected.
	SendQueueSize int

	// ReadHeaderTimeout is the maximum time to read request headers.
	ReadHeaderTimeout time.Duration

	// ReadTimeout is the maximum time to read a full request.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to write a response.
	WriteTimeout time.Duration

	// IdleTimeout is the maximum time to wait for the next request on
	// a keep-alive connection.
	IdleTimeout time.Duration

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	ShutdownTimeout time.Duration

	// PingInterval is how often the server pings WebSocket clients.
	PingInterval time.Duration

	// PongWait is how long to wait for a pong before dropping a client.
	PongWait time.Duration

	// AutoHide is the banner auto-hide duration advertised to the
	// preview page. Zero means the package default.
	AutoHide time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Address:           ":8080",
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		SendQueueSize:     64,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		ShutdownTimeout:   30 * time.Second,
		PingInterval:      30 * time.Second,
		PongWait:          60 * time.Second,
	}
}

// fillDefaults replaces zero fields with default values.
func (c *Config) fillDefaults() {
	defaults := DefaultConfig()
	if c.Address == "" {
		c.Address = defaults.Address
	}
	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = defaults.ReadBufferSize
	}
	if c.WriteBufferSize == 0 {
		c.WriteBufferSize = defaults.WriteBufferSize
	}
	if c.SendQueueSize == 0 {
		c.SendQueueSize = defaults.SendQueueSize
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = defaults.ReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = defaults.WriteTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = defaults.IdleTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if c.PingInterval == 0 {
		c.PingInterval = defaults.PingInterval
	}
	if c.PongWait == 0 {
		c.PongWait = defaults.PongWait
	}
}
