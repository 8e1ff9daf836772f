package server

import (
	"fmt"
	"net"
	"strconv"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
}

// IsValidPort checks if the configured port is a usable TCP port.
func (c Config) IsValidPort() bool {
	p, err := strconv.Atoi(c.Port)
	return err == nil && p > 0 && p <= 65535
}

// IsLoopback reports whether Host only accepts local connections.
func (c Config) IsLoopback() bool {
	if c.Host == "localhost" {
		return true
	}
	ip := net.ParseIP(c.Host)
	return ip != nil && ip.IsLoopback()
}

// Validate rejects a bad port and an unauthenticated server reachable from
// other machines. POST /compare reads arbitrary local folders.
func (c Config) Validate() error {
	if !c.IsValidPort() {
		return fmt.Errorf("invalid server port %q", c.Port)
	}
	if c.ApiKey == "" && !c.IsLoopback() {
		return fmt.Errorf("refusing to serve on %s without server.api_key", c.Address())
	}
	return nil
}

// Address returns the listen address for the configured host and port.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}
