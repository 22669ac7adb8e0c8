// Package niosclient provides the main entry point for creating NIOS WAPI connectors
package niosclient

import (
	"strings"

	"github.com/gridpoint-io/nios/internal/client"
	"github.com/gridpoint-io/nios/pkg/wapi"
)

// New creates a new WAPI connector from a resolved configuration. The host
// is normalized: a scheme prefix and trailing slash are stripped, since the
// connector always speaks HTTPS to the versioned WAPI root.
func New(config *wapi.Config) (wapi.Connector, error) {
	if config == nil {
		return nil, wapi.ErrConfigRequired
	}

	config.Host = normalizeHost(config.Host)

	conn, err := client.New(config)
	if err != nil {
		return nil, err
	}

	return conn, nil
}

// NewFromMap creates a connector from a loosely-typed option map using the
// option names documented on wapi.ResolveConfig.
func NewFromMap(options map[string]interface{}) (wapi.Connector, error) {
	config, err := wapi.ResolveConfig(wapi.MapSource(options))
	if err != nil {
		return nil, err
	}

	return New(config)
}

// NewWithPassword creates a connector with just a host and credentials,
// using defaults for everything else.
func NewWithPassword(host, username, password string) (wapi.Connector, error) {
	return New(&wapi.Config{
		Host:     host,
		Username: username,
		Password: password,
	})
}

// normalizeHost strips a scheme prefix and any trailing slash from a host
// value so callers may pass either a bare host or a URL.
func normalizeHost(host string) string {
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")

	return strings.TrimSuffix(host, "/")
}
