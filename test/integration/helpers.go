//go:build integration

package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/gridpoint-io/nios/pkg/niosclient"
	"github.com/gridpoint-io/nios/pkg/wapi"
)

// TestConfig holds the connection details for a live grid, read from the
// environment.
type TestConfig struct {
	Host        string
	Username    string
	Password    string
	WAPIVersion string
}

// LoadTestConfig reads grid connection settings from NIOS_* environment
// variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Host:        os.Getenv("NIOS_HOST"),
		Username:    os.Getenv("NIOS_USERNAME"),
		Password:    os.Getenv("NIOS_PASSWORD"),
		WAPIVersion: os.Getenv("NIOS_WAPI_VERSION"),
	}
}

// SkipIfMissingConfig skips the test when no grid is configured.
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.Host == "" || c.Username == "" || c.Password == "" {
		t.Skip("Skipping integration test: NIOS_HOST, NIOS_USERNAME, and NIOS_PASSWORD must be set")
	}
}

// Connector builds a connector for the configured grid.
func (c *TestConfig) Connector(t *testing.T) wapi.Connector {
	t.Helper()

	conn, err := niosclient.New(&wapi.Config{
		Host:        c.Host,
		Username:    c.Username,
		Password:    c.Password,
		WAPIVersion: c.WAPIVersion,
	})
	if err != nil {
		t.Fatalf("Failed to create connector: %v", err)
	}

	return conn
}

// GenerateTestName produces a unique DNS-safe name for test objects.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
