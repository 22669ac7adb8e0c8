package wapi

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gridpoint-io/nios/internal/constants"
	"github.com/spf13/cast"
)

// Config represents the connection options of a Connector.
//
// Host, Username, and Password are required. Every other field falls back
// to a fixed default when left at its zero value. A resolved Config is
// owned by the Connector built from it and must not be mutated afterwards.
type Config struct {
	// Host is the appliance host name or address (no scheme).
	Host string
	// Username and Password are the basic-auth credentials.
	Username string
	Password string
	// WAPIVersion selects the versioned API root, e.g. "2.5".
	WAPIVersion string
	// SSLVerify enables TLS certificate verification.
	SSLVerify bool
	// SilentSSLWarnings suppresses the warning logged at session setup
	// when SSLVerify is disabled.
	SilentSSLWarnings bool
	// HTTPRequestTimeout bounds every request.
	HTTPRequestTimeout time.Duration
	// HTTPPoolConnections and HTTPPoolMaxSize bound the connection pool.
	HTTPPoolConnections int
	HTTPPoolMaxSize     int
	// LogAPICallsAsInfo logs each request at info instead of debug.
	LogAPICallsAsInfo bool
	// Logger receives request logs. Defaults to a no-op logger.
	Logger Logger
}

// OptionSource is a loosely-typed lookup of named connection options. It
// generalizes over maps and configuration stores.
type OptionSource interface {
	// Lookup returns the value of the named option and whether the
	// source provides it.
	Lookup(name string) (interface{}, bool)
}

// MapSource adapts a plain map to an OptionSource.
type MapSource map[string]interface{}

// Lookup implements OptionSource.
func (m MapSource) Lookup(name string) (interface{}, bool) {
	value, ok := m[name]

	return value, ok
}

// Option names recognized by ResolveConfig.
const (
	OptionHost              = "host"
	OptionWAPIVersion       = "wapi_version"
	OptionUsername          = "username"
	OptionPassword          = "password"
	OptionSSLVerify         = "ssl_verify"
	OptionHTTPTimeout       = "http_request_timeout"
	OptionPoolConnections   = "http_pool_connections"
	OptionPoolMaxSize       = "http_pool_maxsize"
	OptionSilentSSLWarnings = "silent_ssl_warnings"
	OptionLogCallsAsInfo    = "log_api_calls_as_info"
)

// ResolveConfig builds a validated Config from a loosely-typed option
// source. Options absent from the source fall back to fixed defaults;
// required options without defaults fail with a *ConfigError naming the
// option.
func ResolveConfig(src OptionSource) (*Config, error) {
	if src == nil {
		return nil, ErrConfigRequired
	}

	cfg := &Config{}

	stringOptions := []struct {
		name     string
		target   *string
		required bool
	}{
		{OptionHost, &cfg.Host, true},
		{OptionUsername, &cfg.Username, true},
		{OptionPassword, &cfg.Password, true},
		{OptionWAPIVersion, &cfg.WAPIVersion, false},
	}

	for _, opt := range stringOptions {
		raw, ok := src.Lookup(opt.name)
		if !ok {
			if opt.required {
				return nil, &ConfigError{Option: opt.name, Reason: "is not defined"}
			}

			continue
		}

		value, err := cast.ToStringE(raw)
		if err != nil {
			return nil, &ConfigError{Option: opt.name, Reason: "has an invalid value"}
		}

		*opt.target = value
	}

	boolOptions := []struct {
		name   string
		target *bool
	}{
		{OptionSSLVerify, &cfg.SSLVerify},
		{OptionSilentSSLWarnings, &cfg.SilentSSLWarnings},
		{OptionLogCallsAsInfo, &cfg.LogAPICallsAsInfo},
	}

	for _, opt := range boolOptions {
		raw, ok := src.Lookup(opt.name)
		if !ok {
			continue
		}

		value, err := cast.ToBoolE(raw)
		if err != nil {
			return nil, &ConfigError{Option: opt.name, Reason: "has an invalid value"}
		}

		*opt.target = value
	}

	intOptions := []struct {
		name   string
		target *int
	}{
		{OptionPoolConnections, &cfg.HTTPPoolConnections},
		{OptionPoolMaxSize, &cfg.HTTPPoolMaxSize},
	}

	for _, opt := range intOptions {
		raw, ok := src.Lookup(opt.name)
		if !ok {
			continue
		}

		value, err := cast.ToIntE(raw)
		if err != nil {
			return nil, &ConfigError{Option: opt.name, Reason: "has an invalid value"}
		}

		*opt.target = value
	}

	if raw, ok := src.Lookup(OptionHTTPTimeout); ok {
		timeout, err := toTimeout(raw)
		if err != nil {
			return nil, &ConfigError{Option: OptionHTTPTimeout, Reason: "has an invalid value"}
		}

		cfg.HTTPRequestTimeout = timeout
	}

	cfg.ApplyDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// toTimeout accepts a time.Duration, a duration string, or a plain number
// of seconds (the wire-level convention of the appliance tooling).
func toTimeout(raw interface{}) (time.Duration, error) {
	switch value := raw.(type) {
	case time.Duration:
		return value, nil
	case string:
		return time.ParseDuration(value)
	default:
		seconds, err := cast.ToIntE(raw)
		if err != nil {
			return 0, err
		}

		return time.Duration(seconds) * time.Second, nil
	}
}

// ApplyDefaults fills unset optional fields with their fixed defaults.
func (c *Config) ApplyDefaults() {
	if c.WAPIVersion == "" {
		c.WAPIVersion = constants.DefaultWAPIVersion
	}

	if c.HTTPRequestTimeout == 0 {
		c.HTTPRequestTimeout = constants.DefaultHTTPTimeout
	}

	if c.HTTPPoolConnections == 0 {
		c.HTTPPoolConnections = constants.DefaultPoolConnections
	}

	if c.HTTPPoolMaxSize == 0 {
		c.HTTPPoolMaxSize = constants.DefaultPoolMaxSize
	}

	if c.Logger == nil {
		c.Logger = NoopLogger()
	}
}

// Validate checks that the required options are present and non-blank.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{OptionHost, c.Host},
		{OptionUsername, c.Username},
		{OptionPassword, c.Password},
	}

	for _, opt := range required {
		if strings.TrimSpace(opt.value) == "" {
			return &ConfigError{Option: opt.name, Reason: "can not be blank"}
		}
	}

	return nil
}

// BaseURL returns the versioned WAPI root for this configuration.
func (c *Config) BaseURL() string {
	return "https://" + c.Host + "/wapi/v" + c.WAPIVersion + "/"
}

var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)`)

// IsCloudVersion reports whether the WAPI version supports cloud
// (multi-grid-member) proxying. The gate is the first major.minor pair in
// the version string: cloud-capable iff major >= 2.
func IsCloudVersion(version string) (bool, error) {
	if version == "" {
		return false, &ValidationError{Reason: "WAPI version can not be empty"}
	}

	match := versionPattern.FindStringSubmatch(version)
	if match == nil {
		return false, nil
	}

	major, err := strconv.Atoi(match[1])
	if err != nil {
		return false, &ValidationError{Reason: "invalid WAPI version: " + version}
	}

	return major >= constants.CloudWAPIMajorVersion, nil
}
