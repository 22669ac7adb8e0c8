package wapi

import "context"

// Connector defines the low-level object operations against an Infoblox
// NIOS appliance. Implementations are safe for concurrent use; every call
// is a single synchronous request apart from the bounded cloud-proxy
// retry on get.
type Connector interface {
	// GetObject retrieves objects of type objType matching payload. It
	// returns nil when the appliance reports no results.
	GetObject(ctx context.Context, objType string, payload Payload, opts *GetOptions) (interface{}, error)

	// CreateObject creates an object of type objType and returns its
	// reference (or the requested return fields).
	CreateObject(ctx context.Context, objType string, payload Payload, returnFields ...string) (interface{}, error)

	// CallFunc invokes a WAPI function on an existing object reference.
	CallFunc(ctx context.Context, funcName, ref string, payload Payload, returnFields ...string) (interface{}, error)

	// UpdateObject updates the object identified by ref.
	UpdateObject(ctx context.Context, ref string, payload Payload, returnFields ...string) (interface{}, error)

	// DeleteObject removes the object identified by ref and returns the
	// removed reference.
	DeleteObject(ctx context.Context, ref string) (interface{}, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// NoopLogger returns a Logger that discards everything.
func NoopLogger() Logger {
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Debug(string, map[string]interface{}) {}
func (noopLogger) Info(string, map[string]interface{})  {}
func (noopLogger) Warn(string, map[string]interface{})  {}
func (noopLogger) Error(string, map[string]interface{}) {}
