package constants

import "time"

// WAPI defaults applied when the caller does not supply a value.
const (
	// DefaultWAPIVersion is the WAPI version used when none is configured.
	DefaultWAPIVersion = "1.4"

	// DefaultHTTPTimeout is the default timeout for WAPI requests.
	DefaultHTTPTimeout = 10 * time.Second

	// DefaultPoolConnections is the default number of pooled connections.
	DefaultPoolConnections = 10

	// DefaultPoolMaxSize is the default per-host connection pool cap.
	DefaultPoolMaxSize = 10
)

// WAPI protocol constants.
const (
	// CloudWAPIMajorVersion is the first WAPI major version with cloud
	// (multi-grid-member) support.
	CloudWAPIMajorVersion = 2

	// ContentTypeJSON is the Content-Type sent with every WAPI request.
	ContentTypeJSON = "application/json"

	// ProxySearchParam directs the appliance to route a request to the
	// Grid Master.
	ProxySearchParam = "_proxy_search"

	// ProxySearchGM is the Grid Master value for ProxySearchParam.
	ProxySearchGM = "GM"

	// ReturnFieldsParam selects the fields returned by the appliance.
	ReturnFieldsParam = "_return_fields"

	// FunctionParam names the WAPI function invoked on an object reference.
	FunctionParam = "_function"
)

// MemberAlreadyAssignedText is the appliance error text that identifies a
// member-already-assigned create failure.
const MemberAlreadyAssignedText = "is assigned to another network view"
