package wapi

// Payload is an opaque field-name-to-value mapping passed through to the
// appliance without interpretation.
type Payload map[string]interface{}

// ExtAttr is a single extensible-attribute descriptor. Only the value is
// used when rendering search filters.
type ExtAttr struct {
	Value string `json:"value"`
}

// ExtAttrs maps extensible-attribute names to descriptors. Each entry is
// rendered into the query string as a *name=value filter.
type ExtAttrs map[string]ExtAttr

// GetOptions carries the optional arguments of a get request. A nil
// *GetOptions is equivalent to the zero value.
type GetOptions struct {
	// ReturnFields selects the object fields returned by the appliance.
	ReturnFields []string
	// ExtAttrs filters results by extensible attributes.
	ExtAttrs ExtAttrs
	// ForceProxy sets the _proxy_search flag so the request is processed
	// on the Grid Master. Ignored on non-cloud WAPI versions.
	ForceProxy bool
}
