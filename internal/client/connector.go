// Package client implements the wapi.Connector against a NIOS appliance.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/gridpoint-io/nios/internal/constants"
	internalhttp "github.com/gridpoint-io/nios/internal/http"
	"github.com/gridpoint-io/nios/pkg/wapi"
)

// Connector implements the wapi.Connector interface. It is stateless
// across calls apart from the shared pooled session, so a single instance
// may be used concurrently.
type Connector struct {
	config          *wapi.Config
	httpClient      *internalhttp.Client
	baseURL         string
	cloudAPIEnabled bool
}

// New resolves the configuration and builds a Connector with one pooled,
// authenticated session for its lifetime.
func New(config *wapi.Config) (*Connector, error) {
	if config == nil {
		return nil, wapi.ErrConfigRequired
	}

	config.ApplyDefaults()

	err := config.Validate()
	if err != nil {
		return nil, err
	}

	cloudEnabled, err := wapi.IsCloudVersion(config.WAPIVersion)
	if err != nil {
		return nil, err
	}

	httpClient := internalhttp.NewClient(config.Username, config.Password,
		internalhttp.WithLogger(config.Logger),
		internalhttp.WithLogCallsAsInfo(config.LogAPICallsAsInfo),
		internalhttp.WithTimeout(config.HTTPRequestTimeout),
		internalhttp.WithPoolSize(config.HTTPPoolConnections, config.HTTPPoolMaxSize),
		internalhttp.WithTLSVerify(config.SSLVerify),
		internalhttp.WithSilentSSLWarnings(config.SilentSSLWarnings),
	)

	return &Connector{
		config:          config,
		httpClient:      httpClient,
		baseURL:         config.BaseURL(),
		cloudAPIEnabled: cloudEnabled,
	}, nil
}

// CloudAPIEnabled reports whether the configured WAPI version supports
// Grid Master proxying.
func (c *Connector) CloudAPIEnabled() bool {
	return c.cloudAPIEnabled
}

// GetObject retrieves objects of type objType. When the configuration is
// cloud-capable and the first, unproxied request returns no results, one
// additional request is issued with the Grid Master proxy flag set. It
// returns nil when the appliance reports no results on either attempt.
func (c *Connector) GetObject(ctx context.Context, objType string, payload wapi.Payload, opts *wapi.GetOptions) (interface{}, error) {
	err := validateObjectType(objType, false)
	if err != nil {
		return nil, err
	}

	if opts == nil {
		opts = &wapi.GetOptions{}
	}

	params := buildQueryParams(payload, opts.ReturnFields)

	// Clear the proxy flag if the WAPI version is too old (non-cloud).
	proxyFlag := c.cloudAPIEnabled && opts.ForceProxy

	requestURL, err := c.buildURL(objType, params, opts.ExtAttrs, proxyFlag)
	if err != nil {
		return nil, err
	}

	result, err := c.getObject(ctx, objType, requestURL)
	if err != nil {
		return nil, err
	}

	if !isEmptyReply(result) {
		return result, nil
	}

	// Second attempt proxied to the Grid Master, unless the caller
	// already forced the proxy.
	if c.cloudAPIEnabled && !opts.ForceProxy {
		requestURL, err = c.buildURL(objType, params, opts.ExtAttrs, true)
		if err != nil {
			return nil, err
		}

		result, err = c.getObject(ctx, objType, requestURL)
		if err != nil {
			return nil, err
		}

		if !isEmptyReply(result) {
			return result, nil
		}
	}

	return nil, nil
}

// getObject issues one GET and interprets its outcome.
func (c *Connector) getObject(ctx context.Context, objType, requestURL string) (interface{}, error) {
	resp, err := c.httpClient.Get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	err = validateAuthorized(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &wapi.SearchError{
			Response:   safeJSONLoad(resp.Body),
			ObjectType: objType,
			Content:    resp.Body,
			StatusCode: resp.StatusCode,
		}
	}

	return parseReply(resp)
}

// CreateObject creates an object of type objType and returns the parsed
// reply, normally the new object reference.
func (c *Connector) CreateObject(ctx context.Context, objType string, payload wapi.Payload, returnFields ...string) (interface{}, error) {
	err := validateObjectType(objType, true)
	if err != nil {
		return nil, err
	}

	params := buildQueryParams(nil, returnFields)

	requestURL, err := c.buildURL(objType, params, nil, false)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, requestURL, body)
	if err != nil {
		return nil, err
	}

	err = validateAuthorized(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusCreated {
		parsed := safeJSONLoad(resp.Body)
		if strings.Contains(responseText(parsed), constants.MemberAlreadyAssignedText) {
			return nil, &wapi.MemberAlreadyAssignedError{
				Response:   parsed,
				ObjectType: objType,
				Content:    resp.Body,
				Payload:    payload,
				StatusCode: resp.StatusCode,
			}
		}

		return nil, &wapi.CannotCreateError{
			Response:   parsed,
			ObjectType: objType,
			Content:    resp.Body,
			Payload:    payload,
			StatusCode: resp.StatusCode,
		}
	}

	return parseReply(resp)
}

// CallFunc invokes a WAPI function on an existing object reference.
func (c *Connector) CallFunc(ctx context.Context, funcName, ref string, payload wapi.Payload, returnFields ...string) (interface{}, error) {
	params := buildQueryParams(nil, returnFields)
	params.Set(constants.FunctionParam, funcName)

	requestURL, err := c.buildURL(ref, params, nil, false)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, requestURL, body)
	if err != nil {
		return nil, err
	}

	err = validateAuthorized(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, &wapi.FuncCallError{
			Response:   safeJSONLoad(resp.Body),
			Ref:        ref,
			FuncName:   funcName,
			Content:    resp.Body,
			StatusCode: resp.StatusCode,
		}
	}

	return parseReply(resp)
}

// UpdateObject updates the object identified by ref.
func (c *Connector) UpdateObject(ctx context.Context, ref string, payload wapi.Payload, returnFields ...string) (interface{}, error) {
	params := buildQueryParams(nil, returnFields)

	requestURL, err := c.buildURL(ref, params, nil, false)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	resp, err := c.httpClient.Put(ctx, requestURL, body)
	if err != nil {
		return nil, err
	}

	err = validateAuthorized(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &wapi.CannotUpdateError{
			Response:   safeJSONLoad(resp.Body),
			Ref:        ref,
			Content:    resp.Body,
			StatusCode: resp.StatusCode,
		}
	}

	return parseReply(resp)
}

// DeleteObject removes the object identified by ref and returns the parsed
// reply, normally the removed reference.
func (c *Connector) DeleteObject(ctx context.Context, ref string) (interface{}, error) {
	requestURL, err := c.buildURL(ref, nil, nil, false)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	err = validateAuthorized(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &wapi.CannotDeleteError{
			Response:   safeJSONLoad(resp.Body),
			Ref:        ref,
			Content:    resp.Body,
			StatusCode: resp.StatusCode,
		}
	}

	return parseReply(resp)
}

// buildURL joins the percent-encoded relative path to the WAPI root and
// renders the query string. Extensible-attribute filters come first, each
// as a *name=value pair, followed by the encoded ordinary parameters; the
// segment order is part of the wire format.
func (c *Connector) buildURL(relativePath string, params url.Values, extAttrs wapi.ExtAttrs, forceProxy bool) (string, error) {
	if relativePath == "" || relativePath[0] == '/' {
		return "", &wapi.ValidationError{Reason: "path in request must be relative"}
	}

	if forceProxy {
		if params == nil {
			params = url.Values{}
		}

		params.Set(constants.ProxySearchParam, constants.ProxySearchGM)
	}

	var query strings.Builder

	if len(extAttrs) > 0 || len(params) > 0 {
		query.WriteByte('?')
	}

	if len(extAttrs) > 0 {
		names := make([]string, 0, len(extAttrs))
		for name := range extAttrs {
			names = append(names, name)
		}

		sort.Strings(names)

		filters := make([]string, 0, len(names))
		for _, name := range names {
			filters = append(filters, "*"+name+"="+extAttrs[name].Value)
		}

		query.WriteString(strings.Join(filters, "&"))
	}

	if len(params) > 0 {
		if query.Len() > 1 {
			query.WriteByte('&')
		}

		query.WriteString(params.Encode())
	}

	escapedPath := (&url.URL{Path: relativePath}).EscapedPath()

	return c.baseURL + escapedPath + query.String(), nil
}

// buildQueryParams merges the search payload and the _return_fields
// selector into ordinary query parameters.
func buildQueryParams(payload wapi.Payload, returnFields []string) url.Values {
	params := url.Values{}

	for name, value := range payload {
		params.Set(name, fmt.Sprintf("%v", value))
	}

	if len(returnFields) > 0 {
		params.Set(constants.ReturnFieldsParam, strings.Join(returnFields, ","))
	}

	return params
}

// validateObjectType rejects empty object types, and slashes when a bare
// type name rather than an object reference is expected.
func validateObjectType(objType string, typeExpected bool) error {
	if objType == "" {
		return &wapi.ValidationError{Reason: "NIOS object type cannot be empty"}
	}

	if typeExpected && strings.Contains(objType, "/") {
		return &wapi.ValidationError{Reason: "NIOS object type cannot contain slash"}
	}

	return nil
}

// validateAuthorized surfaces HTTP 401 before any other interpretation of
// the response.
func validateAuthorized(resp *internalhttp.Response) error {
	if resp.StatusCode == http.StatusUnauthorized {
		return &wapi.AuthError{StatusCode: resp.StatusCode}
	}

	return nil
}

// parseReply decodes the appliance reply. A success status with a body
// that is not valid JSON is still an error.
func parseReply(resp *internalhttp.Response) (interface{}, error) {
	var reply interface{}

	err := json.Unmarshal(resp.Body, &reply)
	if err != nil {
		return nil, &wapi.ConnectionError{Content: resp.Body}
	}

	return reply, nil
}

// safeJSONLoad decodes an error body on a best-effort basis so a broken
// body never masks the operation failure.
func safeJSONLoad(content []byte) interface{} {
	var parsed interface{}

	err := json.Unmarshal(content, &parsed)
	if err != nil {
		return nil
	}

	return parsed
}

// responseText extracts the appliance's text field from a parsed error
// body.
func responseText(parsed interface{}) string {
	body, ok := parsed.(map[string]interface{})
	if !ok {
		return ""
	}

	text, _ := body["text"].(string)

	return text
}

// isEmptyReply reports whether a successful get reply carries no results.
func isEmptyReply(reply interface{}) bool {
	switch value := reply.(type) {
	case nil:
		return true
	case []interface{}:
		return len(value) == 0
	case map[string]interface{}:
		return len(value) == 0
	case string:
		return value == ""
	default:
		return false
	}
}
