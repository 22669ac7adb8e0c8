package wapi

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired = errors.New("config is required")
)

// ConfigError reports a missing or unusable connection option. It is raised
// eagerly at construction and never retried.
type ConfigError struct {
	Option string
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("WAPI config error: option %s %s", e.Option, e.Reason)
}

// ValidationError reports malformed caller input, such as an empty object
// type or an absolute request path.
type ValidationError struct {
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Reason
}

// AuthError reports that the appliance rejected the configured credentials
// with HTTP 401.
type AuthError struct {
	StatusCode int
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return "invalid WAPI credentials"
}

// SearchError reports a failed get request.
type SearchError struct {
	Response   interface{}
	ObjectType string
	Content    []byte
	StatusCode int
}

// Error implements the error interface.
func (e *SearchError) Error() string {
	return fmt.Sprintf("WAPI search error: object type %q: status %d: %s",
		e.ObjectType, e.StatusCode, e.Content)
}

// CannotCreateError reports a failed create request.
type CannotCreateError struct {
	Response   interface{}
	ObjectType string
	Content    []byte
	Payload    Payload
	StatusCode int
}

// Error implements the error interface.
func (e *CannotCreateError) Error() string {
	return fmt.Sprintf("cannot create %q object: status %d: %s",
		e.ObjectType, e.StatusCode, e.Content)
}

// MemberAlreadyAssignedError refines a create failure: the appliance reported
// that the member is already assigned to another network view.
type MemberAlreadyAssignedError struct {
	Response   interface{}
	ObjectType string
	Content    []byte
	Payload    Payload
	StatusCode int
}

// Error implements the error interface.
func (e *MemberAlreadyAssignedError) Error() string {
	return fmt.Sprintf("cannot create %q object: member is assigned to another network view: status %d",
		e.ObjectType, e.StatusCode)
}

// FuncCallError reports a failed WAPI function invocation.
type FuncCallError struct {
	Response   interface{}
	Ref        string
	FuncName   string
	Content    []byte
	StatusCode int
}

// Error implements the error interface.
func (e *FuncCallError) Error() string {
	return fmt.Sprintf("WAPI function %q failed on %q: status %d: %s",
		e.FuncName, e.Ref, e.StatusCode, e.Content)
}

// CannotUpdateError reports a failed update request.
type CannotUpdateError struct {
	Response   interface{}
	Ref        string
	Content    []byte
	StatusCode int
}

// Error implements the error interface.
func (e *CannotUpdateError) Error() string {
	return fmt.Sprintf("cannot update object %q: status %d: %s",
		e.Ref, e.StatusCode, e.Content)
}

// CannotDeleteError reports a failed delete request.
type CannotDeleteError struct {
	Response   interface{}
	Ref        string
	Content    []byte
	StatusCode int
}

// Error implements the error interface.
func (e *CannotDeleteError) Error() string {
	return fmt.Sprintf("cannot delete object %q: status %d: %s",
		e.Ref, e.StatusCode, e.Content)
}

// ConnectionError reports a transport-level failure or a success response
// whose body was not valid JSON.
type ConnectionError struct {
	Reason  error
	Content []byte
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("WAPI connection error: %v", e.Reason)
	}

	return fmt.Sprintf("WAPI connection error: unexpected reply: %s", e.Content)
}

// Unwrap returns the underlying transport error, if any.
func (e *ConnectionError) Unwrap() error {
	return e.Reason
}

// TimeoutError reports a request that exceeded the configured timeout.
type TimeoutError struct {
	Err error
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("WAPI request timed out: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// IsAuthError checks if the error is a credential rejection.
func IsAuthError(err error) bool {
	authErr := &AuthError{}

	return errors.As(err, &authErr)
}

// IsTimeout checks if the error is a request timeout.
func IsTimeout(err error) bool {
	timeoutErr := &TimeoutError{}

	return errors.As(err, &timeoutErr)
}

// IsConnectionError checks if the error is a transport-level failure.
func IsConnectionError(err error) bool {
	connErr := &ConnectionError{}

	return errors.As(err, &connErr)
}

// IsMemberAlreadyAssigned checks if the error is the member-already-assigned
// refinement of a create failure.
func IsMemberAlreadyAssigned(err error) bool {
	assignedErr := &MemberAlreadyAssignedError{}

	return errors.As(err, &assignedErr)
}
