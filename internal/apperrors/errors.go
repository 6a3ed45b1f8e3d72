package apperrors

import "fmt"

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// NewShowNotFoundError creates a specific error for a show id the directory does not know.
func NewShowNotFoundError(showID int) *ErrNotFound {
	return NewNotFoundError("show", showID)
}

// ErrUpstreamStatus is returned when the directory service answers with a non-success status.
type ErrUpstreamStatus struct {
	StatusCode int
	URL        string
}

// Error implements the error interface.
func (e *ErrUpstreamStatus) Error() string {
	return fmt.Sprintf("directory service returned status %d for %s", e.StatusCode, e.URL)
}

// Is allows for error checking with errors.Is().
func (e *ErrUpstreamStatus) Is(target error) bool {
	_, ok := target.(*ErrUpstreamStatus)
	return ok
}

// ErrInvalidShowID is returned for show identifiers that cannot exist (non-numeric or not positive).
type ErrInvalidShowID struct {
	Value interface{}
}

// Error implements the error interface.
func (e *ErrInvalidShowID) Error() string {
	return fmt.Sprintf("invalid show ID: %v", e.Value)
}

// Is allows for error checking with errors.Is().
func (e *ErrInvalidShowID) Is(target error) bool {
	_, ok := target.(*ErrInvalidShowID)
	return ok
}

// ErrUpstreamUnavailable is returned while the circuit breaker refuses calls to the directory service.
type ErrUpstreamUnavailable struct {
	Cause error
}

// Error implements the error interface.
func (e *ErrUpstreamUnavailable) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("directory service unavailable: %v", e.Cause)
	}
	return "directory service unavailable"
}

// Unwrap exposes the breaker error.
func (e *ErrUpstreamUnavailable) Unwrap() error {
	return e.Cause
}

// Is allows for error checking with errors.Is().
func (e *ErrUpstreamUnavailable) Is(target error) bool {
	_, ok := target.(*ErrUpstreamUnavailable)
	return ok
}
