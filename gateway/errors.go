package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrUnconfigured marks operations served by a degraded gateway.
	ErrUnconfigured = errors.New("gateway: backend not configured")
	// ErrNotFound marks a single-record resolution that matched nothing.
	ErrNotFound = errors.New("gateway: record not found")
)

// NetworkError wraps transport-level failures: timeouts, DNS, unreachable
// hosts. Callers on read paths degrade to fallback content; callers on write
// paths surface it to the user.
type NetworkError struct {
	Op         string
	Collection string
	Err        error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("gateway: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RejectedError carries a structured error the backend returned, such as a
// constraint violation.
type RejectedError struct {
	Op         string
	Collection string
	Status     int
	Code       string
	Message    string
}

func (e *RejectedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gateway: %s %s rejected: %s", e.Op, e.Collection, e.Message)
	}
	return fmt.Sprintf("gateway: %s %s rejected with status %d", e.Op, e.Collection, e.Status)
}

// IsNetwork reports whether err is a transport failure.
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsRejected reports whether err is a structured backend rejection.
func IsRejected(err error) bool {
	var rejErr *RejectedError
	return errors.As(err, &rejErr)
}

// IsNotFound reports whether err marks an absent record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnconfigured reports whether err came from a degraded gateway.
func IsUnconfigured(err error) bool {
	return errors.Is(err, ErrUnconfigured)
}
