package account

import (
	"errors"
	"fmt"
)

var (
	// ErrAccountNotFound is the lookup's not-found signal.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidConfig is returned by constructors given unusable configuration.
	ErrInvalidConfig = errors.New("invalid account lookup configuration")

	// ErrUnexpectedResponse is returned when a success response cannot be decoded.
	ErrUnexpectedResponse = errors.New("unexpected account lookup response")
)

// StatusError reports a non-success, non-404 response from the lookup service.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("account lookup returned status %d", e.StatusCode)
}
