package validator

import "errors"

// Failure kinds. Every ValidationError unwraps to exactly one of them.
var (
	// ErrFieldRequired is returned when the input is empty or blank.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidLength is returned when a value or one of its parts has an invalid length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidFormat is returned when a value breaks a syntactic rule.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrNotFound is returned when the remote lookup confirms the account does not exist.
	ErrNotFound = errors.New("account not found")

	// ErrLookupFailed is returned when the remote lookup fails for any other reason.
	ErrLookupFailed = errors.New("account lookup failed")

	// ErrAccountType is returned when the account exists but is neither a user nor an organization.
	ErrAccountType = errors.New("unsupported account type")
)
