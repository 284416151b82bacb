package account

import (
	"context"

	"github.com/dmitrymomot/issuecheck/pkg/logger"
	"github.com/dmitrymomot/issuecheck/pkg/sanitizer"
	"github.com/dmitrymomot/issuecheck/pkg/validator"
)

// UsernameValidator checks a GitHub username's format and, when a lookup is
// configured, that the account exists. The lookup is never called for a
// username that fails the format check.
type UsernameValidator struct {
	checker *Checker
}

// NewUsernameValidator returns a validator backed by lookup.
// A nil lookup gives a format-only validator.
func NewUsernameValidator(lookup Lookup, opts ...Option) *UsernameValidator {
	if lookup == nil {
		return &UsernameValidator{}
	}
	return &UsernameValidator{checker: MustNewChecker(lookup, opts...)}
}

// NewUsernameValidatorFromEnv builds a validator backed by the GitHub client
// and a logger, both configured from the environment (GITHUB_*, APP_ENV,
// LOG_LEVEL, LOG_FORMAT). Extra options are applied after the logger.
func NewUsernameValidatorFromEnv(opts ...Option) (*UsernameValidator, error) {
	client, err := NewGitHubClientFromEnv()
	if err != nil {
		return nil, err
	}

	log, err := logger.NewFromEnv("issuecheck")
	if err != nil {
		return nil, err
	}

	return NewUsernameValidator(client, append([]Option{WithLogger(log)}, opts...)...), nil
}

// Validate returns nil for a well-formed, existing username, otherwise a
// validator.ValidationError describing the first failed check.
func (v *UsernameValidator) Validate(ctx context.Context, username string) error {
	if err := validator.ValidateUsername(username); err != nil {
		return err
	}
	if v.checker == nil {
		return nil
	}
	return v.checker.Check(ctx, sanitizer.Trim(username))
}
