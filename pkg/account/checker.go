package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/issuecheck/pkg/logger"
	"github.com/dmitrymomot/issuecheck/pkg/sanitizer"
	"github.com/dmitrymomot/issuecheck/pkg/validator"
)

const field = "username"

var cleanMessage = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)

// Checker confirms that a well-formed username belongs to a real GitHub
// user or organization. It performs exactly one lookup per call, without
// retries; deadlines come from the caller's context.
type Checker struct {
	lookup Lookup
	logger *slog.Logger
}

// Option configures a Checker or UsernameValidator.
type Option func(*Checker)

// WithLogger sets the logger used for lookup diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewChecker returns a Checker backed by lookup.
func NewChecker(lookup Lookup, opts ...Option) (*Checker, error) {
	if lookup == nil {
		return nil, fmt.Errorf("%w: lookup is required", ErrInvalidConfig)
	}

	c := &Checker{
		lookup: lookup,
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("account.checker"))

	return c, nil
}

// MustNewChecker is NewChecker that panics on invalid arguments.
func MustNewChecker(lookup Lookup, opts ...Option) *Checker {
	c, err := NewChecker(lookup, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Check looks the username up and returns nil when it is a user or an
// organization. Every failure, including transport errors, is returned as a
// validator.ValidationError.
func (c *Checker) Check(ctx context.Context, username string) error {
	acc, err := c.lookup.LookupAccount(ctx, username)
	if err != nil {
		verr := lookupFailure(username, err)

		attrs := []any{
			logger.Username(username),
			logger.Reason(verr.TranslationKey),
			logger.Error(err),
		}
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			attrs = append(attrs, logger.StatusCode(statusErr.StatusCode))
		}
		c.logger.WarnContext(ctx, "account lookup failed", attrs...)
		return verr
	}

	if !acc.Type.Supported() {
		c.logger.DebugContext(ctx, "unsupported account type",
			logger.Username(username),
			logger.AccountType(string(acc.Type)),
		)
		return validator.NewError(field, validator.ErrAccountType,
			"validation.account.type",
			"not a valid account",
			map[string]any{"username": username, "type": string(acc.Type)},
		)
	}

	c.logger.DebugContext(ctx, "account confirmed",
		logger.Username(username),
		logger.AccountType(string(acc.Type)),
	)
	return nil
}

// lookupFailure maps a lookup error to its validation reason.
func lookupFailure(username string, err error) validator.ValidationError {
	if errors.Is(err, ErrAccountNotFound) {
		return validator.NewError(field, validator.ErrNotFound,
			"validation.account.not_found",
			"user not found, verify the username",
			map[string]any{"username": username},
		)
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return validator.NewError(field, validator.ErrLookupFailed,
			"validation.account.status",
			fmt.Sprintf("error checking user, status=%d", statusErr.StatusCode),
			map[string]any{"status": statusErr.StatusCode},
		)
	}

	msg := cleanMessage(err.Error())
	return validator.NewError(field, validator.ErrLookupFailed,
		"validation.account.lookup",
		"error checking user: "+msg,
		map[string]any{"error": msg},
	)
}
