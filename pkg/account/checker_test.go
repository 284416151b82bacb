package account_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/issuecheck/pkg/account"
	"github.com/dmitrymomot/issuecheck/pkg/validator"
)

func TestNewChecker(t *testing.T) {
	t.Run("requires lookup", func(t *testing.T) {
		c, err := account.NewChecker(nil)
		require.ErrorIs(t, err, account.ErrInvalidConfig)
		assert.Nil(t, c)
	})

	t.Run("must variant panics", func(t *testing.T) {
		assert.Panics(t, func() { account.MustNewChecker(nil) })
	})
}

func TestChecker_Check(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		account account.Account
		err     error
		kind    error
		key     string
		reason  string
	}{
		{
			name:    "user",
			account: account.Account{Login: "octocat", Type: account.TypeUser},
		},
		{
			name:    "organization",
			account: account.Account{Login: "github", Type: account.TypeOrganization},
		},
		{
			name:    "bot",
			account: account.Account{Login: "octocat", Type: "Bot"},
			kind:    validator.ErrAccountType,
			key:     "validation.account.type",
			reason:  "not a valid account",
		},
		{
			name:   "empty type",
			kind:   validator.ErrAccountType,
			key:    "validation.account.type",
			reason: "not a valid account",
		},
		{
			name:   "not found",
			err:    account.ErrAccountNotFound,
			kind:   validator.ErrNotFound,
			key:    "validation.account.not_found",
			reason: "user not found, verify the username",
		},
		{
			name:   "wrapped not found",
			err:    fmt.Errorf("%w: octocat", account.ErrAccountNotFound),
			kind:   validator.ErrNotFound,
			key:    "validation.account.not_found",
			reason: "user not found, verify the username",
		},
		{
			name:   "other status",
			err:    &account.StatusError{StatusCode: 403},
			kind:   validator.ErrLookupFailed,
			key:    "validation.account.status",
			reason: "error checking user, status=403",
		},
		{
			name:   "transport error",
			err:    errors.New("dial tcp: connection refused"),
			kind:   validator.ErrLookupFailed,
			key:    "validation.account.lookup",
			reason: "error checking user: dial tcp: connection refused",
		},
		{
			name:   "multi-line transport error is flattened",
			err:    errors.Join(account.ErrUnexpectedResponse, errors.New("invalid character 'x'")),
			kind:   validator.ErrLookupFailed,
			key:    "validation.account.lookup",
			reason: "error checking user: unexpected account lookup response invalid character 'x'",
		},
		{
			name:   "context cancelled",
			err:    context.Canceled,
			kind:   validator.ErrLookupFailed,
			key:    "validation.account.lookup",
			reason: "error checking user: context canceled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := &MockLookup{}
			lookup.On("LookupAccount", ctx, "octocat").Return(tt.account, tt.err).Once()

			checker := account.MustNewChecker(lookup)
			err := checker.Check(ctx, "octocat")

			lookup.AssertExpectations(t)
			if tt.kind == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.reason, validator.Reason(err))

			verr, ok := validator.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, "username", verr.Field)
			assert.Equal(t, tt.key, verr.TranslationKey)
		})
	}
}

func TestChecker_StatusValues(t *testing.T) {
	lookup := account.LookupFunc(func(context.Context, string) (account.Account, error) {
		return account.Account{}, &account.StatusError{StatusCode: 502}
	})

	err := account.MustNewChecker(lookup).Check(context.Background(), "octocat")
	verr, ok := validator.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, 502, verr.TranslationValues["status"])
}

func TestChecker_Idempotent(t *testing.T) {
	ctx := context.Background()
	lookup := &MockLookup{}
	lookup.On("LookupAccount", ctx, "ghost").Return(account.Account{}, account.ErrAccountNotFound)

	checker := account.MustNewChecker(lookup)
	first := checker.Check(ctx, "ghost")
	second := checker.Check(ctx, "ghost")

	assert.Equal(t, first, second)
	lookup.AssertNumberOfCalls(t, "LookupAccount", 2)
}

func TestChecker_Logging(t *testing.T) {
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	lookup := &MockLookup{}
	lookup.On("LookupAccount", mock.Anything, "octocat").Return(account.Account{}, &account.StatusError{StatusCode: 500})

	err := account.MustNewChecker(lookup, account.WithLogger(log)).Check(context.Background(), "octocat")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "account lookup failed")
	assert.Contains(t, out, "component=account.checker")
	assert.Contains(t, out, "username=octocat")
	assert.Contains(t, out, "reason=validation.account.status")
	assert.Contains(t, out, "status=500")
}

func TestChecker_UsernameValues(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		account account.Account
		err     error
	}{
		{name: "not found", err: account.ErrAccountNotFound},
		{name: "account type", account: account.Account{Login: "dependabot", Type: "Bot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := account.LookupFunc(func(context.Context, string) (account.Account, error) {
				return tt.account, tt.err
			})

			verr, ok := validator.AsValidationError(account.MustNewChecker(lookup).Check(ctx, "dependabot"))
			require.True(t, ok)
			assert.Equal(t, "dependabot", verr.TranslationValues["username"])
		})
	}
}
