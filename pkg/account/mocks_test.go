package account_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/issuecheck/pkg/account"
)

// MockLookup is a mock implementation of account.Lookup.
type MockLookup struct {
	mock.Mock
}

func (m *MockLookup) LookupAccount(ctx context.Context, username string) (account.Account, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(account.Account), args.Error(1)
}
