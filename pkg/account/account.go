package account

import "context"

// AccountType is the account kind reported by GitHub.
type AccountType string

const (
	TypeUser         AccountType = "User"
	TypeOrganization AccountType = "Organization"
)

// Supported reports whether the type is a user or an organization.
func (t AccountType) Supported() bool {
	return t == TypeUser || t == TypeOrganization
}

// Account is the subset of a GitHub account the checks rely on.
type Account struct {
	Login string      `json:"login"`
	Type  AccountType `json:"type"`
}

// Lookup resolves a username to an account.
//
// Implementations return an error wrapping ErrAccountNotFound when the
// account does not exist and a *StatusError for any other non-success
// response. Any other error is treated as a transport failure.
type Lookup interface {
	LookupAccount(ctx context.Context, username string) (Account, error)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(ctx context.Context, username string) (Account, error)

func (f LookupFunc) LookupAccount(ctx context.Context, username string) (Account, error) {
	return f(ctx, username)
}
