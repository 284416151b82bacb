package logger

import (
	"log/slog"
)

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Username records a GitHub username under "username".
func Username(name string) slog.Attr {
	return slog.String("username", name)
}

// AccountType records the account type reported by the lookup under "account_type".
func AccountType(t string) slog.Attr {
	return slog.String("account_type", t)
}

// StatusCode records an upstream HTTP status under "status".
func StatusCode(code int) slog.Attr {
	return slog.Int("status", code)
}

// Reason records a validation reason code under "reason".
func Reason(code string) slog.Attr {
	return slog.String("reason", code)
}
