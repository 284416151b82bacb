package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/issuecheck/pkg/sanitizer"
)

const (
	maxEmailLocalLength  = 64
	maxEmailDomainLength = 253
)

// Local part from the allowed symbol set, then dot-separated domain labels
// that start and end alphanumeric and are at most 63 characters long.
var emailRegex = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// EmailRules returns the ordered email checks for a trimmed value.
// Lengths are counted in characters, not bytes.
// The structural checks run before the full pattern so that each of them
// reports its own reason; the pattern alone would reject most of those
// inputs with the generic format message.
func EmailRules(field, value string) []Rule {
	value = sanitizer.Trim(value)
	local, domain, _ := strings.Cut(value, "@")

	return []Rule{
		RequiredString(field, value),
		{
			Check: func() bool { return strings.Count(value, "@") == 1 },
			Error: NewError(field, ErrInvalidFormat,
				"validation.email.single_at",
				"email must contain exactly one @",
				nil,
			),
		},
		{
			Check: func() bool {
				n := utf8.RuneCountInString(local)
				return n >= 1 && n <= maxEmailLocalLength
			},
			Error: NewError(field, ErrInvalidLength,
				"validation.email.local_length",
				"email local part must be between 1 and 64 characters",
				map[string]any{"max": maxEmailLocalLength},
			),
		},
		{
			Check: func() bool {
				n := utf8.RuneCountInString(domain)
				return n >= 1 && n <= maxEmailDomainLength
			},
			Error: NewError(field, ErrInvalidLength,
				"validation.email.domain_length",
				"email domain must be between 1 and 253 characters",
				map[string]any{"max": maxEmailDomainLength},
			),
		},
		{
			Check: func() bool { return strings.Contains(domain, ".") },
			Error: NewError(field, ErrInvalidFormat,
				"validation.email.domain_missing_dot",
				"email domain must contain a dot",
				nil,
			),
		},
		{
			Check: func() bool { return !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".") },
			Error: NewError(field, ErrInvalidFormat,
				"validation.email.domain_dot_edge",
				"email domain must not start or end with a dot",
				nil,
			),
		},
		{
			Check: func() bool { return !strings.Contains(domain, "..") },
			Error: NewError(field, ErrInvalidFormat,
				"validation.email.domain_consecutive_dots",
				"email domain must not contain consecutive dots",
				nil,
			),
		},
		{
			Check: func() bool { return emailRegex.MatchString(value) },
			Error: NewError(field, ErrInvalidFormat,
				"validation.email.format",
				"invalid email format",
				nil,
			),
		},
	}
}

// ValidEmail reports the first failing email check as a single rule,
// for use alongside other rules in Apply.
func ValidEmail(field, value string) Rule {
	return first(EmailRules(field, value))
}

// ValidateEmail checks that value is a syntactically plausible email address.
// It returns nil when valid, otherwise a ValidationError for the first failed check.
func ValidateEmail(value string) error {
	return ApplyFirst(EmailRules("email", value)...)
}
