package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/issuecheck/pkg/sanitizer"
)

const maxUsernameLength = 39

var (
	usernameCharsRegex = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

	// Alphanumeric first, every hyphen followed by an alphanumeric.
	// Equivalent to ^[a-z0-9](?:[a-z0-9]|-(?=[a-z0-9])){0,38}$ with the
	// length cap checked separately, since RE2 has no lookahead.
	usernameRegex = regexp.MustCompile(`(?i)^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// UsernameRules returns the ordered GitHub username checks for a trimmed value.
// Hyphen placement is checked rule by rule so each violation has its own
// reason; the full pattern runs last as the authoritative acceptance rule.
func UsernameRules(field, value string) []Rule {
	value = sanitizer.Trim(value)

	return []Rule{
		RequiredString(field, value),
		{
			Check: func() bool { return utf8.RuneCountInString(value) <= maxUsernameLength },
			Error: NewError(field, ErrInvalidLength,
				"validation.username.length",
				"username must be between 1 and 39 characters",
				map[string]any{"max": maxUsernameLength},
			),
		},
		{
			Check: func() bool { return usernameCharsRegex.MatchString(value) },
			Error: NewError(field, ErrInvalidFormat,
				"validation.username.charset",
				"username may only contain letters, numbers and hyphens",
				nil,
			),
		},
		{
			Check: func() bool { return !strings.HasPrefix(value, "-") },
			Error: NewError(field, ErrInvalidFormat,
				"validation.username.leading_hyphen",
				"username must not start with a hyphen",
				nil,
			),
		},
		{
			Check: func() bool { return !strings.HasSuffix(value, "-") },
			Error: NewError(field, ErrInvalidFormat,
				"validation.username.trailing_hyphen",
				"username must not end with a hyphen",
				nil,
			),
		},
		{
			Check: func() bool { return !strings.Contains(value, "--") },
			Error: NewError(field, ErrInvalidFormat,
				"validation.username.consecutive_hyphens",
				"username must not contain consecutive hyphens",
				nil,
			),
		},
		{
			Check: func() bool { return usernameRegex.MatchString(value) },
			Error: NewError(field, ErrInvalidFormat,
				"validation.username.format",
				"invalid username format",
				nil,
			),
		},
	}
}

// ValidUsername reports the first failing username check as a single rule.
func ValidUsername(field, value string) Rule {
	return first(UsernameRules(field, value))
}

// ValidateUsername checks the syntax of a GitHub username without any lookup.
func ValidateUsername(value string) error {
	return ApplyFirst(UsernameRules("username", value)...)
}
