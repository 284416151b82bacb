package validator

import (
	"fmt"
	"strings"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: NewError(field, ErrFieldRequired,
			"validation.required",
			fmt.Sprintf("%s not provided", field),
			nil,
		),
	}
}
