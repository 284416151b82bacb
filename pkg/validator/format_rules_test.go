package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/issuecheck/pkg/validator"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		kind   error
		key    string
		reason string
	}{
		{name: "simple", value: "user@example.com"},
		{name: "subdomain", value: "first.last+tag@mail.example.co.uk"},
		{name: "surrounding whitespace", value: "  user@example.com\t"},
		{name: "symbols in local part", value: "o'hara!#$%&*=?^_`{|}~-@example.com"},
		{name: "local part at limit", value: strings.Repeat("a", 64) + "@example.com"},
		{
			name:   "empty",
			value:  "",
			kind:   validator.ErrFieldRequired,
			key:    "validation.required",
			reason: "email not provided",
		},
		{
			name:   "blank",
			value:  " \n ",
			kind:   validator.ErrFieldRequired,
			key:    "validation.required",
			reason: "email not provided",
		},
		{
			name:   "missing at",
			value:  "user.example.com",
			kind:   validator.ErrInvalidFormat,
			key:    "validation.email.single_at",
			reason: "email must contain exactly one @",
		},
		{
			name:   "double at",
			value:  "user@@example.com",
			kind:   validator.ErrInvalidFormat,
			key:    "validation.email.single_at",
			reason: "email must contain exactly one @",
		},
		{
			name:   "empty local part",
			value:  "@example.com",
			kind:   validator.ErrInvalidLength,
			key:    "validation.email.local_length",
			reason: "email local part must be between 1 and 64 characters",
		},
		{
			name:   "local part too long",
			value:  strings.Repeat("a", 65) + "@example.com",
			kind:   validator.ErrInvalidLength,
			key:    "validation.email.local_length",
			reason: "email local part must be between 1 and 64 characters",
		},
		{
			name:   "empty domain",
			value:  "user@",
			kind:   validator.ErrInvalidLength,
			key:    "validation.email.domain_length",
			reason: "email domain must be between 1 and 253 characters",
		},
		{
			name:   "domain too long",
			value:  "user@" + strings.Repeat("a", 250) + ".com",
			kind:   validator.ErrInvalidLength,
			key:    "validation.email.domain_length",
			reason: "email domain must be between 1 and 253 characters",
		},
		{
			name:   "domain without dot",
			value:  "user@localhost",
			kind:   validator.ErrInvalidFormat,
			key:    "validation.email.domain_missing_dot",
			reason: "email domain must contain a dot",
		},
		{
			name:   "domain starts with dot",
			value:  "user@.example.com",
			kind:   validator.ErrInvalidFormat,
			key:    "validation.email.domain_dot_edge",
			reason: "email domain must not start or end with a dot",
		},
		{
			name:   "domain ends with dot",
			value:  "user@example.com.",
			kind:   validator.ErrInvalidFormat,
			key:    "validation.email.domain_dot_edge",
			reason: "email domain must not start or end with a dot",
		},
		{
			name:   "consecutive dots",
			value:  "user@example..com",
			kind:   validator.ErrInvalidFormat,
			key:    "validation.email.domain_consecutive_dots",
			reason: "email domain must not contain consecutive dots",
		},
		{
			name:   "space in local part",
			value:  "us er@example.com",
			kind:   validator.ErrInvalidFormat,
			key:    "validation.email.format",
			reason: "invalid email format",
		},
		{
			name:   "multibyte local part is counted in characters",
			value:  strings.Repeat("é", 33) + "@example.com",
			kind:   validator.ErrInvalidFormat,
			key:    "validation.email.format",
			reason: "invalid email format",
		},
		{
			name:   "label starts with hyphen",
			value:  "user@-example.com",
			kind:   validator.ErrInvalidFormat,
			key:    "validation.email.format",
			reason: "invalid email format",
		},
		{
			name:   "underscore in domain",
			value:  "user@exa_mple.com",
			kind:   validator.ErrInvalidFormat,
			key:    "validation.email.format",
			reason: "invalid email format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateEmail(tt.value)
			if tt.kind == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.reason, validator.Reason(err))

			verr, ok := validator.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, "email", verr.Field)
			assert.Equal(t, tt.key, verr.TranslationKey)
		})
	}
}

func TestValidateEmail_Idempotent(t *testing.T) {
	for _, value := range []string{"user@example.com", "user@@example.com"} {
		assert.Equal(t, validator.ValidateEmail(value), validator.ValidateEmail(value))
	}
}

func TestValidEmail(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.ValidEmail("contact", "user@example.com")))

	err := validator.Apply(validator.ValidEmail("contact", "user@example..com"))
	errs := validator.ExtractValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "contact", errs[0].Field)
	assert.Equal(t, "validation.email.domain_consecutive_dots", errs[0].TranslationKey)
}
