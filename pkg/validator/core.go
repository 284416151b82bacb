package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes a single failed rule.
// Kind is one of the package sentinels and is reachable through errors.Is.
// TranslationKey doubles as the stable reason code.
type ValidationError struct {
	Field             string
	Kind              error
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// NewError builds a ValidationError for the given field.
// The field name is always present in TranslationValues under "field".
func NewError(field string, kind error, key, message string, values map[string]any) ValidationError {
	params := make(map[string]any, len(values)+1)
	for k, v := range values {
		params[k] = v
	}
	params["field"] = field

	return ValidationError{
		Field:             field,
		Kind:              kind,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: params,
	}
}

func (e ValidationError) Error() string {
	return e.Message
}

func (e ValidationError) Unwrap() error {
	return e.Kind
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes every rule and aggregates the failures.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs.Add(rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ApplyFirst executes rules in order and stops at the first failure.
// The returned error is the failing rule's ValidationError.
func ApplyFirst(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error
		}
	}
	return nil
}

// first collapses an ordered rule list into a single rule carrying the
// error of whichever rule fails first. Rules are evaluated eagerly because
// Rule.Error is read by value after Check.
func first(rules []Rule) Rule {
	for _, rule := range rules {
		if !rule.Check() {
			return Rule{
				Check: func() bool { return false },
				Error: rule.Error,
			}
		}
	}
	return Rule{Check: func() bool { return true }}
}

// ExtractValidationErrors extracts ValidationErrors from an error.
// A single ValidationError is returned as a one-element collection.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs
	}

	var single ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}
	}

	return nil
}

// AsValidationError returns the first ValidationError carried by err.
func AsValidationError(err error) (ValidationError, bool) {
	errs := ExtractValidationErrors(err)
	if len(errs) == 0 {
		return ValidationError{}, false
	}
	return errs[0], true
}

func IsValidationError(err error) bool {
	return len(ExtractValidationErrors(err)) > 0
}

// Reason returns the human-readable failure reason, or an empty string for nil.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	if verr, ok := AsValidationError(err); ok {
		return verr.Message
	}
	return err.Error()
}
