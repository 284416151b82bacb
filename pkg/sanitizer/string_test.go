package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/issuecheck/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "removes leading and trailing spaces", input: "  octocat  ", expected: "octocat"},
		{name: "removes tabs and newlines", input: "\t\nuser@example.com\n\t", expected: "user@example.com"},
		{name: "handles empty string", input: "", expected: ""},
		{name: "handles whitespace-only string", input: "   \t\n  ", expected: ""},
		{name: "keeps inner whitespace", input: " a b ", expected: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Trim(tt.input))
		})
	}
}

func TestSingleLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "joins lines", input: "dial tcp:\nconnection refused", expected: "dial tcp: connection refused"},
		{name: "handles crlf", input: "a\r\nb", expected: "a b"},
		{name: "collapses runs", input: "  a   \t b  ", expected: "a b"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.SingleLine(tt.input))
		})
	}
}

func TestRemoveControlChars(t *testing.T) {
	assert.Equal(t, "abc", sanitizer.RemoveControlChars("a\x00b\x1bc"))
	assert.Equal(t, "a\nb\tc", sanitizer.RemoveControlChars("a\nb\tc"))
}

func TestCompose(t *testing.T) {
	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)
	assert.Equal(t, "read: connection reset", clean("read:\x00\nconnection reset\n"))

	assert.Equal(t, "x", sanitizer.Apply(" x ", sanitizer.Trim))
	assert.Equal(t, " x ", sanitizer.Apply(" x "))
}
