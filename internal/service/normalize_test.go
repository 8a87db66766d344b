package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeContent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "CRLF becomes LF", input: "a\r\nb", expected: "a\nb"},
		{name: "multiple CRLF", input: "a\r\nb\r\nc", expected: "a\nb\nc"},
		{name: "already LF untouched", input: "a\nb", expected: "a\nb"},
		{name: "lone CR preserved", input: "a\rb", expected: "a\rb"},
		{name: "empty string", input: "", expected: ""},
		{name: "CRLF only", input: "\r\n", expected: "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeContent(tt.input))
		})
	}
}

func TestNormalizeContentIdempotent(t *testing.T) {
	inputs := []string{"a\r\nb", "plain", "x\r\ny\r\n", "\r\n\r\n"}
	for _, in := range inputs {
		once := NormalizeContent(in)
		assert.Equal(t, once, NormalizeContent(once))
	}
}
