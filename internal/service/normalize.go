package service

import "strings"

// NormalizeContent converts CRLF line endings to LF. It is pure and
// idempotent, and runs on every free-text field right before persistence so
// stored content never depends on the submitting client's platform.
func NormalizeContent(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
