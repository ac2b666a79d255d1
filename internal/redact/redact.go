// Package redact strips user-supplied text and environment details from
// strings before they are logged. Journal entries are personal, and decode or
// parse errors frequently echo request content back, so every error string
// that reaches a log goes through Error first.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	RedactionPlaceholder    = "[REDACTED]"
	RedactedTextPlaceholder = "[REDACTED_TEXT]"
	RedactedPathPlaceholder = "[REDACTED_PATH]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules are applied in order; earlier rules see the unmodified input.
var rules = []rule{
	// Stack trace fragments
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), "[STACK_TRACE_REDACTED]"},
	// Quoted user input, as echoed by encoding/json, strconv and date parsing errors
	{regexp.MustCompile(`"(?:[^"\\]|\\.)*"`), RedactedTextPlaceholder},
	{regexp.MustCompile(`'(?:[^'\\]|\\.)*'`), RedactedTextPlaceholder},
	// Credentials
	{regexp.MustCompile(`(?i)(password|passwd|pwd|token|secret|api[_-]?key)([=:\s]+)\S{3,}`), "[REDACTED_CREDENTIAL]"},
	// Email addresses
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), "[REDACTED_EMAIL]"},
	// File paths
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
