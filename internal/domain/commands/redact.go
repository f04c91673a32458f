package commands

import (
	"regexp"
	"strings"
)

const redacted = "***"

// urlCredential matches the userinfo of an http(s) URL quoted in git output.
var urlCredential = regexp.MustCompile(`(?i)(https?://)[^@/\s'"]+@`)

// redact masks every credential embedded in a URL and every occurrence of token in text.
func redact(text, token string) string {
	text = urlCredential.ReplaceAllString(text, "${1}"+redacted+"@")
	if token == "" {
		return text
	}
	return strings.ReplaceAll(text, token, redacted)
}

// redactedError hides a credential from an error message while keeping the chain
// intact for errors.Is and errors.As.
type redactedError struct {
	err   error
	token string
}

func redactError(err error, token string) error {
	if err == nil || redact(err.Error(), token) == err.Error() {
		return err
	}
	return &redactedError{err: err, token: token}
}

func (e *redactedError) Error() string { return redact(e.err.Error(), e.token) }

func (e *redactedError) Unwrap() error { return e.err }
