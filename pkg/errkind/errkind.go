// Package errkind defines the flat, string-tagged error taxonomy that the
// skill surfaces to the hosting agent. Every failure rendered to stdout
// carries exactly one of these kinds; lower-level packages attach the kind
// where the failure originates and the command layer renders it verbatim.
package errkind

import (
	stderrors "errors"
	"fmt"
)

// Kind identifies one failure category in the skill's error vocabulary.
type Kind string

const (
	// MissingAPIKey means no credential was found in any configured source.
	MissingAPIKey Kind = "missing_api_key"
	// InvalidAPIKey means the provider rejected the credential (HTTP 401/403).
	InvalidAPIKey Kind = "invalid_api_key"
	// LocationNotFound means geocoding produced no match for the query.
	LocationNotFound Kind = "location_not_found"
	// QuotaExceeded means the provider throttled the request (HTTP 429).
	QuotaExceeded Kind = "quota_exceeded"
	// InvalidDate means a date argument was unparseable or outside the
	// forecast window.
	InvalidDate Kind = "invalid_date"
	// NetworkError means the request never completed (transport failure,
	// DNS error, or timeout).
	NetworkError Kind = "network_error"
	// ProviderError means the provider answered with an unexpected status
	// or an undecodable payload.
	ProviderError Kind = "provider_error"
	// InvalidUsage means the command arguments could not be interpreted.
	InvalidUsage Kind = "invalid_usage"
)

// Error pairs a Kind with a human-readable message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes the cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a tagged error with no underlying cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a tagged error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags an existing error with a kind and message, preserving the cause.
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, cause: err}
}

// KindOf extracts the kind from an error chain. Untagged errors report as
// ProviderError so the output payload always carries a known kind.
func KindOf(err error) Kind {
	var tagged *Error
	if stderrors.As(err, &tagged) {
		return tagged.Kind
	}
	return ProviderError
}

// MessageOf returns the human-readable message for an error chain, falling
// back to the error's own text when it is untagged.
func MessageOf(err error) string {
	var tagged *Error
	if stderrors.As(err, &tagged) {
		return tagged.Message
	}
	return err.Error()
}

// Is reports whether the error chain carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
