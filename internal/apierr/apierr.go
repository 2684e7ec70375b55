// Package apierr classifies every failure the CLI can surface, from local
// validation to remote API errors, so the command layer can render one
// line and pick the right exit code.
package apierr

import (
	"errors"
	"fmt"
)

// Kind is the failure category.
type Kind string

const (
	InvalidArguments   Kind = "invalid_arguments"
	NoActiveCredential Kind = "no_active_credential"
	DuplicateName      Kind = "duplicate_name"
	NotFound           Kind = "not_found"
	Network            Kind = "network"
	Unauthorized       Kind = "unauthorized"
	RateLimited        Kind = "rate_limited"
	InvalidRequest     Kind = "invalid_request"
	Remote             Kind = "remote_error"
)

// Exit codes: validation and remote failures exit 1, missing or rejected
// credentials exit 2.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitCredential = 2
)

// Error carries a failure kind, a user-facing message, and the cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same Kind, so errors.Is(err, apierr.New(kind, ""))
// style checks work across wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New creates a classified error with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error, keeping it on the chain.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the Kind of err, or Remote when err carries no
// classification (an unclassified failure is still a failure).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Remote
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch KindOf(err) {
	case NoActiveCredential, Unauthorized:
		return ExitCredential
	default:
		return ExitFailure
	}
}
