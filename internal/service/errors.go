package service

import (
	"errors"
	"fmt"
)

// ErrorKind tags a service failure with its cause class so handlers can map
// it to an HTTP status without string matching.
type ErrorKind string

const (
	// KindConfig marks missing server-side credentials or settings.
	KindConfig ErrorKind = "config"
	// KindValidation marks malformed or incomplete caller input.
	KindValidation ErrorKind = "validation"
	// KindParse marks upstream model output that is not valid JSON.
	KindParse ErrorKind = "parse"
	// KindSchema marks upstream model output that parsed but violates the
	// recipe schema bounds.
	KindSchema ErrorKind = "schema"
	// KindUpstream marks a third-party API failure.
	KindUpstream ErrorKind = "upstream"
)

// Error is the failure type returned by all services. UpstreamStatus and
// UpstreamBody are populated only for KindUpstream.
type Error struct {
	Kind           ErrorKind
	Message        string
	UpstreamStatus int
	UpstreamBody   string
	err            error
}

func (e *Error) Error() string {
	if e.UpstreamStatus != 0 {
		return fmt.Sprintf("%s: %s (upstream status %d: %s)", e.Kind, e.Message, e.UpstreamStatus, e.UpstreamBody)
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.err }

// NewConfigError reports absent credentials; always a server fault.
func NewConfigError(message string) *Error {
	return &Error{Kind: KindConfig, Message: message}
}

// NewValidationError reports bad caller input.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewParseError reports non-JSON model output.
func NewParseError(message string, err error) *Error {
	return &Error{Kind: KindParse, Message: message, err: err}
}

// NewSchemaError reports model output that fails the recipe schema.
func NewSchemaError(message string, err error) *Error {
	return &Error{Kind: KindSchema, Message: message, err: err}
}

// NewUpstreamError reports a third-party API failure. status and body may be
// zero when the request never produced a response.
func NewUpstreamError(message string, status int, body string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, UpstreamStatus: status, UpstreamBody: body, err: err}
}

// KindOf extracts the error kind, or "" for non-service errors.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
