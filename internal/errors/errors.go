// Package errors carries typed failures from the engine to its callers.
//
// Engine validation failures are TypeInput values, usually wrapping one of
// the sentinels in core/packages. The API and CLI only branch on the type and
// the wrapped sentinel, never on message text.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type is the failure class.
type Type string

const (
	TypeInput    Type = "INPUT_ERROR"
	TypeParsing  Type = "PARSING_ERROR"
	TypeConfig   Type = "CONFIG_ERROR"
	TypeInternal Type = "INTERNAL_ERROR"
	TypeNotFound Type = "NOT_FOUND"
)

// Error is a typed failure. Context holds the offending values and is
// returned verbatim in API error bodies.
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("[%s] %s", e.Type, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// WithContext records key on e and returns e for chaining.
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = map[string]interface{}{}
	}
	e.Context[key] = value
	return e
}

// Newf builds an error of type t without a cause.
func Newf(t Type, format string, args ...interface{}) *Error {
	return &Error{Type: t, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches message and type t to cause.
func Wrap(t Type, message string, cause error) *Error {
	return &Error{Type: t, Message: message, Cause: cause}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(t Type, cause error, format string, args ...interface{}) *Error {
	return Wrap(t, fmt.Sprintf(format, args...), cause)
}

// IsType reports whether any *Error in err's chain has type t.
func IsType(err error, t Type) bool {
	var e *Error
	for stderrors.As(err, &e) {
		if e.Type == t {
			return true
		}
		err = e.Cause
	}
	return false
}

// Input declares a validation sentinel.
func Input(message string) *Error { return &Error{Type: TypeInput, Message: message} }

func Parsing(message string, cause error) *Error  { return Wrap(TypeParsing, message, cause) }
func Config(message string, cause error) *Error   { return Wrap(TypeConfig, message, cause) }
func Internal(message string, cause error) *Error { return Wrap(TypeInternal, message, cause) }

// NotFound reports a missing file or record, e.g. NotFound("rate card", path).
func NotFound(kind, name string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", kind, name)
}
