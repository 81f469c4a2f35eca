// Package errors provides structured error types for depscan.
//
// Extractors never fail: unreadable lines are skipped and incomplete
// declarations are reported with a skip reason. Errors from this package are
// raised one layer up, where files are read, configuration is loaded and API
// requests are decoded.
//
// Codes are stable strings shared by the CLI (printed after the message)
// and the HTTP API (the "code" field of error bodies):
//
//	err := errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest not found: %s", path)
//	errors.GetCode(err)     // FILE_NOT_FOUND
//	errors.UserMessage(err) // manifest not found: ios/Podfile
//
// Codes starting with INVALID_ blame the caller's input; see [Code.Invalid].
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies an Error for callers.
type Code string

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"    // malformed flags or request bodies
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST" // a name that cannot be a manifest
	ErrCodeInvalidManager  Code = "INVALID_MANAGER"  // unknown or malformed manager name
	ErrCodeInvalidPath     Code = "INVALID_PATH"     // unsafe or unusable path
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"   // depscan.toml problems

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeNetwork     Code = "NETWORK_ERROR" // remote cache unreachable
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED" // no manager can handle the input
)

// Invalid reports whether c blames the caller's input.
func (c Code) Invalid() bool {
	return strings.HasPrefix(string(c), "INVALID_")
}

// Error carries a code next to the message. Cause is optional.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Cause == nil {
		return msg
	}
	return msg + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := asError(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix or cause, as
// shown to CLI and API users. Other errors are returned as-is.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := asError(err); ok {
		return e.Message
	}
	return err.Error()
}

func asError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
