package errors

import (
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeConfiguration covers missing or invalid configuration:
	// an absent config file, an empty required key, or both dimensions
	// resolving to zero.
	ErrorTypeConfiguration ErrorType = "configuration"

	// ErrorTypeEncoding covers image URLs that cannot be percent-encoded.
	ErrorTypeEncoding ErrorType = "encoding"

	// ErrorTypeSigning covers safe-mode failures: an empty signing key or
	// a signing step that did not produce a path.
	ErrorTypeSigning ErrorType = "signing"

	// ErrorTypeClipboard covers clipboard write failures. Non-fatal: the
	// generated URL is still printed.
	ErrorTypeClipboard ErrorType = "clipboard"

	ErrorTypeUnknown ErrorType = "unknown"
)

// Exit codes per error type. Clipboard errors never terminate the run.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitConfiguration = 2
	ExitEncoding      = 3
	ExitSigning       = 4
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType      `json:"type"`
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	InnerError error          `json:"-"`
	ExitStatus int            `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.InnerError != nil {
		return e.InnerError.Error()
	}
	return string(e.Type)
}

// Unwrap returns the inner error
func (e *AppError) Unwrap() error {
	return e.InnerError
}

// WithMessage adds a message to the error
func (e *AppError) WithMessage(msg string) *AppError {
	e.Message = msg
	return e
}

// WithCode adds a code to the error
func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithExitStatus sets the process exit status for this error
func (e *AppError) WithExitStatus(status int) *AppError {
	e.ExitStatus = status
	return e
}

// WithInnerError sets the inner error
func (e *AppError) WithInnerError(err error) *AppError {
	e.InnerError = err
	return e
}

// Is checks if this error is of a specific type
func (e *AppError) Is(target error) bool {
	if targetApp, ok := target.(*AppError); ok {
		return e.Type == targetApp.Type
	}
	return false
}

// New creates a new AppError
func New(errType ErrorType, message string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Code:       string(errType),
		ExitStatus: ExitFailure,
	}
}

// FromError converts a standard error to AppError
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	return &AppError{
		Type:       ErrorTypeUnknown,
		Message:    err.Error(),
		InnerError: err,
		ExitStatus: ExitFailure,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *AppError {
	return FromError(err).WithMessage(message)
}

// ExitStatus returns the process exit status for an error. A nil error or
// a non-fatal one exits clean; errors without an assigned status exit
// with ExitFailure.
func ExitStatus(err error) int {
	if !IsFatal(err) {
		return ExitOK
	}
	appErr := FromError(err)
	if appErr.ExitStatus == 0 {
		return ExitFailure
	}
	return appErr.ExitStatus
}

// IsFatal reports whether an error should terminate the run. Clipboard
// errors are the only non-fatal kind.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return FromError(err).Type != ErrorTypeClipboard
}

// Configuration errors

func NewConfiguration(message string) *AppError {
	return New(ErrorTypeConfiguration, message).WithExitStatus(ExitConfiguration)
}

// NewMissingKey reports a required configuration key that is absent or empty.
func NewMissingKey(key string) *AppError {
	return NewConfiguration(fmt.Sprintf("%s is not set", key)).
		WithDetail("key", key).
		WithCode(CodeMissingKey)
}

// NewConfigFile reports a config file that is missing or unreadable.
func NewConfigFile(path string, err error) *AppError {
	return NewConfiguration(fmt.Sprintf("cannot read config file %s", path)).
		WithDetail("path", path).
		WithCode(CodeConfigFile).
		WithInnerError(err)
}

// Encoding errors

func NewEncoding(input string, err error) *AppError {
	return New(ErrorTypeEncoding, "image URL cannot be percent-encoded").
		WithDetail("input", input).
		WithExitStatus(ExitEncoding).
		WithInnerError(err)
}

// Signing errors

func NewSigning(message string) *AppError {
	return New(ErrorTypeSigning, message).WithExitStatus(ExitSigning)
}

// Clipboard errors

func NewClipboard(err error) *AppError {
	return New(ErrorTypeClipboard, "clipboard write failed").
		WithInnerError(err)
}

// Error codes for specific scenarios
const (
	CodeMissingKey = "MISSING_KEY"
	CodeConfigFile = "CONFIG_FILE"
)
