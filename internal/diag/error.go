package diag

import (
	"errors"
	"fmt"
)

// Error is a fatal compilation diagnostic. Every pipeline stage aborts on the
// first one it produces; there is no recovery or collection.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s]: %s", e.Code.ID(), e.Message)
}

// New builds a diagnostic with a preformatted message.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Newf builds a diagnostic with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a diagnostic code to an underlying error, keeping its text.
func Wrap(code Code, err error) *Error {
	return &Error{Code: code, Message: err.Error()}
}

// CodeOf extracts the diagnostic code from err, unwrapping as needed.
// Returns UnknownCode when err carries no diagnostic.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return UnknownCode
}
