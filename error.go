package skillpack

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// Per-page conditions (ETRANSPORT, EDECODE) are recorded in the run report
// and never abort a run on their own. Structural conditions (ECONSERVATION,
// EEMPTYCORPUS) and configuration errors are fatal.
const (
	ECONFLICT     = "conflict"     // action cannot be performed
	ECONSERVATION = "conservation" // output corpus differs from input corpus
	EDECODE       = "decode"       // corrupt or unreadable page content
	EEMPTYCORPUS  = "empty_corpus" // every page in the run failed
	EINTERNAL     = "internal"     // internal error
	EINVALID      = "invalid"      // validation or configuration failed
	ENOTFOUND     = "not_found"    // entity does not exist
	ETRANSPORT    = "transport"    // network or file source unreachable
)

// Error represents an application-specific error. Errors carry a machine
// readable code and a human readable message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("skillpack error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
