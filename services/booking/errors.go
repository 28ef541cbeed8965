package booking

import (
	"errors"
	"fmt"
)

// Error codes callers can branch on.
const (
	CodeValidation = "validationError"
	CodeDependency = "dependencyUnavailable"
	CodeNotFound   = "notFound"
)

// BookingError is the tagged error type for the booking flow. Callers
// branch on Code rather than matching message strings.
type BookingError struct {
	Code    string
	Message string
	Err     error

	// Set when a ledger write failed after the calendar event was created.
	CompensationAttempted bool
	CompensationFailed    bool
}

func (e *BookingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

func NewValidationError(msg string) error {
	return &BookingError{Code: CodeValidation, Message: msg}
}

func NewDependencyError(msg string, err error) error {
	return &BookingError{Code: CodeDependency, Message: msg, Err: err}
}

// AsBookingError unwraps err into a *BookingError when possible.
func AsBookingError(err error) (*BookingError, bool) {
	var be *BookingError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// IsValidation reports whether err is a request-shape failure rather than a
// downstream fault.
func IsValidation(err error) bool {
	be, ok := AsBookingError(err)
	return ok && be.Code == CodeValidation
}
