package booking

import "fmt"

// BookingError is a business-rule rejection: recoverable, user-facing,
// distinct from transport or store failures.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBookingError(msg string) error {
	return &BookingError{
		Code:    "bookingError",
		Message: msg,
	}
}

// IsBookingError reports whether err is a business-rule rejection.
func IsBookingError(err error) bool {
	_, ok := err.(*BookingError)
	return ok
}
