package user

import "fmt"

// UserError is a recoverable account error surfaced to the client.
type UserError struct {
	Code    string
	Message string
}

func (e *UserError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewUserError(msg string) error {
	return &UserError{
		Code:    "userError",
		Message: msg,
	}
}

// IsUserError reports whether err is a recoverable account error.
func IsUserError(err error) bool {
	_, ok := err.(*UserError)
	return ok
}
