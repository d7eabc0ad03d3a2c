package email

import "fmt"

// ErrDisabled is returned when sending is attempted with email turned off.
// Callers treat it as a skip, not a delivery failure.
type ErrDisabled struct{}

func (ErrDisabled) Error() string { return "email sending is disabled" }

// ErrInvalidMessage means the message could not be built at all.
type ErrInvalidMessage struct {
	Reason string
}

func (e ErrInvalidMessage) Error() string {
	return fmt.Sprintf("invalid email message: %s", e.Reason)
}

// ErrSend wraps a provider-side delivery failure.
type ErrSend struct {
	Err error
}

func (e ErrSend) Error() string { return fmt.Sprintf("smtp send failed: %v", e.Err) }
func (e ErrSend) Unwrap() error { return e.Err }
