package email

import "fmt"

// ErrDisabled is returned by Send when delivery is turned off in config.
type ErrDisabled struct{}

func (e ErrDisabled) Error() string { return "email is disabled" }

// ErrInvalidMessage reports a message that cannot be sent as constructed.
type ErrInvalidMessage struct{ Reason string }

func (e ErrInvalidMessage) Error() string { return "invalid email message: " + e.Reason }

// ErrSend wraps an SMTP delivery failure.
type ErrSend struct {
	Provider string
	Err      error
}

func (e ErrSend) Error() string { return fmt.Sprintf("email send failed (%s): %v", e.Provider, e.Err) }
func (e ErrSend) Unwrap() error { return e.Err }
