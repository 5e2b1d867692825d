package user

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailRequired = errors.New("email address is required")
	ErrEmailTaken    = errors.New("email address is already in use")
	ErrInvalidRole   = errors.New("invalid role")
)
