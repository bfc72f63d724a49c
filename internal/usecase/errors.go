package usecase

import (
	"errors"
)

// Business errors surfaced to the HTTP layer. Anything not listed here
// is an infrastructure fault and comes back wrapped; handlers turn it
// into a generic 500.
var (
	ErrAlreadyRegistered = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong
	// password, so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidOTP covers both missing and mismatched codes.
	ErrInvalidOTP        = errors.New("invalid or expired OTP")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	ErrDeliveryFailed    = errors.New("notification delivery failed")
)
