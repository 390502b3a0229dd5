package usecase

import (
	"errors"
	"fmt"
)

// Auth flow error taxonomy. Handlers translate these to HTTP statuses;
// anything not listed here is an internal error and reported generically.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so responses never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled is returned for a correct password on a
	// deactivated account.
	ErrAccountDisabled = errors.New("account is deactivated")

	// ErrEmailTaken is returned on registration with a known email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound is returned when a user record is required and
	// missing (verify-otp mid-flow, resend for non-admins).
	ErrUserNotFound = errors.New("user not found")

	// ErrChallengeNotFound covers never-issued, already-consumed and
	// expired codes alike.
	ErrChallengeNotFound = errors.New("verification code not found or expired")

	// ErrCodeAlreadyUsed is returned when the stored challenge was
	// already verified.
	ErrCodeAlreadyUsed = errors.New("verification code already used")

	// ErrAttemptsExceeded is terminal: the challenge has been destroyed
	// and a fresh login is required.
	ErrAttemptsExceeded = errors.New("too many incorrect attempts, request a new code")

	// ErrResendTooSoon rate-limits OTP resends.
	ErrResendTooSoon = errors.New("a code was sent recently, wait before requesting another")
)

// InvalidCodeError is a wrong guess that has not yet exhausted the attempt
// budget. It carries how many guesses remain.
type InvalidCodeError struct {
	AttemptsLeft int
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("incorrect verification code, %d attempts left", e.AttemptsLeft)
}
