package entity

import (
	"time"
)

// OTPChallenge is one outstanding login verification attempt. At most one
// active (unverified, unexpired) challenge exists per email: issuing a new
// code deletes all prior challenges for that address first.
type OTPChallenge struct {
	BaseSimple
	Email     string    `db:"email"`
	Code      string    `db:"code"`
	Verified  bool      `db:"verified"`
	Attempts  int       `db:"attempts"`
	ExpiresAt time.Time `db:"expires_at"`
}
