package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand"
	"strconv"
	"time"
)

// ==================== OTP ====================

// GenerateOTPCode creates a numeric one-time code of the given length,
// left-padded with zeros. Codes are single-use and short-lived, but the
// source is crypto/rand so they stay unpredictable.
func GenerateOTPCode(length int) string {
	if length <= 0 {
		length = 6
	}

	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// rand.Reader failing means the platform entropy source is broken;
		// fall back to the clock rather than refuse login entirely.
		n = big.NewInt(time.Now().UnixNano() % max.Int64())
	}

	return fmt.Sprintf("%0*d", length, n)
}

// ==================== ORDER NUMBER ====================

// GenerateOrderNumber creates a human-readable order reference.
// Format: ORD-YYYYMMDD-HHMMSS-RANDOM
func GenerateOrderNumber() string {
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", mrand.Intn(10000))

	return fmt.Sprintf("ORD-%s-%s-%s", datePart, timePart, randomPart)
}

// ==================== HELPERS ====================

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
