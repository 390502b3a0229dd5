package response

import (
	"time"

	"studio-site/internal/data/entity"
)

// LoginResponse covers both login outcomes: either a session token was
// issued, or an OTP challenge was sent and the client must call verify-otp.
type LoginResponse struct {
	RequiresOTP bool          `json:"requires_otp"`
	Email       string        `json:"email,omitempty"`
	Message     string        `json:"message,omitempty"`
	Token       string        `json:"token,omitempty"`
	ExpiresAt   *time.Time    `json:"expires_at,omitempty"`
	User        *UserResponse `json:"user,omitempty"`
}

type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     *string         `json:"phone,omitempty"`
	Role      entity.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

type ResendOTPResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Helper converters

func UserToResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

func AuthenticatedResponse(user *entity.User, token string, expiresAt time.Time) *LoginResponse {
	return &LoginResponse{
		RequiresOTP: false,
		Token:       token,
		ExpiresAt:   &expiresAt,
		User:        UserToResponse(user),
	}
}

func RequiresOTPResponse(email, message string) *LoginResponse {
	return &LoginResponse{
		RequiresOTP: true,
		Email:       email,
		Message:     message,
	}
}
