package wire

import (
	"studio-site/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// ==================== PUBLIC ROUTES ====================
	// The whole login flow is public. Admins get requires_otp on login
	// and finish with verify-otp; tokens only come out of the last step.
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/verify-otp", authHandler.VerifyOTP)
	r.Post("/api/resend-otp", authHandler.ResendOTP)
}
