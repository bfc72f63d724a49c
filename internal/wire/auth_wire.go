package wire

import (
	"vetrox-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// All auth routes are public entry points
	r.Post("/signup-email", authHandler.Signup)
	r.Post("/login-email", authHandler.LoginEmail)
	r.Post("/login-phone", authHandler.LoginPhone)
	r.Post("/verify-otp", authHandler.VerifyOTP)
	r.Post("/forgot-password", authHandler.ForgotPassword)
	r.Post("/reset-password", authHandler.ResetPassword)
}
