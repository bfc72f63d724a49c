package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"vetrox-backend/internal/dto/request"
	"vetrox-backend/internal/dto/response"
	"vetrox-backend/internal/usecase"
	"vetrox-backend/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Signup handles POST /signup-email
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.Signup(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "signup")
		return
	}

	utils.ResponseMessage(w, "Signup successful!")
}

// LoginEmail handles POST /login-email
func (h *AuthHandler) LoginEmail(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	token, err := h.service.LoginEmail(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.AuthResponse{
		Message: "Login successful!",
		Token:   token,
	})
}

// LoginPhone handles POST /login-phone
func (h *AuthHandler) LoginPhone(w http.ResponseWriter, r *http.Request) {
	var req request.LoginPhoneRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	otp, err := h.service.LoginPhone(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login-phone")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.OTPResponse{
		Message: "OTP sent to mobile.",
		OTP:     otp,
	})
}

// VerifyOTP handles POST /verify-otp
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	token, err := h.service.VerifyOTP(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "verify-otp")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.AuthResponse{
		Message: "Login successful!",
		Token:   token,
	})
}

// ForgotPassword handles POST /forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resetToken, err := h.service.ForgotPassword(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "forgot-password")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.ResetTokenResponse{
		Message:    "Password reset token generated. Please use it to reset your password.",
		ResetToken: resetToken,
	})
}

// ResetPassword handles POST /reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "reset-password")
		return
	}

	utils.ResponseMessage(w, "Password reset successfully!")
}

// handleServiceError maps business errors to stable client responses.
// Anything unrecognized is an infrastructure fault: log it in full,
// return a generic 500.
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrAlreadyRegistered):
		h.log.Warn(operation+" failed - already registered", zap.Error(err))
		utils.ResponseBadRequest(w, "Email already registered!", nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		h.log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid email or password!")

	case errors.Is(err, usecase.ErrInvalidOTP):
		h.log.Warn(operation+" failed - invalid OTP", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid or expired OTP.", nil)

	case errors.Is(err, usecase.ErrUserNotFound):
		h.log.Warn(operation+" failed - user not found", zap.Error(err))
		utils.ResponseNotFound(w, "User not found!")

	case errors.Is(err, usecase.ErrInvalidResetToken):
		h.log.Warn(operation+" failed - invalid reset token", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid or expired token.", nil)

	case errors.Is(err, usecase.ErrDeliveryFailed):
		h.log.Error(operation+" failed - delivery", zap.Error(err))
		utils.ResponseInternalError(w, "Error during OTP generation or sending")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
