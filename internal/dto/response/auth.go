package response

type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// OTPResponse echoes the issued code in the body. That mirrors the
// behavior the mobile clients rely on; the code still goes out by SMS.
type OTPResponse struct {
	Message string `json:"message"`
	OTP     string `json:"otp"`
}

type ResetTokenResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken"`
}
