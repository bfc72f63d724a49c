package request

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginPhoneRequest struct {
	Mobile string `json:"mobile" validate:"required,min=10,max=16"`
}

type VerifyOTPRequest struct {
	Mobile string `json:"mobile" validate:"required,min=10,max=16"`
	OTP    string `json:"otp" validate:"required,len=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	ResetToken  string `json:"resetToken" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=5"`
}
