package usecase

import (
	"context"
	"fmt"
	"time"

	"vetrox-backend/internal/data/entity"
	"vetrox-backend/internal/data/repository"
	"vetrox-backend/internal/dto/request"
	"vetrox-backend/pkg/notification"
	"vetrox-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) error
	LoginEmail(ctx context.Context, req *request.LoginRequest) (string, error)
	LoginPhone(ctx context.Context, req *request.LoginPhoneRequest) (string, error)
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (string, error)
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) (string, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	sender notification.Sender
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	sender notification.Sender,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		sender: sender,
		config: config,
		log:    log,
	}
}

func (s *authService) sessionTTL() time.Duration {
	return time.Duration(s.config.JWT.SessionExpiryDays) * 24 * time.Hour
}

func (s *authService) resetTTL() time.Duration {
	return time.Duration(s.config.JWT.ResetExpiryMinutes) * time.Minute
}

// Signup creates an email-identified account. The caller still has to
// log in afterwards; no token is issued here.
func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) error {
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return ErrAlreadyRegistered
	}

	hashedPassword, err := utils.HashPassword(req.Password, s.config.Bcrypt.Cost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if err == repository.ErrDuplicateEmail {
			return ErrAlreadyRegistered
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User signed up",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return nil
}

// LoginEmail issues a 365-day session token on the email channel.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *authService) LoginEmail(ctx context.Context, req *request.LoginRequest) (string, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return "", fmt.Errorf("find user: %w", err)
	}

	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid login attempt", zap.String("email", req.Email))
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(
		user.ID.String(), utils.ChannelEmail, user.Email,
		s.config.JWT.Secret, s.sessionTTL())
	if err != nil {
		s.log.Error("Failed to sign session token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", fmt.Errorf("sign session token: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("channel", utils.ChannelEmail))

	return token, nil
}

// LoginPhone issues an OTP and dispatches it by SMS. The code stays in
// the registry even when delivery fails, so a retry can still consume it.
func (s *authService) LoginPhone(ctx context.Context, req *request.LoginPhoneRequest) (string, error) {
	code := s.repo.OTP.Issue(req.Mobile)

	if err := s.sender.SendSMS(ctx, req.Mobile, fmt.Sprintf("Your OTP is %s", code)); err != nil {
		s.log.Error("Failed to deliver OTP", zap.Error(err), zap.String("mobile", req.Mobile))
		return "", ErrDeliveryFailed
	}

	s.log.Info("OTP sent", zap.String("mobile", req.Mobile))
	return code, nil
}

// VerifyOTP completes a phone login. The session subject is the mobile
// number itself; phone sessions carry no email claim.
func (s *authService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (string, error) {
	switch s.repo.OTP.Verify(req.Mobile, req.OTP) {
	case repository.OTPValid:
		// proceed to token issuance
	case repository.OTPNotFound, repository.OTPMismatch:
		s.log.Warn("OTP verification failed", zap.String("mobile", req.Mobile))
		return "", ErrInvalidOTP
	}

	token, err := utils.GenerateSessionToken(
		req.Mobile, utils.ChannelPhone, "",
		s.config.JWT.Secret, s.sessionTTL())
	if err != nil {
		s.log.Error("Failed to sign session token", zap.Error(err), zap.String("mobile", req.Mobile))
		return "", fmt.Errorf("sign session token: %w", err)
	}

	s.log.Info("Phone login verified", zap.String("mobile", req.Mobile))
	return token, nil
}

// ForgotPassword issues a reset grant: a signed 1-hour token plus a copy
// stored on the account. The stored expiration is computed here, not
// decoded from the token. A new request supersedes any grant in flight.
func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) (string, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return "", fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	resetToken, err := utils.GenerateResetToken(user.ID.String(), s.config.JWT.Secret, s.resetTTL())
	if err != nil {
		s.log.Error("Failed to sign reset token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", fmt.Errorf("sign reset token: %w", err)
	}

	expiresAt := time.Now().Add(s.resetTTL())
	if err := s.repo.User.SetResetToken(ctx, user.ID, resetToken, expiresAt); err != nil {
		s.log.Error("Failed to store reset token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", fmt.Errorf("store reset token: %w", err)
	}

	// Best-effort delivery; the token is also returned to the caller.
	if err := s.sender.SendEmail(ctx, user.Email,
		"Password Reset Request",
		"Use the reset token from this request to set a new password. The token expires in 1 hour."); err != nil {
		s.log.Warn("Failed to email reset notice", zap.Error(err), zap.String("email", user.Email))
	}

	s.log.Info("Reset token issued",
		zap.String("user_id", user.ID.String()),
		zap.Time("expires_at", expiresAt))

	return resetToken, nil
}

// ResetPassword consumes a reset grant. Three checks, all mandatory: the
// signature verifies, the token equals the stored copy, and the stored
// expiration has not passed. A valid signature alone is not enough once
// the stored copy was consumed or superseded.
func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	claims, err := utils.VerifyToken(req.ResetToken, s.config.JWT.Secret)
	if err != nil {
		s.log.Warn("Reset token verification failed", zap.Error(err))
		return ErrInvalidResetToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		s.log.Warn("Reset token carries malformed subject", zap.String("subject", claims.UserID))
		return ErrInvalidResetToken
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("find user: %w", err)
	}

	if user == nil ||
		user.ResetToken == nil || *user.ResetToken != req.ResetToken ||
		user.ResetTokenExpiration == nil || user.ResetTokenExpiration.Before(time.Now()) {
		s.log.Warn("Reset token rejected against stored grant", zap.String("user_id", userID.String()))
		return ErrInvalidResetToken
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword, s.config.Bcrypt.Cost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.ResetPassword(ctx, user.ID, hashedPassword); err != nil {
		s.log.Error("Failed to reset password", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("reset password: %w", err)
	}

	s.log.Info("Password reset completed", zap.String("user_id", user.ID.String()))
	return nil
}
