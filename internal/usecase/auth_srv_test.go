package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"vetrox-backend/internal/data/entity"
	"vetrox-backend/internal/data/repository"
	"vetrox-backend/internal/dto/request"
	"vetrox-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ---------- fakes ----------

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*entity.User
	byID    map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*entity.User),
		byID:    make(map[uuid.UUID]*entity.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	stored := *user
	f.byEmail[user.Email] = &stored
	f.byID[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byID[id]
	if !ok {
		return errors.New("user not found")
	}
	user.ResetToken = &token
	user.ResetTokenExpiration = &expiresAt
	return nil
}

func (f *fakeUserRepo) ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byID[id]
	if !ok {
		return errors.New("user not found")
	}
	user.PasswordHash = passwordHash
	user.ResetToken = nil
	user.ResetTokenExpiration = nil
	return nil
}

// expireResetGrant ages the stored expiration without touching the token.
func (f *fakeUserRepo) expireResetGrant(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	past := time.Now().Add(-time.Minute)
	f.byEmail[email].ResetTokenExpiration = &past
}

type sentMessage struct {
	to      string
	subject string
	body    string
}

type fakeSender struct {
	mu       sync.Mutex
	emails   []sentMessage
	smses    []sentMessage
	emailErr error
	smsErr   error
}

func (f *fakeSender) SendEmail(ctx context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emails = append(f.emails, sentMessage{to: to, subject: subject, body: body})
	return f.emailErr
}

func (f *fakeSender) SendSMS(ctx context.Context, to, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.smses = append(f.smses, sentMessage{to: to, body: body})
	return f.smsErr
}

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:             "test-secret",
			SessionExpiryDays:  365,
			ResetExpiryMinutes: 60,
		},
		Bcrypt: utils.BcryptConfig{Cost: 4},
	}
}

func newTestAuthService() (AuthService, *fakeUserRepo, *fakeSender, *utils.Config) {
	users := newFakeUserRepo()
	sender := &fakeSender{}
	config := testConfig()
	repo := &repository.Repository{
		User: users,
		OTP:  repository.NewOTPRegistry(zap.NewNop()),
	}
	return NewAuthService(repo, sender, config, zap.NewNop()), users, sender, config
}

// ---------- email flows ----------

func TestSignupThenLoginEmail(t *testing.T) {
	svc, _, _, config := newTestAuthService()
	ctx := context.Background()

	err := svc.Signup(ctx, &request.SignupRequest{Name: "Alice", Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	token, err := svc.LoginEmail(ctx, &request.LoginRequest{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	claims, err := utils.VerifyToken(token, config.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, utils.ChannelEmail, claims.Channel)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &request.SignupRequest{Name: "Alice", Email: "a@x.com", Password: "pw123"}))

	err := svc.Signup(ctx, &request.SignupRequest{Name: "Alice Again", Email: "a@x.com", Password: "other"})
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestLoginEmail_GenericFailure(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &request.SignupRequest{Name: "Alice", Email: "a@x.com", Password: "pw123"}))

	// wrong password and unknown email produce the identical error
	_, wrongPw := svc.LoginEmail(ctx, &request.LoginRequest{Email: "a@x.com", Password: "wrongpw"})
	_, unknown := svc.LoginEmail(ctx, &request.LoginRequest{Email: "nobody@x.com", Password: "pw123"})

	assert.ErrorIs(t, wrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.Equal(t, wrongPw, unknown)
}

// ---------- phone flows ----------

func TestPhoneLoginFlow(t *testing.T) {
	svc, _, sender, config := newTestAuthService()
	ctx := context.Background()

	code, err := svc.LoginPhone(ctx, &request.LoginPhoneRequest{Mobile: "+15551234567"})
	require.NoError(t, err)
	require.Len(t, code, 6)

	require.Len(t, sender.smses, 1)
	assert.Equal(t, "+15551234567", sender.smses[0].to)
	assert.Contains(t, sender.smses[0].body, code)

	token, err := svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Mobile: "+15551234567", OTP: code})
	require.NoError(t, err)

	claims, err := utils.VerifyToken(token, config.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, utils.ChannelPhone, claims.Channel)
	assert.Equal(t, "+15551234567", claims.UserID)
	assert.Empty(t, claims.Email)

	// code is one-time use
	_, err = svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Mobile: "+15551234567", OTP: code})
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()

	code, err := svc.LoginPhone(ctx, &request.LoginPhoneRequest{Mobile: "+15551234567"})
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	_, err = svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Mobile: "+15551234567", OTP: wrong})
	assert.ErrorIs(t, err, ErrInvalidOTP)

	// never-issued number fails the same way
	_, err = svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Mobile: "+15550000000", OTP: "123456"})
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestLoginPhone_DeliveryFailureKeepsCode(t *testing.T) {
	svc, _, sender, _ := newTestAuthService()
	ctx := context.Background()

	sender.smsErr = errors.New("gateway down")

	_, err := svc.LoginPhone(ctx, &request.LoginPhoneRequest{Mobile: "+15551234567"})
	assert.ErrorIs(t, err, ErrDeliveryFailed)

	// the code was issued before delivery failed and is not rolled back
	require.Len(t, sender.smses, 1)
	code := strings.TrimPrefix(sender.smses[0].body, "Your OTP is ")

	sender.smsErr = nil
	_, err = svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Mobile: "+15551234567", OTP: code})
	assert.NoError(t, err)
}

// ---------- reset flows ----------

func TestForgotThenResetPassword(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &request.SignupRequest{Name: "Alice", Email: "a@x.com", Password: "oldpw"}))

	resetToken, err := svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "a@x.com"})
	require.NoError(t, err)
	require.NotEmpty(t, resetToken)

	require.NoError(t, svc.ResetPassword(ctx, &request.ResetPasswordRequest{ResetToken: resetToken, NewPassword: "newpw"}))

	// old password no longer works, new one does
	_, err = svc.LoginEmail(ctx, &request.LoginRequest{Email: "a@x.com", Password: "oldpw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.LoginEmail(ctx, &request.LoginRequest{Email: "a@x.com", Password: "newpw"})
	assert.NoError(t, err)

	// grant is consumed: same token fails the second time
	err = svc.ResetPassword(ctx, &request.ResetPasswordRequest{ResetToken: resetToken, NewPassword: "again"})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	_, err := svc.ForgotPassword(context.Background(), &request.ForgotPasswordRequest{Email: "nobody@x.com"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestResetPassword_SupersededGrant(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &request.SignupRequest{Name: "Alice", Email: "a@x.com", Password: "pw123"}))

	first, err := svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "a@x.com"})
	require.NoError(t, err)

	// jwt iat/exp have second granularity; make sure the tokens differ
	time.Sleep(1100 * time.Millisecond)

	second, err := svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "a@x.com"})
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// the first token still has a valid signature but no longer matches
	// the stored grant
	err = svc.ResetPassword(ctx, &request.ResetPasswordRequest{ResetToken: first, NewPassword: "newpw"})
	assert.ErrorIs(t, err, ErrInvalidResetToken)

	err = svc.ResetPassword(ctx, &request.ResetPasswordRequest{ResetToken: second, NewPassword: "newpw"})
	assert.NoError(t, err)
}

func TestResetPassword_StoredExpiryPassed(t *testing.T) {
	svc, users, _, _ := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &request.SignupRequest{Name: "Alice", Email: "a@x.com", Password: "pw123"}))

	resetToken, err := svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "a@x.com"})
	require.NoError(t, err)

	users.expireResetGrant("a@x.com")

	err = svc.ResetPassword(ctx, &request.ResetPasswordRequest{ResetToken: resetToken, NewPassword: "newpw"})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetPassword_TamperedToken(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	err := svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		ResetToken:  "eyJhbGciOiJIUzI1NiJ9.tampered.signature",
		NewPassword: "newpw",
	})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}
