package repository

import (
	"sync"
	"time"

	"vetrox-backend/pkg/utils"

	"go.uber.org/zap"
)

// OTPResult is the outcome of a verification attempt.
type OTPResult int

const (
	OTPValid OTPResult = iota
	OTPNotFound
	OTPMismatch
)

// OTPRegistry holds outstanding one-time codes keyed by phone number.
// Entries live in process memory only: a restart drops them all, and no
// timer ever expires them. Issuing a new code for a number silently
// invalidates the previous one, even if its holder has not tried it yet.
type OTPRegistry interface {
	Issue(mobile string) string
	Verify(mobile, code string) OTPResult
}

type otpEntry struct {
	code     string
	issuedAt time.Time
}

type otpRegistry struct {
	mu      sync.Mutex
	entries map[string]otpEntry
	log     *zap.Logger
}

func NewOTPRegistry(log *zap.Logger) OTPRegistry {
	return &otpRegistry{
		entries: make(map[string]otpEntry),
		log:     log.With(zap.String("repository", "otp")),
	}
}

// Issue generates a 6-digit code and stores it, overwriting any code
// previously issued for the same number.
func (r *otpRegistry) Issue(mobile string) string {
	code := utils.GenerateOTP()

	r.mu.Lock()
	r.entries[mobile] = otpEntry{code: code, issuedAt: time.Now()}
	r.mu.Unlock()

	r.log.Debug("OTP issued", zap.String("mobile", mobile))
	return code
}

// Verify consumes the stored code on success. Codes are one-time use: a
// second attempt with the same code returns OTPNotFound.
func (r *otpRegistry) Verify(mobile, code string) OTPResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[mobile]
	if !ok {
		return OTPNotFound
	}

	if entry.code != code {
		return OTPMismatch
	}

	delete(r.entries, mobile)
	return OTPValid
}
