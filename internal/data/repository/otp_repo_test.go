package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOTPRegistry_IssueAndVerifyOnce(t *testing.T) {
	reg := NewOTPRegistry(zap.NewNop())

	code := reg.Issue("+15551234567")
	require.Len(t, code, 6)

	assert.Equal(t, OTPValid, reg.Verify("+15551234567", code))

	// consumed on success, replay fails
	assert.Equal(t, OTPNotFound, reg.Verify("+15551234567", code))
}

func TestOTPRegistry_Mismatch(t *testing.T) {
	reg := NewOTPRegistry(zap.NewNop())

	code := reg.Issue("+15551234567")

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	assert.Equal(t, OTPMismatch, reg.Verify("+15551234567", wrong))

	// a mismatch does not consume the entry
	assert.Equal(t, OTPValid, reg.Verify("+15551234567", code))
}

func TestOTPRegistry_NeverIssued(t *testing.T) {
	reg := NewOTPRegistry(zap.NewNop())

	assert.Equal(t, OTPNotFound, reg.Verify("+15550000000", "123456"))
}

func TestOTPRegistry_ReissueInvalidatesPrevious(t *testing.T) {
	reg := NewOTPRegistry(zap.NewNop())

	first := reg.Issue("+15551234567")
	second := reg.Issue("+15551234567")

	if first != second {
		assert.Equal(t, OTPMismatch, reg.Verify("+15551234567", first))
	}
	assert.Equal(t, OTPValid, reg.Verify("+15551234567", second))
}

func TestOTPRegistry_IndependentKeys(t *testing.T) {
	reg := NewOTPRegistry(zap.NewNop())

	codeA := reg.Issue("+15551111111")
	codeB := reg.Issue("+15552222222")

	assert.Equal(t, OTPValid, reg.Verify("+15552222222", codeB))
	assert.Equal(t, OTPValid, reg.Verify("+15551111111", codeA))
}

func TestOTPRegistry_ConcurrentIssuance(t *testing.T) {
	reg := NewOTPRegistry(zap.NewNop())

	const n = 50
	codes := make([]string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = reg.Issue(fmt.Sprintf("+1555%07d", i))
		}(i)
	}
	wg.Wait()

	// no cross-key corruption: every issued code verifies under its own key
	for i := 0; i < n; i++ {
		assert.Equal(t, OTPValid, reg.Verify(fmt.Sprintf("+1555%07d", i), codes[i]))
	}
}
