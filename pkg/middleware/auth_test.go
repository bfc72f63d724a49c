package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vetrox-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func protectedEcho(t *testing.T, gotUserID *string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		*gotUserID = userID
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthToken_MissingHeader(t *testing.T) {
	var userID string
	handler := AuthToken("secret", zap.NewNop())(protectedEcho(t, &userID))

	req := httptest.NewRequest(http.MethodPost, "/order/place-order", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token required")
}

func TestAuthToken_MalformedHeader(t *testing.T) {
	var userID string
	handler := AuthToken("secret", zap.NewNop())(protectedEcho(t, &userID))

	req := httptest.NewRequest(http.MethodPost, "/order/place-order", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthToken_InvalidToken(t *testing.T) {
	var userID string
	handler := AuthToken("secret", zap.NewNop())(protectedEcho(t, &userID))

	req := httptest.NewRequest(http.MethodPost, "/order/place-order", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthToken_ExpiredToken(t *testing.T) {
	var userID string
	handler := AuthToken("secret", zap.NewNop())(protectedEcho(t, &userID))

	token, err := utils.GenerateSessionToken("u1", utils.ChannelEmail, "u1@x.com", "secret", -time.Second)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/order/place-order", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthToken_ValidToken(t *testing.T) {
	var userID string
	handler := AuthToken("secret", zap.NewNop())(protectedEcho(t, &userID))

	token, err := utils.GenerateSessionToken("u1", utils.ChannelEmail, "u1@x.com", "secret", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/order/place-order", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", userID)
}
