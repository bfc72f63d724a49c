package utils

import (
	"context"
)

type contextKey string

const (
	UserIDKey  contextKey = "user_id"
	ChannelKey contextKey = "channel"
	EmailKey   contextKey = "email"
)

// SetClaimsContext stores the verified token claims on the request context.
func SetClaimsContext(ctx context.Context, claims *Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, ChannelKey, claims.Channel)
	if claims.Email != "" {
		ctx = context.WithValue(ctx, EmailKey, claims.Email)
	}
	return ctx
}

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

func GetChannelFromContext(ctx context.Context) (string, bool) {
	channel, ok := ctx.Value(ChannelKey).(string)
	return channel, ok
}

// GetEmailFromContext returns the email claim. Phone-channel sessions
// never carry one.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
