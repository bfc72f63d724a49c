package middleware

import (
	"net/http"
	"strings"

	"vetrox-backend/pkg/utils"

	"go.uber.org/zap"
)

// AuthToken validates the bearer JWT and puts its claims on the request
// context. Sessions are stateless: validity is signature plus expiry,
// there is no server-side revocation list.
func AuthToken(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Access denied. Token required!")
				return
			}

			// Format: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				utils.ResponseUnauthorized(w, "Access denied. Token required!")
				return
			}

			claims, err := utils.VerifyToken(parts[1], secret)
			if err != nil {
				logger.Warn("Token verification failed",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Invalid or expired token!")
				return
			}

			ctx := utils.SetClaimsContext(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
