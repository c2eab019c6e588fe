package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/hqvuong/microshop/shared/auth"
	"github.com/hqvuong/microshop/shared/logs"
	"github.com/hqvuong/microshop/shared/web"
)

type contextKey string

const userClaimsKey contextKey = "userClaims"

const (
	missingAuthHeaderMsg = "Missing authorization header"
	invalidAuthHeaderMsg = "Invalid authorization header"
	invalidTokenMsg      = "Invalid or expired token"
)

// Authenticate guards protected routes. It requires an
// "Authorization: Bearer <token>" header, verifies the token locally and
// attaches the verified claims to the request context for downstream handlers.
func Authenticate(jwtManager *auth.JWTManager, logger logs.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				web.RespondWithError(w, logger, http.StatusUnauthorized, missingAuthHeaderMsg)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				web.RespondWithError(w, logger, http.StatusUnauthorized, invalidAuthHeaderMsg)
				return
			}

			claims, err := jwtManager.Verify(parts[1])
			if err != nil {
				logger.Warn("token verification failed", "error", err)
				web.RespondWithError(w, logger, http.StatusUnauthorized, invalidTokenMsg)
				return
			}

			ctx := ContextWithUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextWithUserClaims attaches verified claims to a context. Handlers read
// them back with GetUserClaims.
func ContextWithUserClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, userClaimsKey, claims)
}

func GetUserClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(userClaimsKey).(*auth.Claims)
	return claims, ok
}
