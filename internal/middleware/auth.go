package middleware

import (
	"context"
	"net/http"

	"supplydesk/internal/auth"
	"supplydesk/internal/logger"
	"supplydesk/internal/user"
	"supplydesk/internal/utils"
)

type contextKey string

const TokenClaimsKey contextKey = "jwtClaims"

// ClaimsFromContext returns the claims attached by AuthMiddleware.
func ClaimsFromContext(ctx context.Context) (*user.CustomClaims, bool) {
	c, ok := ctx.Value(TokenClaimsKey).(*user.CustomClaims)
	return c, ok
}

// AuthMiddleware is passive: requests without a token pass through untouched,
// requests with a bad token are rejected.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.ExtractAccessToken(r)
			if tokenStr == "" || secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := user.ParseJWT(secret, tokenStr)
			if err != nil {
				logger.FromCtx(r.Context()).Info("rejected access token")
				utils.WriteJSONError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), TokenClaimsKey, claims)
			ctx = logger.WithUserID(ctx, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
