package auth

import (
	"net/http"
	"strings"
)

const TokenHeader = "X-Auth-Token"

// ExtractAccessToken reads the bearer token, falling back to X-Auth-Token.
func ExtractAccessToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}

	return strings.TrimSpace(r.Header.Get(TokenHeader))
}
