package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/wordparty/wordparty/internal/api/apierr"
)

// AdminKeyHeader is the header carrying the admin key.
const AdminKeyHeader = "X-Admin-Key"

// AdminAuth gates a route group on the configured admin key. An empty
// configured key disables the whole group.
func AdminAuth(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			key := extractKey(r)
			if subtle.ConstantTimeCompare([]byte(key), []byte(adminKey)) != 1 {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractKey pulls the admin key from the request
func extractKey(r *http.Request) string {
	if key := r.Header.Get(AdminKeyHeader); key != "" {
		return key
	}

	// Fall back to a bearer token
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
