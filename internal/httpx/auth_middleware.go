package httpx

import (
	"net/http"
	"strings"

	"courseapi/internal/auth"
)

// OptionalAuthMiddleware extracts the requester role from a bearer
// token when one is present. Content routes are public, so a missing
// or invalid token degrades to an anonymous request instead of a 401;
// the resolver's visibility gate does the actual access control.
func OptionalAuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := ContextWithRole(r.Context(), claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
