package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/warungku/warung/pkg/auth"
	"github.com/warungku/warung/pkg/response"
)

type userKey struct{}

// AuthRequired validates the Bearer token and stores the authenticated
// user's ID in the request context for ownership checks downstream.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil || claims.Type != auth.TokenAccess {
			response.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), userKey{}, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated user's ID, or 0 when the request did not
// pass through AuthRequired.
func UserID(ctx context.Context) uint {
	if id, ok := ctx.Value(userKey{}).(uint); ok {
		return id
	}
	return 0
}
