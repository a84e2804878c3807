package middleware

import (
	"context"
	"net/http"
	"strings"

	"backoffice/internal/domain/auth"
	"backoffice/internal/transport/http/api"
)

type ctxKey int

const ctxKeyIdentity ctxKey = iota

// Authenticate rejects requests without a valid bearer token and attaches
// the caller's identity to the context.
func Authenticate(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				api.Fail(w, http.StatusUnauthorized, "Token tidak ditemukan")
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				api.Fail(w, http.StatusUnauthorized, "Token tidak ditemukan")
				return
			}

			claims, err := auth.ParseAccessToken(secret, parts[1])
			if err != nil {
				api.Fail(w, http.StatusUnauthorized, "Token tidak valid atau sudah expired")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyIdentity, auth.Identity{
				ID:         claims.UserID,
				Email:      claims.Email,
				Name:       claims.Name,
				Role:       claims.Role,
				EmployeeID: claims.EmployeeID,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetIdentity(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(ctxKeyIdentity).(auth.Identity)
	return identity, ok
}
