package middleware

import (
	"net/http"

	"backoffice/internal/transport/http/api"
)

// RequireAdmin gates admin-only routes. It assumes Authenticate already ran.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentity(r.Context())
		if !ok {
			api.Fail(w, http.StatusUnauthorized, "Token tidak ditemukan")
			return
		}
		if !identity.IsAdmin() {
			api.Fail(w, http.StatusForbidden, "Akses ditolak. Hanya admin yang diizinkan")
			return
		}
		next.ServeHTTP(w, r)
	})
}
