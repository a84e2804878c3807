package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"backoffice/internal/transport/http/api"
)

// Recoverer converts panics into a 500 envelope instead of tearing down the
// connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered", "err", rec, "path", r.URL.Path, "stack", string(debug.Stack()))
				api.FailError(w, http.StatusInternalServerError, "Terjadi kesalahan server", fmt.Errorf("%v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
