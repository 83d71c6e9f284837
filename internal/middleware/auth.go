package middleware

import (
	"net/http"

	"github.com/shui00cc/watchlist/internal/auth"
)

// RequireAuth sends anonymous requests to the login page instead of the
// wrapped handler. No flash is queued; the redirect is the message.
func RequireAuth(sessions *auth.Manager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := sessions.CurrentUser(r); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
