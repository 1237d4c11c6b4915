package middleware

import (
	"encoding/json"
	"net/http"

	"todoweb/internal/session"
)

// RequireSession gates a handler behind a valid session cookie. Requests
// without one are rejected with 401 before any persistence access; the
// decoded session is attached to the request context for handlers.
func RequireSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := store.Read(r)
			if !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]string{
						"code":    "AUTH_REQUIRED",
						"message": "authentication required",
					},
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(SetSession(r.Context(), sess)))
		})
	}
}
