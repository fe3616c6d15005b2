package middleware

import (
	"context"
	"net/http"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/auth"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/web"
)

// RequireAuth is middleware that validates the session cookie and
// injects the user_id into the request context.
func RequireAuth(sessions *auth.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookie)
			if err != nil {
				web.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
				return
			}

			userID, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil || userID == "" {
				web.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "session expired"})
				return
			}

			ctx := context.WithValue(r.Context(), "user_id", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
