// AngelaMos | 2026
// session.go

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// VisitorSession attaches an anonymous session id to public gate requests.
// The cookie carries no Max-Age, so it lives exactly as long as the browser
// session; unlock flags keyed by it expire with the visit.
func VisitorSession(cookieName string, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(cookieName); err == nil {
				if _, parseErr := uuid.Parse(c.Value); parseErr == nil {
					id = c.Value
				}
			}

			if id == "" {
				id = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), SessionIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
