package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travelplanner/internal/profile"
)

// ProfileCookie names the cookie that identifies a browser profile.
const ProfileCookie = "tp_profile"

const profileCookieMaxAge = 365 * 24 * time.Hour

// NewProfileHandler returns a middleware that attaches the browser profile id
// to the request context. A request without a valid tp_profile cookie gets a
// fresh UUID, which is set on the response so later requests share its storage.
// secure controls the cookie's Secure attribute and should be true behind TLS.
func NewProfileHandler(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := profileFromCookie(r)
			if !ok {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     ProfileCookie,
					Value:    id,
					Path:     "/",
					MaxAge:   int(profileCookieMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(profile.WithID(r.Context(), id)))
		})
	}
}

// profileFromCookie accepts only UUIDs so a forged cookie cannot reach into
// another key namespace.
func profileFromCookie(r *http.Request) (string, bool) {
	c, err := r.Cookie(ProfileCookie)
	if err != nil {
		return "", false
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return "", false
	}
	return id.String(), true
}
