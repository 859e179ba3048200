package http

import (
	"net/http"
	"time"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
)

const (
	// sessionCookieName carries the opaque session id on every request.
	sessionCookieName = "sid"

	// refreshCookieName carries the raw refresh token. Its path is pinned to
	// the auth endpoints so the secret never rides along on ordinary API
	// calls.
	refreshCookieName = "refresh"

	refreshCookiePath = "/api/auth"
)

// cookieWriter issues and clears the credential cookie pair. Secure is off in
// local development so the cookies work over plain http.
type cookieWriter struct {
	Secure     bool
	SessionTTL time.Duration
}

// SetCredentials writes the sid/refresh pair. The sid cookie outlives the
// refresh cookie write below only by its own MaxAge; the refresh cookie
// expires with the session row.
func (c cookieWriter) SetCredentials(w http.ResponseWriter, creds domain.Credentials) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    creds.SessionID,
		Path:     "/",
		MaxAge:   int(c.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    creds.RefreshToken,
		Path:     refreshCookiePath,
		Expires:  creds.ExpiresAt,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires both cookies immediately.
func (c cookieWriter) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     refreshCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
