package http

import (
	"context"
	"net/http"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
	"github.com/coopwheel/coopwheel/internal/wheel/service"
	"github.com/coopwheel/coopwheel/pkg/httpx"
	"github.com/coopwheel/coopwheel/pkg/slogx"
)

type contextKey int

const authContextKey contextKey = iota

// authContext is what an authenticated request carries for its handlers.
type authContext struct {
	User    domain.User
	Session domain.Session
}

// userFromContext returns the authenticated user. The second return is false
// on anonymous requests, which only optional-auth handlers ever see.
func userFromContext(ctx context.Context) (domain.User, bool) {
	a, ok := ctx.Value(authContextKey).(authContext)
	return a.User, ok
}

func sessionFromContext(ctx context.Context) (domain.Session, bool) {
	a, ok := ctx.Value(authContextKey).(authContext)
	return a.Session, ok
}

// sessionAuth runs the credential check on every wrapped request. The session
// id is tried first; when it is stale the refresh token silently rotates and
// the replacement cookies ride out on this same response. Denial reasons stay
// in the logs; the client only ever sees an anonymous 401.
type sessionAuth struct {
	Sessions *service.SessionService
	Cookies  cookieWriter
}

func (a *sessionAuth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res, err := a.authenticate(w, r)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		if !res.Authenticated {
			a.Cookies.Clear(w)
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), authContextKey, authContext{
			User:    res.User,
			Session: res.Session,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional authenticates when credentials are present but lets anonymous
// requests through untouched.
func (a *sessionAuth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res, err := a.authenticate(w, r)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
			return
		}

		ctx := r.Context()
		if res.Authenticated {
			ctx = context.WithValue(ctx, authContextKey, authContext{
				User:    res.User,
				Session: res.Session,
			})
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *sessionAuth) authenticate(w http.ResponseWriter, r *http.Request) (service.AuthResult, error) {
	ctx := r.Context()

	res, err := a.Sessions.Authenticate(ctx,
		cookieValue(r, sessionCookieName),
		cookieValue(r, refreshCookieName),
	)
	if err != nil {
		slogx.FromContext(ctx).Error("session authentication failed", "err", err)
		return service.AuthResult{}, err
	}

	if res.Rotated {
		a.Cookies.SetCredentials(w, res.Credentials)
	}
	return res, nil
}
