package http

import (
	"net/http"

	"github.com/coopwheel/coopwheel/internal/wheel/service"
	"github.com/coopwheel/coopwheel/internal/wheel/steam"
	"github.com/coopwheel/coopwheel/pkg/httpx"
	"github.com/coopwheel/coopwheel/pkg/slogx"
)

// SteamLoginHandler serves GET /api/auth/steam. It bounces the browser to the
// Steam login page with a return_to pointing at the callback below.
type SteamLoginHandler struct {
	Verifier *steam.OpenIDVerifier
	BaseURL  string
}

// ServeHTTP godoc
//
//	@Summary		Start Steam Login
//	@Description	Redirects the browser to the Steam OpenID login page.
//	@Tags			Auth
//	@Success		302	"Redirect to Steam"
//	@Router			/api/auth/steam [get].
func (h *SteamLoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	returnTo := h.BaseURL + "/api/auth/steam/callback"
	http.Redirect(w, r, h.Verifier.AuthURL(returnTo, h.BaseURL), http.StatusFound)
}

// SteamCallbackHandler serves GET /api/auth/steam/callback. The assertion in
// the query string is replayed to Steam for verification; a good assertion
// logs the user in, mints a session and redirects to the dashboard. A bad one
// redirects home with no cookies set.
type SteamCallbackHandler struct {
	Verifier *steam.OpenIDVerifier
	Users    *service.UserService
	Sessions *service.SessionService
	Steam    *steam.Client
	Cookies  cookieWriter
}

// ServeHTTP godoc
//
//	@Summary		Steam Login Callback
//	@Description	Verifies the Steam OpenID assertion, creates the account on first login and issues session cookies.
//	@Tags			Auth
//	@Success		302	"Redirect to /dashboard on success, / on failure"
//	@Router			/api/auth/steam/callback [get].
func (h *SteamCallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	steamID, valid, err := h.Verifier.Verify(ctx, r.URL.Query())
	if err != nil {
		log.Error("steam verification request failed", "err", err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if !valid {
		log.Warn("steam assertion rejected")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	// Profile data needs the Web API key; logins keep working without it,
	// just with an empty display name and avatar.
	var displayName, avatarURL string
	if h.Steam != nil && h.Steam.APIKey != "" {
		summaries, err := h.Steam.PlayerSummaries(ctx, []string{steamID})
		if err != nil {
			log.Warn("player summary lookup failed", "err", err)
		} else if len(summaries) > 0 {
			displayName = summaries[0].PersonaName
			avatarURL = summaries[0].AvatarFull
		}
	}

	user, err := h.Users.UpsertBySteamID(ctx, steamID, displayName, avatarURL)
	if err != nil {
		log.Error("user upsert failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	creds, err := h.Sessions.CreateSession(ctx, user.ID)
	if err != nil {
		log.Error("session creation failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	log.Info("login", "user_id", user.ID, "session_id", creds.SessionID)

	h.Cookies.SetCredentials(w, creds)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}
