package http

import (
	"net/http"

	"github.com/coopwheel/coopwheel/pkg/httpx"
)

// MeHandler serves GET /api/me. Anonymous callers get a 200 with a null user
// rather than an error, and any stale cookies are cleared on the way out, so
// the web UI renders its logged-out state from the same call.
type MeHandler struct {
	Cookies cookieWriter
}

// ServeHTTP godoc
//
//	@Summary		Current User
//	@Description	Returns the profile of the logged-in user, or a null user for anonymous callers.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	map[string]userResponse	"user or null"
//	@Router			/api/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		h.Cookies.Clear(w)
		httpx.WriteJSON(w, http.StatusOK, map[string]*userResponse{"user": nil})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]*userResponse{
		"user": {
			ID:          user.ID,
			SteamID:     user.SteamID,
			DisplayName: user.DisplayName,
			AvatarURL:   user.AvatarURL,
		},
	})
}
