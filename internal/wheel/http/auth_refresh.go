package http

import (
	"net/http"

	"github.com/coopwheel/coopwheel/internal/wheel/service"
	"github.com/coopwheel/coopwheel/pkg/httpx"
	"github.com/coopwheel/coopwheel/pkg/slogx"
)

// RefreshHandler serves POST /api/auth/refresh, the silent-refresh endpoint.
// The refresh cookie is scoped to this path, so this is the one place the raw
// token ever travels after login. A good token rotates; anything else clears
// both cookies and answers 401 with no detail.
type RefreshHandler struct {
	Sessions *service.SessionService
	Cookies  cookieWriter
}

type userResponse struct {
	ID          string `json:"id"`
	SteamID     string `json:"steamId"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
}

// ServeHTTP godoc
//
//	@Summary		Silent Session Refresh
//	@Description	Rotates the refresh token and re-issues both session cookies. Invalid or replayed tokens get 401 and cleared cookies.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	map[string]userResponse	"user"
//	@Failure		401	{object}	map[string]string		"error"
//	@Router			/api/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	v, err := h.Sessions.ValidateRefreshToken(ctx, cookieValue(r, refreshCookieName))
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	if !v.OK() {
		log.Info("refresh denied", "reason", v.Denial.String())
		h.Cookies.Clear(w)
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	creds, err := h.Sessions.RotateRefreshToken(ctx, v.Session)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	h.Cookies.SetCredentials(w, creds)
	httpx.WriteJSON(w, http.StatusOK, map[string]userResponse{
		"user": {
			ID:          v.User.ID,
			SteamID:     v.User.SteamID,
			DisplayName: v.User.DisplayName,
			AvatarURL:   v.User.AvatarURL,
		},
	})
}
