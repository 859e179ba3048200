package http

import (
	"net/http"

	"github.com/coopwheel/coopwheel/internal/wheel/service"
	"github.com/coopwheel/coopwheel/pkg/httpx"
	"github.com/coopwheel/coopwheel/pkg/slogx"
)

// LogoutHandler revokes the current session and clears both cookies. Revoking
// an unknown or already-revoked session still succeeds, so logout can never
// fail from the user's point of view. POST answers JSON for fetch callers;
// GET redirects home for plain links.
type LogoutHandler struct {
	Sessions *service.SessionService
	Cookies  cookieWriter
}

// HandlePost godoc
//
//	@Summary		Logout
//	@Description	Revokes the session server-side and clears the cookies.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	map[string]bool	"ok"
//	@Router			/api/logout [post].
func (h *LogoutHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	h.revoke(w, r)
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// HandleGet godoc
//
//	@Summary		Logout via Link
//	@Description	Same as POST but redirects to / afterwards.
//	@Tags			Auth
//	@Success		302	"Redirect home"
//	@Router			/api/logout [get].
func (h *LogoutHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	h.revoke(w, r)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *LogoutHandler) revoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.Sessions.RevokeSession(ctx, cookieValue(r, sessionCookieName)); err != nil {
		// The cookies are cleared regardless; a failed revoke only means the
		// row stays live until expiry.
		slogx.FromContext(ctx).Error("session revoke failed", "err", err)
	}
	h.Cookies.Clear(w)
}
