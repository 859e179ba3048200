package http

import (
	"encoding/json"
	"net/http"

	"github.com/coopwheel/coopwheel/internal/wheel/service"
	"github.com/coopwheel/coopwheel/pkg/httpx"
)

// FriendsHandler serves the saved friend list: GET and POST /api/friends,
// plus POST /api/friends/bulk for importing a Steam friend list in one shot.
type FriendsHandler struct {
	Friends *service.FriendService
}

type friendResponse struct {
	ID          string `json:"id"`
	SteamID     string `json:"steamId"`
	DisplayName string `json:"displayName"`
}

type friendRequest struct {
	SteamID     string `json:"steamId"`
	DisplayName string `json:"displayName"`
}

// HandleList godoc
//
//	@Summary		List Friends
//	@Description	Returns the user's saved friends, newest first.
//	@Tags			Friends
//	@Produce		json
//	@Success		200	{object}	map[string][]friendResponse	"friends"
//	@Failure		401	{object}	map[string]string			"error"
//	@Router			/api/friends [get].
func (h *FriendsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := userFromContext(ctx)

	friends, err := h.Friends.List(ctx, user.ID)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	out := make([]friendResponse, 0, len(friends))
	for _, f := range friends {
		out = append(out, friendResponse{ID: f.ID, SteamID: f.SteamID, DisplayName: f.DisplayName})
	}
	httpx.WriteJSON(w, http.StatusOK, map[string][]friendResponse{"friends": out})
}

// HandleAdd godoc
//
//	@Summary		Save Friend
//	@Description	Saves one friend by Steam id, refreshing the name if already saved.
//	@Tags			Friends
//	@Accept			json
//	@Produce		json
//	@Param			body	body		friendRequest		true	"Friend to save"
//	@Success		200		{object}	map[string]bool		"ok"
//	@Failure		400		{object}	map[string]string	"error"
//	@Router			/api/friends [post].
func (h *FriendsHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := userFromContext(ctx)

	var req friendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SteamID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "missing_steam_id")
		return
	}

	if err := h.Friends.Upsert(ctx, user.ID, req.SteamID, req.DisplayName); err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// HandleBulk godoc
//
//	@Summary		Bulk Import Friends
//	@Description	Saves many friends in one transaction, typically straight from the Steam friend list.
//	@Tags			Friends
//	@Accept			json
//	@Produce		json
//	@Param			body	body		map[string][]friendRequest	true	"friends"
//	@Success		200		{object}	map[string]int				"imported"
//	@Failure		400		{object}	map[string]string			"error"
//	@Router			/api/friends/bulk [post].
func (h *FriendsHandler) HandleBulk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := userFromContext(ctx)

	var req struct {
		Friends []friendRequest `json:"friends"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	imports := make([]service.FriendImport, 0, len(req.Friends))
	for _, f := range req.Friends {
		imports = append(imports, service.FriendImport{SteamID: f.SteamID, DisplayName: f.DisplayName})
	}

	if err := h.Friends.BulkUpsert(ctx, user.ID, imports); err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]int{"imported": len(imports)})
}
