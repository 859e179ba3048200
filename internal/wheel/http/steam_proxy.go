package http

import (
	"net/http"
	"strconv"

	"github.com/coopwheel/coopwheel/internal/wheel/steam"
	"github.com/coopwheel/coopwheel/pkg/httpx"
	"github.com/coopwheel/coopwheel/pkg/slogx"
)

// SteamProxyHandler exposes the slices of the Steam Web API the frontend
// needs. The server-side API key never reaches the browser; these endpoints
// are the only way client code can read Steam data.
type SteamProxyHandler struct {
	Steam *steam.Client
}

// HandleOwnedGames godoc
//
//	@Summary		Owned Games
//	@Description	Lists the library of the given Steam id or vanity name.
//	@Tags			Steam
//	@Produce		json
//	@Param			steamId	query		string				true	"SteamID64 or vanity name"
//	@Success		200		{object}	map[string]any		"games"
//	@Failure		400		{object}	map[string]string	"error"
//	@Failure		502		{object}	map[string]string	"error"
//	@Router			/api/steam/owned-games [get].
func (h *SteamProxyHandler) HandleOwnedGames(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	steamID, ok := h.resolveParam(w, r)
	if !ok {
		return
	}

	games, err := h.Steam.OwnedGames(ctx, steamID)
	if err != nil {
		slogx.FromContext(ctx).Error("owned games lookup failed", "err", err)
		httpx.WriteError(w, http.StatusBadGateway, "steam_unavailable")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"games": games})
}

// HandleFriends godoc
//
//	@Summary		Steam Friend List
//	@Description	Lists the friend ids of the given Steam id and, when available, their public profiles.
//	@Tags			Steam
//	@Produce		json
//	@Param			steamId	query		string				true	"SteamID64 or vanity name"
//	@Success		200		{object}	map[string]any		"friends, profiles"
//	@Failure		400		{object}	map[string]string	"error"
//	@Failure		502		{object}	map[string]string	"error"
//	@Router			/api/steam/friends [get].
func (h *SteamProxyHandler) HandleFriends(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	steamID, ok := h.resolveParam(w, r)
	if !ok {
		return
	}

	ids, err := h.Steam.FriendList(ctx, steamID)
	if err != nil {
		slogx.FromContext(ctx).Error("friend list lookup failed", "err", err)
		httpx.WriteError(w, http.StatusBadGateway, "steam_unavailable")
		return
	}

	resp := map[string]any{"friends": ids}

	// Summaries are best-effort; a bare id list is still useful.
	if len(ids) > 0 {
		if profiles, err := h.Steam.PlayerSummaries(ctx, ids); err == nil {
			resp["profiles"] = profiles
		}
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleAppDetails godoc
//
//	@Summary		App Details
//	@Description	Returns storefront category and genre labels for one app.
//	@Tags			Steam
//	@Produce		json
//	@Param			appId	query		string				true	"Steam app id"
//	@Success		200		{object}	map[string]any		"name, categories, genres"
//	@Failure		400		{object}	map[string]string	"error"
//	@Failure		404		{object}	map[string]string	"error"
//	@Router			/api/steam/app-details [get].
func (h *SteamProxyHandler) HandleAppDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	appID, err := strconv.ParseInt(r.URL.Query().Get("appId"), 10, 64)
	if err != nil || appID <= 0 {
		httpx.WriteError(w, http.StatusBadRequest, "missing_app_id")
		return
	}

	details, err := h.Steam.AppDetails(ctx, appID)
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "no_app_details")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"name":       details.Name,
		"categories": details.Categories,
		"genres":     details.Genres,
	})
}

// resolveParam reads the steamId query parameter and resolves vanity names.
func (h *SteamProxyHandler) resolveParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := r.URL.Query().Get("steamId")
	if raw == "" {
		httpx.WriteError(w, http.StatusBadRequest, "missing_steam_id")
		return "", false
	}

	steamID, err := h.Steam.ResolveID(r.Context(), raw)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_steam_id")
		return "", false
	}
	return steamID, true
}
