package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
	"github.com/coopwheel/coopwheel/internal/wheel/service"
	"github.com/coopwheel/coopwheel/pkg/httpx"
)

// PoolGamesHandler serves the membership of a single pool: POST and GET on
// /api/pools/{poolID}/games.
type PoolGamesHandler struct {
	Pools *service.PoolService
}

type poolGameResponse struct {
	AppID  int64   `json:"appId"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Tags   string  `json:"tags,omitempty"`
}

type addGameRequest struct {
	AppID    int64   `json:"appId"`
	Name     string  `json:"name"`
	StoreURL string  `json:"storeUrl"`
	Tags     string  `json:"tags"`
	Weight   float64 `json:"weight"`
}

// HandleAdd godoc
//
//	@Summary		Add Game to Pool
//	@Description	Upserts the game by Steam app id and attaches it to the pool. Names matching the word filter are skipped, not stored.
//	@Tags			Pools
//	@Accept			json
//	@Produce		json
//	@Param			poolID	path		string					true	"Pool id"
//	@Param			body	body		addGameRequest			true	"Game to add"
//	@Success		200		{object}	map[string]any			"game or skipped"
//	@Failure		400		{object}	map[string]string		"error"
//	@Failure		404		{object}	map[string]string		"error"
//	@Router			/api/pools/{poolID}/games [post].
func (h *PoolGamesHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := userFromContext(ctx)
	poolID := r.PathValue("poolID")

	var req addGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AppID == 0 || req.Name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "missing_app_id_or_name")
		return
	}

	res, err := h.Pools.AddGame(ctx, poolID, user.ID, service.AddGameInput{
		AppID:    req.AppID,
		Name:     req.Name,
		StoreURL: req.StoreURL,
		Tags:     req.Tags,
		Weight:   req.Weight,
	})
	if err != nil {
		if errors.Is(err, service.ErrPoolNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "pool_not_found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	if res.Skipped {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"skipped": true,
			"word":    res.Word,
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]poolGameResponse{
		"game": toPoolGameResponse(res.Entry),
	})
}

// HandleList godoc
//
//	@Summary		List Pool Games
//	@Description	Returns the pool's games with their weights.
//	@Tags			Pools
//	@Produce		json
//	@Param			poolID	path		string							true	"Pool id"
//	@Success		200		{object}	map[string][]poolGameResponse	"games"
//	@Failure		404		{object}	map[string]string				"error"
//	@Router			/api/pools/{poolID}/games [get].
func (h *PoolGamesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := userFromContext(ctx)
	poolID := r.PathValue("poolID")

	entries, err := h.Pools.ListGames(ctx, poolID, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrPoolNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "pool_not_found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	out := make([]poolGameResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toPoolGameResponse(e))
	}
	httpx.WriteJSON(w, http.StatusOK, map[string][]poolGameResponse{"games": out})
}

func toPoolGameResponse(e domain.PoolEntry) poolGameResponse {
	return poolGameResponse{
		AppID:  e.Game.AppID,
		Name:   e.Game.Name,
		Weight: e.Weight,
		Tags:   e.Tags,
	}
}
