package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/coopwheel/coopwheel/internal/wheel/service"
	"github.com/coopwheel/coopwheel/pkg/httpx"
)

// PickHandler serves POST /api/pools/{poolID}/pick and the pool's recent-pick
// history at GET /api/pools/{poolID}/recent-picks.
type PickHandler struct {
	Pools *service.PoolService
	Picks *service.PickService
}

type pickRequest struct {
	Mode       string `json:"mode"`
	AvoidCount int    `json:"avoidCount"`
}

// HandlePick godoc
//
//	@Summary		Spin the Wheel
//	@Description	Draws one game from the pool, weighted by entry weight. Avoid mode excludes the most recent picks unless that would empty the pool.
//	@Tags			Picks
//	@Accept			json
//	@Produce		json
//	@Param			poolID	path		string							true	"Pool id"
//	@Param			body	body		pickRequest						false	"mode: pure or avoid"
//	@Success		200		{object}	map[string]poolGameResponse	"pick"
//	@Failure		404		{object}	map[string]string			"error"
//	@Failure		409		{object}	map[string]string			"empty pool"
//	@Router			/api/pools/{poolID}/pick [post].
func (h *PickHandler) HandlePick(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := userFromContext(ctx)
	poolID := r.PathValue("poolID")

	if _, err := h.Pools.GetOwnedPool(ctx, poolID, user.ID); err != nil {
		if errors.Is(err, service.ErrPoolNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "pool_not_found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	req := pickRequest{Mode: service.PickModePure}
	if r.Body != nil {
		// An empty or absent body means a pure pick.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.Mode != service.PickModeAvoid {
		req.Mode = service.PickModePure
	}

	entry, err := h.Picks.Pick(ctx, poolID, user.ID, req.Mode, req.AvoidCount)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPool) {
			httpx.WriteError(w, http.StatusConflict, "empty_pool")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]poolGameResponse{
		"pick": toPoolGameResponse(entry),
	})
}

// HandleRecent godoc
//
//	@Summary		Recent Picks
//	@Description	Returns the pool's latest picked games, newest first. The limit query parameter caps at 50; 0 returns nothing.
//	@Tags			Picks
//	@Produce		json
//	@Param			poolID	path		string							true	"Pool id"
//	@Param			limit	query		int								false	"How many picks to return"
//	@Success		200		{object}	map[string][]poolGameResponse	"picks"
//	@Failure		404		{object}	map[string]string				"error"
//	@Router			/api/pools/{poolID}/recent-picks [get].
func (h *PickHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := userFromContext(ctx)
	poolID := r.PathValue("poolID")

	if _, err := h.Pools.GetOwnedPool(ctx, poolID, user.ID); err != nil {
		if errors.Is(err, service.ErrPoolNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "pool_not_found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid_limit")
			return
		}
		limit = parsed
	}

	picks, err := h.Picks.RecentPicks(ctx, poolID, limit)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	out := make([]poolGameResponse, 0, len(picks))
	for _, p := range picks {
		out = append(out, toPoolGameResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, map[string][]poolGameResponse{"picks": out})
}
