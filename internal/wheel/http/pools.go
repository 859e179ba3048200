package http

import (
	"encoding/json"
	"net/http"

	"github.com/coopwheel/coopwheel/internal/wheel/service"
	"github.com/coopwheel/coopwheel/pkg/httpx"
)

// PoolsHandler serves pool creation and listing.
type PoolsHandler struct {
	Pools *service.PoolService
}

type poolResponse struct {
	ID       string `json:"id"`
	FriendID string `json:"friendId"`
	Name     string `json:"name"`
}

type createPoolRequest struct {
	FriendID string `json:"friendId"`
	Name     string `json:"name"`
}

// HandleCreate godoc
//
//	@Summary		Create Pool
//	@Description	Creates a game pool shared with one friend.
//	@Tags			Pools
//	@Accept			json
//	@Produce		json
//	@Param			body	body		createPoolRequest	true	"Pool to create"
//	@Success		201		{object}	map[string]poolResponse	"pool"
//	@Failure		400		{object}	map[string]string		"error"
//	@Router			/api/pools [post].
func (h *PoolsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := userFromContext(ctx)

	var req createPoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.FriendID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "missing_name_or_friend")
		return
	}

	pool, err := h.Pools.CreatePool(ctx, user.ID, req.FriendID, req.Name)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]poolResponse{
		"pool": {ID: pool.ID, FriendID: pool.FriendID, Name: pool.Name},
	})
}

// HandleList godoc
//
//	@Summary		List Pools
//	@Description	Returns the user's pools, newest first.
//	@Tags			Pools
//	@Produce		json
//	@Success		200	{object}	map[string][]poolResponse	"pools"
//	@Failure		401	{object}	map[string]string			"error"
//	@Router			/api/pools [get].
func (h *PoolsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := userFromContext(ctx)

	pools, err := h.Pools.ListPools(ctx, user.ID)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	out := make([]poolResponse, 0, len(pools))
	for _, p := range pools {
		out = append(out, poolResponse{ID: p.ID, FriendID: p.FriendID, Name: p.Name})
	}
	httpx.WriteJSON(w, http.StatusOK, map[string][]poolResponse{"pools": out})
}
