package http

import (
	"net/http"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
	"github.com/coopwheel/coopwheel/internal/wheel/service"
	"github.com/coopwheel/coopwheel/internal/wheel/steam"
	"github.com/coopwheel/coopwheel/pkg/httpx"
	"github.com/coopwheel/coopwheel/pkg/slogx"
)

// LeaderboardHandler serves GET /api/leaderboard.
type LeaderboardHandler struct {
	Stats *service.StatsService
}

// ServeHTTP godoc
//
//	@Summary		Leaderboard
//	@Description	Returns the most active pickers and the most-picked games across all pools.
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	service.Leaderboard
//	@Router			/api/leaderboard [get].
func (h *LeaderboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	lb, err := h.Stats.Leaderboard(r.Context())
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, lb)
}

// RecommendationsHandler serves GET /api/recommendations: the most-picked
// games overall, plus the caller's recently played titles from Steam when a
// login is present. Steam being down only costs the recent list.
type RecommendationsHandler struct {
	Stats *service.StatsService
	Steam *steam.Client
}

const recentPlayLimit = 8

type recommendationsResponse struct {
	TopGames []domain.GameTally `json:"topGames"`
	Recent   []recentGame       `json:"recent"`
}

type recentGame struct {
	AppID int64  `json:"appId"`
	Name  string `json:"name"`
}

// ServeHTTP godoc
//
//	@Summary		Recommendations
//	@Description	Top picked games overall plus the caller's recently played games from Steam when logged in.
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	recommendationsResponse
//	@Router			/api/recommendations [get].
func (h *RecommendationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	top, err := h.Stats.RecommendedGames(ctx)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	resp := recommendationsResponse{TopGames: top, Recent: []recentGame{}}

	if user, ok := userFromContext(ctx); ok && user.SteamID != "" {
		played, err := h.Steam.RecentlyPlayed(ctx, user.SteamID)
		if err != nil {
			slogx.FromContext(ctx).Warn("recently played lookup failed", "err", err)
		}
		for _, g := range played {
			if len(resp.Recent) == recentPlayLimit {
				break
			}
			resp.Recent = append(resp.Recent, recentGame{AppID: g.AppID, Name: g.Name})
		}
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
