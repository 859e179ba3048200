package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/coopwheel/coopwheel/internal/wheel/service"
	"github.com/coopwheel/coopwheel/internal/wheel/steam"
	"github.com/coopwheel/coopwheel/internal/wheel/store"
	"github.com/coopwheel/coopwheel/pkg/httpx"
	"github.com/coopwheel/coopwheel/pkg/slogx"

	_ "github.com/coopwheel/coopwheel/api/wheel" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	baseURL      string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	cookies      cookieWriter

	store          store.Store
	SessionService *service.SessionService
	UserService    *service.UserService
	FriendService  *service.FriendService
	PoolService    *service.PoolService
	PickService    *service.PickService
	StatsService   *service.StatsService
	Verifier       *steam.OpenIDVerifier
	SteamClient    *steam.Client
}

func NewRouter(
	baseURL, buildVersion string,
	cookieSecure bool,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		baseURL:      baseURL,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		cookies:      cookieWriter{Secure: cookieSecure},
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.cookies.SessionTTL = r.SessionService.SessionTTL

	r.registerAuth()
	r.registerFriends()
	r.registerPools()
	r.registerStats()
	r.registerSteamProxy()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Co-op Wheel API
//	@version		0.1.0
//	@description	Backend for a Steam co-op game picker: Steam OpenID login with
//	@description	rotating refresh-token sessions, shared game pools, and a
//	@description	weighted random picker.
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) auth() *sessionAuth {
	return &sessionAuth{Sessions: r.SessionService, Cookies: r.cookies}
}

func (r *Router) registerAuth() {
	login := &SteamLoginHandler{Verifier: r.Verifier, BaseURL: r.baseURL}
	callback := &SteamCallbackHandler{
		Verifier: r.Verifier,
		Users:    r.UserService,
		Sessions: r.SessionService,
		Steam:    r.SteamClient,
		Cookies:  r.cookies,
	}
	refresh := &RefreshHandler{Sessions: r.SessionService, Cookies: r.cookies}
	logout := &LogoutHandler{Sessions: r.SessionService, Cookies: r.cookies}

	// Auth endpoints are limited per source address; the caller has no
	// session yet.
	r.Mux.Handle("GET /api/auth/steam",
		httpx.Chain(login, httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("GET /api/auth/steam/callback",
		httpx.Chain(callback, httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /api/auth/refresh",
		httpx.Chain(refresh, httpx.RateLimitByIP(httpx.StrictLimit)))

	r.Mux.Handle("POST /api/logout",
		httpx.Chain(http.HandlerFunc(logout.HandlePost), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("GET /api/logout",
		httpx.Chain(http.HandlerFunc(logout.HandleGet), httpx.RateLimitByIP(httpx.ModerateLimit)))

	// /api/me answers anonymous callers with a null user, so it only gets
	// optional auth.
	me := &MeHandler{Cookies: r.cookies}
	r.Mux.Handle("GET /api/me",
		httpx.Chain(me,
			httpx.RateLimitBySession(httpx.ModerateLimit, sessionCookieName),
			r.auth().Optional,
		))
}

func (r *Router) registerFriends() {
	h := &FriendsHandler{Friends: r.FriendService}
	limit := httpx.RateLimitBySession(httpx.ModerateLimit, sessionCookieName)

	r.Mux.Handle("GET /api/friends",
		httpx.Chain(http.HandlerFunc(h.HandleList), limit, r.auth().Require))
	r.Mux.Handle("POST /api/friends",
		httpx.Chain(http.HandlerFunc(h.HandleAdd), limit, r.auth().Require))
	r.Mux.Handle("POST /api/friends/bulk",
		httpx.Chain(http.HandlerFunc(h.HandleBulk), limit, r.auth().Require))
}

func (r *Router) registerPools() {
	pools := &PoolsHandler{Pools: r.PoolService}
	games := &PoolGamesHandler{Pools: r.PoolService}
	picks := &PickHandler{Pools: r.PoolService, Picks: r.PickService}
	limit := httpx.RateLimitBySession(httpx.ModerateLimit, sessionCookieName)

	r.Mux.Handle("POST /api/pools",
		httpx.Chain(http.HandlerFunc(pools.HandleCreate), limit, r.auth().Require))
	r.Mux.Handle("GET /api/pools",
		httpx.Chain(http.HandlerFunc(pools.HandleList), limit, r.auth().Require))

	r.Mux.Handle("POST /api/pools/{poolID}/games",
		httpx.Chain(http.HandlerFunc(games.HandleAdd), limit, r.auth().Require))
	r.Mux.Handle("GET /api/pools/{poolID}/games",
		httpx.Chain(http.HandlerFunc(games.HandleList), limit, r.auth().Require))

	r.Mux.Handle("POST /api/pools/{poolID}/pick",
		httpx.Chain(http.HandlerFunc(picks.HandlePick), limit, r.auth().Require))
	r.Mux.Handle("GET /api/pools/{poolID}/recent-picks",
		httpx.Chain(http.HandlerFunc(picks.HandleRecent), limit, r.auth().Require))
}

func (r *Router) registerStats() {
	leaderboard := &LeaderboardHandler{Stats: r.StatsService}
	recommendations := &RecommendationsHandler{Stats: r.StatsService, Steam: r.SteamClient}

	// Leaderboard is public; recommendations personalize when a login is
	// present but work anonymously too.
	r.Mux.Handle("GET /api/leaderboard",
		httpx.Chain(leaderboard, httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("GET /api/recommendations",
		httpx.Chain(recommendations,
			httpx.RateLimitBySession(httpx.LenientLimit, sessionCookieName),
			r.auth().Optional,
		))
}

func (r *Router) registerSteamProxy() {
	h := &SteamProxyHandler{Steam: r.SteamClient}
	limit := httpx.RateLimitBySession(httpx.ModerateLimit, sessionCookieName)

	r.Mux.Handle("GET /api/steam/owned-games",
		httpx.Chain(http.HandlerFunc(h.HandleOwnedGames), limit, r.auth().Require))
	r.Mux.Handle("GET /api/steam/friends",
		httpx.Chain(http.HandlerFunc(h.HandleFriends), limit, r.auth().Require))
	r.Mux.Handle("GET /api/steam/app-details",
		httpx.Chain(http.HandlerFunc(h.HandleAppDetails), limit, r.auth().Require))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.store), httpx.RateLimitByIP(httpx.LenientLimit)))
}
