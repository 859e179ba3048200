package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpapi "github.com/coopwheel/coopwheel/internal/wheel/http"
	"github.com/coopwheel/coopwheel/internal/wheel/service"
	"github.com/coopwheel/coopwheel/internal/wheel/steam"
	"github.com/coopwheel/coopwheel/internal/wheel/store"
	"github.com/coopwheel/coopwheel/internal/wheel/store/drivers/sqlite"
	"github.com/coopwheel/coopwheel/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application wires the store, services and HTTP server together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	sessionService *service.SessionService
	userService    *service.UserService
	friendService  *service.FriendService
	poolService    *service.PoolService
	pickService    *service.PickService
	statsService   *service.StatsService

	verifier    *steam.OpenIDVerifier
	steamClient *steam.Client

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "coopwheel",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("coopwheel starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down coopwheel...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("coopwheel stopped")
	return nil
}

func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	app.sessionService = &service.SessionService{
		Store:      app.db,
		SessionTTL: app.cfg.SessionTTL,
		RefreshTTL: app.cfg.RefreshTTL,
	}
	app.userService = service.NewUserService(app.db)
	app.friendService = service.NewFriendService(app.db)
	app.poolService = service.NewPoolService(app.db)
	app.pickService = service.NewPickService(app.db)
	app.statsService = service.NewStatsService(app.db)

	app.verifier = steam.NewOpenIDVerifier()
	app.steamClient = steam.NewClient(app.cfg.SteamAPIKey)

	if app.cfg.SteamAPIKey == "" {
		app.logger.Warn("STEAM_API_KEY not set; Steam Web API endpoints will fail")
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.cfg.PublicBaseURL,
		BuildVersion,
		app.cfg.CookieSecure,
		app.db,
		app.logger,
	)
	router.SessionService = app.sessionService
	router.UserService = app.userService
	router.FriendService = app.friendService
	router.PoolService = app.poolService
	router.PickService = app.pickService
	router.StatsService = app.statsService
	router.Verifier = app.verifier
	router.SteamClient = app.steamClient
	router.ApplyRoutes()

	app.router = router
	app.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.cfg.Port),
		Handler: router,
	}
}
