package api

import (
	"net/http"

	"plantstore_server/api/admin"
	"plantstore_server/api/auth"
	"plantstore_server/api/health"
	"plantstore_server/api/middleware"
	"plantstore_server/api/shop"
	"plantstore_server/config"
	"plantstore_server/database"
	"plantstore_server/policy"
	"plantstore_server/services"
	"plantstore_server/views"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

func App() chi.Router {
	r := chi.NewRouter()

	// create loggers
	logLevel := gecho.ParseLogLevel(config.GetLogLevel())
	mwLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false), gecho.WithLogLevel(logLevel)))
	standardLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(logLevel)))

	// db
	db := database.GetInstance()

	// config
	cfg := config.GetConfig()

	// table allow-list
	pol := policy.Default()

	// services
	sm := services.NewServiceManager(standardLogger, cfg, db, pol)

	// Initialize middleware
	mw := middleware.NewMiddleware(cfg, mwLogger, sm.SessionService, sm.CacheService)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Limits & security
	r.Use(mw.BodyLimit(10 * 1024 * 1024))
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(gecho.Handlers.CreateLoggingMiddleware(mwLogger))
	r.Use(middleware.MetricsMiddleware)

	// CORS (must be before the session layer)
	r.Use(mw.SetupCORS().Handler)

	// Rate limiting, then the session resolver for every route below
	r.Use(mw.RateLimit())
	r.Use(mw.LoadSession)

	// Register all routes
	NewRouterManager(
		health.NewHealthRoutesManager(sm.HealthService),
		auth.NewAuthRoutesManager(standardLogger, sm.AuthService, sm.SessionService, cfg, mw),
		admin.NewAdminRoutesManager(standardLogger, sm.AdminService, pol, mw),
		shop.NewShopRoutesManager(standardLogger, sm.PlantService, sm.CartService, sm.SessionService, mw),
	).RegisterRoutes(r)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		if err := views.Render(w, "home.html", nil); err != nil {
			standardLogger.Error("Failed to render home page", gecho.Field("error", err))
		}
	})

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	return r
}
