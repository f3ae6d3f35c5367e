package auth

import (
	"plantstore_server/api/middleware"
	"plantstore_server/services"
	"plantstore_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger         *gecho.Logger
	authService    *services.AuthService
	sessionService *services.SessionService
	cfg            *structs.Config
	mw             *middleware.Middleware
}

func NewAuthRoutesManager(
	logger *gecho.Logger,
	authService *services.AuthService,
	sessionService *services.SessionService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:         logger,
		authService:    authService,
		sessionService: sessionService,
		cfg:            cfg,
		mw:             mw,
	}
}

func (arm *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/register", arm.ShowRegister)
	r.Post("/register", arm.HandleRegister)
	r.Get("/login", arm.ShowLogin)
	r.Post("/login", arm.HandleLogin)
	r.Get("/logout", arm.HandleLogout)
}
