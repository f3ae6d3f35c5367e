package middleware

import (
	"plantstore_server/services"
	"plantstore_server/structs"

	"github.com/MonkyMars/gecho"
)

type Middleware struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	sessionService *services.SessionService
	cacheService   *services.CacheService
}

func NewMiddleware(
	cfg *structs.Config,
	logger *gecho.Logger,
	sessionService *services.SessionService,
	cacheService *services.CacheService,
) *Middleware {
	return &Middleware{
		logger:         logger,
		cfg:            cfg,
		sessionService: sessionService,
		cacheService:   cacheService,
	}
}
