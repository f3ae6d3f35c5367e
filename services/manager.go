package services

import (
	"plantstore_server/database"
	"plantstore_server/policy"
	"plantstore_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService    *AuthService
	SessionService *SessionService
	CacheService   *CacheService
	HealthService  *HealthService
	PlantService   *PlantService
	CartService    *CartService
	AdminService   *AdminService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB, pol *policy.Policy) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	authService := NewAuthService(cfg, logger, db)
	sessionService := NewSessionService(logger, cfg, cacheService)
	healthService := NewHealthService(logger, db, cacheService)
	plantService := NewPlantService(logger, db)
	cartService := NewCartService(logger, cfg, db)
	adminService := NewAdminService(logger, db, pol)

	return &ServiceManager{
		AuthService:    authService,
		SessionService: sessionService,
		CacheService:   cacheService,
		HealthService:  healthService,
		PlantService:   plantService,
		CartService:    cartService,
		AdminService:   adminService,
	}
}
