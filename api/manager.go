package api

import (
	"plantstore_server/api/admin"
	"plantstore_server/api/auth"
	"plantstore_server/api/health"
	"plantstore_server/api/shop"

	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	healthRoutes *health.HealthRoutesManager
	authRoutes   *auth.AuthRoutesManager
	adminRoutes  *admin.AdminRoutesManager
	shopRoutes   *shop.ShopRoutesManager
}

func NewRouterManager(
	healthRoutes *health.HealthRoutesManager,
	authRoutes *auth.AuthRoutesManager,
	adminRoutes *admin.AdminRoutesManager,
	shopRoutes *shop.ShopRoutesManager,
) *routerManager {
	return &routerManager{
		healthRoutes: healthRoutes,
		authRoutes:   authRoutes,
		adminRoutes:  adminRoutes,
		shopRoutes:   shopRoutes,
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.healthRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.shopRoutes.RegisterRoutes(r)
}
