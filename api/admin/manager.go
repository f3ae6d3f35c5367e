package admin

import (
	"plantstore_server/api/middleware"
	"plantstore_server/policy"
	"plantstore_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger       *gecho.Logger
	adminService *services.AdminService
	policy       *policy.Policy
	mw           *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	adminService *services.AdminService,
	pol *policy.Policy,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:       logger,
		adminService: adminService,
		policy:       pol,
		mw:           mw,
	}
}

func (arm *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(arm.mw.RequireAdmin)
		r.Get("/", arm.ShowIndex)
		r.Get("/view/{table}", arm.ViewTable)
		r.Get("/add/{table}", arm.ShowAddForm)
		r.Post("/add/{table}", arm.HandleAdd)
		r.Get("/edit/{table}/{id}", arm.ShowEditForm)
		r.Post("/edit/{table}/{id}", arm.HandleEdit)
	})
}
