package shop

import (
	"plantstore_server/api/middleware"
	"plantstore_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ShopRoutesManager struct {
	logger         *gecho.Logger
	plantService   *services.PlantService
	cartService    *services.CartService
	sessionService *services.SessionService
	mw             *middleware.Middleware
}

func NewShopRoutesManager(
	logger *gecho.Logger,
	plantService *services.PlantService,
	cartService *services.CartService,
	sessionService *services.SessionService,
	mw *middleware.Middleware,
) *ShopRoutesManager {
	return &ShopRoutesManager{
		logger:         logger,
		plantService:   plantService,
		cartService:    cartService,
		sessionService: sessionService,
		mw:             mw,
	}
}

func (srm *ShopRoutesManager) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(srm.mw.RequireCustomer)
		r.Get("/shop", srm.ShowShop)
	})
	r.Group(func(r chi.Router) {
		r.Use(srm.mw.RequireUser)
		r.Post("/add-to-cart/{plantId}", srm.HandleAddToCart)
		r.Get("/my-orders", srm.ShowOrders)
		r.Get("/my-orders/{orderId}", srm.ShowOrderDetail)
	})
}
