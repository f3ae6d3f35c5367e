package shop

import (
	"net/http"

	"plantstore_server/handling"
	"plantstore_server/views"

	"github.com/MonkyMars/gecho"
)

// ShowShop lists every plant with stock, alphabetically.
func (srm *ShopRoutesManager) ShowShop(w http.ResponseWriter, r *http.Request) {
	plants, err := srm.plantService.ListAvailable(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to load shop page", srm.logger, w)
		return
	}

	page := &views.ShopPage{
		Plants:  plants,
		Message: r.URL.Query().Get("message"),
		Error:   r.URL.Query().Get("error"),
	}
	if err := views.Render(w, "customer_home.html", page); err != nil {
		srm.logger.Error("Failed to render shop page", gecho.Field("error", err))
	}
}

// ShowOrders is a placeholder for the order history page.
func (srm *ShopRoutesManager) ShowOrders(w http.ResponseWriter, r *http.Request) {
	if err := views.Render(w, "my_orders.html", nil); err != nil {
		srm.logger.Error("Failed to render orders page", gecho.Field("error", err))
	}
}

// ShowOrderDetail is a placeholder for the single-order page.
func (srm *ShopRoutesManager) ShowOrderDetail(w http.ResponseWriter, r *http.Request) {
	if err := views.Render(w, "my_orders.html", nil); err != nil {
		srm.logger.Error("Failed to render order detail page", gecho.Field("error", err))
	}
}
