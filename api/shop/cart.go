package shop

import (
	"errors"
	"net/http"
	"strconv"

	"plantstore_server/api/middleware"
	"plantstore_server/handling"
	"plantstore_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// HandleAddToCart puts one unit of the plant into the session's pending
// order. Each button press adds exactly one.
func (srm *ShopRoutesManager) HandleAddToCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handling.RedirectToLogin(w, r)
		return
	}

	plantID, err := strconv.ParseInt(chi.URLParam(r, "plantId"), 10, 64)
	if err != nil {
		handling.RedirectWithError(w, r, "/shop", "Selected plant is out of stock or does not exist.")
		return
	}

	result, err := srm.cartService.AddToCart(r.Context(), sess.UserID, sess.PendingOrderID, plantID, 1)
	if err != nil {
		if errors.Is(err, services.ErrOutOfStock) {
			handling.RedirectWithError(w, r, "/shop", "Selected plant is out of stock or does not exist.")
			return
		}
		srm.logger.Error("Add to cart failed",
			gecho.Field("error", err),
			gecho.Field("customer_id", sess.UserID),
			gecho.Field("plant_id", plantID),
		)
		handling.RedirectWithError(w, r, "/shop", "Failed to add item to cart.")
		return
	}

	if result.CreatedOrder {
		if err := srm.sessionService.SetPendingOrder(r.Context(), sess, result.OrderID); err != nil {
			// The order exists either way; the next add just creates another
			// pending order if the pointer was lost.
			srm.logger.Warn("Failed to record pending order on session",
				gecho.Field("error", err),
				gecho.Field("order_id", result.OrderID),
			)
		}
	}

	handling.RedirectWithMessage(w, r, "/shop", "Plant added to cart!")
}
