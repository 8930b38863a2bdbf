package server

import (
	"github.com/go-chi/chi/v5"

	"quick_heal/database/handler"
)

func UserRoute(h *handler.Handler) func(chi.Router) {
	return func(r chi.Router) {
		r.Route("/address", func(address chi.Router) {
			address.Post("/", h.CreateAddress)
			address.Get("/", h.GetUserAddress)
			address.Patch("/{id}/default", h.SetDefaultAddress)
			address.Delete("/{id}", h.DeleteAddress)
		})
		r.Route("/cart", func(cart chi.Router) {
			cart.Post("/", h.AddToCart)
			cart.Get("/", h.GetCart)
			cart.Patch("/{productId}", h.UpdateCartQuantity)
			cart.Delete("/{productId}", h.RemoveFromCart)
			cart.Delete("/", h.ClearCart)
		})
		r.Post("/checkout", h.Checkout)
		r.Route("/order", func(order chi.Router) {
			order.Post("/", h.CreateOrder)
			order.Get("/", h.GetUserOrders)
			order.Get("/stats", h.GetUserOrderStats)
			order.Get("/{id}", h.GetOrderById)
			order.Post("/{id}/cancel", h.CancelOrder)
			order.Delete("/{id}", h.DeleteOrder)
		})
	}
}
