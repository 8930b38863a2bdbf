package server

import (
	"github.com/go-chi/chi/v5"

	"quick_heal/database/handler"
)

func AdminRoute(h *handler.Handler) func(chi.Router) {
	return func(r chi.Router) {
		r.Route("/product", func(product chi.Router) {
			product.Post("/", h.CreateProduct)
			product.Get("/", h.GetAdminProducts)
			product.Get("/{id}", h.GetProductById)
			product.Patch("/{id}", h.UpdateProduct)
			product.Delete("/{id}", h.DeleteProduct)
		})
		r.Route("/order", func(order chi.Router) {
			order.Get("/", h.GetAdminOrders)
			order.Get("/stats", h.GetAdminOrderStats)
			order.Get("/recent", h.GetRecentOrders)
			order.Get("/status/{status}", h.GetOrdersByStatus)
			order.Patch("/{id}", h.UpdateOrderStatus)
			order.Delete("/{id}", h.DeleteOrderAdmin)
		})
		r.Post("/notifications/order-confirmation", h.ResendOrderConfirmation)
	}
}
