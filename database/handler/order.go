package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"quick_heal/model"
	"quick_heal/utils"
)

// Checkout places an order for the whole cart against the selected address.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	var body model.CheckoutRequest
	if err := utils.ParseBody(r.Body, &body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to parse request body")
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "input field is invalid")
		return
	}

	result, err := h.Orders.Checkout(user, body.AddressId, body.IdempotencyKey)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, result)
}

// CreateOrder is the direct single-product order create.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	var body model.OrderRequest
	if err := utils.ParseBody(r.Body, &body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to parse request body")
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "input field is invalid")
		return
	}

	orderID, err := h.Orders.CreateDirect(user, body)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, idResponse{Id: orderID})
}

func (h *Handler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}
	list, err := h.Orders.ListByUser(user.Id)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to list orders")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

func (h *Handler) GetOrderById(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "id")

	order, err := h.Orders.Get(orderID)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	if order.UserId != user.Id {
		utils.RespondError(w, http.StatusForbidden, nil, "not allowed to view this order")
		return
	}
	utils.RespondJSON(w, http.StatusOK, order)
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "id")

	if err := h.Orders.Cancel(orderID, user.Id); err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, messageResponse{"Order cancelled"})
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "id")

	order, err := h.Orders.Get(orderID)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	if order.UserId != user.Id {
		utils.RespondError(w, http.StatusForbidden, nil, "not allowed to delete this order")
		return
	}

	if err := h.Orders.Delete(orderID); err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, messageResponse{"Order deleted"})
}

func (h *Handler) GetUserOrderStats(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}
	stats, err := h.Orders.UserStats(user.Id)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to compute stats")
		return
	}
	utils.RespondJSON(w, http.StatusOK, stats)
}

func (h *Handler) GetAdminOrders(w http.ResponseWriter, r *http.Request) {
	admin, ok := h.user(w, r)
	if !ok {
		return
	}
	list, err := h.Orders.ListByAdmin(admin.Id)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to list orders")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

// GetRecentOrders is the dashboard feed: newest orders across all sellers,
// capped by the optional ?limit query (default 10).
func (h *Handler) GetRecentOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	list, err := h.Orders.Recent(limit)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to list recent orders")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

// GetOrdersByStatus filters the dashboard by status, optionally narrowed
// to one customer with ?userId.
func (h *Handler) GetOrdersByStatus(w http.ResponseWriter, r *http.Request) {
	status := model.OrderStatus(chi.URLParam(r, "status"))
	list, err := h.Orders.ByStatus(status, r.URL.Query().Get("userId"))
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.user(w, r); !ok {
		return
	}
	orderID := chi.URLParam(r, "id")

	var body model.StatusUpdateRequest
	if err := utils.ParseBody(r.Body, &body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to parse request body")
		return
	}

	if err := h.Orders.UpdateStatus(orderID, body.Status); err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, messageResponse{"order status changed"})
}

func (h *Handler) DeleteOrderAdmin(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if err := h.Orders.Delete(orderID); err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, messageResponse{"Order deleted"})
}

func (h *Handler) GetAdminOrderStats(w http.ResponseWriter, r *http.Request) {
	admin, ok := h.user(w, r)
	if !ok {
		return
	}
	stats, err := h.Orders.AdminStats(admin.Id)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to compute stats")
		return
	}
	utils.RespondJSON(w, http.StatusOK, stats)
}

// ResendOrderConfirmation re-fires the notification sender for an existing
// order. The send is fire-and-forget: failures are logged and the trigger
// still reports accepted.
func (h *Handler) ResendOrderConfirmation(w http.ResponseWriter, r *http.Request) {
	var body model.OrderEmail
	if err := utils.ParseBody(r.Body, &body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to parse request body")
		return
	}

	if err := h.Orders.ResendConfirmation(body); err != nil {
		logrus.Errorf("ResendOrderConfirmation: send failed: %v", err)
	}
	utils.RespondJSON(w, http.StatusAccepted, messageResponse{"Notification queued"})
}
