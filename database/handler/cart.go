package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"quick_heal/model"
	"quick_heal/utils"
)

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	var body model.CartAddRequest
	if err := utils.ParseBody(r.Body, &body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to parse request body")
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "input field is invalid")
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	if err := h.Cart.Add(user.Id, body.ProductId, body.Quantity); err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, messageResponse{"Product added to cart!"})
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}
	cart, err := h.Cart.Get(user.Id)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to fetch cart")
		return
	}
	utils.RespondJSON(w, http.StatusOK, cart)
}

func (h *Handler) UpdateCartQuantity(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}
	productID := chi.URLParam(r, "productId")

	var body model.CartQuantityRequest
	if err := utils.ParseBody(r.Body, &body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to parse request body")
		return
	}

	if err := h.Cart.SetQuantity(user.Id, productID, body.Quantity); err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, messageResponse{"Quantity updated successfully"})
}

func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}
	productID := chi.URLParam(r, "productId")

	if err := h.Cart.Remove(user.Id, productID); err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, messageResponse{"Product removed from cart"})
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}
	if err := h.Cart.Clear(user.Id); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to clear cart")
		return
	}
	utils.RespondJSON(w, http.StatusOK, messageResponse{"Cart cleared"})
}
