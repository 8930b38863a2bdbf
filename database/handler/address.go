package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"quick_heal/model"
	"quick_heal/utils"
)

func (h *Handler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	var body model.AddressRequest
	if err := utils.ParseBody(r.Body, &body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to parse request body")
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "input field is invalid")
		return
	}

	addressID, err := h.Address.Add(user.Id, body)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, idResponse{Id: addressID})
}

func (h *Handler) GetUserAddress(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}
	list, err := h.Address.List(user.Id)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to list addresses")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

func (h *Handler) SetDefaultAddress(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}
	addressID := chi.URLParam(r, "id")

	if err := h.Address.SetDefault(addressID, user.Id); err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, messageResponse{"Default address updated"})
}

func (h *Handler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.user(w, r); !ok {
		return
	}
	addressID := chi.URLParam(r, "id")

	if err := h.Address.Delete(addressID); err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, messageResponse{"Address deleted successfully"})
}
