package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"quick_heal/model"
	"quick_heal/utils"
)

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	admin, ok := h.user(w, r)
	if !ok {
		return
	}

	var body model.ProductRequest
	if err := utils.ParseBody(r.Body, &body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to parse request body")
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "input field is invalid")
		return
	}

	productID, err := h.Products.Create(model.Product{
		AdminUid:            admin.Id,
		AdminEmail:          admin.Email,
		Name:                body.Name,
		Description:         body.Description,
		Price:               body.Price,
		DiscountedPrice:     body.DiscountedPrice,
		Rating:              body.Rating,
		Offers:              body.Offers,
		HighlightedFeatures: body.HighlightedFeatures,
		ImageRefs:           body.ImageRefs,
	})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to create product")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, idResponse{Id: productID})
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	admin, ok := h.user(w, r)
	if !ok {
		return
	}
	productID := chi.URLParam(r, "id")

	var body model.ProductRequest
	if err := utils.ParseBody(r.Body, &body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to parse request body")
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "input field is invalid")
		return
	}

	existing, found, err := h.Products.GetByID(productID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to fetch product")
		return
	}
	if !found {
		utils.RespondError(w, http.StatusNotFound, nil, "product not found")
		return
	}
	if existing.AdminUid != admin.Id {
		utils.RespondError(w, http.StatusForbidden, nil, "not allowed to edit this product")
		return
	}

	if _, err := h.Products.Update(productID, model.Product{
		Name:                body.Name,
		Description:         body.Description,
		Price:               body.Price,
		DiscountedPrice:     body.DiscountedPrice,
		Rating:              body.Rating,
		Offers:              body.Offers,
		HighlightedFeatures: body.HighlightedFeatures,
		ImageRefs:           body.ImageRefs,
	}); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to update product")
		return
	}

	utils.RespondJSON(w, http.StatusOK, messageResponse{"Product updated successfully"})
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	admin, ok := h.user(w, r)
	if !ok {
		return
	}
	productID := chi.URLParam(r, "id")

	existing, found, err := h.Products.GetByID(productID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to fetch product")
		return
	}
	if !found {
		utils.RespondError(w, http.StatusNotFound, nil, "product not found")
		return
	}
	if existing.AdminUid != admin.Id {
		utils.RespondError(w, http.StatusForbidden, nil, "not allowed to delete this product")
		return
	}

	if _, err := h.Products.Delete(productID); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to delete product")
		return
	}
	utils.RespondJSON(w, http.StatusOK, messageResponse{"Product deleted successfully"})
}

func (h *Handler) GetAllProduct(w http.ResponseWriter, r *http.Request) {
	list, err := h.Products.ListAll()
	if err != nil {
		logrus.Errorf("GetAllProduct: failed to list products: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to list products")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

func (h *Handler) GetProductById(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	product, found, err := h.Products.GetByID(productID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to fetch product")
		return
	}
	if !found {
		utils.RespondError(w, http.StatusNotFound, nil, "product not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, product)
}

func (h *Handler) GetAdminProducts(w http.ResponseWriter, r *http.Request) {
	admin, ok := h.user(w, r)
	if !ok {
		return
	}
	list, err := h.Products.ListByAdmin(admin.Id)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to list products")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}
