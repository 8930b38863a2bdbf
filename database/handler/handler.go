package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"quick_heal/middleware"
	"quick_heal/model"
	"quick_heal/service"
	"quick_heal/utils"
)

// ProductCatalog is the product persistence surface the handlers use.
type ProductCatalog interface {
	service.ProductReader
	Create(p model.Product) (string, error)
	Update(productID string, p model.Product) (bool, error)
	Delete(productID string) (bool, error)
	ListAll() ([]model.Product, error)
	ListByAdmin(adminUID string) ([]model.Product, error)
}

type Handler struct {
	Products     ProductCatalog
	Address      *service.AddressService
	Cart         *service.CartService
	Orders       *service.OrderService
	Appointments *service.AppointmentService

	validate *validator.Validate
}

func New(products ProductCatalog, address *service.AddressService, cart *service.CartService,
	orders *service.OrderService, appointments *service.AppointmentService) *Handler {
	return &Handler{
		Products:     products,
		Address:      address,
		Cart:         cart,
		Orders:       orders,
		Appointments: appointments,
		validate:     validator.New(),
	}
}

// user extracts the authenticated credential; writes 401 and returns false
// when the auth middleware did not run.
func (h *Handler) user(w http.ResponseWriter, r *http.Request) (model.UserCredential, bool) {
	user, ok := middleware.UserFromContext(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, nil, "missing credentials")
		return model.UserCredential{}, false
	}
	return user, true
}

type messageResponse struct {
	Message string `json:"message"`
}

type idResponse struct {
	Id string `json:"id"`
}
