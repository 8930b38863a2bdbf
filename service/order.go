package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/teris-io/shortid"

	"quick_heal/apperror"
	"quick_heal/model"
)

const orderNumberPrefix = "#QH"

// OrderStore persists order rows. CreateBatch inserts all rows in one
// transaction: either every line of a checkout becomes an order or none
// does.
type OrderStore interface {
	CreateBatch(orders []model.Order) ([]string, error)
	ListByIdempotencyKey(userID, key string) ([]model.Order, error)
	GetByID(orderID string) (model.Order, bool, error)
	UpdateStatus(orderID string, status model.OrderStatus) error
	ListByUser(userID string) ([]model.Order, error)
	ListByAdmin(adminUID string) ([]model.Order, error)
	ListRecent(limit int) ([]model.Order, error)
	ListByStatus(status model.OrderStatus) ([]model.Order, error)
	Delete(orderID string) (bool, error)
}

// Mailer is the notification boundary. Failures here must never roll back
// or fail the surrounding order creation.
type Mailer interface {
	SendOrderConfirmation(email model.OrderEmail) error
	SendOrderCompletion(to, orderNumber string) error
}

type OrderService struct {
	orders      OrderStore
	cart        *CartService
	addresses   *AddressService
	products    ProductReader
	mailer      Mailer
	deliveryFee float64
}

func NewOrderService(
	orders OrderStore,
	cart *CartService,
	addresses *AddressService,
	products ProductReader,
	mailer Mailer,
	deliveryFee float64,
) *OrderService {
	return &OrderService{
		orders:      orders,
		cart:        cart,
		addresses:   addresses,
		products:    products,
		mailer:      mailer,
		deliveryFee: deliveryFee,
	}
}

// Checkout places an order for the user's whole cart:
//
//  1. resolve the address and the cart snapshot, rejecting an empty cart
//  2. create one order row per cart line in a single transaction, priced
//     from the snapshot
//  3. derive the display order number from the first created row
//  4. send confirmation emails to customer and seller admin; a send failure
//     is logged and swallowed since the order is already durable
//  5. clear the cart
//
// A replayed idempotency key returns the originally created orders without
// writing anything.
func (s *OrderService) Checkout(user model.UserCredential, addressID, idempotencyKey string) (model.CheckoutResult, error) {
	if user.Id == "" || user.Email == "" {
		return model.CheckoutResult{}, apperror.Validation("user id and email are required")
	}

	address, err := s.addresses.Get(addressID)
	if err != nil {
		return model.CheckoutResult{}, err
	}

	// A replayed key means the orders already exist and the cart was
	// already cleared, so the lookup has to run before the empty-cart
	// check. Keys are scoped per user: another user reusing the same
	// key must get their own checkout, not this one's.
	if idempotencyKey != "" {
		existing, err := s.orders.ListByIdempotencyKey(user.Id, idempotencyKey)
		if err != nil {
			return model.CheckoutResult{}, err
		}
		if len(existing) > 0 {
			return s.replayResult(existing), nil
		}
	}

	cart, err := s.cart.Get(user.Id)
	if err != nil {
		return model.CheckoutResult{}, err
	}
	if len(cart.Items) == 0 {
		return model.CheckoutResult{}, apperror.Conflict("cart is empty")
	}

	if idempotencyKey == "" {
		idempotencyKey, err = shortid.Generate()
		if err != nil {
			return model.CheckoutResult{}, err
		}
	}

	now := time.Now()
	shipping := formatShippingAddress(address)
	rows := make([]model.Order, 0, len(cart.Items))
	for _, item := range cart.Items {
		rows = append(rows, model.Order{
			UserId:          user.Id,
			UserEmail:       user.Email,
			ProductId:       item.ProductId,
			AdminUid:        item.AdminUid,
			Quantity:        item.Quantity,
			TotalPrice:      item.LineTotal,
			Status:          model.OrderStatusPending,
			ShippingAddress: &shipping,
			IdempotencyKey:  idempotencyKey,
			OrderDate:       now,
		})
	}

	orderIDs, err := s.orders.CreateBatch(rows)
	if err != nil {
		return model.CheckoutResult{}, err
	}

	result := model.CheckoutResult{
		OrderNumber:      FormatOrderNumber(orderIDs[0]),
		OrderIds:         orderIDs,
		Subtotal:         cart.Subtotal,
		Delivery:         s.deliveryFee,
		Total:            cart.Subtotal + s.deliveryFee,
		ExpectedDelivery: now.AddDate(0, 0, 2).Format("Jan 2, 2006"),
	}

	email := model.OrderEmail{
		OrderNumber:      result.OrderNumber,
		CustomerName:     address.Name,
		CustomerEmail:    user.Email,
		OrderDate:        now.Format("Jan 2, 2006"),
		ExpectedDelivery: result.ExpectedDelivery,
		Address:          address,
		Subtotal:         result.Subtotal,
		Delivery:         result.Delivery,
		Total:            result.Total,
	}
	for _, item := range cart.Items {
		email.Items = append(email.Items, model.OrderEmailItem{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		})
	}
	if mailErr := s.mailer.SendOrderConfirmation(email); mailErr != nil {
		ext := apperror.External("order confirmation email failed", mailErr)
		logrus.WithError(ext).WithField("orderNumber", result.OrderNumber).
			Error("Checkout: email send failed, order is already placed")
	}

	if clearErr := s.cart.Clear(user.Id); clearErr != nil {
		logrus.WithError(clearErr).WithField("userId", user.Id).
			Error("Checkout: failed to clear cart after order creation")
	}

	return result, nil
}

// CreateDirect creates a single order row outside the cart workflow. The
// seller id is denormalized from the product at creation time so later
// reassignment does not affect the order.
func (s *OrderService) CreateDirect(user model.UserCredential, req model.OrderRequest) (string, error) {
	product, found, err := s.products.GetByID(req.ProductId)
	if err != nil {
		return "", err
	}
	if !found {
		return "", apperror.NotFound("product not found")
	}

	key, err := shortid.Generate()
	if err != nil {
		return "", err
	}
	ids, err := s.orders.CreateBatch([]model.Order{{
		UserId:          user.Id,
		UserEmail:       user.Email,
		ProductId:       req.ProductId,
		AdminUid:        product.AdminUid,
		Quantity:        req.Quantity,
		TotalPrice:      req.TotalPrice,
		Status:          model.OrderStatusPending,
		ShippingAddress: req.ShippingAddress,
		IdempotencyKey:  key,
		OrderDate:       time.Now(),
	}})
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// Cancel sets the order to cancelled iff the requester owns it and it is
// still pending. Anything else fails without touching the row.
func (s *OrderService) Cancel(orderID, userID string) error {
	order, found, err := s.orders.GetByID(orderID)
	if err != nil {
		return err
	}
	if !found {
		return apperror.NotFound("order not found")
	}
	if order.UserId != userID {
		return apperror.Unauthorized("not allowed to cancel this order")
	}
	if order.Status != model.OrderStatusPending {
		return apperror.Conflict("only pending orders can be cancelled")
	}
	return s.orders.UpdateStatus(orderID, model.OrderStatusCancelled)
}

// UpdateStatus is the seller-side status patch. Transitions are not
// constrained by a state machine. Moving to completed notifies the
// customer, fire-and-forget.
func (s *OrderService) UpdateStatus(orderID string, status model.OrderStatus) error {
	if !status.Valid() {
		return apperror.Validation("unknown order status")
	}
	order, found, err := s.orders.GetByID(orderID)
	if err != nil {
		return err
	}
	if !found {
		return apperror.NotFound("order not found")
	}
	if err := s.orders.UpdateStatus(orderID, status); err != nil {
		return err
	}
	if status == model.OrderStatusCompleted {
		if mailErr := s.mailer.SendOrderCompletion(order.UserEmail, FormatOrderNumber(orderID)); mailErr != nil {
			logrus.WithError(mailErr).WithField("orderId", orderID).
				Error("UpdateStatus: completion email failed")
		}
	}
	return nil
}

func (s *OrderService) Get(orderID string) (model.OrderView, error) {
	order, found, err := s.orders.GetByID(orderID)
	if err != nil {
		return model.OrderView{}, err
	}
	if !found {
		return model.OrderView{}, apperror.NotFound("order not found")
	}
	return s.enrich(order), nil
}

func (s *OrderService) Delete(orderID string) error {
	deleted, err := s.orders.Delete(orderID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("order not found")
	}
	return nil
}

func (s *OrderService) ListByUser(userID string) ([]model.OrderView, error) {
	orders, err := s.orders.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(orders), nil
}

func (s *OrderService) ListByAdmin(adminUID string) ([]model.OrderView, error) {
	orders, err := s.orders.ListByAdmin(adminUID)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(orders), nil
}

// Recent returns the newest orders across all sellers for the dashboard.
// A non-positive limit falls back to 10.
func (s *OrderService) Recent(limit int) ([]model.OrderView, error) {
	if limit <= 0 {
		limit = 10
	}
	orders, err := s.orders.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(orders), nil
}

// ByStatus lists orders in a given status, newest first, optionally
// narrowed to one customer.
func (s *OrderService) ByStatus(status model.OrderStatus, userID string) ([]model.OrderView, error) {
	if !status.Valid() {
		return nil, apperror.Validation("unknown order status")
	}
	orders, err := s.orders.ListByStatus(status)
	if err != nil {
		return nil, err
	}
	if userID != "" {
		filtered := orders[:0]
		for _, order := range orders {
			if order.UserId == userID {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
	}
	return s.enrichAll(orders), nil
}

func (s *OrderService) UserStats(userID string) (model.UserOrderStats, error) {
	orders, err := s.orders.ListByUser(userID)
	if err != nil {
		return model.UserOrderStats{}, err
	}
	stats := model.UserOrderStats{TotalOrders: len(orders)}
	for _, order := range orders {
		stats.TotalSpent += order.TotalPrice
		countStatus(&stats.StatusCounts, order.Status)
	}
	return stats, nil
}

// AdminStats excludes cancelled orders from revenue.
func (s *OrderService) AdminStats(adminUID string) (model.AdminOrderStats, error) {
	orders, err := s.orders.ListByAdmin(adminUID)
	if err != nil {
		return model.AdminOrderStats{}, err
	}
	stats := model.AdminOrderStats{TotalOrders: len(orders)}
	for _, order := range orders {
		if order.Status != model.OrderStatusCancelled {
			stats.TotalRevenue += order.TotalPrice
		}
		countStatus(&stats.StatusCounts, order.Status)
	}
	return stats, nil
}

// ResendConfirmation rebuilds the confirmation payload for an existing
// order set and fires the notification sender again.
func (s *OrderService) ResendConfirmation(email model.OrderEmail) error {
	if err := s.mailer.SendOrderConfirmation(email); err != nil {
		return apperror.External("order confirmation email failed", err)
	}
	return nil
}

func (s *OrderService) enrichAll(orders []model.Order) []model.OrderView {
	views := make([]model.OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, s.enrich(order))
	}
	return views
}

func (s *OrderService) enrich(order model.Order) model.OrderView {
	view := model.OrderView{
		Order:       order,
		ProductName: "Product",
	}
	product, found, err := s.products.GetByID(order.ProductId)
	if err != nil || !found {
		if err != nil {
			logrus.WithError(err).WithField("productId", order.ProductId).
				Error("enrich: product lookup failed")
		}
		return view
	}
	view.ProductName = product.Name
	view.ProductPrice = product.Price
	view.AdminEmail = product.AdminEmail
	if len(product.ImageRefs) > 0 {
		view.ProductImage = &product.ImageRefs[0]
	}
	return view
}

func (s *OrderService) replayResult(orders []model.Order) model.CheckoutResult {
	result := model.CheckoutResult{
		OrderNumber: FormatOrderNumber(orders[0].Id),
		Delivery:    s.deliveryFee,
	}
	for _, order := range orders {
		result.OrderIds = append(result.OrderIds, order.Id)
		result.Subtotal += order.TotalPrice
	}
	result.Total = result.Subtotal + s.deliveryFee
	result.ExpectedDelivery = orders[0].OrderDate.AddDate(0, 0, 2).Format("Jan 2, 2006")
	return result
}

func countStatus(counts *model.StatusCounts, status model.OrderStatus) {
	switch status {
	case model.OrderStatusPending:
		counts.Pending++
	case model.OrderStatusProcessing:
		counts.Processing++
	case model.OrderStatusCompleted:
		counts.Completed++
	case model.OrderStatusCancelled:
		counts.Cancelled++
	}
}

// FormatOrderNumber derives the short display number from a storage id:
// the last six characters, upper-cased, behind the store prefix.
func FormatOrderNumber(orderID string) string {
	tail := orderID
	if len(tail) > 6 {
		tail = tail[len(tail)-6:]
	}
	return orderNumberPrefix + strings.ToUpper(tail)
}

func formatShippingAddress(a model.Address) string {
	line := a.AddressLine1
	if a.AddressLine2 != nil && *a.AddressLine2 != "" {
		line += ", " + *a.AddressLine2
	}
	return fmt.Sprintf("%s, %s, %s - %s", line, a.City, a.State, a.Pincode)
}
