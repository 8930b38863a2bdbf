package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quick_heal/apperror"
	"quick_heal/model"
	"quick_heal/service"
)

const testDeliveryFee = 30.0

type orderEnv struct {
	orders    *fakeOrderStore
	carts     *fakeCartStore
	products  *fakeProductStore
	addresses *fakeAddressStore
	mailer    *fakeMailer

	cartSvc    *service.CartService
	addressSvc *service.AddressService
	orderSvc   *service.OrderService
}

func newOrderEnv() *orderEnv {
	env := &orderEnv{
		orders:    &fakeOrderStore{},
		carts:     &fakeCartStore{},
		products:  newFakeProductStore(),
		addresses: &fakeAddressStore{},
		mailer:    &fakeMailer{},
	}
	env.cartSvc = service.NewCartService(env.carts, env.products)
	env.addressSvc = service.NewAddressService(env.addresses)
	env.orderSvc = service.NewOrderService(env.orders, env.cartSvc, env.addressSvc,
		env.products, env.mailer, testDeliveryFee)
	return env
}

func (env *orderEnv) addAddress(t *testing.T, userID string) string {
	t.Helper()
	id, err := env.addressSvc.Add(userID, addressRequest("Home", true))
	require.NoError(t, err)
	return id
}

var testUser = model.UserCredential{Id: "user-1", Email: "customer@example.com", Roles: model.RoleUser}

func TestCheckoutScenario(t *testing.T) {
	env := newOrderEnv()
	productID := env.products.put(model.Product{Name: "Paracetamol 500mg", Price: 50, AdminUid: "admin-1", AdminEmail: "seller@example.com"})
	addressID := env.addAddress(t, testUser.Id)

	// add P twice: one line, qty 2, total 100
	require.NoError(t, env.cartSvc.Add(testUser.Id, productID, 1))
	require.NoError(t, env.cartSvc.Add(testUser.Id, productID, 1))

	result, err := env.orderSvc.Checkout(testUser, addressID, "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.OrderNumber, "#QH"))
	assert.Len(t, result.OrderIds, 1)
	assert.Equal(t, 100.0, result.Subtotal)
	assert.Equal(t, testDeliveryFee, result.Delivery)
	assert.Equal(t, 130.0, result.Total)

	orders, err := env.orders.ListByUser(testUser.Id)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, productID, orders[0].ProductId)
	assert.Equal(t, "admin-1", orders[0].AdminUid)
	assert.Equal(t, 2, orders[0].Quantity)
	assert.Equal(t, 100.0, orders[0].TotalPrice)
	assert.Equal(t, model.OrderStatusPending, orders[0].Status)
	require.NotNil(t, orders[0].ShippingAddress)
	assert.Contains(t, *orders[0].ShippingAddress, "Pune")

	cart, err := env.cartSvc.Get(testUser.Id)
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "cart should be cleared after checkout")

	require.Len(t, env.mailer.confirmations, 1)
	email := env.mailer.confirmations[0]
	assert.Equal(t, result.OrderNumber, email.OrderNumber)
	assert.Equal(t, testUser.Email, email.CustomerEmail)
	assert.Equal(t, 130.0, email.Total)
	require.Len(t, email.Items, 1)
	assert.Equal(t, 2, email.Items[0].Quantity)
}

func TestCheckoutMultiLineCreatesOneRowPerLine(t *testing.T) {
	env := newOrderEnv()
	first := env.products.put(model.Product{Name: "A", Price: 10, AdminUid: "admin-1"})
	second := env.products.put(model.Product{Name: "B", Price: 20, AdminUid: "admin-2"})
	addressID := env.addAddress(t, testUser.Id)

	require.NoError(t, env.cartSvc.Add(testUser.Id, first, 3))
	require.NoError(t, env.cartSvc.Add(testUser.Id, second, 1))

	result, err := env.orderSvc.Checkout(testUser, addressID, "")
	require.NoError(t, err)
	assert.Len(t, result.OrderIds, 2)
	assert.Equal(t, 50.0, result.Subtotal)

	orders, err := env.orders.ListByUser(testUser.Id)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newOrderEnv()
	addressID := env.addAddress(t, testUser.Id)

	_, err := env.orderSvc.Checkout(testUser, addressID, "")
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Empty(t, env.orders.orders)
	assert.Empty(t, env.mailer.confirmations)
}

func TestCheckoutMissingAddress(t *testing.T) {
	env := newOrderEnv()
	productID := env.products.put(model.Product{Name: "A", Price: 10})
	require.NoError(t, env.cartSvc.Add(testUser.Id, productID, 1))

	_, err := env.orderSvc.Checkout(testUser, "no-such-address", "")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Empty(t, env.orders.orders)

	cart, err := env.cartSvc.Get(testUser.Id)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1, "cart must be untouched on failure")
}

func TestCheckoutOnlyInvalidLines(t *testing.T) {
	env := newOrderEnv()
	goneID := env.products.put(model.Product{Name: "Gone", Price: 10})
	addressID := env.addAddress(t, testUser.Id)
	require.NoError(t, env.cartSvc.Add(testUser.Id, goneID, 1))
	env.products.remove(goneID)

	_, err := env.orderSvc.Checkout(testUser, addressID, "")
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Empty(t, env.orders.orders)
	assert.Empty(t, env.mailer.confirmations)
}

func TestCheckoutValidSubsetOnly(t *testing.T) {
	env := newOrderEnv()
	keepID := env.products.put(model.Product{Name: "Keep", Price: 10, AdminUid: "admin-1"})
	goneID := env.products.put(model.Product{Name: "Gone", Price: 99})
	addressID := env.addAddress(t, testUser.Id)

	require.NoError(t, env.cartSvc.Add(testUser.Id, keepID, 1))
	require.NoError(t, env.cartSvc.Add(testUser.Id, goneID, 1))
	env.products.remove(goneID)

	result, err := env.orderSvc.Checkout(testUser, addressID, "")
	require.NoError(t, err)
	assert.Len(t, result.OrderIds, 1)

	orders, err := env.orders.ListByUser(testUser.Id)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, keepID, orders[0].ProductId)
}

func TestCheckoutEmailFailureDoesNotRollBack(t *testing.T) {
	env := newOrderEnv()
	env.mailer.failWith = errors.New("smtp: connection refused")
	productID := env.products.put(model.Product{Name: "A", Price: 10, AdminUid: "admin-1"})
	addressID := env.addAddress(t, testUser.Id)
	require.NoError(t, env.cartSvc.Add(testUser.Id, productID, 1))

	result, err := env.orderSvc.Checkout(testUser, addressID, "")
	require.NoError(t, err, "email failure must not fail the order")
	assert.Len(t, result.OrderIds, 1)

	orders, err := env.orders.ListByUser(testUser.Id)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	cart, err := env.cartSvc.Get(testUser.Id)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCheckoutIdempotencyReplay(t *testing.T) {
	env := newOrderEnv()
	productID := env.products.put(model.Product{Name: "A", Price: 25, AdminUid: "admin-1"})
	addressID := env.addAddress(t, testUser.Id)
	require.NoError(t, env.cartSvc.Add(testUser.Id, productID, 2))

	first, err := env.orderSvc.Checkout(testUser, addressID, "retry-key-1")
	require.NoError(t, err)

	// the duplicate submit arrives after the cart was cleared
	replay, err := env.orderSvc.Checkout(testUser, addressID, "retry-key-1")
	require.NoError(t, err)

	assert.Equal(t, first.OrderNumber, replay.OrderNumber)
	assert.Equal(t, first.OrderIds, replay.OrderIds)
	assert.Equal(t, first.Total, replay.Total)

	orders, err := env.orders.ListByUser(testUser.Id)
	require.NoError(t, err)
	assert.Len(t, orders, 1, "replay must not create new rows")
	assert.Len(t, env.mailer.confirmations, 1, "replay must not resend email")
}

func TestCheckoutIdempotencyKeyScopedPerUser(t *testing.T) {
	env := newOrderEnv()
	productID := env.products.put(model.Product{Name: "A", Price: 25, AdminUid: "admin-1"})

	alice := model.UserCredential{Id: "alice", Email: "alice@example.com", Roles: model.RoleUser}
	bob := model.UserCredential{Id: "bob", Email: "bob@example.com", Roles: model.RoleUser}
	aliceAddr := env.addAddress(t, alice.Id)
	bobAddr := env.addAddress(t, bob.Id)

	require.NoError(t, env.cartSvc.Add(alice.Id, productID, 1))
	require.NoError(t, env.cartSvc.Add(bob.Id, productID, 2))

	// both clients picked the same naive key
	aliceResult, err := env.orderSvc.Checkout(alice, aliceAddr, "1")
	require.NoError(t, err)
	bobResult, err := env.orderSvc.Checkout(bob, bobAddr, "1")
	require.NoError(t, err)

	assert.NotEqual(t, aliceResult.OrderIds, bobResult.OrderIds,
		"one user's key must never replay another user's orders")
	assert.Equal(t, 50.0, bobResult.Subtotal)

	bobOrders, err := env.orders.ListByUser(bob.Id)
	require.NoError(t, err)
	require.Len(t, bobOrders, 1)
	assert.Equal(t, 2, bobOrders[0].Quantity)

	bobCart, err := env.cartSvc.Get(bob.Id)
	require.NoError(t, err)
	assert.Empty(t, bobCart.Items, "second user's cart must be cleared by their own checkout")

	// each user's key still replays their own checkout
	aliceReplay, err := env.orderSvc.Checkout(alice, aliceAddr, "1")
	require.NoError(t, err)
	assert.Equal(t, aliceResult.OrderIds, aliceReplay.OrderIds)
}

func TestCreateDirect(t *testing.T) {
	env := newOrderEnv()
	productID := env.products.put(model.Product{Name: "A", Price: 10, AdminUid: "admin-9"})

	orderID, err := env.orderSvc.CreateDirect(testUser, model.OrderRequest{
		ProductId:  productID,
		Quantity:   2,
		TotalPrice: 20,
	})
	require.NoError(t, err)

	order, found, err := env.orders.GetByID(orderID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "admin-9", order.AdminUid, "seller id is denormalized from the product")
	assert.Equal(t, model.OrderStatusPending, order.Status)

	_, err = env.orderSvc.CreateDirect(testUser, model.OrderRequest{ProductId: "missing", Quantity: 1, TotalPrice: 5})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestCancelOrderAuthorization(t *testing.T) {
	env := newOrderEnv()
	productID := env.products.put(model.Product{Name: "A", Price: 10, AdminUid: "admin-1"})

	orderID, err := env.orderSvc.CreateDirect(testUser, model.OrderRequest{ProductId: productID, Quantity: 1, TotalPrice: 10})
	require.NoError(t, err)

	// someone else's order
	err = env.orderSvc.Cancel(orderID, "intruder")
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
	order, _, _ := env.orders.GetByID(orderID)
	assert.Equal(t, model.OrderStatusPending, order.Status)

	// owner cancels pending
	require.NoError(t, env.orderSvc.Cancel(orderID, testUser.Id))
	order, _, _ = env.orders.GetByID(orderID)
	assert.Equal(t, model.OrderStatusCancelled, order.Status)

	// cancelled is no longer pending
	err = env.orderSvc.Cancel(orderID, testUser.Id)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	err = env.orderSvc.Cancel("no-such-order", testUser.Id)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestUpdateStatus(t *testing.T) {
	env := newOrderEnv()
	productID := env.products.put(model.Product{Name: "A", Price: 10, AdminUid: "admin-1"})
	orderID, err := env.orderSvc.CreateDirect(testUser, model.OrderRequest{ProductId: productID, Quantity: 1, TotalPrice: 10})
	require.NoError(t, err)

	err = env.orderSvc.UpdateStatus(orderID, model.OrderStatus("shipped"))
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	require.NoError(t, env.orderSvc.UpdateStatus(orderID, model.OrderStatusCompleted))
	order, _, _ := env.orders.GetByID(orderID)
	assert.Equal(t, model.OrderStatusCompleted, order.Status)
	require.Len(t, env.mailer.completions, 1)
	assert.Contains(t, env.mailer.completions[0], testUser.Email)
}

func TestOrderStats(t *testing.T) {
	env := newOrderEnv()
	productID := env.products.put(model.Product{Name: "A", Price: 10, AdminUid: "admin-1"})

	mkOrder := func(total float64) string {
		id, err := env.orderSvc.CreateDirect(testUser, model.OrderRequest{ProductId: productID, Quantity: 1, TotalPrice: total})
		require.NoError(t, err)
		return id
	}
	mkOrder(10)
	completed := mkOrder(20)
	cancelled := mkOrder(40)
	require.NoError(t, env.orderSvc.UpdateStatus(completed, model.OrderStatusCompleted))
	require.NoError(t, env.orderSvc.Cancel(cancelled, testUser.Id))

	userStats, err := env.orderSvc.UserStats(testUser.Id)
	require.NoError(t, err)
	assert.Equal(t, 3, userStats.TotalOrders)
	assert.Equal(t, 70.0, userStats.TotalSpent)
	assert.Equal(t, model.StatusCounts{Pending: 1, Completed: 1, Cancelled: 1}, userStats.StatusCounts)

	adminStats, err := env.orderSvc.AdminStats("admin-1")
	require.NoError(t, err)
	assert.Equal(t, 3, adminStats.TotalOrders)
	assert.Equal(t, 30.0, adminStats.TotalRevenue, "cancelled orders do not count toward revenue")
}

func TestRecentOrders(t *testing.T) {
	env := newOrderEnv()
	productID := env.products.put(model.Product{Name: "A", Price: 10, AdminUid: "admin-1"})

	var last string
	for i := 0; i < 4; i++ {
		id, err := env.orderSvc.CreateDirect(testUser, model.OrderRequest{ProductId: productID, Quantity: 1, TotalPrice: 10})
		require.NoError(t, err)
		last = id
	}

	recent, err := env.orderSvc.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, last, recent[0].Id, "newest order comes first")

	// non-positive limit falls back to the default of 10
	all, err := env.orderSvc.Recent(0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestOrdersByStatus(t *testing.T) {
	env := newOrderEnv()
	productID := env.products.put(model.Product{Name: "A", Price: 10, AdminUid: "admin-1"})

	other := model.UserCredential{Id: "user-2", Email: "other@example.com", Roles: model.RoleUser}
	mine, err := env.orderSvc.CreateDirect(testUser, model.OrderRequest{ProductId: productID, Quantity: 1, TotalPrice: 10})
	require.NoError(t, err)
	_, err = env.orderSvc.CreateDirect(other, model.OrderRequest{ProductId: productID, Quantity: 1, TotalPrice: 10})
	require.NoError(t, err)
	completed, err := env.orderSvc.CreateDirect(testUser, model.OrderRequest{ProductId: productID, Quantity: 1, TotalPrice: 10})
	require.NoError(t, err)
	require.NoError(t, env.orderSvc.UpdateStatus(completed, model.OrderStatusCompleted))

	pending, err := env.orderSvc.ByStatus(model.OrderStatusPending, "")
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	minePending, err := env.orderSvc.ByStatus(model.OrderStatusPending, testUser.Id)
	require.NoError(t, err)
	require.Len(t, minePending, 1)
	assert.Equal(t, mine, minePending[0].Id)

	_, err = env.orderSvc.ByStatus(model.OrderStatus("shipped"), "")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestListByUserEnrichment(t *testing.T) {
	env := newOrderEnv()
	productID := env.products.put(model.Product{
		Name: "Inhaler", Price: 250, AdminUid: "admin-1",
		AdminEmail: "seller@example.com", ImageRefs: []string{"img-1"},
	})
	goneID := env.products.put(model.Product{Name: "Gone", Price: 5, AdminUid: "admin-1"})

	_, err := env.orderSvc.CreateDirect(testUser, model.OrderRequest{ProductId: productID, Quantity: 1, TotalPrice: 250})
	require.NoError(t, err)
	_, err = env.orderSvc.CreateDirect(testUser, model.OrderRequest{ProductId: goneID, Quantity: 1, TotalPrice: 5})
	require.NoError(t, err)
	env.products.remove(goneID)

	views, err := env.orderSvc.ListByUser(testUser.Id)
	require.NoError(t, err)
	require.Len(t, views, 2)

	byProduct := map[string]model.OrderView{}
	for _, v := range views {
		byProduct[v.ProductId] = v
	}
	live := byProduct[productID]
	assert.Equal(t, "Inhaler", live.ProductName)
	assert.Equal(t, 250.0, live.ProductPrice)
	assert.Equal(t, "seller@example.com", live.AdminEmail)
	require.NotNil(t, live.ProductImage)
	assert.Equal(t, "img-1", *live.ProductImage)

	gone := byProduct[goneID]
	assert.Equal(t, "Product", gone.ProductName, "deleted product falls back to placeholder")
	assert.Nil(t, gone.ProductImage)
	assert.Zero(t, gone.ProductPrice)
}

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "#QHDEF456", service.FormatOrderNumber("abc123def456"))
	assert.Equal(t, "#QHAB12", service.FormatOrderNumber("ab12"))
}
