package service_test

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"quick_heal/model"
	"quick_heal/service"
)

// In-memory stores backing the service tests. Mutations lock a mutex so the
// concurrency properties exercise the same atomicity contract the SQL
// stores provide.

type fakeAddressStore struct {
	mu        sync.Mutex
	addresses []model.Address
}

func (s *fakeAddressStore) ListByUser(userID string) ([]model.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]model.Address, 0)
	// newest first
	for i := len(s.addresses) - 1; i >= 0; i-- {
		if s.addresses[i].UserId == userID {
			list = append(list, s.addresses[i])
		}
	}
	return list, nil
}

func (s *fakeAddressStore) GetByID(addressID string) (model.Address, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, addr := range s.addresses {
		if addr.Id == addressID {
			return addr, true, nil
		}
	}
	return model.Address{}, false, nil
}

func (s *fakeAddressStore) Insert(address model.Address) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	address.Id = uuid.NewString()
	address.CreatedAt = time.Now()
	s.addresses = append(s.addresses, address)
	return address.Id, nil
}

func (s *fakeAddressStore) PatchDefault(addressID string, isDefault bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.addresses {
		if s.addresses[i].Id == addressID {
			s.addresses[i].IsDefault = isDefault
		}
	}
	return nil
}

func (s *fakeAddressStore) Delete(addressID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, addr := range s.addresses {
		if addr.Id == addressID {
			s.addresses = append(s.addresses[:i], s.addresses[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeAddressStore) InTx(fn func(service.AddressStore) error) error {
	return fn(s)
}

type fakeProductStore struct {
	mu       sync.Mutex
	products map[string]model.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: make(map[string]model.Product)}
}

func (s *fakeProductStore) GetByID(productID string) (model.Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[productID]
	return product, ok, nil
}

func (s *fakeProductStore) put(p model.Product) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ProductId == "" {
		p.ProductId = uuid.NewString()
	}
	s.products[p.ProductId] = p
	return p.ProductId
}

func (s *fakeProductStore) remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, productID)
}

type fakeCartStore struct {
	mu    sync.Mutex
	lines []model.CartLine
}

func (s *fakeCartStore) Upsert(userID, productID string, quantity int, unitPrice float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].UserId == userID && s.lines[i].ProductId == productID {
			s.lines[i].Quantity += quantity
			s.lines[i].UpdatedAt = time.Now()
			return nil
		}
	}
	s.lines = append(s.lines, model.CartLine{
		Id:        uuid.NewString(),
		UserId:    userID,
		ProductId: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		AddedAt:   time.Now(),
		UpdatedAt: time.Now(),
	})
	return nil
}

func (s *fakeCartStore) SetQuantity(userID, productID string, quantity int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].UserId == userID && s.lines[i].ProductId == productID {
			s.lines[i].Quantity = quantity
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCartStore) Remove(userID, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, line := range s.lines {
		if line.UserId == userID && line.ProductId == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCartStore) Clear(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.UserId != userID {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	return nil
}

func (s *fakeCartStore) ListByUser(userID string) ([]model.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]model.CartLine, 0)
	for _, line := range s.lines {
		if line.UserId == userID {
			list = append(list, line)
		}
	}
	return list, nil
}

type fakeOrderStore struct {
	mu     sync.Mutex
	orders []model.Order
}

func (s *fakeOrderStore) CreateBatch(orders []model.Order) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		o.Id = uuid.NewString()
		s.orders = append(s.orders, o)
		ids = append(ids, o.Id)
	}
	return ids, nil
}

func (s *fakeOrderStore) ListByIdempotencyKey(userID, key string) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]model.Order, 0)
	for _, o := range s.orders {
		if o.UserId == userID && o.IdempotencyKey == key {
			list = append(list, o)
		}
	}
	return list, nil
}

func (s *fakeOrderStore) GetByID(orderID string) (model.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.Id == orderID {
			return o, true, nil
		}
	}
	return model.Order{}, false, nil
}

func (s *fakeOrderStore) UpdateStatus(orderID string, status model.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].Id == orderID {
			s.orders[i].Status = status
		}
	}
	return nil
}

func (s *fakeOrderStore) ListByUser(userID string) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]model.Order, 0)
	for _, o := range s.orders {
		if o.UserId == userID {
			list = append(list, o)
		}
	}
	return list, nil
}

func (s *fakeOrderStore) ListByAdmin(adminUID string) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]model.Order, 0)
	for _, o := range s.orders {
		if o.AdminUid == adminUID {
			list = append(list, o)
		}
	}
	return list, nil
}

func (s *fakeOrderStore) ListRecent(limit int) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]model.Order, 0, limit)
	// newest first
	for i := len(s.orders) - 1; i >= 0 && len(list) < limit; i-- {
		list = append(list, s.orders[i])
	}
	return list, nil
}

func (s *fakeOrderStore) ListByStatus(status model.OrderStatus) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]model.Order, 0)
	for i := len(s.orders) - 1; i >= 0; i-- {
		if s.orders[i].Status == status {
			list = append(list, s.orders[i])
		}
	}
	return list, nil
}

func (s *fakeOrderStore) Delete(orderID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.orders {
		if o.Id == orderID {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeMailer struct {
	mu            sync.Mutex
	failWith      error
	confirmations []model.OrderEmail
	completions   []string
	appointments  []model.AppointmentEmail
}

func (m *fakeMailer) SendOrderConfirmation(email model.OrderEmail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.confirmations = append(m.confirmations, email)
	return nil
}

func (m *fakeMailer) SendAppointmentNotification(email model.AppointmentEmail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.appointments = append(m.appointments, email)
	return nil
}

func (m *fakeMailer) SendOrderCompletion(to, orderNumber string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.completions = append(m.completions, to+" "+orderNumber)
	return nil
}
