package service

import (
	"github.com/sirupsen/logrus"

	"quick_heal/apperror"
	"quick_heal/model"
)

// CartStore persists cart lines. Upsert must be a single atomic
// insert-or-increment at the storage layer so concurrent adds for the same
// (user, product) never lose an update.
type CartStore interface {
	Upsert(userID, productID string, quantity int, unitPrice float64) error
	SetQuantity(userID, productID string, quantity int) (bool, error)
	Remove(userID, productID string) (bool, error)
	Clear(userID string) error
	ListByUser(userID string) ([]model.CartLine, error)
}

// ProductReader is the read-only catalog view the cart and order services
// depend on.
type ProductReader interface {
	GetByID(productID string) (model.Product, bool, error)
}

type CartService struct {
	store    CartStore
	products ProductReader
}

func NewCartService(store CartStore, products ProductReader) *CartService {
	return &CartService{store: store, products: products}
}

// Add increments the (user, product) line by quantity, creating it with the
// product's current price when absent.
func (s *CartService) Add(userID, productID string, quantity int) error {
	if quantity < 1 {
		return apperror.Validation("quantity must be at least 1")
	}
	product, found, err := s.products.GetByID(productID)
	if err != nil {
		return err
	}
	if !found {
		return apperror.NotFound("product not found")
	}
	return s.store.Upsert(userID, productID, quantity, effectivePrice(product))
}

// SetQuantity sets the line quantity absolutely; zero or negative deletes
// the line.
func (s *CartService) SetQuantity(userID, productID string, quantity int) error {
	if quantity <= 0 {
		_, err := s.store.Remove(userID, productID)
		return err
	}
	updated, err := s.store.SetQuantity(userID, productID, quantity)
	if err != nil {
		return err
	}
	if !updated {
		return apperror.NotFound("product not in cart")
	}
	return nil
}

func (s *CartService) Remove(userID, productID string) error {
	removed, err := s.store.Remove(userID, productID)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NotFound("product not in cart")
	}
	return nil
}

func (s *CartService) Clear(userID string) error {
	return s.store.Clear(userID)
}

// Get returns the cart enriched with current product snapshots. Lines whose
// product no longer exists are pruned rather than surfaced as unavailable.
func (s *CartService) Get(userID string) (model.Cart, error) {
	lines, err := s.store.ListByUser(userID)
	if err != nil {
		return model.Cart{}, err
	}

	cart := model.Cart{Items: make([]model.CartView, 0, len(lines))}
	for _, line := range lines {
		product, found, err := s.products.GetByID(line.ProductId)
		if err != nil {
			return model.Cart{}, err
		}
		if !found {
			logrus.WithField("productId", line.ProductId).
				Info("pruning cart line for deleted product")
			if _, err := s.store.Remove(userID, line.ProductId); err != nil {
				return model.Cart{}, err
			}
			continue
		}
		var image *string
		if len(product.ImageRefs) > 0 {
			image = &product.ImageRefs[0]
		}
		view := model.CartView{
			ProductId:    line.ProductId,
			ProductName:  product.Name,
			ProductImage: image,
			AdminUid:     product.AdminUid,
			AdminEmail:   product.AdminEmail,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			LineTotal:    line.UnitPrice * float64(line.Quantity),
		}
		cart.Items = append(cart.Items, view)
		cart.Subtotal += view.LineTotal
	}
	return cart, nil
}

// effectivePrice is the price a line is captured at: the discounted price
// when the seller set one, otherwise the list price.
func effectivePrice(p model.Product) float64 {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.Price
}
