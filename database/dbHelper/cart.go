package dbHelper

import (
	"github.com/jmoiron/sqlx"

	"quick_heal/model"
)

type CartStore struct {
	db *sqlx.DB
}

func NewCartStore(db *sqlx.DB) *CartStore {
	return &CartStore{db: db}
}

// Upsert is a single atomic insert-or-increment so concurrent adds for the
// same (user, product) pair never lose an update.
func (s *CartStore) Upsert(userID, productID string, quantity int, unitPrice float64) error {
	SQL := `INSERT INTO cart(user_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, product_id)
			DO UPDATE SET quantity = cart.quantity + EXCLUDED.quantity, updated_at = now()`
	_, err := s.db.Exec(SQL, userID, productID, quantity, unitPrice)
	return err
}

func (s *CartStore) SetQuantity(userID, productID string, quantity int) (bool, error) {
	SQL := `UPDATE cart SET quantity = $3, updated_at = now() WHERE user_id = $1 AND product_id = $2`
	res, err := s.db.Exec(SQL, userID, productID, quantity)
	if err != nil {
		return false, err
	}
	count, err := res.RowsAffected()
	return count > 0, err
}

func (s *CartStore) Remove(userID, productID string) (bool, error) {
	SQL := `DELETE FROM cart WHERE user_id = $1 AND product_id = $2`
	res, err := s.db.Exec(SQL, userID, productID)
	if err != nil {
		return false, err
	}
	count, err := res.RowsAffected()
	return count > 0, err
}

func (s *CartStore) Clear(userID string) error {
	SQL := `DELETE FROM cart WHERE user_id = $1`
	_, err := s.db.Exec(SQL, userID)
	return err
}

func (s *CartStore) ListByUser(userID string) ([]model.CartLine, error) {
	SQL := `SELECT id, user_id, product_id, quantity, unit_price, added_at, updated_at
			FROM cart WHERE user_id = $1 ORDER BY added_at DESC`
	list := make([]model.CartLine, 0)
	err := s.db.Select(&list, SQL, userID)
	return list, err
}
