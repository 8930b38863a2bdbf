package dbHelper

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"quick_heal/database"
	"quick_heal/model"
)

type OrderStore struct {
	db *sqlx.DB
}

func NewOrderStore(db *sqlx.DB) *OrderStore {
	return &OrderStore{db: db}
}

const orderColumns = `id, user_id, user_email, product_id, admin_uid, quantity, total_price, status, shipping_address, idempotency_key, order_date`

// CreateBatch inserts every row inside one transaction. A checkout either
// produces all of its order rows or none of them.
func (s *OrderStore) CreateBatch(orders []model.Order) ([]string, error) {
	SQL := `INSERT INTO orders(user_id, user_email, product_id, admin_uid, quantity, total_price, status, shipping_address, idempotency_key, order_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	ids := make([]string, 0, len(orders))
	txErr := database.Tx(s.db, func(tx *sqlx.Tx) error {
		for _, o := range orders {
			var orderID string
			err := tx.QueryRowx(SQL, o.UserId, o.UserEmail, o.ProductId, o.AdminUid,
				o.Quantity, o.TotalPrice, o.Status, o.ShippingAddress,
				o.IdempotencyKey, o.OrderDate).Scan(&orderID)
			if err != nil {
				return err
			}
			ids = append(ids, orderID)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return ids, nil
}

func (s *OrderStore) ListByIdempotencyKey(userID, key string) ([]model.Order, error) {
	SQL := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 AND idempotency_key = $2 ORDER BY order_date, id`
	list := make([]model.Order, 0)
	err := s.db.Select(&list, SQL, userID, key)
	return list, err
}

func (s *OrderStore) GetByID(orderID string) (model.Order, bool, error) {
	SQL := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var order model.Order
	err := s.db.Get(&order, SQL, orderID)
	if err == sql.ErrNoRows {
		return model.Order{}, false, nil
	}
	if err != nil {
		return model.Order{}, false, err
	}
	return order, true, nil
}

func (s *OrderStore) UpdateStatus(orderID string, status model.OrderStatus) error {
	SQL := `UPDATE orders SET status = $2 WHERE id = $1`
	_, err := s.db.Exec(SQL, orderID, status)
	return err
}

func (s *OrderStore) ListByUser(userID string) ([]model.Order, error) {
	SQL := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY order_date DESC`
	list := make([]model.Order, 0)
	err := s.db.Select(&list, SQL, userID)
	return list, err
}

func (s *OrderStore) ListByAdmin(adminUID string) ([]model.Order, error) {
	SQL := `SELECT ` + orderColumns + ` FROM orders WHERE admin_uid = $1 ORDER BY order_date DESC`
	list := make([]model.Order, 0)
	err := s.db.Select(&list, SQL, adminUID)
	return list, err
}

func (s *OrderStore) ListRecent(limit int) ([]model.Order, error) {
	SQL := `SELECT ` + orderColumns + ` FROM orders ORDER BY order_date DESC LIMIT $1`
	list := make([]model.Order, 0)
	err := s.db.Select(&list, SQL, limit)
	return list, err
}

func (s *OrderStore) ListByStatus(status model.OrderStatus) ([]model.Order, error) {
	SQL := `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 ORDER BY order_date DESC`
	list := make([]model.Order, 0)
	err := s.db.Select(&list, SQL, status)
	return list, err
}

func (s *OrderStore) Delete(orderID string) (bool, error) {
	SQL := `DELETE FROM orders WHERE id = $1`
	res, err := s.db.Exec(SQL, orderID)
	if err != nil {
		return false, err
	}
	count, err := res.RowsAffected()
	return count > 0, err
}
