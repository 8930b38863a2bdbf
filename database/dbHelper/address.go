package dbHelper

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"quick_heal/database"
	"quick_heal/model"
	"quick_heal/service"
)

// AddressStore implements service.AddressStore on Postgres. A store
// returned by InTx shares one transaction for the whole closure.
type AddressStore struct {
	db   sqlx.Ext
	conn *sqlx.DB
}

func NewAddressStore(db *sqlx.DB) *AddressStore {
	return &AddressStore{db: db, conn: db}
}

func (s *AddressStore) InTx(fn func(service.AddressStore) error) error {
	if s.conn == nil {
		// already transaction-bound
		return fn(s)
	}
	return database.Tx(s.conn, func(tx *sqlx.Tx) error {
		return fn(&AddressStore{db: tx})
	})
}

func (s *AddressStore) ListByUser(userID string) ([]model.Address, error) {
	SQL := `SELECT id, user_id, name, phone, address_line1, address_line2, city, state, pincode, is_default, latitude, longitude, location_type, created_at
			FROM addresses WHERE user_id = $1 ORDER BY created_at DESC`
	list := make([]model.Address, 0)
	err := sqlx.Select(s.db, &list, SQL, userID)
	return list, err
}

func (s *AddressStore) GetByID(addressID string) (model.Address, bool, error) {
	SQL := `SELECT id, user_id, name, phone, address_line1, address_line2, city, state, pincode, is_default, latitude, longitude, location_type, created_at
			FROM addresses WHERE id = $1`
	var address model.Address
	err := sqlx.Get(s.db, &address, SQL, addressID)
	if err == sql.ErrNoRows {
		return model.Address{}, false, nil
	}
	if err != nil {
		return model.Address{}, false, err
	}
	return address, true, nil
}

func (s *AddressStore) Insert(a model.Address) (string, error) {
	SQL := `INSERT INTO addresses(user_id, name, phone, address_line1, address_line2, city, state, pincode, is_default, latitude, longitude, location_type)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	var addressID string
	err := s.db.QueryRowx(SQL, a.UserId, a.Name, a.Phone, a.AddressLine1, a.AddressLine2,
		a.City, a.State, a.Pincode, a.IsDefault, a.Latitude, a.Longitude, a.LocationType).Scan(&addressID)
	return addressID, err
}

func (s *AddressStore) PatchDefault(addressID string, isDefault bool) error {
	SQL := `UPDATE addresses SET is_default = $2 WHERE id = $1`
	_, err := s.db.Exec(SQL, addressID, isDefault)
	return err
}

func (s *AddressStore) Delete(addressID string) (bool, error) {
	SQL := `DELETE FROM addresses WHERE id = $1`
	res, err := s.db.Exec(SQL, addressID)
	if err != nil {
		return false, err
	}
	count, err := res.RowsAffected()
	return count > 0, err
}
