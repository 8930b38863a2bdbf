package dbHelper

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"quick_heal/model"
)

type ProductStore struct {
	db *sqlx.DB
}

func NewProductStore(db *sqlx.DB) *ProductStore {
	return &ProductStore{db: db}
}

// productRow adds array scanning for the text[] columns the model keeps as
// plain slices.
type productRow struct {
	model.Product
	Features pq.StringArray `db:"highlighted_features"`
	Images   pq.StringArray `db:"image_refs"`
}

func (r productRow) toModel() model.Product {
	p := r.Product
	p.HighlightedFeatures = []string(r.Features)
	p.ImageRefs = []string(r.Images)
	return p
}

func (s *ProductStore) Create(p model.Product) (string, error) {
	SQL := `INSERT INTO products(admin_uid, admin_email, name, description, price, discounted_price, rating, offers, highlighted_features, image_refs)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	var productID string
	err := s.db.QueryRowx(SQL, p.AdminUid, p.AdminEmail, p.Name, p.Description, p.Price,
		p.DiscountedPrice, p.Rating, p.Offers,
		pq.Array(p.HighlightedFeatures), pq.Array(p.ImageRefs)).Scan(&productID)
	return productID, err
}

func (s *ProductStore) Update(productID string, p model.Product) (bool, error) {
	SQL := `UPDATE products
			SET name                 = $2,
				description          = $3,
				price                = $4,
				discounted_price     = $5,
				rating               = $6,
				offers               = $7,
				highlighted_features = $8,
				image_refs           = $9,
				updated_at           = now()
			WHERE id = $1`
	res, err := s.db.Exec(SQL, productID, p.Name, p.Description, p.Price,
		p.DiscountedPrice, p.Rating, p.Offers,
		pq.Array(p.HighlightedFeatures), pq.Array(p.ImageRefs))
	if err != nil {
		return false, err
	}
	count, err := res.RowsAffected()
	return count > 0, err
}

func (s *ProductStore) Delete(productID string) (bool, error) {
	SQL := `DELETE FROM products WHERE id = $1`
	res, err := s.db.Exec(SQL, productID)
	if err != nil {
		return false, err
	}
	count, err := res.RowsAffected()
	return count > 0, err
}

func (s *ProductStore) GetByID(productID string) (model.Product, bool, error) {
	SQL := `SELECT id, admin_uid, admin_email, name, description, price, discounted_price, rating, offers, highlighted_features, image_refs, created_at, updated_at
			FROM products WHERE id = $1`
	var row productRow
	err := s.db.Get(&row, SQL, productID)
	if err == sql.ErrNoRows {
		return model.Product{}, false, nil
	}
	if err != nil {
		return model.Product{}, false, err
	}
	return row.toModel(), true, nil
}

func (s *ProductStore) ListAll() ([]model.Product, error) {
	SQL := `SELECT id, admin_uid, admin_email, name, description, price, discounted_price, rating, offers, highlighted_features, image_refs, created_at, updated_at
			FROM products ORDER BY created_at DESC`
	rows := make([]productRow, 0)
	if err := s.db.Select(&rows, SQL); err != nil {
		return nil, err
	}
	list := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toModel())
	}
	return list, nil
}

func (s *ProductStore) ListByAdmin(adminUID string) ([]model.Product, error) {
	SQL := `SELECT id, admin_uid, admin_email, name, description, price, discounted_price, rating, offers, highlighted_features, image_refs, created_at, updated_at
			FROM products WHERE admin_uid = $1 ORDER BY created_at DESC`
	rows := make([]productRow, 0)
	if err := s.db.Select(&rows, SQL, adminUID); err != nil {
		return nil, err
	}
	list := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toModel())
	}
	return list, nil
}
