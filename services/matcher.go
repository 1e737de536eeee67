package services

import (
	"database/sql"

	"ims-backend/models"
)

// Matcher resolves a free-text line-item name to a catalog product.
type Matcher struct {
	db *sql.DB
}

func NewMatcher(db *sql.DB) *Matcher {
	return &Matcher{db: db}
}

// MatchProduct returns the catalog entry for a parsed name, or
// ErrProductNotFound. Resolution policy, in order:
//
//  1. exact case-insensitive name match;
//  2. containment match (the parsed name appears inside a catalog name),
//     preferring the shortest catalog name and then the lowest id.
//
// The containment tie-break makes the most specific entry win instead of
// whatever row the store happens to return first.
func (m *Matcher) MatchProduct(name string) (*models.Product, error) {
	product, err := m.scanOne(
		`SELECT pid, category, supplier, name, price, qty, status
		 FROM product WHERE lower(name) = lower(?) ORDER BY pid LIMIT 1`, name)
	if err != nil {
		return nil, err
	}
	if product != nil {
		return product, nil
	}

	product, err = m.scanOne(
		`SELECT pid, category, supplier, name, price, qty, status
		 FROM product WHERE name LIKE '%' || ? || '%'
		 ORDER BY LENGTH(name), pid LIMIT 1`, name)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (m *Matcher) scanOne(query string, name string) (*models.Product, error) {
	var p models.Product
	err := m.db.QueryRow(query, name).
		Scan(&p.ID, &p.Category, &p.Supplier, &p.Name, &p.Price, &p.Qty, &p.Status)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "match product", Err: err}
	}
	return &p, nil
}
