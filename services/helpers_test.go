package services_test

import (
	"database/sql"
	"io"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"ims-backend/config"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "ims_test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := config.CreateTables(db); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	return db
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func seedProduct(t *testing.T, db *sql.DB, name string, price string, qty int) int {
	t.Helper()

	result, err := db.Exec(`
		INSERT INTO product (category, supplier, name, price, qty, status)
		VALUES ('General', 'Acme', ?, ?, ?, 'active')`,
		name, mustDecimal(t, price), qty)
	if err != nil {
		t.Fatalf("seed product %q: %v", name, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("seed product %q: %v", name, err)
	}
	return int(id)
}

func mustDecimal(t *testing.T, raw string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", raw, err)
	}
	return d
}

func productQty(t *testing.T, db *sql.DB, productID int) int {
	t.Helper()

	var qty int
	if err := db.QueryRow(`SELECT qty FROM product WHERE pid = ?`, productID).Scan(&qty); err != nil {
		t.Fatalf("read qty for product %d: %v", productID, err)
	}
	return qty
}
