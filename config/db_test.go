package config_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"ims-backend/config"
)

func TestCreateTablesIsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "ims_test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := config.CreateTables(db); err != nil {
		t.Fatalf("first CreateTables: %v", err)
	}
	if err := config.CreateTables(db); err != nil {
		t.Fatalf("second CreateTables: %v", err)
	}
}

func TestProductQuantityCheckConstraint(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "ims_test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := config.CreateTables(db); err != nil {
		t.Fatalf("CreateTables: %v", err)
	}

	_, err = db.Exec(`
		INSERT INTO product (category, supplier, name, price, qty, status)
		VALUES ('General', 'Acme', 'Widget', 10, -1, 'active')`)
	if err == nil {
		t.Fatalf("negative quantity was accepted by the schema")
	}
}
