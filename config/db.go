package config

import (
	"database/sql"
	"log"

	_ "modernc.org/sqlite"
)

var DB *sql.DB

// InitDB opens the SQLite database at the configured path and creates the
// schema if it does not exist yet.
func InitDB() {
	var err error
	DB, err = sql.Open("sqlite", DBPath())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// SQLite allows a single writer; keeping one connection avoids
	// SQLITE_BUSY between the ledger and the audit appends.
	DB.SetMaxOpenConns(1)

	if err := CreateTables(DB); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}
}

// CreateTables creates the six relations used by the reconciliation core.
// Exported so tests can bootstrap a throwaway database the same way.
func CreateTables(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS supplier (
			invoice INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT,
			contact TEXT,
			desc TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS category (
			cid INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS product (
			pid INTEGER PRIMARY KEY AUTOINCREMENT,
			category TEXT,
			supplier TEXT,
			name TEXT NOT NULL,
			price NUMERIC NOT NULL DEFAULT 0,
			qty INTEGER NOT NULL DEFAULT 0 CHECK (qty >= 0),
			status TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS receipt_logs (
			receipt_id INTEGER PRIMARY KEY AUTOINCREMENT,
			receipt_type TEXT NOT NULL,
			upload_date DATETIME DEFAULT CURRENT_TIMESTAMP,
			file_name TEXT,
			total_items INTEGER NOT NULL,
			total_amount NUMERIC NOT NULL,
			status TEXT,
			notes TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS receipt_items (
			item_id INTEGER PRIMARY KEY AUTOINCREMENT,
			receipt_id INTEGER NOT NULL,
			product_id INTEGER NOT NULL,
			product_name TEXT,
			quantity INTEGER NOT NULL,
			unit_price NUMERIC NOT NULL,
			total_price NUMERIC NOT NULL,
			action TEXT NOT NULL CHECK (action IN ('add','subtract')),
			FOREIGN KEY(receipt_id) REFERENCES receipt_logs(receipt_id),
			FOREIGN KEY(product_id) REFERENCES product(pid)
		);`,
		`CREATE TABLE IF NOT EXISTS transaction_logs (
			txn_id INTEGER PRIMARY KEY AUTOINCREMENT,
			receipt_id INTEGER NOT NULL,
			product_id INTEGER NOT NULL,
			product_name TEXT,
			quantity INTEGER NOT NULL,
			action TEXT NOT NULL CHECK (action IN ('add','subtract')),
			old_qty INTEGER NOT NULL,
			new_qty INTEGER NOT NULL,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(receipt_id) REFERENCES receipt_logs(receipt_id),
			FOREIGN KEY(product_id) REFERENCES product(pid)
		);`,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
