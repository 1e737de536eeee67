package services

import (
	"database/sql"
	"fmt"

	"ims-backend/models"
)

// Ledger is the only sanctioned mutation path for product quantities. Every
// successful call changes exactly one product row and nothing else, and a
// quantity can never go below zero.
type Ledger struct {
	db *sql.DB
}

func NewLedger(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

// ApplyQuantityChange mutates one product's quantity inside its own
// transaction and returns the pre- and post-mutation quantities.
func (l *Ledger) ApplyQuantityChange(productID, delta int, action models.StockAction) (int, int, error) {
	tx, err := l.db.Begin()
	if err != nil {
		return 0, 0, &StoreError{Op: "begin quantity change", Err: err}
	}

	oldQty, newQty, err := l.ApplyQuantityChangeTx(tx, productID, delta, action)
	if err != nil {
		tx.Rollback()
		return oldQty, newQty, err
	}
	if err := tx.Commit(); err != nil {
		return 0, 0, &StoreError{Op: "commit quantity change", Err: err}
	}
	return oldQty, newQty, nil
}

// ApplyQuantityChangeTx is ApplyQuantityChange within a caller-supplied
// transaction, so the orchestrator can commit the mutation together with its
// audit rows. The read and the write share one transaction, and subtract is
// additionally guarded by a qty >= delta condition on the UPDATE itself, so
// a concurrent writer cannot cause a lost update or a negative quantity.
func (l *Ledger) ApplyQuantityChangeTx(tx *sql.Tx, productID, delta int, action models.StockAction) (int, int, error) {
	if delta <= 0 {
		return 0, 0, fmt.Errorf("quantity delta must be positive, got %d", delta)
	}

	var oldQty int
	err := tx.QueryRow(`SELECT qty FROM product WHERE pid = ?`, productID).Scan(&oldQty)
	if err == sql.ErrNoRows {
		return 0, 0, ErrProductNotFound
	}
	if err != nil {
		return 0, 0, &StoreError{Op: "read quantity", Err: err}
	}

	var newQty int
	switch action {
	case models.StockActionAdd:
		newQty = oldQty + delta
		_, err = tx.Exec(`UPDATE product SET qty = qty + ? WHERE pid = ?`, delta, productID)
		if err != nil {
			return oldQty, 0, &StoreError{Op: "add quantity", Err: err}
		}
	case models.StockActionSubtract:
		if oldQty < delta {
			return oldQty, 0, &InsufficientStockError{Available: oldQty, Required: delta}
		}
		newQty = oldQty - delta
		result, err := tx.Exec(
			`UPDATE product SET qty = qty - ? WHERE pid = ? AND qty >= ?`,
			delta, productID, delta)
		if err != nil {
			return oldQty, 0, &StoreError{Op: "subtract quantity", Err: err}
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return oldQty, 0, &StoreError{Op: "subtract quantity", Err: err}
		}
		if affected == 0 {
			// Lost the race to another writer between read and write.
			return oldQty, 0, &InsufficientStockError{Available: oldQty, Required: delta}
		}
	default:
		return oldQty, 0, fmt.Errorf("unknown stock action %q", action)
	}

	return oldQty, newQty, nil
}
