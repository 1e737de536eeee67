package services

import (
	"database/sql"
	"time"

	"ims-backend/models"
)

// AuditRecorder persists the receipt header, its applied line items and the
// per-mutation transaction log. The three tables are append-only; nothing
// here updates or deletes a row once written.
type AuditRecorder struct {
	db *sql.DB
}

func NewAuditRecorder(db *sql.DB) *AuditRecorder {
	return &AuditRecorder{db: db}
}

// CreateReceiptLog writes the receipt header and returns its generated id.
func (a *AuditRecorder) CreateReceiptLog(log models.ReceiptLog) (int, error) {
	result, err := a.db.Exec(`
		INSERT INTO receipt_logs
		(receipt_type, upload_date, file_name, total_items, total_amount, status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		log.ReceiptType, log.UploadDate, log.FileName, log.TotalItems,
		log.TotalAmount, log.Status, log.Notes,
	)
	if err != nil {
		return 0, &StoreError{Op: "create receipt log", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, &StoreError{Op: "create receipt log", Err: err}
	}
	return int(id), nil
}

// AppendReceiptItemTx appends one applied line item within the caller's
// transaction.
func (a *AuditRecorder) AppendReceiptItemTx(tx *sql.Tx, item models.ReceiptItem) error {
	_, err := tx.Exec(`
		INSERT INTO receipt_items
		(receipt_id, product_id, product_name, quantity, unit_price, total_price, action)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ReceiptID, item.ProductID, item.ProductName, item.Quantity,
		item.UnitPrice, item.TotalPrice, item.Action,
	)
	if err != nil {
		return &StoreError{Op: "append receipt item", Err: err}
	}
	return nil
}

// AppendTransactionLogTx appends one audit-trail row within the caller's
// transaction, recording the ledger's before and after quantities.
func (a *AuditRecorder) AppendTransactionLogTx(tx *sql.Tx, entry models.TransactionLog) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	_, err := tx.Exec(`
		INSERT INTO transaction_logs
		(receipt_id, product_id, product_name, quantity, action, old_qty, new_qty, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ReceiptID, entry.ProductID, entry.ProductName, entry.Quantity,
		entry.Action, entry.OldQty, entry.NewQty, entry.Timestamp,
	)
	if err != nil {
		return &StoreError{Op: "append transaction log", Err: err}
	}
	return nil
}

// ReceiptHistory returns the most recent receipts, newest first.
func (a *AuditRecorder) ReceiptHistory(limit int) ([]models.ReceiptLog, error) {
	rows, err := a.db.Query(`
		SELECT receipt_id, receipt_type, upload_date, file_name, total_items, total_amount, status, notes
		FROM receipt_logs ORDER BY receipt_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, &StoreError{Op: "receipt history", Err: err}
	}
	defer rows.Close()

	receipts := []models.ReceiptLog{}
	for rows.Next() {
		var r models.ReceiptLog
		if err := rows.Scan(
			&r.ReceiptID, &r.ReceiptType, &r.UploadDate, &r.FileName,
			&r.TotalItems, &r.TotalAmount, &r.Status, &r.Notes,
		); err != nil {
			return nil, &StoreError{Op: "receipt history", Err: err}
		}
		receipts = append(receipts, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "receipt history", Err: err}
	}
	return receipts, nil
}

// ReceiptDetails returns one receipt with its items and transaction rows.
func (a *AuditRecorder) ReceiptDetails(receiptID int) (*models.ReceiptDetails, error) {
	var details models.ReceiptDetails

	err := a.db.QueryRow(`
		SELECT receipt_id, receipt_type, upload_date, file_name, total_items, total_amount, status, notes
		FROM receipt_logs WHERE receipt_id = ?`, receiptID).
		Scan(
			&details.Receipt.ReceiptID, &details.Receipt.ReceiptType,
			&details.Receipt.UploadDate, &details.Receipt.FileName,
			&details.Receipt.TotalItems, &details.Receipt.TotalAmount,
			&details.Receipt.Status, &details.Receipt.Notes,
		)
	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, &StoreError{Op: "receipt details", Err: err}
	}

	itemRows, err := a.db.Query(`
		SELECT item_id, receipt_id, product_id, product_name, quantity, unit_price, total_price, action
		FROM receipt_items WHERE receipt_id = ? ORDER BY item_id`, receiptID)
	if err != nil {
		return nil, &StoreError{Op: "receipt details", Err: err}
	}
	defer itemRows.Close()

	details.Items = []models.ReceiptItem{}
	for itemRows.Next() {
		var item models.ReceiptItem
		if err := itemRows.Scan(
			&item.ItemID, &item.ReceiptID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.Action,
		); err != nil {
			return nil, &StoreError{Op: "receipt details", Err: err}
		}
		details.Items = append(details.Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, &StoreError{Op: "receipt details", Err: err}
	}

	txnRows, err := a.db.Query(`
		SELECT txn_id, receipt_id, product_id, product_name, quantity, action, old_qty, new_qty, timestamp
		FROM transaction_logs WHERE receipt_id = ? ORDER BY txn_id`, receiptID)
	if err != nil {
		return nil, &StoreError{Op: "receipt details", Err: err}
	}
	defer txnRows.Close()

	details.Transactions = []models.TransactionLog{}
	for txnRows.Next() {
		var entry models.TransactionLog
		if err := txnRows.Scan(
			&entry.TxnID, &entry.ReceiptID, &entry.ProductID, &entry.ProductName,
			&entry.Quantity, &entry.Action, &entry.OldQty, &entry.NewQty, &entry.Timestamp,
		); err != nil {
			return nil, &StoreError{Op: "receipt details", Err: err}
		}
		details.Transactions = append(details.Transactions, entry)
	}
	if err := txnRows.Err(); err != nil {
		return nil, &StoreError{Op: "receipt details", Err: err}
	}

	return &details, nil
}
