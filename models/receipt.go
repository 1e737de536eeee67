package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptType labels a receipt as stock-increasing or stock-decreasing.
type ReceiptType string

const (
	ReceiptTypePurchase ReceiptType = "purchase"
	ReceiptTypeSales    ReceiptType = "sales"
)

// StockAction is the direction of a single quantity mutation.
type StockAction string

const (
	StockActionAdd      StockAction = "add"
	StockActionSubtract StockAction = "subtract"
)

// ActionFor maps a receipt type to the ledger action applied to each of its
// line items: purchases add stock, everything else subtracts.
func ActionFor(t ReceiptType) StockAction {
	if t == ReceiptTypePurchase {
		return StockActionAdd
	}
	return StockActionSubtract
}

// ParsedItem is one candidate line item extracted from receipt text or keyed
// in manually. It is transient and discarded after reconciliation.
type ParsedItem struct {
	Name  string          `json:"name" binding:"required"`
	Qty   int             `json:"qty" binding:"required,gt=0"`
	Price decimal.Decimal `json:"price"`
}

// LineTotal is qty x unit price.
func (p ParsedItem) LineTotal() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Qty)))
}

// ReceiptLog is the header row written once per reconciled receipt.
type ReceiptLog struct {
	ReceiptID   int             `json:"receipt_id"`
	ReceiptType ReceiptType     `json:"receipt_type"`
	UploadDate  time.Time       `json:"upload_date"`
	FileName    string          `json:"file_name"`
	TotalItems  int             `json:"total_items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes"`
}

// ReceiptItem is one successfully applied line item, append-only.
type ReceiptItem struct {
	ItemID      int             `json:"item_id"`
	ReceiptID   int             `json:"receipt_id"`
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Action      StockAction     `json:"action"`
}

// TransactionLog is the audit row written for every quantity mutation,
// recording the pre- and post-mutation quantities. Append-only.
type TransactionLog struct {
	TxnID       int         `json:"txn_id"`
	ReceiptID   int         `json:"receipt_id"`
	ProductID   int         `json:"product_id"`
	ProductName string      `json:"product_name"`
	Quantity    int         `json:"quantity"`
	Action      StockAction `json:"action"`
	OldQty      int         `json:"old_qty"`
	NewQty      int         `json:"new_qty"`
	Timestamp   time.Time   `json:"timestamp"`
}

// ReceiptDetails bundles a receipt header with its items and audit rows.
type ReceiptDetails struct {
	Receipt      ReceiptLog       `json:"receipt"`
	Items        []ReceiptItem    `json:"items"`
	Transactions []TransactionLog `json:"transactions"`
}
