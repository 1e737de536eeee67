package services

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"ims-backend/config"
	"ims-backend/models"
)

// ProcessedItem reports one line item that was applied to the ledger.
type ProcessedItem struct {
	Name   string             `json:"name"`
	Qty    int                `json:"qty"`
	OldQty int                `json:"old_qty"`
	NewQty int                `json:"new_qty"`
	Action models.StockAction `json:"action"`
}

// FailedItem reports one line item that could not be applied. Reason is the
// typed failure kind so callers can branch on it; Message carries the detail.
type FailedItem struct {
	Name    string        `json:"name"`
	Reason  FailureReason `json:"reason"`
	Message string        `json:"message"`
}

// Result is the structured report of one reconciliation run. Success means
// the run completed; it says nothing about how many individual items were
// applied — FailedItems is the orthogonal signal for that.
type Result struct {
	Success        bool            `json:"success"`
	ReceiptID      int             `json:"receipt_id"`
	ProcessedItems []ProcessedItem `json:"processed_items"`
	FailedItems    []FailedItem    `json:"failed_items"`
	Message        string          `json:"message"`
}

// Workflow drives the reconciliation pipeline end to end: extract or accept
// line items, classify, persist the receipt header, then match and apply each
// item against the ledger with the audit rows written in the same
// transaction. It is the only component that knows the full sequence.
type Workflow struct {
	db        *sql.DB
	logger    *logrus.Logger
	extractor TextExtractor
	matcher   *Matcher
	ledger    *Ledger
	audit     *AuditRecorder
}

func NewWorkflow(db *sql.DB, logger *logrus.Logger) *Workflow {
	return &Workflow{
		db:        db,
		logger:    logger,
		extractor: FileTextExtractor{},
		matcher:   NewMatcher(db),
		ledger:    NewLedger(db),
		audit:     NewAuditRecorder(db),
	}
}

// WithExtractor swaps the text-extraction collaborator, mainly for tests.
func (w *Workflow) WithExtractor(extractor TextExtractor) *Workflow {
	w.extractor = extractor
	return w
}

// Run executes one reconciliation. Manual items, when supplied, take
// precedence over text extraction and use the caller's type override
// (defaulting to purchase). Per-item failures are recorded and skipped; only
// an empty item set or a receipt-header persistence failure ends the run
// early.
func (w *Workflow) Run(sourcePath string, manualItems []models.ParsedItem, typeOverride models.ReceiptType) Result {
	result := Result{
		ProcessedItems: []ProcessedItem{},
		FailedItems:    []FailedItem{},
	}

	runID := uuid.NewString()
	runLog := w.logger.WithFields(logrus.Fields{"run": runID, "source": sourcePath})

	session := NewSession()
	if len(manualItems) > 0 {
		session.LoadManual(manualItems, typeOverride)
	} else {
		text, err := w.extractor.ExtractText(sourcePath)
		if err != nil {
			config.LogError(w.logger, "workflow.go", "Run", "ExtractText", sourcePath, err)
			text = ""
		}
		if text != "" {
			session.LoadText(text)
			if typeOverride != "" {
				session.ReceiptType = typeOverride
			}
		}
	}

	if len(session.Items) == 0 {
		result.Message = "No items found in receipt. Please add items manually."
		return result
	}

	receiptID, err := w.audit.CreateReceiptLog(models.ReceiptLog{
		ReceiptType: session.ReceiptType,
		UploadDate:  time.Now(),
		FileName:    filepath.Base(sourcePath),
		TotalItems:  len(session.Items),
		TotalAmount: session.TotalAmount,
		Status:      "completed",
		Notes:       fmt.Sprintf("Auto-processed (run %s)", runID),
	})
	if err != nil {
		config.LogError(w.logger, "workflow.go", "Run", "CreateReceiptLog", sourcePath, err)
		result.Message = "Failed to save receipt log"
		return result
	}
	result.ReceiptID = receiptID

	action := models.ActionFor(session.ReceiptType)
	for _, item := range session.Items {
		processed, failed := w.applyItem(receiptID, item, action)
		if failed != nil {
			result.FailedItems = append(result.FailedItems, *failed)
			continue
		}
		result.ProcessedItems = append(result.ProcessedItems, *processed)
	}

	result.Success = true
	result.Message = fmt.Sprintf("Receipt processed: %d items updated", len(result.ProcessedItems))
	runLog.WithFields(logrus.Fields{
		"receiptId": receiptID,
		"type":      session.ReceiptType,
		"processed": len(result.ProcessedItems),
		"failed":    len(result.FailedItems),
	}).Info("receipt reconciled")

	return result
}

// applyItem matches one line item and, inside a single transaction, mutates
// the ledger and appends the receipt_items and transaction_logs rows. A
// failure at any step rolls the whole item back, which keeps the audit trail
// exactly 1:1 with applied mutations. The receipt header is never rolled
// back.
func (w *Workflow) applyItem(receiptID int, item models.ParsedItem, action models.StockAction) (*ProcessedItem, *FailedItem) {
	product, err := w.matcher.MatchProduct(item.Name)
	if err != nil {
		return nil, w.failItem(item.Name, "MatchProduct", err)
	}

	tx, err := w.db.Begin()
	if err != nil {
		return nil, w.failItem(item.Name, "Begin", &StoreError{Op: "begin item", Err: err})
	}

	oldQty, newQty, err := w.ledger.ApplyQuantityChangeTx(tx, product.ID, item.Qty, action)
	if err != nil {
		tx.Rollback()
		return nil, w.failItem(item.Name, "ApplyQuantityChange", err)
	}

	err = w.audit.AppendReceiptItemTx(tx, models.ReceiptItem{
		ReceiptID:   receiptID,
		ProductID:   product.ID,
		ProductName: item.Name,
		Quantity:    item.Qty,
		UnitPrice:   item.Price,
		TotalPrice:  item.LineTotal(),
		Action:      action,
	})
	if err != nil {
		tx.Rollback()
		return nil, w.failItem(item.Name, "AppendReceiptItem", err)
	}

	err = w.audit.AppendTransactionLogTx(tx, models.TransactionLog{
		ReceiptID:   receiptID,
		ProductID:   product.ID,
		ProductName: item.Name,
		Quantity:    item.Qty,
		Action:      action,
		OldQty:      oldQty,
		NewQty:      newQty,
	})
	if err != nil {
		tx.Rollback()
		return nil, w.failItem(item.Name, "AppendTransactionLog", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, w.failItem(item.Name, "Commit", &StoreError{Op: "commit item", Err: err})
	}

	return &ProcessedItem{
		Name:   item.Name,
		Qty:    item.Qty,
		OldQty: oldQty,
		NewQty: newQty,
		Action: action,
	}, nil
}

func (w *Workflow) failItem(name, step string, err error) *FailedItem {
	config.LogError(w.logger, "workflow.go", "applyItem", step, name, err)
	return &FailedItem{Name: name, Reason: reasonFor(err), Message: err.Error()}
}

// History returns the most recent receipt headers, newest first.
func (w *Workflow) History(limit int) ([]models.ReceiptLog, error) {
	if limit <= 0 {
		limit = config.HistoryLimit
	}
	return w.audit.ReceiptHistory(limit)
}

// Details returns one receipt with its items and audit rows.
func (w *Workflow) Details(receiptID int) (*models.ReceiptDetails, error) {
	return w.audit.ReceiptDetails(receiptID)
}
