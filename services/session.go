package services

import (
	"github.com/shopspring/decimal"

	"ims-backend/models"
)

// Session is the working set for one reconciliation run: parsed items, the
// receipt classification, the derived total and the raw source text. It is a
// plain value constructed per run, not shared process state, so repeated or
// overlapping runs cannot leak items into each other.
type Session struct {
	Items       []models.ParsedItem
	ReceiptType models.ReceiptType
	TotalAmount decimal.Decimal
	RawText     string
}

func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// Reset clears the session back to its initial empty state. Call it before
// reusing a session for a new receipt.
func (s *Session) Reset() {
	s.Items = nil
	s.ReceiptType = ""
	s.TotalAmount = decimal.Zero
	s.RawText = ""
}

// LoadText parses and classifies raw receipt text into the session.
func (s *Session) LoadText(text string) {
	s.RawText = text
	s.Items = ParseItems(text)
	s.ReceiptType = ClassifyReceipt(text)
	s.recalcTotal()
}

// LoadManual fills the session from manually keyed items. Classification is
// caller-specified and defaults to purchase.
func (s *Session) LoadManual(items []models.ParsedItem, override models.ReceiptType) {
	s.RawText = "Manual Entry"
	s.Items = items
	if override == "" {
		override = models.ReceiptTypePurchase
	}
	s.ReceiptType = override
	s.recalcTotal()
}

// AddItem appends a valid item; invalid input is rejected, mirroring the
// parser's acceptance rule.
func (s *Session) AddItem(item models.ParsedItem) bool {
	if item.Name == "" || item.Qty <= 0 || !item.Price.IsPositive() {
		return false
	}
	s.Items = append(s.Items, item)
	s.recalcTotal()
	return true
}

// RemoveItem drops the item at index; out-of-range indexes are a no-op.
func (s *Session) RemoveItem(index int) bool {
	if index < 0 || index >= len(s.Items) {
		return false
	}
	s.Items = append(s.Items[:index], s.Items[index+1:]...)
	s.recalcTotal()
	return true
}

func (s *Session) recalcTotal() {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.LineTotal())
	}
	s.TotalAmount = total
}
