package services

import (
	"strings"

	"ims-backend/models"
)

var (
	purchaseKeywords = []string{"purchase", "invoice", "supplier", "bill", "order", "wholesale", "received"}
	salesKeywords    = []string{"sale", "receipt", "customer", "sold", "invoice #", "retail", "bill to"}
)

// ClassifyReceipt labels text as a purchase (stock in) or sales (stock out)
// document by counting keyword occurrences. Containment is substring based,
// not word-boundary based, and a tie classifies as purchase.
func ClassifyReceipt(text string) models.ReceiptType {
	lower := strings.ToLower(text)

	purchaseCount := 0
	for _, kw := range purchaseKeywords {
		if strings.Contains(lower, kw) {
			purchaseCount++
		}
	}

	salesCount := 0
	for _, kw := range salesKeywords {
		if strings.Contains(lower, kw) {
			salesCount++
		}
	}

	if purchaseCount >= salesCount {
		return models.ReceiptTypePurchase
	}
	return models.ReceiptTypeSales
}
