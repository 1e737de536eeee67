package services

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound means no catalog entry matched a line item's name.
	ErrProductNotFound = errors.New("product not found in inventory")

	// ErrNoItemsFound means neither parsing nor manual entry produced any
	// line items; the workflow terminates before any row is written.
	ErrNoItemsFound = errors.New("no items found in receipt")
)

// InsufficientStockError is returned by the ledger when a subtract would
// drive a product's quantity below zero. The quantity is left unchanged.
type InsufficientStockError struct {
	Available int
	Required  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: available=%d, required=%d", e.Available, e.Required)
}

// StoreError wraps a lower-level storage fault so callers can tell driver
// failures apart from domain failures.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failure during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// FailureReason classifies why a single line item could not be applied.
type FailureReason string

const (
	FailureProductNotFound   FailureReason = "product_not_found"
	FailureInsufficientStock FailureReason = "insufficient_stock"
	FailureStoreError        FailureReason = "store_error"
)

// reasonFor maps a per-item error to its typed reason.
func reasonFor(err error) FailureReason {
	var insufficient *InsufficientStockError
	switch {
	case errors.Is(err, ErrProductNotFound):
		return FailureProductNotFound
	case errors.As(err, &insufficient):
		return FailureInsufficientStock
	default:
		return FailureStoreError
	}
}
