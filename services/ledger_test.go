package services_test

import (
	"errors"
	"testing"

	"ims-backend/models"
	"ims-backend/services"
)

func TestLedgerAddIncreasesQuantity(t *testing.T) {
	db := openTestDB(t)
	productID := seedProduct(t, db, "Widget", "10.00", 20)

	ledger := services.NewLedger(db)
	oldQty, newQty, err := ledger.ApplyQuantityChange(productID, 5, models.StockActionAdd)
	if err != nil {
		t.Fatalf("ApplyQuantityChange: %v", err)
	}
	if oldQty != 20 || newQty != 25 {
		t.Errorf("got old=%d new=%d, want old=20 new=25", oldQty, newQty)
	}
	if qty := productQty(t, db, productID); qty != 25 {
		t.Errorf("stored qty = %d, want 25", qty)
	}
}

func TestLedgerSubtractInsufficientStockLeavesQuantityUnchanged(t *testing.T) {
	db := openTestDB(t)
	productID := seedProduct(t, db, "Widget", "10.00", 3)

	ledger := services.NewLedger(db)
	_, _, err := ledger.ApplyQuantityChange(productID, 5, models.StockActionSubtract)

	var insufficient *services.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if insufficient.Available != 3 || insufficient.Required != 5 {
		t.Errorf("got available=%d required=%d, want available=3 required=5",
			insufficient.Available, insufficient.Required)
	}
	if qty := productQty(t, db, productID); qty != 3 {
		t.Errorf("stored qty = %d, want unchanged 3", qty)
	}
}

func TestLedgerProductNotFound(t *testing.T) {
	db := openTestDB(t)

	ledger := services.NewLedger(db)
	_, _, err := ledger.ApplyQuantityChange(999, 1, models.StockActionAdd)
	if !errors.Is(err, services.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestLedgerRejectsNonPositiveDelta(t *testing.T) {
	db := openTestDB(t)
	productID := seedProduct(t, db, "Widget", "10.00", 20)

	ledger := services.NewLedger(db)
	if _, _, err := ledger.ApplyQuantityChange(productID, 0, models.StockActionAdd); err == nil {
		t.Errorf("accepted zero delta")
	}
	if _, _, err := ledger.ApplyQuantityChange(productID, -3, models.StockActionSubtract); err == nil {
		t.Errorf("accepted negative delta")
	}
	if qty := productQty(t, db, productID); qty != 20 {
		t.Errorf("stored qty = %d, want unchanged 20", qty)
	}
}

// Quantity can never go negative across any sequence of ledger calls: the
// running balance always matches the store and failed subtracts change
// nothing.
func TestLedgerQuantityNeverNegative(t *testing.T) {
	db := openTestDB(t)
	productID := seedProduct(t, db, "Widget", "10.00", 0)

	ledger := services.NewLedger(db)
	steps := []struct {
		action models.StockAction
		delta  int
	}{
		{models.StockActionSubtract, 1},
		{models.StockActionAdd, 10},
		{models.StockActionSubtract, 4},
		{models.StockActionSubtract, 7},
		{models.StockActionAdd, 2},
		{models.StockActionSubtract, 8},
		{models.StockActionSubtract, 1},
	}

	expected := 0
	for i, step := range steps {
		oldQty, newQty, err := ledger.ApplyQuantityChange(productID, step.delta, step.action)
		if step.action == models.StockActionSubtract && expected < step.delta {
			var insufficient *services.InsufficientStockError
			if !errors.As(err, &insufficient) {
				t.Fatalf("step %d: expected InsufficientStockError, got %v", i, err)
			}
			if oldQty != expected {
				t.Errorf("step %d: old = %d, want %d", i, oldQty, expected)
			}
		} else {
			if err != nil {
				t.Fatalf("step %d: %v", i, err)
			}
			if oldQty != expected {
				t.Errorf("step %d: old = %d, want %d", i, oldQty, expected)
			}
			if step.action == models.StockActionAdd {
				expected += step.delta
			} else {
				expected -= step.delta
			}
			if newQty != expected {
				t.Errorf("step %d: new = %d, want %d", i, newQty, expected)
			}
		}

		if qty := productQty(t, db, productID); qty != expected || qty < 0 {
			t.Fatalf("step %d: stored qty = %d, want %d (never negative)", i, qty, expected)
		}
	}
}
