package services_test

import (
	"testing"

	"ims-backend/models"
	"ims-backend/services"
)

func TestSessionResetClearsEverything(t *testing.T) {
	session := services.NewSession()
	session.LoadText("Supplier Invoice\nBlue Pen 10 25.50\n")

	if len(session.Items) == 0 {
		t.Fatalf("expected items before reset")
	}

	session.Reset()

	if len(session.Items) != 0 {
		t.Errorf("items not cleared: %v", session.Items)
	}
	if !session.TotalAmount.IsZero() {
		t.Errorf("total not cleared: %s", session.TotalAmount)
	}
	if session.ReceiptType != "" {
		t.Errorf("receipt type not cleared: %q", session.ReceiptType)
	}
	if session.RawText != "" {
		t.Errorf("raw text not cleared: %q", session.RawText)
	}
}

func TestSessionTotalTracksItemChanges(t *testing.T) {
	session := services.NewSession()

	if ok := session.AddItem(models.ParsedItem{Name: "Blue Pen", Qty: 10, Price: mustDecimal(t, "25.50")}); !ok {
		t.Fatalf("AddItem rejected a valid item")
	}
	if ok := session.AddItem(models.ParsedItem{Name: "Red Notebook", Qty: 2, Price: mustDecimal(t, "120")}); !ok {
		t.Fatalf("AddItem rejected a valid item")
	}

	if want := mustDecimal(t, "495"); !session.TotalAmount.Equal(want) {
		t.Errorf("total = %s, want %s", session.TotalAmount, want)
	}

	if ok := session.RemoveItem(0); !ok {
		t.Fatalf("RemoveItem failed for valid index")
	}
	if want := mustDecimal(t, "240"); !session.TotalAmount.Equal(want) {
		t.Errorf("total after remove = %s, want %s", session.TotalAmount, want)
	}

	if session.RemoveItem(5) {
		t.Errorf("RemoveItem accepted an out-of-range index")
	}
}

func TestSessionRejectsInvalidItems(t *testing.T) {
	session := services.NewSession()

	if session.AddItem(models.ParsedItem{Name: "", Qty: 1, Price: mustDecimal(t, "1")}) {
		t.Errorf("accepted empty name")
	}
	if session.AddItem(models.ParsedItem{Name: "Pen", Qty: 0, Price: mustDecimal(t, "1")}) {
		t.Errorf("accepted zero quantity")
	}
	if session.AddItem(models.ParsedItem{Name: "Pen", Qty: 1, Price: mustDecimal(t, "0")}) {
		t.Errorf("accepted zero price")
	}
	if len(session.Items) != 0 {
		t.Fatalf("invalid items were stored: %v", session.Items)
	}
}

func TestSessionLoadManualDefaultsToPurchase(t *testing.T) {
	session := services.NewSession()
	session.LoadManual([]models.ParsedItem{
		{Name: "Widget", Qty: 5, Price: mustDecimal(t, "10.0")},
	}, "")

	if session.ReceiptType != models.ReceiptTypePurchase {
		t.Errorf("receipt type = %q, want purchase", session.ReceiptType)
	}
	if want := mustDecimal(t, "50"); !session.TotalAmount.Equal(want) {
		t.Errorf("total = %s, want %s", session.TotalAmount, want)
	}

	session.Reset()
	session.LoadManual([]models.ParsedItem{
		{Name: "Widget", Qty: 1, Price: mustDecimal(t, "10.0")},
	}, models.ReceiptTypeSales)
	if session.ReceiptType != models.ReceiptTypeSales {
		t.Errorf("override ignored, got %q", session.ReceiptType)
	}
}
