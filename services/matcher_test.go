package services_test

import (
	"errors"
	"testing"

	"ims-backend/services"
)

func TestMatchProductExactBeatsSubstring(t *testing.T) {
	db := openTestDB(t)
	seedProduct(t, db, "Blue Pen Refill", "5.00", 10)
	exactID := seedProduct(t, db, "Blue Pen", "25.50", 10)

	matcher := services.NewMatcher(db)
	product, err := matcher.MatchProduct("blue pen")
	if err != nil {
		t.Fatalf("MatchProduct: %v", err)
	}
	if product.ID != exactID {
		t.Errorf("matched product %d (%q), want exact match %d", product.ID, product.Name, exactID)
	}
}

func TestMatchProductShortestContainingNameWins(t *testing.T) {
	db := openTestDB(t)
	seedProduct(t, db, "Premium Widget Deluxe", "30.00", 10)
	shortID := seedProduct(t, db, "Widget Pro", "20.00", 10)

	matcher := services.NewMatcher(db)
	product, err := matcher.MatchProduct("Widget")
	if err != nil {
		t.Fatalf("MatchProduct: %v", err)
	}
	if product.ID != shortID {
		t.Errorf("matched product %d (%q), want shortest containing name %d", product.ID, product.Name, shortID)
	}
}

func TestMatchProductNotFound(t *testing.T) {
	db := openTestDB(t)
	seedProduct(t, db, "Blue Pen", "25.50", 10)

	matcher := services.NewMatcher(db)
	_, err := matcher.MatchProduct("Stapler")
	if !errors.Is(err, services.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
