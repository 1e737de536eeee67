package models

import "github.com/shopspring/decimal"

type Product struct {
	ID       int             `json:"id"`
	Category string          `json:"category"`
	Supplier string          `json:"supplier"`
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Qty      int             `json:"qty"`
	Status   string          `json:"status"`
}
