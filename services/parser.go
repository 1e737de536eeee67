package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"ims-backend/models"
)

// itemPattern matches "name qty price" appearing anywhere in a line, e.g.
// "Blue Pen 10 25.50". The name capture is minimal so the first run of
// digits is taken as the quantity.
var itemPattern = regexp.MustCompile(`([a-zA-Z\s]+?)\s+(\d+)\s+([\d.]+)`)

// ParseItems extracts candidate line items from raw receipt text. It is a
// best-effort extractor: lines that do not carry a recognizable
// name/quantity/price triple are silently dropped, never reported as errors.
// Parsing the same text twice yields the same items.
func ParseItems(text string) []models.ParsedItem {
	var items []models.ParsedItem

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 5 {
			continue
		}

		match := itemPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		name := strings.TrimSpace(match[1])
		qty, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		price, err := decimal.NewFromString(match[3])
		if err != nil {
			// e.g. a bare "." or "1.2.3" captured by the price group.
			continue
		}

		if name == "" || qty <= 0 || !price.IsPositive() {
			continue
		}

		items = append(items, models.ParsedItem{Name: name, Qty: qty, Price: price})
	}

	return items
}
