package render

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yurifrl/nfesales/pkg/models"
)

// DisplayRow is the string-rendered projection of a SaleRecord shown to a
// user: product, raw quantity, currency-prefixed two-decimal value, date.
type DisplayRow struct {
	Product  string
	Quantity float64
	Value    string
	Date     string
}

// Matches reports whether a record satisfies the free-text criterion: a
// case-insensitive substring of the product name, or an exact substring of
// the sale date, or of the two-decimal value. The empty criterion matches
// everything.
func Matches(r models.SaleRecord, criterion string) bool {
	if criterion == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Product), strings.ToLower(criterion)) {
		return true
	}
	if strings.Contains(r.SaleDate, criterion) {
		return true
	}
	return strings.Contains(FormatValue(r.ValueSold), criterion)
}

// Rows projects records to display rows, keeping insertion order and leaving
// the input untouched. A pure function of its arguments.
func Rows(records []models.SaleRecord, criterion, symbol string) []DisplayRow {
	var rows []DisplayRow
	for _, r := range records {
		if !Matches(r, criterion) {
			continue
		}
		rows = append(rows, DisplayRow{
			Product:  r.Product,
			Quantity: r.Quantity,
			Value:    symbol + " " + FormatValue(r.ValueSold),
			Date:     r.SaleDate,
		})
	}
	return rows
}

// FormatValue renders a monetary value with fixed two-decimal precision,
// without the currency symbol.
func FormatValue(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
